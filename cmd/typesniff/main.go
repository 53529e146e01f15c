package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/funvibe/typesniff/internal/baseline"
	"github.com/funvibe/typesniff/internal/config"
	"github.com/funvibe/typesniff/internal/pipeline"
	"github.com/funvibe/typesniff/internal/sniff"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("typesniff: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns the exit status: 0 when clean, 1 when
// error diagnostics remain, 2 on usage or I/O failure.
func run(args []string, stdout io.Writer) int {
	opts := &Options{}
	if _, err := flags.ParseArgs(opts, args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}
	for _, path := range opts.Args.Files {
		if !config.IsSiteFile(path) {
			fmt.Fprintf(os.Stderr, "%s: not a site list, expected one of %v\n", path, config.SiteFileExtensions)
			return 2
		}
	}
	if !opts.Verbose {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	baselinePath := cfg.BaselinePath()
	if opts.Baseline != "" {
		baselinePath = opts.Baseline
	}

	runID := baseline.NewRunID()
	log.Printf("run %s, baseline %s", runID, baselinePath)

	store, err := openBaseline(baselinePath, opts.UpdateBaseline)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if store != nil {
		defer store.Close()
	}

	processors := []pipeline.Processor{
		pipeline.LoadProcessor{},
		pipeline.InspectProcessor{Sniff: sniff.New(cfg)},
	}
	if !opts.UpdateBaseline {
		processors = append(processors, pipeline.BaselineProcessor{Store: store})
	}
	p := pipeline.New(processors...)

	var diags []sniff.Diagnostic
	failed := false
	for _, path := range opts.Args.Files {
		log.Printf("inspecting %s", path)
		ctx := p.Run(pipeline.NewContext(path))
		for _, err := range ctx.Errors {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
		diags = append(diags, ctx.Diagnostics...)
	}
	if failed {
		return 2
	}

	if opts.UpdateBaseline {
		if err := store.Record(runID, diags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		fmt.Fprintf(stdout, "%d diagnostics accepted into %s\n", len(diags), baselinePath)
		return 0
	}

	printer := &Printer{Out: stdout, Color: useColor(opts.NoColor, stdout)}
	printer.Print(diags)
	log.Printf("%d diagnostics", len(diags))
	if sniff.HasErrors(diags) {
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			log.Printf("no config found, using defaults")
			return config.Default(), nil
		}
		path = found
	}
	log.Printf("config %s", path)
	return config.LoadConfig(path)
}

// openBaseline opens the baseline when it exists, or when it is about to be
// written.
func openBaseline(path string, create bool) (*baseline.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "checking baseline %s", path)
		}
		if !create {
			return nil, nil
		}
	}
	return baseline.Open(path)
}

func useColor(disabled bool, out io.Writer) bool {
	if disabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
