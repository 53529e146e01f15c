package main

// Options are the command line flags of typesniff.
type Options struct {
	Config         string `short:"c" long:"config" description:"path to typesniff.yaml (default: searched upwards from the working directory)"`
	Baseline       string `short:"b" long:"baseline" description:"baseline database, overrides the config"`
	UpdateBaseline bool   `long:"update-baseline" description:"accept all current diagnostics into the baseline"`
	NoColor        bool   `long:"no-color" description:"disable coloured output"`
	Verbose        bool   `short:"v" long:"verbose" description:"log progress to stderr"`
	Args           struct {
		Files []string `positional-arg-name:"site-file" required:"1"`
	} `positional-args:"yes"`
}
