package pipeline

import (
	"github.com/funvibe/typesniff/internal/sitefile"
	"github.com/funvibe/typesniff/internal/sniff"
)

// PipelineContext carries one site file through the stages.
type PipelineContext struct {
	FilePath    string
	Site        *sitefile.File
	Diagnostics []sniff.Diagnostic
	Errors      []error
}

func NewContext(path string) *PipelineContext {
	return &PipelineContext{FilePath: path}
}

// Failed reports whether any stage recorded an error.
func (c *PipelineContext) Failed() bool {
	return len(c.Errors) > 0
}

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext {
	return f(ctx)
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Later stages check for the data they need, so errors do not stop
		// the run; the caller reports them all.
	}
	return ctx
}
