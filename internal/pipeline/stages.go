package pipeline

import (
	"github.com/funvibe/typesniff/internal/baseline"
	"github.com/funvibe/typesniff/internal/sitefile"
	"github.com/funvibe/typesniff/internal/sniff"
)

// LoadProcessor reads the site file unless one is already attached.
type LoadProcessor struct{}

func (LoadProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Site != nil {
		return ctx
	}
	f, err := sitefile.Load(ctx.FilePath)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Site = f
	return ctx
}

// InspectProcessor classifies every subject of the site file.
type InspectProcessor struct {
	Sniff *sniff.Sniff
}

func (p InspectProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Site == nil {
		return ctx
	}
	for _, group := range ctx.Site.Groups() {
		for _, d := range p.Sniff.Inspect(group.Subjects, group.Context) {
			d.File = ctx.Site.Path
			ctx.Diagnostics = append(ctx.Diagnostics, d)
		}
	}
	sniff.Sort(ctx.Diagnostics)
	return ctx
}

// BaselineProcessor drops diagnostics accepted in the baseline.
type BaselineProcessor struct {
	Store *baseline.Store
}

func (p BaselineProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if p.Store == nil || len(ctx.Diagnostics) == 0 {
		return ctx
	}
	filtered, err := p.Store.Filter(ctx.Diagnostics)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Diagnostics = filtered
	return ctx
}
