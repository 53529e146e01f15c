package main

import (
	"fmt"
	"io"

	"github.com/funvibe/typesniff/internal/config"
	"github.com/funvibe/typesniff/internal/sniff"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// Printer writes diagnostics as file:line [severity] code: message.
type Printer struct {
	Out   io.Writer
	Color bool
}

func (p *Printer) Print(diags []sniff.Diagnostic) {
	for _, d := range diags {
		if !p.Color {
			fmt.Fprintln(p.Out, d.String())
			continue
		}
		fmt.Fprintf(p.Out, "%s%s:%d%s %s[%s]%s %s: %s\n",
			colorDim, d.File, d.Line, colorReset,
			severityColor(d.Severity), d.Severity, colorReset,
			d.Code, d.Message)
	}
}

func severityColor(s config.Severity) string {
	if s == config.SeverityError {
		return colorRed
	}
	return colorYellow
}
