// Package sniff turns subject classifications into diagnostics.
package sniff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/funvibe/typesniff/internal/config"
	"github.com/funvibe/typesniff/internal/subject"
	"github.com/funvibe/typesniff/internal/typesystem"
)

// Diagnostic is one reported finding.
type Diagnostic struct {
	File     string
	Line     int
	Code     string
	Severity config.Severity
	Subject  string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d [%s] %s: %s", d.File, d.Line, d.Severity, d.Code, d.Message)
}

// Fingerprint identifies a diagnostic across runs. The line is left out so
// that unrelated edits above a finding do not change it.
func (d Diagnostic) Fingerprint() string {
	return strings.Join([]string{d.File, d.Code, d.Subject, d.Message}, "\x00")
}

// Sniff applies a configuration to classified subjects.
type Sniff struct {
	Config *config.Config
}

func New(cfg *config.Config) *Sniff {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Sniff{Config: cfg}
}

// Inspect classifies every subject against ctx and returns diagnostics for
// enabled codes, ordered by line.
func (s *Sniff) Inspect(subjects []*subject.Subject, ctx typesystem.Context) []Diagnostic {
	var result []Diagnostic
	for _, subj := range subjects {
		if !s.Config.Inspects(subj.Kind.String()) {
			continue
		}
		class := subject.Classify(subj, ctx)
		if class == subject.Ok {
			continue
		}
		severity := s.Config.Severity(class.Code())
		if severity == config.SeverityOff {
			continue
		}
		result = append(result, Diagnostic{
			Line:     subj.LineFor(class),
			Code:     class.Code(),
			Severity: severity,
			Subject:  subj.Label(),
			Message:  Message(subj, class),
		})
	}
	Sort(result)
	return result
}

// Sort orders diagnostics by file, line and code.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Code < b.Code
	})
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == config.SeverityError {
			return true
		}
	}
	return false
}

// Message renders the text of a diagnostic.
func Message(s *subject.Subject, class subject.Classification) string {
	label := s.Label()
	doc := render(s.DocType)
	native := render(s.EffectiveNative())

	switch class {
	case subject.MissingDocType:
		if s.DocTypeLine != nil {
			return fmt.Sprintf("%s has a doc tag without a readable type", label)
		}
		if s.Kind == subject.Constant || typesystem.IsUndefined(s.NativeType) {
			return fmt.Sprintf("%s has no documented type", label)
		}
		return fmt.Sprintf("%s has no documented type, native type is %s", label, native)
	case subject.MissingNativeType:
		return fmt.Sprintf("%s has no native type, documented as %s", label, doc)
	case subject.RedundantDocType:
		return fmt.Sprintf("documented type %s of %s is redundant", doc, label)
	case subject.NarrowerDocType:
		return fmt.Sprintf("documented type %s of %s narrows native type %s", doc, label, native)
	case subject.MismatchedType:
		return fmt.Sprintf("documented type %s of %s does not match native type %s", doc, label, native)
	case subject.ValueTypeMismatch:
		return fmt.Sprintf("%s is documented as %s but holds %s", label, doc, render(s.ValueType))
	}
	return label
}

func render(t typesystem.Type) string {
	if t == nil {
		return "nothing"
	}
	return t.String()
}
