package subject

import (
	"strings"

	"github.com/funvibe/typesniff/internal/docblock"
	"github.com/funvibe/typesniff/internal/token"
	"github.com/funvibe/typesniff/internal/typeparser"
	"github.com/funvibe/typesniff/internal/typesystem"
)

// Input carries raw facts about a declaration site as a host collects them.
type Input struct {
	Kind        Kind
	Name        string
	DocRaw      *string
	NativeRaw   *string
	Literal     token.LiteralKind
	DocLine     *int
	NativeLine  int
	DocBlock    docblock.Block
	DefaultNull bool
}

// Build parses the raw types of in. It never fails: unreadable types degrade
// to TUndefined and absent ones stay nil.
func Build(in Input) *Subject {
	s := &Subject{
		Kind:        in.Kind,
		Name:        strings.TrimPrefix(in.Name, "$"),
		DocType:     typeparser.ParseOptional(in.DocRaw),
		DocTypeLine: in.DocLine,
		NativeLine:  in.NativeLine,
		DocBlock:    in.DocBlock,
		DefaultNull: in.DefaultNull && in.Kind == Parameter,
		Literal:     in.Literal,
	}
	if s.DocBlock == nil {
		s.DocBlock = docblock.UndefinedDocBlock{}
	}
	if in.Kind == Constant {
		s.NativeType = typesystem.TUndefined{}
		s.ValueType, s.ValueInferred = token.ValueType(in.Literal)
	} else {
		s.NativeType = typeparser.ParseOptional(in.NativeRaw)
	}
	return s
}

// Site describes a declaration independently of its doc comment.
type Site struct {
	Name        string
	Position    int // parameter position, zero based
	NativeRaw   *string
	NativeLine  int
	DefaultNull bool
	Literal     token.LiteralKind
}

// FromParam builds a parameter subject; the @param tag is matched by name,
// then by position.
func FromParam(block docblock.Block, site Site) *Subject {
	in := siteInput(Parameter, block, site)
	if tag, ok := block.ParamTag(site.Name, site.Position); ok {
		withTag(&in, tag)
	}
	return Build(in)
}

// FromProperty builds a property subject from its @var tag.
func FromProperty(block docblock.Block, site Site) *Subject {
	in := siteInput(Property, block, site)
	if tag, ok := varTag(block, site.Name); ok {
		withTag(&in, tag)
	}
	return Build(in)
}

// FromConst builds a constant subject from its @var tag and assigned literal.
func FromConst(block docblock.Block, site Site) *Subject {
	in := siteInput(Constant, block, site)
	in.NativeRaw = nil
	if tag, ok := varTag(block, site.Name); ok {
		withTag(&in, tag)
	}
	return Build(in)
}

// FromReturn builds a return subject from the first @return tag.
func FromReturn(block docblock.Block, site Site) *Subject {
	in := siteInput(Return, block, site)
	if tags := block.TagsByName("return"); len(tags) > 0 {
		withTag(&in, tags[0])
	}
	return Build(in)
}

func siteInput(kind Kind, block docblock.Block, site Site) Input {
	if block == nil {
		block = docblock.UndefinedDocBlock{}
	}
	return Input{
		Kind:        kind,
		Name:        site.Name,
		NativeRaw:   site.NativeRaw,
		NativeLine:  site.NativeLine,
		DocBlock:    block,
		DefaultNull: site.DefaultNull,
		Literal:     site.Literal,
	}
}

func withTag(in *Input, tag docblock.Tag) {
	line := tag.Line
	in.DocLine = &line
	if tag.HasType() {
		raw := tag.RawType
		in.DocRaw = &raw
	}
}

// varTag picks the @var tag naming the declaration, or the first one without
// a subject.
func varTag(block docblock.Block, name string) (docblock.Tag, bool) {
	want := "$" + strings.TrimPrefix(name, "$")
	var fallback *docblock.Tag
	for _, tag := range block.TagsByName("var") {
		if tag.Subject == want {
			return tag, true
		}
		if tag.Subject == "" && fallback == nil {
			t := tag
			fallback = &t
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return docblock.Tag{}, false
}
