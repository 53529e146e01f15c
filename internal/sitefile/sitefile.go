// Package sitefile reads declaration sites exported by a host tokenizer.
//
// A site file describes one source file:
//
//	file: src/Model/User.php
//	classes:
//	  - name: \App\Model\User
//	    parent: \App\Model\Base
//	    sites:
//	      - kind: property
//	        name: ids
//	        doc: int[]
//	        doc_line: 10
//	        native: array
//	        line: 11
//	      - kind: parameter
//	        name: handler
//	        position: 0
//	        docblock: "/** @param callable $handler */"
//	        docblock_line: 20
//	        native: \Closure
//	        line: 21
//	sites:
//	  - kind: return
//	    name: helper
//	    line: 40
//
// A site either carries its raw doc type (doc, doc_line) or the whole doc
// comment (docblock, docblock_line), from which the matching tag is taken.
package sitefile

import (
	"os"

	"github.com/funvibe/typesniff/internal/docblock"
	"github.com/funvibe/typesniff/internal/subject"
	"github.com/funvibe/typesniff/internal/token"
	"github.com/funvibe/typesniff/internal/typesystem"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the parsed content of a site file.
type File struct {
	Path    string  `yaml:"file"`
	Classes []Class `yaml:"classes,omitempty"`
	Sites   []Site  `yaml:"sites,omitempty"`
}

// Class groups the sites declared inside one class.
type Class struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
	Sites  []Site `yaml:"sites"`
}

// Site is one declaration site.
type Site struct {
	Kind         string  `yaml:"kind"`
	Name         string  `yaml:"name"`
	Position     int     `yaml:"position,omitempty"`
	Doc          *string `yaml:"doc,omitempty"`
	DocLine      *int    `yaml:"doc_line,omitempty"`
	DocBlock     *string `yaml:"docblock,omitempty"`
	DocBlockLine int     `yaml:"docblock_line,omitempty"`
	Native       *string `yaml:"native,omitempty"`
	Line         int     `yaml:"line"`
	DefaultNull  bool    `yaml:"default_null,omitempty"`
	Literal      string  `yaml:"literal,omitempty"`
}

// Group is a set of subjects sharing one class context.
type Group struct {
	Context  typesystem.Context
	Subjects []*subject.Subject
}

// Load reads and validates a site file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading site file %s", path)
	}
	return Parse(data, path)
}

// Parse parses site file content. path is used for error messages and as the
// default source path.
func Parse(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if f.Path == "" {
		f.Path = path
	}
	for i, class := range f.Classes {
		if class.Name == "" {
			return nil, errors.Errorf("%s: classes[%d]: name is required", path, i)
		}
		for j, site := range class.Sites {
			if err := site.validate(); err != nil {
				return nil, errors.Wrapf(err, "%s: classes[%d].sites[%d]", path, i, j)
			}
		}
	}
	for i, site := range f.Sites {
		if err := site.validate(); err != nil {
			return nil, errors.Wrapf(err, "%s: sites[%d]", path, i)
		}
	}
	return &f, nil
}

func (s Site) validate() error {
	if _, ok := subject.ParseKind(s.Kind); !ok {
		return errors.Errorf("unknown kind %q", s.Kind)
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Doc != nil && s.DocBlock != nil {
		return errors.New("doc and docblock are mutually exclusive")
	}
	if _, ok := token.ParseLiteralKind(s.Literal); !ok {
		return errors.Errorf("unknown literal %q", s.Literal)
	}
	if s.Position < 0 {
		return errors.Errorf("negative position %d", s.Position)
	}
	return nil
}

// Groups builds the subjects of every class and of the top level sites.
func (f *File) Groups() []Group {
	var groups []Group
	for _, class := range f.Classes {
		ctx := typesystem.Context{Class: &typesystem.TClass{Name: class.Name}}
		if class.Parent != "" {
			ctx.Parent = &typesystem.TClass{Name: class.Parent}
		}
		groups = append(groups, Group{Context: ctx, Subjects: buildAll(class.Sites)})
	}
	if len(f.Sites) > 0 {
		groups = append(groups, Group{Subjects: buildAll(f.Sites)})
	}
	return groups
}

// Subjects flattens Groups.
func (f *File) Subjects() []*subject.Subject {
	var result []*subject.Subject
	for _, g := range f.Groups() {
		result = append(result, g.Subjects...)
	}
	return result
}

func buildAll(sites []Site) []*subject.Subject {
	result := make([]*subject.Subject, 0, len(sites))
	for _, site := range sites {
		result = append(result, site.Subject())
	}
	return result
}

// Subject builds the inspection subject of a validated site.
func (s Site) Subject() *subject.Subject {
	kind, _ := subject.ParseKind(s.Kind)
	literal, _ := token.ParseLiteralKind(s.Literal)

	if s.DocBlock != nil {
		block := docblock.Parse(*s.DocBlock, s.DocBlockLine)
		site := subject.Site{
			Name:        s.Name,
			Position:    s.Position,
			NativeRaw:   s.Native,
			NativeLine:  s.Line,
			DefaultNull: s.DefaultNull,
			Literal:     literal,
		}
		switch kind {
		case subject.Parameter:
			return subject.FromParam(block, site)
		case subject.Property:
			return subject.FromProperty(block, site)
		case subject.Constant:
			return subject.FromConst(block, site)
		default:
			return subject.FromReturn(block, site)
		}
	}

	return subject.Build(subject.Input{
		Kind:        kind,
		Name:        s.Name,
		DocRaw:      s.Doc,
		NativeRaw:   s.Native,
		Literal:     literal,
		DocLine:     s.DocLine,
		NativeLine:  s.Line,
		DefaultNull: s.DefaultNull,
	})
}
