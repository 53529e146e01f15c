// Package docblock models structured doc comments as an ordered list of tags.
package docblock

import (
	"strings"

	"github.com/funvibe/typesniff/internal/typesystem"
)

// Tag is one @-annotation of a doc comment.
type Tag struct {
	Name    string          // without '@', e.g. "param"
	Type    typesystem.Type // nil when the tag carries no type
	RawType string          // type text as written, "" when absent
	Subject string          // e.g. "$name" for @param, "" when absent
	Line    int
	Text    string
}

// HasType reports whether the tag declares a type, readable or not.
func (t Tag) HasType() bool {
	return t.Type != nil
}

// Block is either a parsed doc comment or UndefinedDocBlock.
type Block interface {
	IsDefined() bool
	Tags() []Tag
	TagsByName(name string) []Tag
	HasTag(name string) bool
	// ParamTag finds the @param tag for a parameter, by name first and then by
	// position among @param tags without a subject.
	ParamTag(name string, position int) (Tag, bool)
	Description() string
	Line() int
}

// DocBlock is a doc comment that is present, possibly with zero tags.
type DocBlock struct {
	tags        []Tag
	description string
	line        int
}

func New(tags []Tag, description string, line int) *DocBlock {
	return &DocBlock{tags: tags, description: description, line: line}
}

func (d *DocBlock) IsDefined() bool     { return true }
func (d *DocBlock) Tags() []Tag         { return d.tags }
func (d *DocBlock) Description() string { return d.description }
func (d *DocBlock) Line() int           { return d.line }

func (d *DocBlock) TagsByName(name string) []Tag {
	var result []Tag
	for _, tag := range d.tags {
		if strings.EqualFold(tag.Name, name) {
			result = append(result, tag)
		}
	}
	return result
}

func (d *DocBlock) HasTag(name string) bool {
	return len(d.TagsByName(name)) > 0
}

func (d *DocBlock) ParamTag(name string, position int) (Tag, bool) {
	name = normalizeSubject(name)
	params := d.TagsByName("param")
	for _, tag := range params {
		if name != "" && tag.Subject == name {
			return tag, true
		}
	}
	if position >= 0 && position < len(params) && params[position].Subject == "" {
		return params[position], true
	}
	return Tag{}, false
}

// UndefinedDocBlock stands for a declaration without any doc comment, which is
// not the same as a doc comment without tags.
type UndefinedDocBlock struct{}

func (UndefinedDocBlock) IsDefined() bool                  { return false }
func (UndefinedDocBlock) Tags() []Tag                      { return nil }
func (UndefinedDocBlock) TagsByName(string) []Tag          { return nil }
func (UndefinedDocBlock) HasTag(string) bool               { return false }
func (UndefinedDocBlock) ParamTag(string, int) (Tag, bool) { return Tag{}, false }
func (UndefinedDocBlock) Description() string              { return "" }
func (UndefinedDocBlock) Line() int                        { return 0 }

func normalizeSubject(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if !strings.HasPrefix(name, "$") {
		name = "$" + name
	}
	return name
}
