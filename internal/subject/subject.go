// Package subject pairs the documented, native and inferred types of one
// declaration site and classifies how they relate.
package subject

import (
	"fmt"

	"github.com/funvibe/typesniff/internal/docblock"
	"github.com/funvibe/typesniff/internal/token"
	"github.com/funvibe/typesniff/internal/typesystem"
)

// Kind is the kind of declaration site.
type Kind int

const (
	Parameter Kind = iota
	Property
	Constant
	Return
)

func (k Kind) String() string {
	switch k {
	case Parameter:
		return "parameter"
	case Property:
		return "property"
	case Constant:
		return "constant"
	case Return:
		return "return"
	}
	return "unknown"
}

// ParseKind maps a kind name back to a Kind.
func ParseKind(name string) (Kind, bool) {
	for _, k := range []Kind{Parameter, Property, Constant, Return} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Subject is an immutable view of one declaration site.
type Subject struct {
	Kind Kind
	Name string

	// DocType is nil when no matching tag exists or the tag is untyped, and
	// TUndefined when the tag type could not be read.
	DocType typesystem.Type
	// NativeType is nil when no type hint is declared. Constants always carry
	// TUndefined.
	NativeType typesystem.Type
	// ValueType is the type inferred from a constant's literal value.
	ValueType     typesystem.Type
	ValueInferred bool
	Literal       token.LiteralKind

	DocTypeLine *int
	NativeLine  int
	DocBlock    docblock.Block

	// DefaultNull marks a parameter declared with a null default value.
	DefaultNull bool
}

// Label is the human readable name of the site, e.g. "parameter $id".
func (s *Subject) Label() string {
	switch s.Kind {
	case Parameter, Property:
		return fmt.Sprintf("%s $%s", s.Kind, s.Name)
	case Return:
		return fmt.Sprintf("return type of %s()", s.Name)
	}
	return fmt.Sprintf("%s %s", s.Kind, s.Name)
}

// Line is where a diagnostic about the subject belongs: the doc tag when
// there is one, the declaration otherwise.
func (s *Subject) Line() int {
	if s.DocTypeLine != nil {
		return *s.DocTypeLine
	}
	return s.NativeLine
}

// LineFor is Line for a classified subject. A missing native type belongs to
// the declaration that lacks it.
func (s *Subject) LineFor(c Classification) int {
	if c == MissingNativeType && s.NativeLine > 0 {
		return s.NativeLine
	}
	return s.Line()
}

// EffectiveNative is the native type as the runtime enforces it; a null
// default makes a parameter type implicitly nullable.
func (s *Subject) EffectiveNative() typesystem.Type {
	if s.Kind != Parameter {
		return s.NativeType
	}
	return typesystem.ImplicitNullable(s.NativeType, s.DefaultNull)
}

// ValueError explains why a constant has no inferred value type. It is nil
// for inferred values and for non-constant subjects.
func (s *Subject) ValueError() error {
	if s.Kind != Constant || s.ValueInferred {
		return nil
	}
	return typesystem.NewAmbiguousLiteralError(s.Literal.String())
}
