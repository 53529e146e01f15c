package typesystem

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Type is the interface for all types in our system.
// Values are immutable once constructed and never contain themselves.
type Type interface {
	String() string
	Tag() Tag
}

type TInt struct{}

func (TInt) Tag() Tag       { return TagInt }
func (TInt) String() string { return "int" }

type TFloat struct{}

func (TFloat) Tag() Tag       { return TagFloat }
func (TFloat) String() string { return "float" }

type TBool struct{}

func (TBool) Tag() Tag       { return TagBool }
func (TBool) String() string { return "bool" }

type TString struct{}

func (TString) Tag() Tag       { return TagString }
func (TString) String() string { return "string" }

type TNull struct{}

func (TNull) Tag() Tag       { return TagNull }
func (TNull) String() string { return "null" }

// TMixed is an explicitly declared "any value".
type TMixed struct{}

func (TMixed) Tag() Tag       { return TagMixed }
func (TMixed) String() string { return "mixed" }

type TVoid struct{}

func (TVoid) Tag() Tag       { return TagVoid }
func (TVoid) String() string { return "void" }

type TNever struct{}

func (TNever) Tag() Tag       { return TagNever }
func (TNever) String() string { return "never" }

// TUndefined means no type information is available at all.
// It is distinct from TMixed, which is a stated type.
type TUndefined struct{}

func (TUndefined) Tag() Tag       { return TagUndefined }
func (TUndefined) String() string { return "<undefined>" }

type TObject struct{}

func (TObject) Tag() Tag       { return TagObject }
func (TObject) String() string { return "object" }

type TResource struct{}

func (TResource) Tag() Tag       { return TagResource }
func (TResource) String() string { return "resource" }

// TArray represents an array. Elem is nil for a bare `array`.
type TArray struct {
	Elem Type
}

func (TArray) Tag() Tag { return TagArray }

func (t TArray) String() string {
	if t.Elem == nil {
		return "array"
	}
	switch t.Elem.(type) {
	case TUnion, TNullable:
		return "array<" + t.Elem.String() + ">"
	}
	return t.Elem.String() + "[]"
}

type TIterable struct{}

func (TIterable) Tag() Tag       { return TagIterable }
func (TIterable) String() string { return "iterable" }

type TCallable struct{}

func (TCallable) Tag() Tag       { return TagCallable }
func (TCallable) String() string { return "callable" }

// TClosure is the callable variant with class identity (\Closure).
type TClosure struct{}

func (TClosure) Tag() Tag       { return TagClosure }
func (TClosure) String() string { return `\Closure` }

// TClass is a class or interface reference, kept exactly as written.
// Resolving it against namespace and use imports is left to the caller.
type TClass struct {
	Name string
}

func (TClass) Tag() Tag         { return TagClass }
func (t TClass) String() string { return t.Name }

type TSelf struct{}

func (TSelf) Tag() Tag       { return TagSelf }
func (TSelf) String() string { return "self" }

type TStatic struct{}

func (TStatic) Tag() Tag       { return TagStatic }
func (TStatic) String() string { return "static" }

type TParent struct{}

func (TParent) Tag() Tag       { return TagParent }
func (TParent) String() string { return "parent" }

type TThis struct{}

func (TThis) Tag() Tag       { return TagThis }
func (TThis) String() string { return "$this" }

// TBoolLiteral is the `true` or `false` pseudo type.
type TBoolLiteral struct {
	Value bool
}

func (TBoolLiteral) Tag() Tag { return TagBoolLiteral }

func (t TBoolLiteral) String() string {
	if t.Value {
		return "true"
	}
	return "false"
}

// TNullable wraps a type that also admits null. Use NewNullable to build one.
type TNullable struct {
	Inner Type
}

func (TNullable) Tag() Tag { return TagNullable }

func (t TNullable) String() string {
	if u, ok := t.Inner.(TUnion); ok {
		return u.String() + "|null"
	}
	return "?" + t.Inner.String()
}

// TUnion represents a union type (e.g. int|string).
// Members are normalized: flattened, deduplicated, and sorted for comparison.
type TUnion struct {
	Types []Type // At least 2 types
}

func (TUnion) Tag() Tag { return TagUnion }

func (t TUnion) String() string {
	parts := make([]string, 0, len(t.Types))
	for _, typ := range t.Types {
		parts = append(parts, typ.String())
	}
	return strings.Join(parts, "|")
}

// NewNullable wraps t in TNullable unless it already admits null.
func NewNullable(t Type) Type {
	switch typ := t.(type) {
	case nil:
		return nil
	case TNullable, TNull, TMixed, TUndefined:
		return t
	case TUnion:
		for _, m := range typ.Types {
			if _, ok := m.(TNull); ok {
				return NormalizeUnion(typ.Types)
			}
		}
	}
	return TNullable{Inner: t}
}

// NormalizeUnion creates a normalized union type.
// It flattens nested unions, removes duplicates, folds true|false into bool,
// sorts members and lifts an explicit null member into TNullable.
func NormalizeUnion(types []Type) Type {
	flat := []Type{}
	hasNull := false
	var visit func(t Type)
	visit = func(t Type) {
		switch typ := t.(type) {
		case nil:
		case TUnion:
			for _, m := range typ.Types {
				visit(m)
			}
		case TNullable:
			hasNull = true
			visit(typ.Inner)
		case TNull:
			hasNull = true
		default:
			flat = append(flat, t)
		}
	}
	for _, t := range types {
		visit(t)
	}

	seen := set.New[string](len(flat))
	unique := []Type{}
	for _, t := range flat {
		if seen.Insert(t.String()) {
			unique = append(unique, t)
		}
	}

	unique = collapseBoolLiterals(unique)

	var result Type
	switch len(unique) {
	case 0:
		if hasNull {
			return TNull{}
		}
		return nil
	case 1:
		result = unique[0]
	default:
		sort.Slice(unique, func(i, j int) bool {
			return unique[i].String() < unique[j].String()
		})
		result = TUnion{Types: unique}
	}
	if hasNull {
		return NewNullable(result)
	}
	return result
}

// collapseBoolLiterals folds true and false into bool, and drops either
// literal when bool is already a member.
func collapseBoolLiterals(types []Type) []Type {
	var hasTrue, hasFalse, hasBool bool
	for _, t := range types {
		switch typ := t.(type) {
		case TBool:
			hasBool = true
		case TBoolLiteral:
			if typ.Value {
				hasTrue = true
			} else {
				hasFalse = true
			}
		}
	}
	if !hasBool && !(hasTrue && hasFalse) {
		return types
	}
	out := make([]Type, 0, len(types))
	for _, t := range types {
		switch t.(type) {
		case TBool, TBoolLiteral:
			continue
		}
		out = append(out, t)
	}
	return append(out, TBool{})
}

// Equal reports structural equality. Union members are compared as sets.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch ta := a.(type) {
	case TArray:
		return Equal(ta.Elem, b.(TArray).Elem)
	case TClass:
		return ta.Name == b.(TClass).Name
	case TBoolLiteral:
		return ta.Value == b.(TBoolLiteral).Value
	case TNullable:
		return Equal(ta.Inner, b.(TNullable).Inner)
	case TUnion:
		return unionEqual(ta, b.(TUnion))
	}
	return true
}

func unionEqual(a, b TUnion) bool {
	left := memberSet(a)
	right := memberSet(b)
	if left.Size() != right.Size() {
		return false
	}
	for _, k := range right.Slice() {
		if !left.Contains(k) {
			return false
		}
	}
	return true
}

func memberSet(u TUnion) *set.Set[string] {
	s := set.New[string](len(u.Types))
	for _, m := range u.Types {
		s.Insert(m.String())
	}
	return s
}

// IsUndefined reports whether t carries no type information.
func IsUndefined(t Type) bool {
	if t == nil {
		return true
	}
	_, ok := t.(TUndefined)
	return ok
}

// Members flattens unions and nullables into their alternatives. A nullable
// contributes TNull as a member; any other type is its own single member.
func Members(t Type) []Type {
	switch typ := t.(type) {
	case TUnion:
		var result []Type
		for _, m := range typ.Types {
			result = append(result, Members(m)...)
		}
		return result
	case TNullable:
		return append(Members(typ.Inner), TNull{})
	case nil:
		return nil
	}
	return []Type{t}
}
