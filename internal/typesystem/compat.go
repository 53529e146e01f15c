package typesystem

import "strings"

// Relation describes how a documented type relates to a native one.
type Relation int

const (
	RelationUnknown Relation = iota // at least one side is undefined
	RelationEquivalent
	RelationNarrower // doc is a strict subset of native
	RelationWider    // native is a strict subset of doc
	RelationDisjoint
)

func (r Relation) String() string {
	switch r {
	case RelationEquivalent:
		return "equivalent"
	case RelationNarrower:
		return "narrower"
	case RelationWider:
		return "wider"
	case RelationDisjoint:
		return "disjoint"
	}
	return "unknown"
}

// Equivalent reports whether doc and native denote the same set of values.
// Two undefined types are equivalent; an undefined type is equivalent to nothing else.
// self, static and $this are equivalent to each other, and to a class only when
// ctx names the enclosing class.
func Equivalent(doc, native Type, ctx Context) bool {
	if IsUndefined(doc) || IsUndefined(native) {
		return IsUndefined(doc) && IsUndefined(native)
	}
	return Equal(Canonical(doc, ctx), Canonical(native, ctx))
}

// ImplicitNullable returns the effective native type of a parameter.
func ImplicitNullable(native Type, defaultNull bool) Type {
	if !defaultNull || IsUndefined(native) {
		return native
	}
	return NewNullable(native)
}

// IsRedundant reports whether doc adds nothing to native: doc is absent or
// undefined, or both are equivalent.
func IsRedundant(doc, native Type, ctx Context) bool {
	return IsUndefined(doc) || Equivalent(doc, native, ctx)
}

// IsNarrower reports whether doc denotes a strict subset of native's values.
// An undefined doc is narrower than any concrete native type. A concrete doc
// narrows an absent (nil) native type, but never an explicit TUndefined, which
// means "nothing can be stated" rather than "not declared".
func IsNarrower(doc, native Type, ctx Context) bool {
	if IsUndefined(doc) {
		return !IsUndefined(native)
	}
	if native == nil {
		return true
	}
	if IsUndefined(native) {
		return false
	}
	d := Canonical(doc, ctx)
	n := Canonical(native, ctx)
	if Equal(d, n) {
		return false
	}
	return covers(n, d)
}

// Covers reports whether every value of narrow is also a value of wide.
// It is reflexive. Undefined types cover and are covered by nothing.
func Covers(wide, narrow Type, ctx Context) bool {
	if IsUndefined(wide) || IsUndefined(narrow) {
		return false
	}
	return covers(Canonical(wide, ctx), Canonical(narrow, ctx))
}

// Relate summarises the three judgments for a doc/native pair.
func Relate(doc, native Type, ctx Context) Relation {
	switch {
	case IsUndefined(doc) || IsUndefined(native):
		return RelationUnknown
	case IsRedundant(doc, native, ctx):
		return RelationEquivalent
	case IsNarrower(doc, native, ctx):
		return RelationNarrower
	case Covers(doc, native, ctx):
		return RelationWider
	}
	return RelationDisjoint
}

// Canonical resolves contextual types through ctx and folds t into the form
// used for comparison: lower-case class names, \Closure as TClosure, static and
// $this as self, mixed[] as array, unions renormalized.
func Canonical(t Type, ctx Context) Type {
	return fold(ReplaceContextual(t, ctx))
}

func fold(t Type) Type {
	switch typ := t.(type) {
	case TStatic, TThis:
		return TSelf{}
	case TClass:
		name := strings.ToLower(typ.Name)
		if name == `\closure` || name == "closure" {
			return TClosure{}
		}
		return TClass{Name: name}
	case TArray:
		if typ.Elem == nil {
			return typ
		}
		elem := fold(typ.Elem)
		if _, ok := elem.(TMixed); ok {
			return TArray{}
		}
		return TArray{Elem: elem}
	case TNullable:
		return NewNullable(fold(typ.Inner))
	case TUnion:
		members := make([]Type, len(typ.Types))
		for i, m := range typ.Types {
			members[i] = fold(m)
		}
		return NormalizeUnion(members)
	}
	return t
}

// covers expects canonical operands.
func covers(wide, narrow Type) bool {
	if Equal(wide, narrow) {
		return true
	}

	switch n := narrow.(type) {
	case TNever:
		return true
	case TUnion:
		for _, m := range n.Types {
			if !covers(wide, m) {
				return false
			}
		}
		return true
	case TNullable:
		return covers(wide, TNull{}) && covers(wide, n.Inner)
	}

	switch w := wide.(type) {
	case TMixed:
		return narrow.Tag() != TagVoid
	case TNullable:
		if _, ok := narrow.(TNull); ok {
			return true
		}
		return covers(w.Inner, narrow)
	case TUnion:
		for _, m := range w.Types {
			if covers(m, narrow) {
				return true
			}
		}
		return false
	case TBool:
		_, ok := narrow.(TBoolLiteral)
		return ok
	case TArray:
		n, ok := narrow.(TArray)
		if !ok {
			return false
		}
		if w.Elem == nil {
			return true
		}
		return n.Elem != nil && covers(w.Elem, n.Elem)
	case TIterable:
		switch narrow.(type) {
		case TArray, TClass:
			return true
		}
	case TCallable:
		switch narrow.(type) {
		case TClosure, TClass:
			return true
		}
	case TObject:
		switch narrow.(type) {
		case TClass, TClosure, TSelf, TParent:
			return true
		}
	}
	return false
}
