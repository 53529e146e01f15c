package typesystem

// Context carries what the caller knows about the enclosing class.
// Both fields may be nil; the engine never guesses them.
type Context struct {
	Class  *TClass
	Parent *TClass
}

// HasClass reports whether the enclosing class is known.
func (c Context) HasClass() bool {
	return c.Class != nil && c.Class.Name != ""
}

// ReplaceContextual replaces self, static and $this with the enclosing class and
// parent with the parent class, wherever the context provides them.
func ReplaceContextual(t Type, ctx Context) Type {
	if t == nil {
		return nil
	}
	switch typ := t.(type) {
	case TSelf, TStatic, TThis:
		if ctx.HasClass() {
			return *ctx.Class
		}
		return typ
	case TParent:
		if ctx.Parent != nil && ctx.Parent.Name != "" {
			return *ctx.Parent
		}
		return typ
	case TArray:
		if typ.Elem == nil {
			return typ
		}
		return TArray{Elem: ReplaceContextual(typ.Elem, ctx)}
	case TNullable:
		return NewNullable(ReplaceContextual(typ.Inner, ctx))
	case TUnion:
		newTypes := make([]Type, len(typ.Types))
		for i, m := range typ.Types {
			newTypes[i] = ReplaceContextual(m, ctx)
		}
		return NormalizeUnion(newTypes)
	default:
		return t
	}
}

// UnresolvedContextual returns the first contextual type in t that ctx
// cannot resolve, or nil.
func UnresolvedContextual(t Type, ctx Context) error {
	switch typ := t.(type) {
	case TSelf, TStatic, TThis:
		if !ctx.HasClass() {
			return &UnresolvedContextError{Type: typ}
		}
	case TParent:
		if ctx.Parent == nil || ctx.Parent.Name == "" {
			return &UnresolvedContextError{Type: typ}
		}
	case TArray:
		if typ.Elem != nil {
			return UnresolvedContextual(typ.Elem, ctx)
		}
	case TNullable:
		return UnresolvedContextual(typ.Inner, ctx)
	case TUnion:
		for _, m := range typ.Types {
			if err := UnresolvedContextual(m, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
