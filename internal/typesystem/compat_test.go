package typesystem

import (
	"testing"
)

var (
	intT     = TInt{}
	strT     = TString{}
	intOrStr = TUnion{Types: []Type{TInt{}, TString{}}}
	noCtx    = Context{}
)

func TestEquivalent(t *testing.T) {
	foo := &TClass{Name: `\App\Foo`}

	tests := []struct {
		name   string
		doc    Type
		native Type
		ctx    Context
		want   bool
	}{
		{"same scalar", intT, intT, noCtx, true},
		{"different scalar", intT, strT, noCtx, false},
		{"reordered union", TUnion{Types: []Type{strT, intT}}, intOrStr, noCtx, true},
		{"nullable vs union with null", TNullable{Inner: intT}, TUnion{Types: []Type{intT, TNull{}}}, noCtx, true},
		{"class case insensitive", TClass{Name: `\App\Foo`}, TClass{Name: `\app\foo`}, noCtx, true},
		{"closure class", TClosure{}, TClass{Name: `\closure`}, noCtx, true},
		{"self static this", TThis{}, TStatic{}, noCtx, true},
		{"self vs class without context", TSelf{}, *foo, noCtx, false},
		{"self vs class with context", TStatic{}, TClass{Name: `\App\FOO`}, Context{Class: foo}, true},
		{"parent without context", TParent{}, TParent{}, noCtx, true},
		{"both undefined", TUndefined{}, nil, noCtx, true},
		{"undefined vs concrete", TUndefined{}, intT, noCtx, false},
		{"mixed array folds", TArray{Elem: TMixed{}}, TArray{}, noCtx, true},
		{"typed vs bare array", TArray{Elem: intT}, TArray{}, noCtx, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equivalent(tt.doc, tt.native, tt.ctx); got != tt.want {
				t.Errorf("Equivalent(%v, %v) = %v, want %v", tt.doc, tt.native, got, tt.want)
			}
			if got := Equivalent(tt.native, tt.doc, tt.ctx); got != tt.want {
				t.Errorf("Equivalent is not symmetric for %v, %v", tt.doc, tt.native)
			}
		})
	}
}

func TestImplicitNullableDefaultNull(t *testing.T) {
	doc := TNullable{Inner: intT}
	if Equivalent(doc, intT, noCtx) {
		t.Fatalf("?int should not equal int")
	}
	if !Equivalent(doc, ImplicitNullable(intT, true), noCtx) {
		t.Errorf("?int should equal int with null default")
	}
	if Equivalent(doc, ImplicitNullable(intT, false), noCtx) {
		t.Errorf("no default, no implicit nullability")
	}
	if !IsUndefined(ImplicitNullable(TUndefined{}, true)) {
		t.Errorf("undefined native stays undefined")
	}
}

func TestIsRedundant(t *testing.T) {
	natives := []Type{nil, TUndefined{}, intT, intOrStr, TArray{}}
	for _, n := range natives {
		if !IsRedundant(nil, n, noCtx) {
			t.Errorf("absent doc must be redundant for native %v", n)
		}
		if !IsRedundant(TUndefined{}, n, noCtx) {
			t.Errorf("undefined doc must be redundant for native %v", n)
		}
	}
	if !IsRedundant(intT, intT, noCtx) {
		t.Errorf("int/int should be redundant")
	}
	if IsRedundant(TArray{Elem: intT}, TArray{}, noCtx) {
		t.Errorf("int[]/array should not be redundant")
	}
	if IsRedundant(intT, nil, noCtx) {
		t.Errorf("doc with absent native should not be redundant")
	}
}

func TestIsNarrower(t *testing.T) {
	foo := TClass{Name: `\App\Foo`}

	tests := []struct {
		name   string
		doc    Type
		native Type
		want   bool
	}{
		{"undefined doc vs concrete", TUndefined{}, intT, true},
		{"undefined doc vs undefined", TUndefined{}, TUndefined{}, false},
		{"concrete vs undefined", intT, TUndefined{}, false},
		{"concrete vs absent", intT, nil, true},
		{"concrete vs mixed", foo, TMixed{}, true},
		{"typed array vs bare array", TArray{Elem: intT}, TArray{}, true},
		{"bare array vs typed array", TArray{}, TArray{Elem: intT}, false},
		{"array vs iterable", TArray{Elem: strT}, TIterable{}, true},
		{"class vs iterable", foo, TIterable{}, true},
		{"closure vs callable", TClosure{}, TCallable{}, true},
		{"class vs callable", foo, TCallable{}, true},
		{"callable vs closure", TCallable{}, TClass{Name: `\Closure`}, false},
		{"member vs union", intT, intOrStr, true},
		{"nullable member vs nullable union", TNullable{Inner: intT}, TNullable{Inner: intOrStr}, true},
		{"inner vs nullable", intT, TNullable{Inner: intT}, true},
		{"nullable vs inner", TNullable{Inner: intT}, intT, false},
		{"false vs bool", TBoolLiteral{Value: false}, TBool{}, true},
		{"int vs float", intT, TFloat{}, false},
		{"class vs object", foo, TObject{}, true},
		{"this vs self", TThis{}, TSelf{}, false},
		{"equal types", intOrStr, TUnion{Types: []Type{strT, intT}}, false},
		{"disjoint", strT, intT, false},
		{"nested element narrowing", TArray{Elem: TArray{Elem: intT}}, TArray{Elem: TArray{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNarrower(tt.doc, tt.native, noCtx); got != tt.want {
				t.Errorf("IsNarrower(%v, %v) = %v, want %v", tt.doc, tt.native, got, tt.want)
			}
		})
	}
}

func TestRelate(t *testing.T) {
	tests := []struct {
		doc, native Type
		want        Relation
	}{
		{intT, intT, RelationEquivalent},
		{TArray{Elem: intT}, TArray{}, RelationNarrower},
		{TCallable{}, TClosure{}, RelationWider},
		{strT, intT, RelationDisjoint},
		{nil, intT, RelationUnknown},
	}
	for _, tt := range tests {
		if got := Relate(tt.doc, tt.native, noCtx); got != tt.want {
			t.Errorf("Relate(%v, %v) = %s, want %s", tt.doc, tt.native, got, tt.want)
		}
	}
}

func TestCoversIsReflexive(t *testing.T) {
	types := []Type{
		intT, strT, intOrStr, TArray{}, TArray{Elem: intT}, TNullable{Inner: intT},
		TSelf{}, TParent{}, TClosure{}, TClass{Name: "Foo"}, TVoid{}, TMixed{},
	}
	for _, typ := range types {
		if !Covers(typ, typ, noCtx) {
			t.Errorf("Covers(%v, %v) should be true", typ, typ)
		}
	}
	if Covers(TUndefined{}, TUndefined{}, noCtx) {
		t.Errorf("undefined covers nothing")
	}
}
