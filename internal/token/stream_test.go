package token

import (
	"testing"

	"github.com/funvibe/typesniff/internal/typesystem"
)

func TestStreamSearch(t *testing.T) {
	s := NewStream([]Token{
		{Kind: VARIABLE, Content: "$this"},
		{Kind: WHITESPACE, Content: " "},
		{Kind: OBJECT_OPERATOR, Content: "->"},
		{Kind: COMMENT, Content: "// x"},
		{Kind: STRING, Content: "name"},
		{Kind: SEMICOLON, Content: ";"},
	})

	if i, ok := s.FindNext(Is(STRING, SEMICOLON), 0); !ok || i != 4 {
		t.Errorf("FindNext = %d, %v", i, ok)
	}
	if i, ok := s.FindPrevious(NonEmpty, 3); !ok || i != 2 {
		t.Errorf("FindPrevious = %d, %v", i, ok)
	}
	if _, ok := s.FindNext(Is(RETURN), 0); ok {
		t.Error("RETURN is not in the stream")
	}
	if i, ok := s.FindNext(Not(Is(VARIABLE, WHITESPACE)), -5); !ok || i != 2 {
		t.Errorf("negative start should clamp, got %d, %v", i, ok)
	}
	if i, ok := s.FindPrevious(Is(VARIABLE), 100); !ok || i != 0 {
		t.Errorf("large start should clamp, got %d, %v", i, ok)
	}
	if s.At(-1).Kind != ILLEGAL || s.At(6).Kind != ILLEGAL {
		t.Error("out of range tokens must be ILLEGAL")
	}
	if !s.At(0).IsThis() || s.At(4).IsThis() {
		t.Error("IsThis mismatch")
	}
	if got := len(s.Slice(2, 4)); got != 3 {
		t.Errorf("Slice length = %d, want 3", got)
	}
	if s.Slice(4, 2) != nil {
		t.Error("inverted slice should be empty")
	}
}

func TestValueType(t *testing.T) {
	tests := []struct {
		kind LiteralKind
		want typesystem.Type
		ok   bool
	}{
		{LiteralNull, typesystem.TNull{}, true},
		{LiteralBool, typesystem.TBool{}, true},
		{LiteralInt, typesystem.TInt{}, true},
		{LiteralFloat, typesystem.TFloat{}, true},
		{LiteralString, typesystem.TString{}, true},
		{LiteralArray, typesystem.TArray{}, true},
		{LiteralOther, nil, false},
		{LiteralNone, nil, false},
	}
	for _, tt := range tests {
		got, ok := ValueType(tt.kind)
		if ok != tt.ok || !typesystem.Equal(got, tt.want) {
			t.Errorf("ValueType(%s) = %v, %v; want %v, %v", tt.kind, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseLiteralKind(t *testing.T) {
	for _, name := range []string{"null", "bool", "int", "float", "string", "array", "other", "none"} {
		kind, ok := ParseLiteralKind(name)
		if !ok {
			t.Errorf("ParseLiteralKind(%q) failed", name)
			continue
		}
		if kind.String() != name {
			t.Errorf("ParseLiteralKind(%q).String() = %q", name, kind.String())
		}
	}
	if kind, ok := ParseLiteralKind(""); !ok || kind != LiteralNone {
		t.Error("empty name means no literal")
	}
	if _, ok := ParseLiteralKind("regex"); ok {
		t.Error("unknown literal names must be rejected")
	}
}
