// Package typeparser turns raw type annotations, as found in doc comments and
// native type hints, into typesystem.Type values.
//
// Grammar, in precedence order:
//   - a leading '?' makes the whole expression nullable
//   - '|' separates union members; a null member lifts the union to nullable
//   - trailing '[]' wraps the preceding segment in an array, once per suffix
//   - array<T> and array<K, V> set the element type; deeper generics degrade
//     to a bare array
//   - callable(A): R and Closure(A): R keep only the callable kind; the
//     signature is consumed and ignored
//   - keywords are case-insensitive; anything else is a class name, verbatim
package typeparser

import (
	"strings"

	"github.com/funvibe/typesniff/internal/typesystem"
	"github.com/viant/parsly"
)

var keywords = map[string]typesystem.Type{
	"int":              typesystem.TInt{},
	"integer":          typesystem.TInt{},
	"positive-int":     typesystem.TInt{},
	"negative-int":     typesystem.TInt{},
	"bool":             typesystem.TBool{},
	"boolean":          typesystem.TBool{},
	"float":            typesystem.TFloat{},
	"double":           typesystem.TFloat{},
	"string":           typesystem.TString{},
	"class-string":     typesystem.TString{},
	"non-empty-string": typesystem.TString{},
	"numeric-string":   typesystem.TString{},
	"array":            typesystem.TArray{},
	"list":             typesystem.TArray{},
	"non-empty-array":  typesystem.TArray{},
	"non-empty-list":   typesystem.TArray{},
	"iterable":         typesystem.TIterable{},
	"callable":         typesystem.TCallable{},
	"closure":          typesystem.TClosure{},
	`\closure`:         typesystem.TClosure{},
	"mixed":            typesystem.TMixed{},
	"void":             typesystem.TVoid{},
	"never":            typesystem.TNever{},
	"null":             typesystem.TNull{},
	"true":             typesystem.TBoolLiteral{Value: true},
	"false":            typesystem.TBoolLiteral{Value: false},
	"self":             typesystem.TSelf{},
	"static":           typesystem.TStatic{},
	"parent":           typesystem.TParent{},
	"this":             typesystem.TThis{},
	"$this":            typesystem.TThis{},
	"object":           typesystem.TObject{},
	"resource":         typesystem.TResource{},
	"array-key":        typesystem.TUnion{Types: []typesystem.Type{typesystem.TInt{}, typesystem.TString{}}},
	"scalar": typesystem.TUnion{Types: []typesystem.Type{
		typesystem.TBool{}, typesystem.TFloat{}, typesystem.TInt{}, typesystem.TString{},
	}},
}

type parser struct {
	raw    string
	cursor *parsly.Cursor
}

// Parse parses a raw type expression. Malformed input yields a
// *typesystem.UnparsableTypeError; Parse never panics.
func Parse(raw string) (typesystem.Type, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, typesystem.NewUnparsableTypeError(raw, 0, "empty type")
	}
	p := newParser(text)
	nullable := p.cursor.MatchOne(nullableMatcher).Code == nullableToken
	t, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if nullable {
		return typesystem.NewNullable(t), nil
	}
	return t, nil
}

// ParseOrUndefined parses raw and degrades any failure to TUndefined.
func ParseOrUndefined(raw string) typesystem.Type {
	t, err := Parse(raw)
	if err != nil {
		return typesystem.TUndefined{}
	}
	return t
}

// ParseOptional parses a raw type that may be absent. A nil raw yields nil.
func ParseOptional(raw *string) typesystem.Type {
	if raw == nil {
		return nil
	}
	return ParseOrUndefined(*raw)
}

func newParser(text string) *parser {
	return &parser{raw: text, cursor: parsly.NewCursor("", []byte(text), 0)}
}

func (p *parser) atEnd() bool {
	return p.cursor.Pos >= p.cursor.InputSize
}

func (p *parser) fail(reason string) error {
	return typesystem.NewUnparsableTypeError(p.raw, p.cursor.Pos, reason)
}

func (p *parser) parseUnion() (typesystem.Type, error) {
	var members []typesystem.Type
	for {
		t, err := p.parseSegment()
		if err != nil {
			return nil, err
		}
		members = append(members, t)
		p.cursor.MatchOne(whitespaceMatcher)
		if p.atEnd() {
			break
		}
		if p.cursor.MatchOne(pipeMatcher).Code != pipeToken {
			return nil, p.fail("unexpected character")
		}
	}
	return typesystem.NormalizeUnion(members), nil
}

func (p *parser) parseSegment() (typesystem.Type, error) {
	p.cursor.MatchOne(whitespaceMatcher)
	if p.atEnd() {
		return nil, p.fail("expected type")
	}

	var base typesystem.Type
	matched := p.cursor.MatchAfterOptional(whitespaceMatcher, nameMatcher, groupBlockMatcher, nullableMatcher)
	switch matched.Code {
	case nameToken:
		t, err := p.resolveName(matched.Text(p.cursor))
		if err != nil {
			return nil, err
		}
		base = t
		if err := p.skipSignature(base); err != nil {
			return nil, err
		}
	case groupBlockToken:
		text := matched.Text(p.cursor)
		inner, err := parseGroup(text[1 : len(text)-1])
		if err != nil {
			return nil, p.fail("invalid group: " + err.Error())
		}
		base = inner
	case nullableToken:
		return nil, p.fail("'?' is only allowed at the start")
	default:
		return nil, p.fail("unexpected character")
	}

	if block := p.cursor.MatchOne(genericBlockMatcher); block.Code == genericBlockToken {
		text := block.Text(p.cursor)
		base = applyGeneric(base, text[1:len(text)-1])
	} else if shape := p.cursor.MatchOne(shapeBlockMatcher); shape.Code == shapeBlockToken {
		if _, ok := base.(typesystem.TArray); ok {
			base = typesystem.TArray{}
		}
	}

	for p.cursor.MatchOne(arraySuffixMatcher).Code == arraySuffixToken {
		base = typesystem.TArray{Elem: base}
	}
	return base, nil
}

// skipSignature consumes the parameter list and return type that may follow
// callable and Closure. Signatures are not modelled; the base type stands.
func (p *parser) skipSignature(base typesystem.Type) error {
	switch base.(type) {
	case typesystem.TCallable, typesystem.TClosure:
	default:
		return nil
	}
	if p.cursor.MatchOne(groupBlockMatcher).Code != groupBlockToken {
		return nil
	}
	pos := p.cursor.Pos
	if p.cursor.MatchAfterOptional(whitespaceMatcher, colonMatcher).Code != colonToken {
		p.cursor.Pos = pos
		return nil
	}
	p.cursor.MatchOne(whitespaceMatcher)
	p.cursor.MatchOne(nullableMatcher)
	if _, err := p.parseSegment(); err != nil {
		return err
	}
	return nil
}

func (p *parser) resolveName(name string) (typesystem.Type, error) {
	if t, ok := keywords[strings.ToLower(name)]; ok {
		return t, nil
	}
	switch {
	case strings.HasPrefix(name, "$"):
		return nil, p.fail("unexpected variable " + name)
	case strings.HasSuffix(name, `\`), strings.Contains(name, `\\`):
		return nil, p.fail("invalid namespace separator in " + name)
	case strings.Contains(name, "-"):
		return nil, p.fail("unknown pseudo type " + name)
	}
	return typesystem.TClass{Name: name}, nil
}

// parseGroup parses a parenthesized sub-expression. '?' is not allowed in it.
func parseGroup(text string) (typesystem.Type, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, typesystem.NewUnparsableTypeError(text, 0, "empty group")
	}
	return newParser(text).parseUnion()
}

// applyGeneric resolves array<T> and array<K, V> to a typed array. Anything
// beyond one level of simple element typing degrades to a bare array; generic
// arguments of other types are ignored.
func applyGeneric(base typesystem.Type, args string) typesystem.Type {
	if _, ok := base.(typesystem.TArray); !ok {
		return base
	}
	parts := splitTopLevel(args)
	if len(parts) == 0 || len(parts) > 2 {
		return typesystem.TArray{}
	}
	elemText := strings.TrimSpace(parts[len(parts)-1])
	if strings.ContainsAny(elemText, "<{(") {
		return typesystem.TArray{}
	}
	elem, err := Parse(elemText)
	if err != nil {
		return typesystem.TArray{}
	}
	if _, ok := elem.(typesystem.TMixed); ok {
		return typesystem.TArray{}
	}
	return typesystem.TArray{Elem: elem}
}

func splitTopLevel(text string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '<', '{', '(':
			depth++
		case '>', '}', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, text[start:i])
				start = i + 1
			}
		}
	}
	if strings.TrimSpace(text[start:]) != "" {
		parts = append(parts, text[start:])
	}
	return parts
}
