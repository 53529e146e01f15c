package docblock

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	tagNameToken
	variableToken
	typeExprToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var tagNameMatcher = parsly.NewToken(tagNameToken, "TagName", &tagNameMatch{})
var variableMatcher = parsly.NewToken(variableToken, "Variable", &variableMatch{})
var typeExprMatcher = parsly.NewToken(typeExprToken, "TypeExpr", &typeExprMatch{})

// tagNameMatch matches @name, @psalm-name or @ORM\Column.
type tagNameMatch struct{}

func (t *tagNameMatch) Match(cursor *parsly.Cursor) int {
	pos := cursor.Pos
	if pos >= cursor.InputSize || cursor.Input[pos] != '@' {
		return 0
	}
	pos++
	start := pos
	for pos < cursor.InputSize {
		b := cursor.Input[pos]
		if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-' || b == '_' || b == '\\' {
			pos++
			continue
		}
		break
	}
	if pos == start {
		return 0
	}
	return pos - cursor.Pos
}

// variableMatch matches $name, &$name and ...$name.
type variableMatch struct{}

func (v *variableMatch) Match(cursor *parsly.Cursor) int {
	pos := cursor.Pos
	input := cursor.Input
	if pos < cursor.InputSize && input[pos] == '&' {
		pos++
	}
	if pos+3 <= cursor.InputSize && string(input[pos:pos+3]) == "..." {
		pos += 3
	}
	if pos >= cursor.InputSize || input[pos] != '$' {
		return 0
	}
	pos++
	start := pos
	for pos < cursor.InputSize {
		b := input[pos]
		if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_' || b >= 0x80 {
			pos++
			continue
		}
		break
	}
	if pos == start {
		return 0
	}
	return pos - cursor.Pos
}

// typeExprMatch consumes a type expression up to the first whitespace outside
// of brackets, so array<int, string> stays one token. Whitespace after a
// callable return colon is part of the expression.
type typeExprMatch struct{}

func (t *typeExprMatch) Match(cursor *parsly.Cursor) int {
	depth := 0
	pos := cursor.Pos
	for ; pos < cursor.InputSize; pos++ {
		b := cursor.Input[pos]
		switch b {
		case '<', '{', '(':
			depth++
		case '>', '}', ')':
			if depth > 0 {
				depth--
			}
		case ' ', '\t', '\r', '\n':
			if depth > 0 {
				continue
			}
			if pos > cursor.Pos && cursor.Input[pos-1] == ':' && (b == ' ' || b == '\t') {
				// callable(int): string
				for pos+1 < cursor.InputSize && (cursor.Input[pos+1] == ' ' || cursor.Input[pos+1] == '\t') {
					pos++
				}
				continue
			}
			return pos - cursor.Pos
		}
	}
	// unbalanced brackets take the rest of the line; the type parser reports it
	return pos - cursor.Pos
}
