package typeparser

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	nullableToken
	pipeToken
	arraySuffixToken
	genericBlockToken
	shapeBlockToken
	groupBlockToken
	colonToken
	nameToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var nullableMatcher = parsly.NewToken(nullableToken, "Nullable", matcher.NewByte('?'))
var pipeMatcher = parsly.NewToken(pipeToken, "Pipe", matcher.NewByte('|'))
var arraySuffixMatcher = parsly.NewToken(arraySuffixToken, "ArraySuffix", matcher.NewFragment("[]"))
var genericBlockMatcher = parsly.NewToken(genericBlockToken, "Generic", matcher.NewBlock('<', '>', '\\'))
var shapeBlockMatcher = parsly.NewToken(shapeBlockToken, "Shape", matcher.NewBlock('{', '}', '\\'))
var groupBlockMatcher = parsly.NewToken(groupBlockToken, "Group", matcher.NewBlock('(', ')', '\\'))
var colonMatcher = parsly.NewToken(colonToken, "Colon", matcher.NewByte(':'))
var nameMatcher = parsly.NewToken(nameToken, "Name", &nameMatch{})

// nameMatch matches keywords, $this and namespaced class names.
type nameMatch struct{}

func (n *nameMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	pos := cursor.Pos
	if cursor.Input[pos] == '$' {
		pos++
	}
	if pos >= cursor.InputSize || !isNameStart(cursor.Input[pos]) {
		return 0
	}
	pos++
	for pos < cursor.InputSize && isNamePart(cursor.Input[pos]) {
		pos++
	}
	return pos - cursor.Pos
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '\\' || b >= 0x80
}

func isNamePart(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9') || b == '-'
}
