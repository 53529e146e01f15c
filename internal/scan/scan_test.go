package scan

import (
	"reflect"
	"testing"

	"github.com/funvibe/typesniff/internal/token"
	"github.com/funvibe/typesniff/internal/typesystem"
)

func tok(kind token.Kind, content string) token.Token {
	return token.Token{Kind: kind, Content: content, Line: 1}
}

var ws = tok(token.WHITESPACE, " ")

// constDecl builds `const NAME = <value>;` and returns the stream.
func constDecl(value ...token.Token) *token.Stream {
	tokens := []token.Token{
		tok(token.CONST, "const"), ws, tok(token.STRING, "NAME"), ws, tok(token.EQUAL, "="), ws,
	}
	tokens = append(tokens, value...)
	tokens = append(tokens, tok(token.SEMICOLON, ";"))
	return token.NewStream(tokens)
}

func TestAssignedLiteral(t *testing.T) {
	tests := []struct {
		name  string
		value []token.Token
		want  token.LiteralKind
	}{
		{"null", []token.Token{tok(token.NULL, "null")}, token.LiteralNull},
		{"true", []token.Token{tok(token.TRUE, "true")}, token.LiteralBool},
		{"false", []token.Token{tok(token.FALSE, "FALSE")}, token.LiteralBool},
		{"int", []token.Token{tok(token.LNUMBER, "42")}, token.LiteralInt},
		{"float", []token.Token{tok(token.DNUMBER, "4.2")}, token.LiteralFloat},
		{"string", []token.Token{tok(token.CONSTANT_ENCAPSED_STRING, "'a'")}, token.LiteralString},
		{"heredoc", []token.Token{tok(token.START_HEREDOC, "<<<EOT"), tok(token.END_HEREDOC, "EOT")}, token.LiteralString},
		{"short array", []token.Token{tok(token.OPEN_SHORT_ARRAY, "["), tok(token.CLOSE_SHORT_ARRAY, "]")}, token.LiteralArray},
		{"long array", []token.Token{
			tok(token.ARRAY, "array"), tok(token.OPEN_PARENTHESIS, "("), tok(token.LNUMBER, "1"),
			tok(token.STRING, ","), tok(token.LNUMBER, "2"), tok(token.CLOSE_PARENTHESIS, ")"),
		}, token.LiteralArray},
		{"function call", []token.Token{
			tok(token.STRING, "foo"), tok(token.OPEN_PARENTHESIS, "("), tok(token.CLOSE_PARENTHESIS, ")"),
		}, token.LiteralOther},
		{"class constant", []token.Token{
			tok(token.STRING, "Foo"), tok(token.DOUBLE_COLON, "::"), tok(token.STRING, "BAR"),
		}, token.LiteralOther},
		{"trailing comment", []token.Token{tok(token.LNUMBER, "1"), ws, tok(token.COMMENT, "/* x */")}, token.LiteralInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignedLiteral(constDecl(tt.value...), 0)
			if got != tt.want {
				t.Errorf("AssignedLiteral() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAssignedLiteralWithoutValue(t *testing.T) {
	prop := token.NewStream([]token.Token{
		tok(token.PUBLIC, "public"), ws, tok(token.VARIABLE, "$x"), tok(token.SEMICOLON, ";"),
	})
	if got := AssignedLiteral(prop, 2); got != token.LiteralNone {
		t.Errorf("expected none, got %s", got)
	}
	noSemicolon := token.NewStream([]token.Token{tok(token.CONST, "const"), ws, tok(token.STRING, "A")})
	if got := AssignedLiteral(noSemicolon, 0); got != token.LiteralNone {
		t.Errorf("expected none, got %s", got)
	}
	if typ, ok := token.ValueType(token.LiteralOther); ok || typ != nil {
		t.Errorf("other literal must not be inferable")
	}
	if typ, ok := token.ValueType(token.LiteralArray); !ok || !typesystem.Equal(typ, typesystem.TArray{}) {
		t.Errorf("array literal infers a bare array, got %v", typ)
	}
}

func TestPrevDocBlock(t *testing.T) {
	stream := token.NewStream([]token.Token{
		{Kind: token.DOC_COMMENT_OPEN, Content: "/**", Line: 3},
		{Kind: token.DOC_COMMENT_WHITESPACE, Content: "\n ", Line: 3},
		{Kind: token.DOC_COMMENT_STAR, Content: "*", Line: 4},
		{Kind: token.DOC_COMMENT_TAG, Content: " @var", Line: 4},
		{Kind: token.DOC_COMMENT_STRING, Content: " int[]", Line: 4},
		{Kind: token.DOC_COMMENT_WHITESPACE, Content: "\n ", Line: 4},
		{Kind: token.DOC_COMMENT_CLOSE, Content: "*/", Line: 5},
		{Kind: token.WHITESPACE, Content: "\n    ", Line: 5},
		{Kind: token.PUBLIC, Content: "public", Line: 6},
		{Kind: token.WHITESPACE, Content: " ", Line: 6},
		{Kind: token.CONST, Content: "const", Line: 6},
	})

	block := PrevDocBlock(stream, 10, token.WHITESPACE, token.PUBLIC)
	if !block.IsDefined() {
		t.Fatalf("expected a doc block")
	}
	tags := block.TagsByName("var")
	if len(tags) != 1 {
		t.Fatalf("expected one @var tag, got %d", len(tags))
	}
	if tags[0].Line != 4 {
		t.Errorf("tag line = %d, want 4", tags[0].Line)
	}
	if !typesystem.Equal(tags[0].Type, typesystem.TArray{Elem: typesystem.TInt{}}) {
		t.Errorf("tag type = %v", tags[0].Type)
	}

	if PrevDocBlock(stream, 10, token.WHITESPACE).IsDefined() {
		t.Errorf("public is not skipped, no doc block expected")
	}
	if !NextDocBlock(stream, -1).IsDefined() {
		t.Errorf("expected next doc block from the start")
	}
}

func TestNamespaceAndDeclarationName(t *testing.T) {
	stream := token.NewStream([]token.Token{
		tok(token.NAMESPACE, "namespace"), ws, tok(token.STRING, "App"), tok(token.NS_SEPARATOR, `\`),
		tok(token.STRING, "Model"), tok(token.SEMICOLON, ";"), ws,
		tok(token.PRIVATE, "private"), ws, tok(token.VARIABLE, "$name"), tok(token.SEMICOLON, ";"),
	})
	if got := Namespace(stream, 0); got != `App\Model` {
		t.Errorf("Namespace() = %q", got)
	}
	if got := DeclarationName(stream, 7); got != "name" {
		t.Errorf("DeclarationName() = %q", got)
	}
}

// body wraps tokens in braces; open is index 0, close is the last index.
func body(tokens ...token.Token) (*token.Stream, int, int) {
	all := append([]token.Token{tok(token.OPEN_CURLY, "{")}, tokens...)
	all = append(all, tok(token.CLOSE_CURLY, "}"))
	return token.NewStream(all), 0, len(all) - 1
}

func TestBasicGetterPropName(t *testing.T) {
	this := tok(token.VARIABLE, "$this")
	arrow := tok(token.OBJECT_OPERATOR, "->")
	semi := tok(token.SEMICOLON, ";")
	ret := tok(token.RETURN, "return")

	s, open, close := body(ws, ret, ws, this, arrow, tok(token.STRING, "name"), semi, ws)
	if prop, ok := BasicGetterPropName(s, open, close); !ok || prop != "name" {
		t.Errorf("expected getter of name, got %q %v", prop, ok)
	}

	s, open, close = body(ret, tok(token.VARIABLE, "$that"), arrow, tok(token.STRING, "name"), semi)
	if _, ok := BasicGetterPropName(s, open, close); ok {
		t.Errorf("$that is not $this")
	}

	s, open, close = body(ret, this, arrow, tok(token.STRING, "name"), semi, ret, tok(token.NULL, "null"), semi)
	if _, ok := BasicGetterPropName(s, open, close); ok {
		t.Errorf("extra statements are not a basic getter")
	}

	s, open, close = body(ret, this, arrow, tok(token.STRING, "name"))
	if _, ok := BasicGetterPropName(s, open, close); ok {
		t.Errorf("incomplete sequence is not a basic getter")
	}
}

func TestThisMethodCallsAndAssignments(t *testing.T) {
	this := tok(token.VARIABLE, "$this")
	arrow := tok(token.OBJECT_OPERATOR, "->")
	semi := tok(token.SEMICOLON, ";")
	eq := tok(token.EQUAL, "=")
	open := tok(token.OPEN_PARENTHESIS, "(")
	closeParen := tok(token.CLOSE_PARENTHESIS, ")")

	s, o, c := body(
		this, arrow, tok(token.STRING, "load"), open, closeParen, semi,
		this, arrow, tok(token.STRING, "a"), ws, eq, ws, tok(token.LNUMBER, "1"), semi,
		this, arrow, tok(token.STRING, "b"), ws, eq, ws, tok(token.NULL, "null"), semi,
		this, arrow, tok(token.STRING, "c"), eq, tok(token.NULL, "null"), tok(token.STRING, "==="), tok(token.VARIABLE, "$x"), semi,
		this, arrow, tok(token.STRING, "load"), open, closeParen, semi,
		this, arrow, tok(token.STRING, "a"), eq, tok(token.LNUMBER, "2"), semi,
	)

	if got := ThisMethodCalls(s, o, c); !reflect.DeepEqual(got, []string{"load"}) {
		t.Errorf("ThisMethodCalls() = %v", got)
	}
	if got := NonNullAssignedProps(s, o, c); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("NonNullAssignedProps() = %v", got)
	}
}
