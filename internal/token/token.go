// Package token describes the token stream a host tokenizer hands over, and a
// cursor to search it.
package token

// Kind is the kind of a host token.
type Kind int

const (
	ILLEGAL Kind = iota
	WHITESPACE
	COMMENT
	DOC_COMMENT_OPEN
	DOC_COMMENT_CLOSE
	DOC_COMMENT_STRING
	DOC_COMMENT_TAG
	DOC_COMMENT_STAR
	DOC_COMMENT_WHITESPACE
	NAMESPACE
	NS_SEPARATOR
	CONST
	VARIABLE
	STRING
	NULL
	TRUE
	FALSE
	LNUMBER
	DNUMBER
	CONSTANT_ENCAPSED_STRING
	START_HEREDOC
	END_HEREDOC
	OPEN_SHORT_ARRAY
	CLOSE_SHORT_ARRAY
	ARRAY
	OPEN_PARENTHESIS
	CLOSE_PARENTHESIS
	OPEN_CURLY
	CLOSE_CURLY
	SEMICOLON
	EQUAL
	RETURN
	OBJECT_OPERATOR
	DOUBLE_COLON
	CONCAT
	FUNCTION
	PUBLIC
	PROTECTED
	PRIVATE
	STATIC
	ABSTRACT
	FINAL
	READONLY
	ATTRIBUTE
)

var kindNames = map[Kind]string{
	ILLEGAL:                  "ILLEGAL",
	WHITESPACE:               "WHITESPACE",
	COMMENT:                  "COMMENT",
	DOC_COMMENT_OPEN:         "DOC_COMMENT_OPEN",
	DOC_COMMENT_CLOSE:        "DOC_COMMENT_CLOSE",
	DOC_COMMENT_STRING:       "DOC_COMMENT_STRING",
	DOC_COMMENT_TAG:          "DOC_COMMENT_TAG",
	DOC_COMMENT_STAR:         "DOC_COMMENT_STAR",
	DOC_COMMENT_WHITESPACE:   "DOC_COMMENT_WHITESPACE",
	NAMESPACE:                "NAMESPACE",
	NS_SEPARATOR:             "NS_SEPARATOR",
	CONST:                    "CONST",
	VARIABLE:                 "VARIABLE",
	STRING:                   "STRING",
	NULL:                     "NULL",
	TRUE:                     "TRUE",
	FALSE:                    "FALSE",
	LNUMBER:                  "LNUMBER",
	DNUMBER:                  "DNUMBER",
	CONSTANT_ENCAPSED_STRING: "CONSTANT_ENCAPSED_STRING",
	START_HEREDOC:            "START_HEREDOC",
	END_HEREDOC:              "END_HEREDOC",
	OPEN_SHORT_ARRAY:         "OPEN_SHORT_ARRAY",
	CLOSE_SHORT_ARRAY:        "CLOSE_SHORT_ARRAY",
	ARRAY:                    "ARRAY",
	OPEN_PARENTHESIS:         "OPEN_PARENTHESIS",
	CLOSE_PARENTHESIS:        "CLOSE_PARENTHESIS",
	OPEN_CURLY:               "OPEN_CURLY",
	CLOSE_CURLY:              "CLOSE_CURLY",
	SEMICOLON:                "SEMICOLON",
	EQUAL:                    "EQUAL",
	RETURN:                   "RETURN",
	OBJECT_OPERATOR:          "OBJECT_OPERATOR",
	DOUBLE_COLON:             "DOUBLE_COLON",
	CONCAT:                   "CONCAT",
	FUNCTION:                 "FUNCTION",
	PUBLIC:                   "PUBLIC",
	PROTECTED:                "PROTECTED",
	PRIVATE:                  "PRIVATE",
	STATIC:                   "STATIC",
	ABSTRACT:                 "ABSTRACT",
	FINAL:                    "FINAL",
	READONLY:                 "READONLY",
	ATTRIBUTE:                "ATTRIBUTE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one token of the host stream.
type Token struct {
	Kind    Kind
	Content string
	Line    int
}

// IsEmpty reports whether the token carries no code: whitespace and comments.
func (t Token) IsEmpty() bool {
	switch t.Kind {
	case WHITESPACE, COMMENT, DOC_COMMENT_OPEN, DOC_COMMENT_CLOSE, DOC_COMMENT_STRING,
		DOC_COMMENT_TAG, DOC_COMMENT_STAR, DOC_COMMENT_WHITESPACE:
		return true
	}
	return false
}

// IsThis reports whether the token is the $this variable.
func (t Token) IsThis() bool {
	return t.Kind == VARIABLE && t.Content == "$this"
}
