// Package scan walks a host token stream to collect the facts the inspection
// core needs: doc comments, namespaces, declaration names and assigned literals.
package scan

import (
	"strings"

	"github.com/funvibe/typesniff/internal/docblock"
	"github.com/funvibe/typesniff/internal/token"
)

// PrevDocBlock returns the doc comment ending right before ptr, skipping
// tokens of the given kinds (modifiers, attributes, whitespace).
func PrevDocBlock(s *token.Stream, ptr int, skip ...token.Kind) docblock.Block {
	closePtr, ok := s.FindPrevious(token.Not(token.Is(skip...)), ptr-1)
	if !ok || s.At(closePtr).Kind != token.DOC_COMMENT_CLOSE {
		return docblock.UndefinedDocBlock{}
	}
	openPtr, ok := s.FindPrevious(token.Is(token.DOC_COMMENT_OPEN), closePtr-1)
	if !ok {
		return docblock.UndefinedDocBlock{}
	}
	return docBlockFromTokens(s, openPtr, closePtr)
}

// NextDocBlock returns the doc comment starting right after ptr.
func NextDocBlock(s *token.Stream, ptr int, skip ...token.Kind) docblock.Block {
	openPtr, ok := s.FindNext(token.Not(token.Is(skip...)), ptr+1)
	if !ok || s.At(openPtr).Kind != token.DOC_COMMENT_OPEN {
		return docblock.UndefinedDocBlock{}
	}
	closePtr, ok := s.FindNext(token.Is(token.DOC_COMMENT_CLOSE), openPtr+1)
	if !ok {
		return docblock.UndefinedDocBlock{}
	}
	return docBlockFromTokens(s, openPtr, closePtr)
}

func docBlockFromTokens(s *token.Stream, openPtr, closePtr int) docblock.Block {
	var sb strings.Builder
	for _, tok := range s.Slice(openPtr, closePtr) {
		sb.WriteString(tok.Content)
	}
	return docblock.Parse(sb.String(), s.At(openPtr).Line)
}

// Namespace collects the name following the namespace keyword at ptr.
func Namespace(s *token.Stream, namespacePtr int) string {
	var sb strings.Builder
	for ptr := namespacePtr + 1; ptr < s.Len(); ptr++ {
		tok := s.At(ptr)
		if tok.Kind == token.SEMICOLON || tok.Kind == token.OPEN_CURLY {
			break
		}
		if tok.Kind == token.STRING || tok.Kind == token.NS_SEPARATOR {
			sb.WriteString(tok.Content)
		}
	}
	return sb.String()
}

// DeclarationName returns the first identifier or variable name at or after
// ptr, without a leading '$'.
func DeclarationName(s *token.Stream, ptr int) string {
	namePtr, ok := s.FindNext(token.Is(token.STRING, token.VARIABLE), ptr)
	if !ok {
		return ""
	}
	return strings.TrimPrefix(s.At(namePtr).Content, "$")
}

// AssignedLiteral classifies the last code token before the ';' that ends the
// declaration at ptr.
func AssignedLiteral(s *token.Stream, ptr int) token.LiteralKind {
	semiPtr, ok := s.FindNext(token.Is(token.SEMICOLON), ptr+1)
	if !ok {
		return token.LiteralNone
	}
	valuePtr, ok := s.FindPrevious(token.NonEmpty, semiPtr-1)
	if !ok || valuePtr <= ptr {
		return token.LiteralNone
	}

	switch s.At(valuePtr).Kind {
	case token.CONST, token.VARIABLE:
		return token.LiteralNone
	case token.NULL:
		return token.LiteralNull
	case token.TRUE, token.FALSE:
		return token.LiteralBool
	case token.LNUMBER:
		return token.LiteralInt
	case token.DNUMBER:
		return token.LiteralFloat
	case token.CONSTANT_ENCAPSED_STRING, token.END_HEREDOC:
		return token.LiteralString
	case token.CLOSE_SHORT_ARRAY:
		return token.LiteralArray
	case token.CLOSE_PARENTHESIS:
		if isLongArray(s, valuePtr) {
			return token.LiteralArray
		}
	}
	return token.LiteralOther
}

// isLongArray checks that the ')' at closePtr closes array( ... ).
func isLongArray(s *token.Stream, closePtr int) bool {
	depth := 0
	for ptr := closePtr; ptr >= 0; ptr-- {
		switch s.At(ptr).Kind {
		case token.CLOSE_PARENTHESIS:
			depth++
		case token.OPEN_PARENTHESIS:
			depth--
			if depth == 0 {
				prev, ok := s.FindPrevious(token.NonEmpty, ptr-1)
				return ok && s.At(prev).Kind == token.ARRAY
			}
		}
	}
	return false
}
