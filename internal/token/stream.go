package token

// Predicate selects tokens during a search.
type Predicate func(Token) bool

// Is matches tokens of any of the given kinds.
func Is(kinds ...Kind) Predicate {
	return func(t Token) bool {
		for _, k := range kinds {
			if t.Kind == k {
				return true
			}
		}
		return false
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(t Token) bool { return !p(t) }
}

// NonEmpty matches tokens that carry code.
func NonEmpty(t Token) bool { return !t.IsEmpty() }

// Stream is an immutable token sequence with search primitives.
type Stream struct {
	tokens []Token
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at ptr; out of range yields an ILLEGAL token.
func (s *Stream) At(ptr int) Token {
	if ptr < 0 || ptr >= len(s.tokens) {
		return Token{Kind: ILLEGAL}
	}
	return s.tokens[ptr]
}

// FindNext returns the first index >= from matching p.
func (s *Stream) FindNext(p Predicate, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s.tokens); i++ {
		if p(s.tokens[i]) {
			return i, true
		}
	}
	return -1, false
}

// FindPrevious returns the last index <= from matching p.
func (s *Stream) FindPrevious(p Predicate, from int) (int, bool) {
	if from >= len(s.tokens) {
		from = len(s.tokens) - 1
	}
	for i := from; i >= 0; i-- {
		if p(s.tokens[i]) {
			return i, true
		}
	}
	return -1, false
}

// Slice returns the tokens in [from, to].
func (s *Stream) Slice(from, to int) []Token {
	if from < 0 {
		from = 0
	}
	if to >= len(s.tokens) {
		to = len(s.tokens) - 1
	}
	if from > to {
		return nil
	}
	return s.tokens[from : to+1]
}
