package scan

import (
	"github.com/funvibe/typesniff/internal/token"
)

// getterState is a state of the basic getter matcher.
type getterState int

const (
	expectReturn getterState = iota
	expectThis
	expectArrow
	expectProp
	expectSemicolon
	matchedGetter
)

// BasicGetterPropName reports the property returned by a body consisting of
// exactly `return $this->prop;`. openPtr and closePtr are the body braces.
func BasicGetterPropName(s *token.Stream, openPtr, closePtr int) (string, bool) {
	state := expectReturn
	prop := ""
	for ptr := openPtr + 1; ptr < closePtr; ptr++ {
		tok := s.At(ptr)
		if tok.IsEmpty() {
			continue
		}
		switch state {
		case expectReturn:
			if tok.Kind != token.RETURN {
				return "", false
			}
			state = expectThis
		case expectThis:
			if !tok.IsThis() {
				return "", false
			}
			state = expectArrow
		case expectArrow:
			if tok.Kind != token.OBJECT_OPERATOR {
				return "", false
			}
			state = expectProp
		case expectProp:
			if tok.Kind != token.STRING {
				return "", false
			}
			prop = tok.Content
			state = expectSemicolon
		case expectSemicolon:
			if tok.Kind != token.SEMICOLON {
				return "", false
			}
			state = matchedGetter
		case matchedGetter:
			// anything after the return statement
			return "", false
		}
	}
	return prop, state == matchedGetter
}

// thisMember finds `$this->name` starting at ptr and returns the index of name.
func thisMember(s *token.Stream, ptr int) (int, bool) {
	if !s.At(ptr).IsThis() {
		return -1, false
	}
	arrowPtr, ok := s.FindNext(token.NonEmpty, ptr+1)
	if !ok || s.At(arrowPtr).Kind != token.OBJECT_OPERATOR {
		return -1, false
	}
	namePtr, ok := s.FindNext(token.NonEmpty, arrowPtr+1)
	if !ok || s.At(namePtr).Kind != token.STRING {
		return -1, false
	}
	return namePtr, true
}

// ThisMethodCalls lists the distinct methods called as $this->method( in the body.
func ThisMethodCalls(s *token.Stream, openPtr, closePtr int) []string {
	var calls []string
	seen := map[string]bool{}
	for ptr := openPtr + 1; ptr < closePtr; ptr++ {
		namePtr, ok := thisMember(s, ptr)
		if !ok {
			continue
		}
		parenPtr, ok := s.FindNext(token.NonEmpty, namePtr+1)
		if !ok || s.At(parenPtr).Kind != token.OPEN_PARENTHESIS {
			continue
		}
		name := s.At(namePtr).Content
		if !seen[name] {
			seen[name] = true
			calls = append(calls, name)
		}
	}
	return calls
}

// NonNullAssignedProps lists the distinct properties assigned in the body with
// anything but a plain `= null;`.
func NonNullAssignedProps(s *token.Stream, openPtr, closePtr int) []string {
	var props []string
	seen := map[string]bool{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			props = append(props, name)
		}
	}
	for ptr := openPtr + 1; ptr < closePtr; ptr++ {
		namePtr, ok := thisMember(s, ptr)
		if !ok {
			continue
		}
		eqPtr, ok := s.FindNext(token.NonEmpty, namePtr+1)
		if !ok || s.At(eqPtr).Kind != token.EQUAL {
			continue
		}
		valuePtr, ok := s.FindNext(token.NonEmpty, eqPtr+1)
		if !ok || s.At(valuePtr).Kind != token.NULL {
			add(s.At(namePtr).Content)
			continue
		}
		// $this->prop = null === $x ? 1 : 2;
		semiPtr, ok := s.FindNext(token.NonEmpty, valuePtr+1)
		if !ok || s.At(semiPtr).Kind != token.SEMICOLON {
			add(s.At(namePtr).Content)
		}
	}
	return props
}
