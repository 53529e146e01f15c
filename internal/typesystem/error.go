package typesystem

import "fmt"

// UnparsableTypeError indicates a malformed type annotation.
// Callers are expected to degrade to TUndefined rather than fail.
type UnparsableTypeError struct {
	Raw    string
	Offset int
	Reason string
}

func (e *UnparsableTypeError) Error() string {
	return fmt.Sprintf("unparsable type %q at offset %d: %s", e.Raw, e.Offset, e.Reason)
}

func NewUnparsableTypeError(raw string, offset int, reason string) *UnparsableTypeError {
	return &UnparsableTypeError{Raw: raw, Offset: offset, Reason: reason}
}

// UnresolvedContextError indicates self, static, parent or $this was compared
// against a class without enclosing class context.
type UnresolvedContextError struct {
	Type Type
}

func (e *UnresolvedContextError) Error() string {
	return fmt.Sprintf("cannot resolve %s without enclosing class", e.Type)
}

// AmbiguousLiteralError indicates a constant value whose type cannot be
// inferred from its literal token.
type AmbiguousLiteralError struct {
	Literal string
}

func (e *AmbiguousLiteralError) Error() string {
	return fmt.Sprintf("cannot infer a type from %s literal", e.Literal)
}

func NewAmbiguousLiteralError(literal string) *AmbiguousLiteralError {
	return &AmbiguousLiteralError{Literal: literal}
}
