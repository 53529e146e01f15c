package subject

import (
	"github.com/funvibe/typesniff/internal/typesystem"
	"github.com/iancoleman/strcase"
)

// Classification is the outcome of comparing a subject's types.
type Classification int

const (
	Ok Classification = iota
	MissingDocType
	MissingNativeType
	RedundantDocType
	NarrowerDocType
	MismatchedType
	ValueTypeMismatch
)

var classificationNames = map[Classification]string{
	Ok:                "Ok",
	MissingDocType:    "MissingDocType",
	MissingNativeType: "MissingNativeType",
	RedundantDocType:  "RedundantDocType",
	NarrowerDocType:   "NarrowerDocType",
	MismatchedType:    "MismatchedType",
	ValueTypeMismatch: "ValueTypeMismatch",
}

// Classifications lists every outcome in declaration order.
func Classifications() []Classification {
	return []Classification{
		Ok, MissingDocType, MissingNativeType, RedundantDocType,
		NarrowerDocType, MismatchedType, ValueTypeMismatch,
	}
}

func (c Classification) String() string {
	if name, ok := classificationNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Code is the diagnostic code for c, e.g. "missing_doc_type".
func (c Classification) Code() string {
	return strcase.ToSnake(c.String())
}

// ParseCode maps a diagnostic code back to its classification.
func ParseCode(code string) (Classification, bool) {
	for _, c := range Classifications() {
		if c.Code() == code {
			return c, true
		}
	}
	return Ok, false
}

// Classify decides how the documented type of s relates to what the
// declaration already states. ctx resolves self, static, $this and parent.
func Classify(s *Subject, ctx typesystem.Context) Classification {
	if s.Kind == Constant {
		return classifyConstant(s, ctx)
	}

	doc := s.DocType
	native := s.EffectiveNative()
	switch {
	case typesystem.IsUndefined(doc):
		return MissingDocType
	case typesystem.IsUndefined(native):
		return MissingNativeType
	}
	switch typesystem.Relate(doc, native, ctx) {
	case typesystem.RelationEquivalent:
		return RedundantDocType
	case typesystem.RelationNarrower:
		return NarrowerDocType
	case typesystem.RelationWider:
		if isFamily(doc) {
			return Ok
		}
	}
	if unresolved(doc, native, ctx) {
		return Ok
	}
	return MismatchedType
}

// isFamily matches pseudo types that name a family of values rather than a
// concrete one; stating them over a member of the family is not a mismatch.
func isFamily(t typesystem.Type) bool {
	switch t.(type) {
	case typesystem.TCallable, typesystem.TIterable, typesystem.TObject, typesystem.TMixed:
		return true
	}
	return false
}

// unresolved reports a contextual type the comparison could not resolve;
// such pairs stay silent rather than risk a false mismatch.
func unresolved(doc, native typesystem.Type, ctx typesystem.Context) bool {
	return typesystem.UnresolvedContextual(doc, ctx) != nil ||
		typesystem.UnresolvedContextual(native, ctx) != nil
}

func classifyConstant(s *Subject, ctx typesystem.Context) Classification {
	if typesystem.IsUndefined(s.DocType) {
		return MissingDocType
	}
	if !s.ValueInferred {
		return Ok
	}
	if !valueCovered(s.DocType, s.ValueType, ctx) {
		return ValueTypeMismatch
	}
	return Ok
}

// valueCovered is lenient: a literal only shows the outer shape of a value,
// so an array literal fits any array-like doc member, a bool literal fits
// true or false, and an int literal fits float.
func valueCovered(doc, value typesystem.Type, ctx typesystem.Context) bool {
	for _, member := range typesystem.Members(typesystem.Canonical(doc, ctx)) {
		if typesystem.Covers(member, value, ctx) {
			return true
		}
		switch value.(type) {
		case typesystem.TArray:
			switch member.(type) {
			case typesystem.TArray, typesystem.TIterable:
				return true
			}
		case typesystem.TBool:
			if _, ok := member.(typesystem.TBoolLiteral); ok {
				return true
			}
		case typesystem.TInt:
			if _, ok := member.(typesystem.TFloat); ok {
				return true
			}
		}
	}
	return false
}
