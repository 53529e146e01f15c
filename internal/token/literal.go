package token

import "github.com/funvibe/typesniff/internal/typesystem"

// LiteralKind classifies the value assigned to a constant.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota // no literal assignment found
	LiteralNull
	LiteralBool
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralArray
	LiteralOther // not statically inferable, e.g. another constant or an expression
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralNull:
		return "null"
	case LiteralBool:
		return "bool"
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	case LiteralArray:
		return "array"
	case LiteralOther:
		return "other"
	}
	return "none"
}

// ParseLiteralKind maps names used by host adapters and site files.
func ParseLiteralKind(name string) (LiteralKind, bool) {
	switch name {
	case "", "none":
		return LiteralNone, true
	case "null":
		return LiteralNull, true
	case "bool", "true", "false":
		return LiteralBool, true
	case "int", "integer":
		return LiteralInt, true
	case "float", "double":
		return LiteralFloat, true
	case "string", "heredoc":
		return LiteralString, true
	case "array":
		return LiteralArray, true
	case "other":
		return LiteralOther, true
	}
	return LiteralNone, false
}

// ValueType infers the type of a literal. The boolean is false when the value
// cannot be inferred statically, which differs from inferring "no type".
func ValueType(kind LiteralKind) (typesystem.Type, bool) {
	switch kind {
	case LiteralNull:
		return typesystem.TNull{}, true
	case LiteralBool:
		return typesystem.TBool{}, true
	case LiteralInt:
		return typesystem.TInt{}, true
	case LiteralFloat:
		return typesystem.TFloat{}, true
	case LiteralString:
		return typesystem.TString{}, true
	case LiteralArray:
		return typesystem.TArray{}, true
	}
	return nil, false
}
