package typesystem

// Tag identifies the variant of a Type.
type Tag int

const (
	TagUndefined Tag = iota
	TagInt
	TagFloat
	TagBool
	TagString
	TagNull
	TagMixed
	TagVoid
	TagNever
	TagObject
	TagResource
	TagArray
	TagIterable
	TagCallable
	TagClosure
	TagClass
	TagSelf
	TagStatic
	TagParent
	TagThis
	TagBoolLiteral
	TagNullable
	TagUnion
)

var tagNames = [...]string{
	TagUndefined:   "Undefined",
	TagInt:         "Int",
	TagFloat:       "Float",
	TagBool:        "Bool",
	TagString:      "String",
	TagNull:        "Null",
	TagMixed:       "Mixed",
	TagVoid:        "Void",
	TagNever:       "Never",
	TagObject:      "Object",
	TagResource:    "Resource",
	TagArray:       "Array",
	TagIterable:    "Iterable",
	TagCallable:    "Callable",
	TagClosure:     "Closure",
	TagClass:       "Class",
	TagSelf:        "Self",
	TagStatic:      "Static",
	TagParent:      "Parent",
	TagThis:        "This",
	TagBoolLiteral: "BoolLiteral",
	TagNullable:    "Nullable",
	TagUnion:       "Union",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "Tag(?)"
	}
	return tagNames[t]
}

// IsContextual reports whether the tag refers to the enclosing class
// (self, static, parent, $this).
func (t Tag) IsContextual() bool {
	switch t {
	case TagSelf, TagStatic, TagParent, TagThis:
		return true
	}
	return false
}
