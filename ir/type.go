package ir

import (
	"fmt"
	"strings"
)

// Type is the variant tag of a Node.
type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	switch t {
	case ObjectType:
		return "Object"
	case ArrayType:
		return "Array"
	case StringType:
		return "String"
	case NumberType:
		return "Number"
	case BoolType:
		return "Bool"
	case NullType:
		return "Null"
	default:
		return "<unknown type>"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"null":    NullType,
		"bool":    BoolType,
		"boolean": BoolType,
		"number":  NumberType,
		"string":  StringType,
		"array":   ArrayType,
		"object":  ObjectType,
	}[strings.ToLower(string(d))]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	case NullType, NumberType, StringType, BoolType:
		return true
	default:
		panic("type")
	}
}
