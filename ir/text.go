package ir

import (
	"strconv"
	"strings"
)

// Text returns the textual projection of the tree rooted at y: objects as
// {"k": v, "k2": v2}, arrays as [v, v2], strings in double quotes without
// escaping, and other leaves as their Literal.
func (y *Node) Text() string {
	b := &strings.Builder{}
	y.writeText(b)
	return b.String()
}

func (y *Node) writeText(b *strings.Builder) {
	switch y.Type {
	case ObjectType:
		b.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(`"` + f.String + `": `)
			y.Values[i].writeText(b)
		}
		b.WriteByte('}')
	case ArrayType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			v.writeText(b)
		}
		b.WriteByte(']')
	case StringType, NumberType, BoolType, NullType:
		b.WriteString(y.Literal())
	default:
		panic("type")
	}
}

// Literal returns the literal text of a leaf.  Strings are quoted without
// escaping.  Floats keep a fractional part so they remain distinct from
// integers.
func (y *Node) Literal() string {
	switch y.Type {
	case StringType:
		return `"` + y.String + `"`
	case NumberType:
		return NumberLiteral(y)
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NullType:
		return "null"
	case ObjectType, ArrayType:
		panic("ir: literal of structured node")
	default:
		panic("type")
	}
}

func NumberLiteral(y *Node) string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		s := strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	}
	return y.Number
}
