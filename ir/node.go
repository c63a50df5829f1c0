package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

type Node struct {
	Type   Type
	Parent *Node
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	observers []Observer
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber creates a number node from a literal which fits neither int64
// nor float64 without loss, such as a large uint64.
func FromNumber(lit string) *Node {
	return &Node{
		Type:   NumberType,
		Number: lit,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// FromMap builds an object with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs.  Later
// duplicates of a key replace earlier values in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for i := range kvs {
		kv := &kvs[i]
		if j := res.fieldIndex(kv.Key); j != -1 {
			kv.Val.Parent = res
			res.Values[j] = kv.Val
			continue
		}
		res.appendField(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
	}
	return res
}

func (y *Node) appendField(field string, v *Node) {
	key := FromString(field)
	key.Parent = y
	v.Parent = y
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

func (y *Node) fieldIndex(field string) int {
	for i, f := range y.Fields {
		if f.String == field {
			return i
		}
	}
	return -1
}

// Value returns the payload of a leaf node: a string, int64, float64, bool
// or, for numbers held only as literals, the literal string.  Null and
// structured nodes return nil.
func (y *Node) Value() any {
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case NullType, ObjectType, ArrayType:
		return nil
	default:
		panic("type")
	}
}

// Depth is the number of parent links between y and its root.
func (y *Node) Depth() int {
	d := 0
	for p := y.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Get returns the value under field, or nil if y is not an object or has
// no such field.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := y.fieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Keys returns the field names of an object in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Index returns the position of the first occurrence of child in y.Values
// by identity, or -1.
func (y *Node) Index(child *Node) int {
	for i, v := range y.Values {
		if v == child {
			return i
		}
	}
	return -1
}

// Field returns the field under which child is stored in the object y.
func (y *Node) Field(child *Node) (string, bool) {
	if y.Type != ObjectType {
		return "", false
	}
	i := y.Index(child)
	if i == -1 {
		return "", false
	}
	return y.Fields[i].String, true
}

// Path returns a JSONPath-like location of y relative to its root, such as
// $.a.b[0].  A node whose parent no longer holds it is reported at its
// parent's path.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	p := y.Parent
	i := p.Index(y)
	if i == -1 {
		return p.Path()
	}
	switch p.Type {
	case ObjectType:
		f := p.Fields[i].String
		prefix := p.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
	case ArrayType:
		return p.Path() + "[" + strconv.Itoa(i) + "]"
	default:
		panic("parent but not in container")
	}
}

// Clone returns a deep copy of y detached from any parent.  Observers are
// not copied.
func (y *Node) Clone() *Node {
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		c := yv.Clone()
		c.Parent = dst
		dst.Values[i] = c
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yf := range y.Fields {
		c := yf.Clone()
		c.Parent = dst
		dst.Fields[i] = c
	}
	return dst
}
