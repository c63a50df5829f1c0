package match

import "github.com/signadot/jdoc/ir"

// ToAny converts node to plain Go values: map[string]any for objects, []any
// for arrays, and the leaf Value otherwise.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.StringType, ir.BoolType, ir.NullType:
		return node.Value()
	default:
		panic("type")
	}
}
