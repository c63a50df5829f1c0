package libdiff

import (
	"github.com/signadot/jdoc/ir"
)

// Diff returns the changes turning from into to.  Equal documents give no
// changes.  Numbers are compared by their literal, so 1 and 1.0 differ.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.diff(from, to)
	return d.res
}

type differ struct {
	res []Change
}

func (d *differ) add(op Op, from, to *ir.Node) {
	c := Change{Op: op, From: from, To: to}
	if op == Insert {
		c.Path = to.Path()
	} else {
		c.Path = from.Path()
	}
	d.res = append(d.res, c)
}

func (d *differ) diff(from, to *ir.Node) {
	if from.Type != to.Type {
		d.add(Replace, from, to)
		return
	}
	switch from.Type {
	case ir.ObjectType:
		d.diffObject(from, to)
	case ir.ArrayType:
		d.diffArray(from, to)
	case ir.StringType, ir.NumberType, ir.BoolType, ir.NullType:
		if from.Literal() != to.Literal() {
			d.add(Replace, from, to)
		}
	default:
		panic("type")
	}
}

// diffObject reports fields of from in their order, then fields only in to
// in theirs.
func (d *differ) diffObject(from, to *ir.Node) {
	for i, f := range from.Fields {
		tv := to.Get(f.String)
		if tv == nil {
			d.add(Delete, from.Values[i], nil)
			continue
		}
		d.diff(from.Values[i], tv)
	}
	for i, f := range to.Fields {
		if from.Get(f.String) == nil {
			d.add(Insert, nil, to.Values[i])
		}
	}
}
