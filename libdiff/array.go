package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/jdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to with a sequence diff:
//
//  1. summarize each element as a rune: structured nodes and null by type,
//     other leaves by type and value
//  2. diff the two rune sequences
//  3. recurse into aligned elements, which have equal summaries
//  4. a deletion directly followed by an insertion is a replacement
func (d *differ) diffArray(from, to *ir.Node) {
	m := map[string]rune{}
	fromRunes := summarize(m, from)
	toRunes := summarize(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range n {
				d.diff(from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
			}
			for j := range n {
				if j < ins {
					d.add(Replace, from.Values[fi], to.Values[ti])
					ti++
				} else {
					d.add(Delete, from.Values[fi], nil)
				}
				fi++
			}
			// the insertions consumed above are skipped below
			if ins > 0 {
				rest := ins - min(ins, n)
				for range rest {
					d.add(Insert, nil, to.Values[ti])
					ti++
				}
				diffs[i+1].Text = ""
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Insert, nil, to.Values[ti])
				ti++
			}
		}
	}
}

func summarize(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			// stay clear of the surrogate range, which is not a valid rune
			r = rune(len(m)) + 0xE000
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		return node.Type.String() + "-" + ir.NumberLiteral(node)
	default:
		panic("type")
	}
}
