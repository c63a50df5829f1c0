package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/ir"
)

func ints(vs ...int64) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromInt(v)
	}
	return ir.FromSlice(res)
}

func strs(cs []Change) []string {
	res := make([]string, len(cs))
	for i := range cs {
		res[i] = cs[i].String()
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to *ir.Node
		want     []string
	}{
		{
			name: "equal",
			from: ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ints(1, 2)}}),
			to:   ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ints(1, 2)}}),
			want: []string{},
		},
		{
			name: "root type",
			from: ir.FromInt(1),
			to:   ir.FromString("1"),
			want: []string{`replace $ 1 -> "1"`},
		},
		{
			name: "int and float",
			from: ir.FromInt(1),
			to:   ir.FromFloat(1),
			want: []string{`replace $ 1 -> 1.0`},
		},
		{
			name: "object fields",
			from: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ints(1, 2, 3)},
				{Key: "c", Val: ir.FromString("x")},
			}),
			to: ir.FromKeyVals([]ir.KeyVal{
				{Key: "d", Val: ir.FromBool(true)},
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ints(1, 5, 3)},
			}),
			want: []string{
				`replace $.b[1] 2 -> 5`,
				`delete $.c "x"`,
				`insert $.d true`,
			},
		},
		{
			name: "array append",
			from: ints(1, 2),
			to:   ints(1, 2, 3),
			want: []string{`insert $[2] 3`},
		},
		{
			name: "array delete",
			from: ints(1, 2, 3),
			to:   ints(1, 3),
			want: []string{`delete $[1] 2`},
		},
		{
			name: "nested",
			from: ir.FromSlice([]*ir.Node{ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromInt(1)}})}),
			to:   ir.FromSlice([]*ir.Node{ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromInt(2)}})}),
			want: []string{`replace $[0].x 1 -> 2`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(Diff(tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}, {Key: "b", Val: ir.FromInt(2)}})
	to := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(3)}, {Key: "c", Val: ir.FromInt(4)}})
	cs := Diff(from, to)
	rev := Reverse(cs)
	want := []Op{Replace, Insert, Delete}
	for i := range rev {
		if rev[i].Op != want[i] {
			t.Errorf("%d: got %s, want %s", i, rev[i].Op, want[i])
		}
		if rev[i].From != cs[i].To || rev[i].To != cs[i].From {
			t.Errorf("%d: nodes not swapped", i)
		}
	}
	if cs[1].Op != Delete {
		t.Errorf("Reverse modified its input")
	}
}
