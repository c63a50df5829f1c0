package gomap

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/ir"
)

func TestToIR_BasicTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		wantType ir.Type
		want     string
	}{
		{name: "nil", input: nil, wantType: ir.NullType, want: "null"},
		{name: "string", input: "hello", wantType: ir.StringType, want: `"hello"`},
		{name: "int", input: 42, wantType: ir.NumberType, want: "42"},
		{name: "int8", input: int8(-3), wantType: ir.NumberType, want: "-3"},
		{name: "uint", input: uint(99), wantType: ir.NumberType, want: "99"},
		{name: "big uint64", input: uint64(math.MaxUint64), wantType: ir.NumberType, want: "18446744073709551615"},
		{name: "float64", input: 3.14, wantType: ir.NumberType, want: "3.14"},
		{name: "float32", input: float32(0.1), wantType: ir.NumberType, want: "0.1"},
		{name: "integral float", input: 2.0, wantType: ir.NumberType, want: "2.0"},
		{name: "bool", input: true, wantType: ir.BoolType, want: "true"},
		{name: "nil pointer", input: (*int)(nil), wantType: ir.NullType, want: "null"},
		{name: "pointer", input: ptr(5), wantType: ir.NumberType, want: "5"},
		{name: "nil slice", input: []int(nil), wantType: ir.NullType, want: "null"},
		{name: "empty slice", input: []int{}, wantType: ir.ArrayType, want: "[]"},
		{name: "array", input: [2]string{"a", "b"}, wantType: ir.ArrayType, want: `["a", "b"]`},
		{name: "chan", input: make(chan int), wantType: ir.NullType, want: "null"},
		{name: "func", input: func() {}, wantType: ir.NullType, want: "null"},
		{name: "complex", input: complex(1, 2), wantType: ir.NullType, want: "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ToIR(tt.input)
			if err != nil {
				t.Fatalf("ToIR() error = %v", err)
			}
			if node.Type != tt.wantType {
				t.Errorf("expected type %s, got %s", tt.wantType, node.Type)
			}
			if got := node.Text(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

type Record struct {
	Count int
	Items []string
}

func TestToIR_Record(t *testing.T) {
	node, err := ToIR(Record{Count: 7, Items: []string{"a", "b"}})
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s", node.Type)
	}
	if diff := cmp.Diff([]string{"Count", "Items"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	count := node.Get("Count")
	if count.Type != ir.NumberType || count.Int64 == nil || *count.Int64 != 7 {
		t.Errorf("count %s", count.Text())
	}
	items := node.Get("Items")
	if items.Type != ir.ArrayType || items.Len() != 2 {
		t.Fatalf("items %s", items.Text())
	}
	for _, it := range items.Values {
		if it.Type != ir.StringType {
			t.Errorf("item %s", it.Text())
		}
		if it.Parent != items {
			t.Errorf("item not parented")
		}
	}
	if got := node.Text(); got != `{"Count": 7, "Items": ["a", "b"]}` {
		t.Errorf("got %s", got)
	}
}

type Inner struct {
	V int
}

type Tagged struct {
	Name     string
	Secret   string   `jdoc:"omit"`
	Skip     string   `jdoc:"-"`
	ID       int      `jdoc:"field=id"`
	Spaced   bool     `jdoc:"field='with space'"`
	Code     int      `jdoc:"string"`
	Both     float64  `jdoc:"field=ratio,string"`
	Nothing  *Inner   `jdoc:"string"`
	Ptr      *Inner   `jdoc:"string"`
	List     []int    `jdoc:"string"`
	Any      any      `jdoc:"string"`
	private  int
	Children []*Inner
}

func TestToIR_Directives(t *testing.T) {
	v := Tagged{
		Name:     "n",
		Secret:   "s",
		Skip:     "k",
		ID:       3,
		Spaced:   true,
		Code:     12,
		Both:     0.5,
		Ptr:      &Inner{V: 1},
		List:     []int{1, 2},
		Any:      Inner{V: 2},
		private:  9,
		Children: []*Inner{{V: 4}, nil},
	}
	node, err := ToIR(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Name": "n", "id": 3, "with space": true, "Code": "12", "ratio": "0.5", ` +
		`"Nothing": "null", "Ptr": "{1}", "List": "[1 2]", "Any": "{2}", "Children": [{"V": 4}, null]}`
	if got := node.Text(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

type BlankID struct {
	Ok  int
	Bad int `jdoc:"field=' '"`
}

type EmptyID struct {
	Bad int `jdoc:"field="`
}

func TestToIR_InvalidKey(t *testing.T) {
	for _, v := range []any{BlankID{}, &EmptyID{}, []any{1, BlankID{}}} {
		node, err := ToIR(v)
		if !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("%T: expected ErrInvalidKey, got %v", v, err)
		}
		if node != nil {
			t.Errorf("%T: got document %s", v, node.Text())
		}
		var me *MarshalError
		if !errors.As(err, &me) {
			t.Fatalf("not a MarshalError: %T", err)
		}
		if !strings.Contains(me.Message, "Bad") {
			t.Errorf("error does not name field: %v", err)
		}
	}
}

func TestToIR_Sequences(t *testing.T) {
	node, err := ToIR([]any{1, "two", nil, 3.5, []any{true}, map[string]any{"k": nil}})
	if err != nil {
		t.Fatal(err)
	}
	want := `[1, "two", null, 3.5, [true], {"k": null}]`
	if got := node.Text(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestToIR_Maps(t *testing.T) {
	node, err := ToIR(map[string]any{"b": 2, "a": []int{1}, "c": Inner{V: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"a": [1], "b": 2, "c": {"V": 3}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	type key string
	node, err = ToIR(map[key]int{"x": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Text(); got != `{"x": 1}` {
		t.Errorf("got %s", got)
	}

	_, err = ToIR(map[int]string{1: "a"})
	if !errors.Is(err, ErrMapKey) {
		t.Errorf("expected ErrMapKey, got %v", err)
	}
}

type Color int

const (
	Red Color = iota
	Green
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	default:
		return "Color?"
	}
}

type Paint struct {
	Color  Color
	Colors []Color
}

func TestToIR_Enums(t *testing.T) {
	p := Paint{Color: Green, Colors: []Color{Red, Green}}
	node, err := ToIR(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"Color": "Green", "Colors": ["Red", "Green"]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	node, err = ToIR(p, MapEnums(false))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"Color": 1, "Colors": [0, 1]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

type Version struct{ major, minor int }

func (v Version) MarshalText() ([]byte, error) {
	return []byte("v" + string(rune('0'+v.major)) + "." + string(rune('0'+v.minor))), nil
}

type Opaque struct {
	n int
}

type Holder struct {
	Version Version
	Opaque  Opaque
	Ch      chan int
}

func TestToIR_TextAndOpaque(t *testing.T) {
	node, err := ToIR(&Holder{Version: Version{1, 2}, Opaque: Opaque{n: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"Version": "v1.2", "Opaque": null, "Ch": null}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

type Base struct {
	ID   int
	Kind string
}

type base struct {
	Hidden bool
}

type Derived struct {
	Base
	base
	Name string
}

type Clash struct {
	Base
	Kind string
}

type Named struct {
	Base `jdoc:"field=base"`
	Name string
}

type Sealed struct {
	Opaque
	Name string
}

func TestToIR_Embedded(t *testing.T) {
	node, err := ToIR(Derived{Base: Base{ID: 1, Kind: "k"}, base: base{Hidden: true}, Name: "d"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"ID": 1, "Kind": "k", "Hidden": true, "Name": "d"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if _, err := ToIR(Clash{}); err == nil {
		t.Errorf("expected field name conflict")
	}

	node, err = ToIR(Named{Base: Base{ID: 2}, Name: "n"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"base": {"ID": 2, "Kind": ""}, "Name": "n"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// an embedded struct which does not map to an object adds no fields
	node, err = ToIR(Sealed{Opaque: Opaque{n: 1}, Name: "s"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"Name": "s"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

type Loop struct {
	Name string
	Next *Loop
}

type Shared struct {
	A, B *Inner
}

func TestToIR_Cycles(t *testing.T) {
	l := &Loop{Name: "a"}
	l.Next = &Loop{Name: "b", Next: l}
	_, err := ToIR(l)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}

	in := &Inner{V: 1}
	node, err := ToIR(Shared{A: in, B: in})
	if err != nil {
		t.Fatalf("shared pointer is not a cycle: %v", err)
	}
	if got := node.Text(); got != `{"A": {"V": 1}, "B": {"V": 1}}` {
		t.Errorf("got %s", got)
	}
	if node.Get("A") == node.Get("B") {
		t.Errorf("shared pointer produced shared node")
	}
}

func TestToIR_TagKey(t *testing.T) {
	type T struct {
		A int `json:"-"`
		B int `jdoc:"omit"`
	}
	node, err := ToIR(T{A: 1, B: 2}, MapTagKey("json"))
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Text(); got != `{"B": 2}` {
		t.Errorf("got %s", got)
	}
}
