package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type Account struct {
	Owner    string
	Password string
	Balance  int
}

func TestRegisterSchema(t *testing.T) {
	m := NewMapper()
	RegisterSchema(m,
		Field[Account]{Name: "Owner", Get: func(a Account) any { return a.Owner }},
		Field[Account]{Name: "Password", Get: func(a Account) any { return a.Password }, Directives: []Directive{Exclude()}},
		Field[Account]{Name: "Balance", Get: func(a Account) any { return a.Balance }, Directives: []Directive{CustomID("balance"), ForceString()}},
	)

	node, err := m.ToIR(Account{Owner: "o", Password: "p", Balance: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"Owner": "o", "balance": "10"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// the schema applies to elements and through pointers
	node, err = m.ToIR([]*Account{{Owner: "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `[{"Owner": "x", "balance": "0"}]`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// other mappers are unaffected
	node, err = ToIR(Account{Owner: "o", Password: "p"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Owner", "Password", "Balance"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestRegisterSchema_BlankID(t *testing.T) {
	m := NewMapper()
	RegisterSchema(m, Field[Account]{
		Name:       "Owner",
		Get:        func(a Account) any { return a.Owner },
		Directives: []Directive{CustomID(" ")},
	})
	node, err := m.ToIR(Account{})
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if node != nil {
		t.Errorf("got document %s", node.Text())
	}
}

type point struct{ x, y int }

func (p *point) DocFields() []RecordField {
	return []RecordField{
		{Name: "x", Value: p.x},
		{Name: "y", Value: p.y},
		{Name: "label", Value: nil, Directives: []Directive{ForceString()}},
	}
}

type shape struct {
	Points []*point
	Origin *point
}

func TestRecorder(t *testing.T) {
	node, err := ToIR(shape{Points: []*point{{1, 2}, {3, 4}}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Points": [{"x": 1, "y": 2, "label": "null"}, {"x": 3, "y": 4, "label": "null"}], "Origin": null}`
	if got := node.Text(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

type selfRef struct {
	next *selfRef
}

func (s *selfRef) DocFields() []RecordField {
	return []RecordField{{Name: "next", Value: s.next}}
}

func TestRecorder_Cycle(t *testing.T) {
	s := &selfRef{}
	s.next = s
	_, err := ToIR(s)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

type fieldList []RecordField

func (l fieldList) DocFields() []RecordField { return l }

func TestRecorder_EmptyName(t *testing.T) {
	node, err := ToIR(fieldList{{Name: "", Value: 1}, {Name: "a", Value: map[string]int{"": 2}}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"": 1, "a": {"": 2}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if v := node.Get(""); v == nil || v.Parent != node {
		t.Errorf("empty field not attached")
	}

	m := NewMapper()
	RegisterSchema(m, Field[Account]{Name: "", Get: func(a Account) any { return a.Owner }})
	node, err = m.ToIR(Account{Owner: "o"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Text(), `{"": "o"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if _, err := ToIR(fieldList{{Name: "", Value: 1}, {Name: "", Value: 2}}); err == nil {
		t.Errorf("expected field name conflict")
	}
}
