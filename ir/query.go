package ir

import (
	"fmt"
	"slices"
)

type propertyValues struct {
	BaseVisitor
	name string
	res  []*Node
}

func (p *propertyValues) VisitEnter(y *Node) bool {
	if v := y.Get(p.name); v != nil {
		p.res = append(p.res, v)
	}
	return true
}

// PropertyValues returns, in document order, the value of every object
// field called name in the tree rooted at y.
func (y *Node) PropertyValues(name string) []*Node {
	v := &propertyValues{name: name}
	y.Accept(v)
	return v.res
}

type objectsWith struct {
	BaseVisitor
	names []string
	res   []*Node
}

func (o *objectsWith) VisitEnter(y *Node) bool {
	if y.Type != ObjectType {
		return true
	}
	for _, name := range o.names {
		if y.fieldIndex(name) == -1 {
			return true
		}
	}
	o.res = append(o.res, y)
	return true
}

// ObjectsWithProperties returns, in document order, every object in the tree
// rooted at y whose own fields include all of names.  No names matches
// nothing.
func (y *Node) ObjectsWithProperties(names ...string) []*Node {
	if len(names) == 0 {
		return nil
	}
	v := &objectsWith{names: names}
	y.Accept(v)
	return v.res
}

type sameType struct {
	BaseVisitor
	name     string
	typ      Type
	mismatch bool
}

func (s *sameType) VisitEnter(y *Node) bool {
	if s.mismatch {
		return false
	}
	v := y.Get(s.name)
	if v == nil {
		return true
	}
	if v.Type == NullType || v.Type != s.typ {
		s.mismatch = true
		return false
	}
	return true
}

// PropertyHasSameType reports whether every occurrence of the object field
// name in the tree rooted at y holds a value of type t.  A null value never
// matches.  If the field does not occur, the result is true.
func (y *Node) PropertyHasSameType(name string, t Type) bool {
	v := &sameType{name: name, typ: t}
	y.Accept(v)
	return !v.mismatch
}

// ItemsHaveSameStructure reports whether all items of the array y have the
// same type and, when they are objects, the same set of fields.  An empty
// array has the same structure.  It panics if y is not an array.
func (y *Node) ItemsHaveSameStructure() bool {
	if y.Type != ArrayType {
		panic(fmt.Sprintf("ir: items structure of %s node", y.Type))
	}
	if len(y.Values) == 0 {
		return true
	}
	first := y.Values[0]
	var keys []string
	if first.Type == ObjectType {
		keys = sortedKeys(first)
	}
	for _, v := range y.Values[1:] {
		if v.Type != first.Type {
			return false
		}
		if v.Type == ObjectType && !slices.Equal(keys, sortedKeys(v)) {
			return false
		}
	}
	return true
}

func sortedKeys(y *Node) []string {
	keys := y.Keys()
	slices.Sort(keys)
	return keys
}

type finder struct {
	pred func(*Node) bool
	res  []*Node
}

func (f *finder) VisitEnter(y *Node) bool {
	f.Visit(y)
	return true
}

func (f *finder) Visit(y *Node) {
	if f.pred(y) {
		f.res = append(f.res, y)
	}
}

func (f *finder) VisitExit(*Node) {}

// Find returns, in document order, every node in the tree rooted at y,
// including y, for which pred returns true.
func (y *Node) Find(pred func(*Node) bool) []*Node {
	f := &finder{pred: pred}
	y.Accept(f)
	return f.res
}
