package ir

import (
	"fmt"
	"slices"
)

// Add attaches child to the structured node y and notifies observers with
// ElementAdded.
//
// For objects, field must be non-empty; adding a field which already exists
// replaces its value in place.  For arrays, field is ignored and child is
// appended.  Add panics if y is a leaf or if an object field is empty.
func (y *Node) Add(field string, child *Node) {
	switch y.Type {
	case ObjectType:
		if field == "" {
			panic("ir: add with empty field to object")
		}
		if i := y.fieldIndex(field); i != -1 {
			child.Parent = y
			y.Values[i] = child
		} else {
			y.appendField(field, child)
		}
	case ArrayType:
		field = ""
		child.Parent = y
		y.Values = append(y.Values, child)
	default:
		panic(fmt.Sprintf("ir: add on %s node", y.Type))
	}
	y.notify(func(o Observer) { o.ElementAdded(y, field, child) })
}

// Modify replaces the first occurrence of old in y with new, in place, and
// notifies observers with ElementModified.  new is reparented to y; old
// keeps its parent link.  If old is not a child of y, Modify does nothing.
func (y *Node) Modify(old, new *Node) {
	y.mustStructured("modify")
	i := y.Index(old)
	if i == -1 {
		return
	}
	new.Parent = y
	y.Values[i] = new
	y.notify(func(o Observer) { o.ElementModified(y, old, new) })
}

// Remove deletes the first occurrence of child from y and notifies observers
// with ElementRemoved.  If child is not in y, Remove does nothing.
//
// An object left empty by the removal is in turn removed from its own
// parent, recursively.
func (y *Node) Remove(child *Node) {
	y.mustStructured("remove")
	i := y.Index(child)
	if i == -1 {
		return
	}
	y.removeAt(i)
}

// RemoveAt deletes the value at position i of y, like Remove.  It does
// nothing if i is out of range.
func (y *Node) RemoveAt(i int) {
	y.mustStructured("remove")
	if i < 0 || i >= len(y.Values) {
		return
	}
	y.removeAt(i)
}

func (y *Node) removeAt(i int) {
	child := y.Values[i]
	y.Values = slices.Delete(y.Values, i, i+1)
	if y.Type == ObjectType {
		y.Fields = slices.Delete(y.Fields, i, i+1)
	}
	y.notify(func(o Observer) { o.ElementRemoved(y, child) })
	if y.Type == ObjectType && len(y.Values) == 0 && y.Parent != nil {
		y.Parent.Remove(y)
	}
}

func (y *Node) mustStructured(op string) {
	switch y.Type {
	case ObjectType, ArrayType:
	default:
		panic(fmt.Sprintf("ir: %s on %s node", op, y.Type))
	}
}
