package history

import (
	"fmt"

	"github.com/signadot/jdoc/ir"
)

type Kind int

const (
	Added Kind = iota
	Modified
	Removed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "<unknown kind>"
	}
}

// Entry is a recorded mutation of Parent.
//
//   - Added: New was added under Field; Old is the value it replaced, if any
//   - Modified: Old was replaced by New
//   - Removed: Old was removed from under Field
//
// Field is empty for arrays.  Index is the position of New in Parent for
// Added entries.
type Entry struct {
	Kind   Kind
	Parent *ir.Node
	Field  string
	Index  int
	Old    *ir.Node
	New    *ir.Node
}

func (e *Entry) String() string {
	switch e.Kind {
	case Added:
		return fmt.Sprintf("%s %s %q %s", e.Kind, e.Parent.Path(), e.Field, e.New.Text())
	case Modified:
		return fmt.Sprintf("%s %s %s -> %s", e.Kind, e.Parent.Path(), e.Old.Text(), e.New.Text())
	case Removed:
		return fmt.Sprintf("%s %s %q %s", e.Kind, e.Parent.Path(), e.Field, e.Old.Text())
	default:
		panic("kind")
	}
}

// undo reverts the entry.
func (e *Entry) undo() {
	switch e.Kind {
	case Added:
		if e.Old != nil {
			e.Parent.Modify(e.New, e.Old)
			return
		}
		removeInPlace(e.Parent, e.Index, e.New)
	case Modified:
		e.Parent.Modify(e.New, e.Old)
	case Removed:
		e.Parent.Add(e.Field, e.Old)
	default:
		panic("kind")
	}
}

// redo replays the entry.
func (e *Entry) redo() {
	switch e.Kind {
	case Added:
		e.Parent.Add(e.Field, e.New)
	case Modified:
		e.Parent.Modify(e.Old, e.New)
	case Removed:
		e.Parent.Remove(e.Old)
	default:
		panic("kind")
	}
}

type link struct {
	parent, child *ir.Node
	field         string
}

// removeInPlace removes child, at position i, from parent and reattaches
// the ancestors of parent which the removal detached because it left them
// empty.
func removeInPlace(parent *ir.Node, i int, child *ir.Node) {
	var links []link
	for a := parent; a.Parent != nil; a = a.Parent {
		if a.Parent.Index(a) == -1 {
			break
		}
		f, _ := a.Parent.Field(a)
		links = append(links, link{parent: a.Parent, child: a, field: f})
	}
	if i >= 0 && i < parent.Len() && parent.Values[i] == child {
		parent.RemoveAt(i)
	} else {
		parent.Remove(child)
	}
	for _, l := range links {
		if l.parent.Index(l.child) != -1 {
			break
		}
		l.parent.Add(l.field, l.child)
	}
}
