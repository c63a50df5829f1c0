package history

import (
	"slices"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

// step is the entries recorded for one mutation call, in notification
// order.
type step []Entry

// snapshot is the last known content of a watched structured node.
type snapshot struct {
	keys []string
	vals []*ir.Node
}

func snap(y *ir.Node) *snapshot {
	return &snapshot{keys: y.Keys(), vals: slices.Clone(y.Values)}
}

// Journal records the mutations of watched documents for Undo and Redo.
type Journal struct {
	done      []step
	undone    []step
	watched   map[*ir.Node]*snapshot
	replaying bool
}

func New() *Journal {
	return &Journal{watched: map[*ir.Node]*snapshot{}}
}

// Watch registers j with every structured node of the tree rooted at root.
func (j *Journal) Watch(root *ir.Node) {
	_ = root.Walk(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		switch y.Type {
		case ir.ObjectType, ir.ArrayType:
			if _, ok := j.watched[y]; !ok {
				j.watched[y] = snap(y)
				y.AddObserver(j)
			}
			return true, nil
		default:
			return false, nil
		}
	})
}

// Unwatch unregisters j from every structured node of the tree rooted at
// root.  Recorded entries are kept.
func (j *Journal) Unwatch(root *ir.Node) {
	_ = root.Walk(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if _, ok := j.watched[y]; ok {
			delete(j.watched, y)
			y.RemoveObserver(j)
		}
		return !y.Type.IsLeaf(), nil
	})
}

func (j *Journal) ElementAdded(parent *ir.Node, field string, child *ir.Node) {
	var old *ir.Node
	if s := j.watched[parent]; s != nil && parent.Type == ir.ObjectType {
		if i := slices.Index(s.keys, field); i != -1 {
			old = s.vals[i]
		}
	}
	// arrays append; objects keep the position of a replaced field
	index := parent.Len() - 1
	if parent.Type == ir.ObjectType {
		index = slices.Index(parent.Keys(), field)
	}
	j.record(Entry{Kind: Added, Parent: parent, Field: field, Index: index, Old: old, New: child})
	j.Watch(child)
}

func (j *Journal) ElementModified(parent, old, new *ir.Node) {
	var field string
	if s := j.watched[parent]; s != nil && parent.Type == ir.ObjectType {
		if i := slices.Index(s.vals, old); i != -1 {
			field = s.keys[i]
		}
	}
	j.record(Entry{Kind: Modified, Parent: parent, Field: field, Old: old, New: new})
	j.Watch(new)
}

func (j *Journal) ElementRemoved(parent, child *ir.Node) {
	var field string
	if s := j.watched[parent]; s != nil && parent.Type == ir.ObjectType {
		if i := slices.Index(s.vals, child); i != -1 {
			field = s.keys[i]
		}
	}
	j.record(Entry{Kind: Removed, Parent: parent, Field: field, Old: child})
}

func (j *Journal) record(e Entry) {
	if _, ok := j.watched[e.Parent]; ok {
		j.watched[e.Parent] = snap(e.Parent)
	}
	if j.replaying {
		return
	}
	if debug.Observe() {
		debug.Logf("history: record %s\n", e.String())
	}
	j.undone = nil
	if j.cascades(e) {
		last := len(j.done) - 1
		j.done[last] = append(j.done[last], e)
		return
	}
	j.done = append(j.done, step{e})
}

// cascades reports whether e is the removal of an object emptied by the
// previously recorded removal.
func (j *Journal) cascades(e Entry) bool {
	if e.Kind != Removed || len(j.done) == 0 {
		return false
	}
	prev := j.done[len(j.done)-1]
	last := &prev[len(prev)-1]
	return last.Kind == Removed && last.Parent == e.Old &&
		e.Old.Type == ir.ObjectType && e.Old.Len() == 0
}

// Undo reverts the last recorded mutation call and reports whether there
// was one.
func (j *Journal) Undo() bool {
	if len(j.done) == 0 {
		return false
	}
	s := j.done[len(j.done)-1]
	j.done = j.done[:len(j.done)-1]
	j.replay(func() {
		for i := len(s) - 1; i >= 0; i-- {
			if debug.History() {
				debug.Logf("history: undo %s\n", s[i].String())
			}
			s[i].undo()
		}
	})
	j.undone = append(j.undone, s)
	return true
}

// Redo replays the last undone mutation call and reports whether there was
// one.  Recording a new mutation discards what can be redone.
func (j *Journal) Redo() bool {
	if len(j.undone) == 0 {
		return false
	}
	s := j.undone[len(j.undone)-1]
	j.undone = j.undone[:len(j.undone)-1]
	j.replay(func() {
		if debug.History() {
			debug.Logf("history: redo %s\n", s[0].String())
		}
		// the rest of the step follows by cascade
		s[0].redo()
	})
	j.done = append(j.done, s)
	return true
}

func (j *Journal) replay(f func()) {
	j.replaying = true
	defer func() { j.replaying = false }()
	f()
}

func (j *Journal) CanUndo() bool { return len(j.done) != 0 }
func (j *Journal) CanRedo() bool { return len(j.undone) != 0 }

// Entries returns the recorded entries which can be undone, oldest first.
func (j *Journal) Entries() []Entry {
	var res []Entry
	for _, s := range j.done {
		res = append(res, s...)
	}
	return res
}

// Clear forgets all recorded entries.  Watched nodes stay watched.
func (j *Journal) Clear() {
	j.done = nil
	j.undone = nil
}
