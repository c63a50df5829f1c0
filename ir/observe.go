package ir

import "slices"

// Observer receives the structural mutations of the structured nodes it is
// registered with.  Callbacks run synchronously, after the mutation is
// visible, and before the mutating call returns.
type Observer interface {
	ElementAdded(parent *Node, field string, child *Node)
	ElementModified(parent, old, new *Node)
	ElementRemoved(parent, child *Node)
}

// ObserverFuncs adapts a set of optional callbacks to Observer.  Register it
// by pointer so it can later be removed.
type ObserverFuncs struct {
	Added    func(parent *Node, field string, child *Node)
	Modified func(parent, old, new *Node)
	Removed  func(parent, child *Node)
}

func (o *ObserverFuncs) ElementAdded(parent *Node, field string, child *Node) {
	if o.Added != nil {
		o.Added(parent, field, child)
	}
}

func (o *ObserverFuncs) ElementModified(parent, old, new *Node) {
	if o.Modified != nil {
		o.Modified(parent, old, new)
	}
}

func (o *ObserverFuncs) ElementRemoved(parent, child *Node) {
	if o.Removed != nil {
		o.Removed(parent, child)
	}
}

// AddObserver registers o with y.  Observers are compared by identity, so o
// must have a comparable dynamic type, typically a pointer.
func (y *Node) AddObserver(o Observer) {
	y.observers = append(y.observers, o)
}

// RemoveObserver unregisters the first registration of o.  Removing an
// observer which is not registered does nothing.
func (y *Node) RemoveObserver(o Observer) {
	i := slices.Index(y.observers, o)
	if i == -1 {
		return
	}
	y.observers = slices.Delete(y.observers, i, i+1)
}

// Observers returns a copy of the observers registered with y.
func (y *Node) Observers() []Observer {
	return slices.Clone(y.observers)
}

// notify calls f on a snapshot of the observers.  Observers registered
// during the round are not called; those unregistered during the round and
// not yet called are skipped.
func (y *Node) notify(f func(Observer)) {
	if len(y.observers) == 0 {
		return
	}
	snap := slices.Clone(y.observers)
	for _, o := range snap {
		if !slices.Contains(y.observers, o) {
			continue
		}
		f(o)
	}
}
