// Package history records the mutations of documents and undoes them.
//
// A Journal is an ir.Observer.  Watch registers it with every structured
// node of a tree, and with structured nodes later attached to the tree.
// Each mutation is recorded as an Entry; Undo and Redo replay entries in
// reverse or forward with the mutation methods of ir.Node.
//
//	j := history.New()
//	j.Watch(doc)
//	doc.Add("name", ir.FromString("x"))
//	j.Undo() // doc no longer has "name"
//	j.Redo() // and has it again
//
// Removing the last field of an object also removes the object from its
// parent.  Such cascades are recorded as a single step.
//
// Undo restores values and field names, but not always positions: an
// element removed from the middle of an array, or a field removed from an
// object, comes back at the end.
package history
