// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of *Node values.  Node is a recursive tagged union:
// the Type field selects the variant and thus which other fields carry the
// payload.
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or the Number literal as a fallback
//   - StringType: String
//   - ArrayType: Values, in order; the same node may occur more than once
//   - ObjectType: Fields[i] is the string key for Values[i]; keys are unique
//
// Documents are never parsed from text.  They are built with the leaf
// constructors and the Add method of structured nodes, or from Go values by
// package gomap.
//
//	obj := ir.NewObject()
//	obj.Add("name", ir.FromString("alice"))
//	tags := ir.NewArray()
//	tags.Add("", ir.FromString("admin"))
//	obj.Add("tags", tags)
//	obj.Text() // {"name": "alice", "tags": ["admin"]}
//
// # Parents
//
// Each node keeps a Parent link to the structured node holding it (nil at
// the root).  Depth and Path are derived from the parent chain on demand and
// are never cached.  Attaching a node to another structured node overwrites
// its parent link.
//
// # Mutation and Observers
//
// Add, Modify and Remove mutate objects and arrays.  Every successful
// mutation notifies the Observers registered on the mutated node, in
// registration order, once the change is visible.  Modify and Remove of a
// node which is not a child are silent no-ops, so replaying a journal of
// mutations is idempotent.  Removing the last field of an object removes
// the object from its own parent, recursively.
//
// # Traversal and Queries
//
// Accept drives a Visitor over a tree in pre-order; Walk does the same with
// a closure.  PropertyValues, ObjectsWithProperties, PropertyHasSameType,
// ItemsHaveSameStructure and Find are built on Accept.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use.  Callers needing concurrent access
// must synchronize, for example with one mutex per document.
package ir
