// Package gomap maps Go values to documents.
//
// # Usage
//
//	type User struct {
//	    Name     string
//	    Password string `jdoc:"omit"`
//	    Group    int    `jdoc:"field=group_id,string"`
//	}
//	node, err := gomap.ToIR(User{Name: "alice", Group: 7})
//	// {"Name": "alice", "group_id": "7"}
//
// # Dispatch
//
// Values map by kind: nil to null, structs to objects (exported fields in
// declaration order), slices and arrays to arrays, string keyed maps to
// objects with sorted keys, numbers, strings and bools to leaves.  Types
// implementing encoding.TextMarshaler map to strings, as do integer types
// implementing fmt.Stringer (enums).  Kinds with no document shape, such as
// channels and funcs, and structs without exported fields map to null.
//
// # Directives
//
// The jdoc struct tag holds field directives:
//
//   - omit (or "-"): leave the field out
//   - field=name: use name as the object key; a blank name is ErrInvalidKey
//   - string: map the value's fmt rendering as a string
//
// Types which cannot carry tags can be described explicitly, either by
// implementing Recorder or with RegisterSchema on a Mapper.  The same
// directives are then given as Exclude, CustomID and ForceString.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - document representation
package gomap
