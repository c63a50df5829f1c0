// Package match selects the objects of a document with expressions.
//
// An expression is compiled once with Compile and evaluated against every
// object of a tree.  The fields of the object being evaluated are the
// variables of the expression, converted to plain Go values with ToAny:
//
//	m, err := match.Compile(`has("age") && age >= 18`)
//	adults, err := m.Objects(doc)
//
// Besides the builtins of github.com/expr-lang/expr, expressions may call
//
//   - has(name): whether the object has the field name
//   - typeof(name): the type of the field name ("" if absent)
//   - truthy(name): whether the field name is present and not null, false,
//     zero or empty
//   - path(): the path of the object in its document
//   - depth(): the depth of the object in its document
//
// Expressions must evaluate to a bool; any other result is ErrNotBool.
// Field names which are not identifiers can be read with the $env map, as in
// $env["first name"].
package match
