// Package encode writes documents as text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)  // {"age": 30, "name": "alice"}
//
//	// Valid JSON, indented by two spaces, in color
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeStrict(true),
//	    encode.EncodeIndent(2),
//	    encode.EncodeColors(encode.NewColors()))
//
// Without options the output is the canonical projection of
// (*ir.Node).Text.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - document representation
//   - github.com/signadot/jdoc/gomap - Go values to documents
package encode
