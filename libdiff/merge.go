package libdiff

import (
	"bytes"
	"fmt"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch turning from into to.  Both
// documents must be objects.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	if from.Type != ir.ObjectType || to.Type != ir.ObjectType {
		return nil, fmt.Errorf("merge patch needs objects, got %s and %s", from.Type, to.Type)
	}
	a, err := strictJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := strictJSON(to)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("could not create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyMergePatch applies a merge patch to the JSON form of doc and returns
// the resulting JSON.
func ApplyMergePatch(doc *ir.Node, patch []byte) ([]byte, error) {
	d, err := strictJSON(doc)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	return res, nil
}

func strictJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeStrict(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
