package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/signadot/jdoc/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	strict        bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the projection of node to w followed by a newline.  With no
// options the output equals node.Text().
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	if es.indent != 0 {
		sep = strings.TrimRight(sep, " ")
	}
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		s, err := quoteString(node.String, es)
		if err != nil {
			return err
		}
		return writeString(w, applyColor(es, ir.StringType, ValueColor, s))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType, ir.NullType:
		return writeString(w, applyColor(es, node.Type, ValueColor, node.Literal()))
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	if len(node.Fields) == 0 {
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ", "); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key, err := quoteString(f.String, es)
		if err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, key)); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ":")+" "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ", "); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	if es.strict && node.Float64 != nil {
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v is not a JSON number at %s", ErrEncoding, f, node.Path())
		}
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, ir.NumberLiteral(node)))
}

func quoteString(v string, es *EncState) (string, error) {
	if !es.strict {
		return `"` + v + `"`, nil
	}
	b := &strings.Builder{}
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
