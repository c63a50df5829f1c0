package gomap

import (
	"reflect"

	"github.com/signadot/jdoc/ir"
)

// Mapper converts Go values to documents.  It holds the mapping options and
// the explicit schemas registered with RegisterSchema.
type Mapper struct {
	cfg     *mapConfig
	schemas map[reflect.Type]*schema
}

func NewMapper(opts ...MapOption) *Mapper {
	return &Mapper{
		cfg:     newMapConfig(opts...),
		schemas: map[reflect.Type]*schema{},
	}
}

// ToIR converts v to a document using reflection and struct tags, or the
// fields given by a registered schema or a Recorder implementation.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	return NewMapper(opts...).ToIR(v)
}

func (m *Mapper) ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[visitKey]string) // Track visited references by address and field path
	return m.toIR(reflect.ValueOf(v), "", visited)
}
