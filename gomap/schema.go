package gomap

import "reflect"

// Field describes one field of the record type T: its declared name, how to
// read it, and its directives.
type Field[T any] struct {
	Name       string
	Get        func(T) any
	Directives []Directive
}

// RecordField is a field value supplied by a Recorder.
type RecordField struct {
	Name       string
	Value      any
	Directives []Directive
}

// Recorder is implemented by types which describe their own fields.  The
// fields are mapped in the order returned.
type Recorder interface {
	DocFields() []RecordField
}

type schema struct {
	fields func(reflect.Value) []RecordField
}

// RegisterSchema makes m map values of type T as objects with the given
// fields, in order, instead of inspecting T by reflection.  Registering T
// again replaces its schema.
func RegisterSchema[T any](m *Mapper, fields ...Field[T]) {
	fs := append([]Field[T](nil), fields...)
	m.schemas[reflect.TypeFor[T]()] = &schema{
		fields: func(v reflect.Value) []RecordField {
			t := v.Interface().(T)
			res := make([]RecordField, len(fs))
			for i := range fs {
				res[i] = RecordField{
					Name:       fs[i].Name,
					Value:      fs[i].Get(t),
					Directives: fs[i].Directives,
				}
			}
			return res
		},
	}
}

var recorderType = reflect.TypeFor[Recorder]()

// recordFields returns the explicitly described fields of val, if any.
func (m *Mapper) recordFields(val reflect.Value) ([]RecordField, bool) {
	if !val.CanInterface() {
		return nil, false
	}
	if s := m.schemas[val.Type()]; s != nil {
		return s.fields(val), true
	}
	if val.Type().Implements(recorderType) {
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return nil, false
		}
		return val.Interface().(Recorder).DocFields(), true
	}
	return nil, false
}
