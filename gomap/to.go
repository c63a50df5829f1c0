package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

// visitKey identifies a reference by address and type, since a struct and
// its first field share an address.
type visitKey struct {
	addr uintptr
	typ  reflect.Type
}

var (
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	stringerType      = reflect.TypeFor[fmt.Stringer]()
)

// toIR converts a reflect.Value to an IR node.
// fieldPath is used for error reporting (e.g., "person.address.street").
// visited tracks pointer addresses to detect circular references.
func (m *Mapper) toIR(val reflect.Value, fieldPath string, visited map[visitKey]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	kind := val.Kind()
	switch kind {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if val.IsNil() {
			return ir.Null(), nil
		}
	}
	if kind == reflect.Pointer {
		ptrAddr := visitKey{val.Pointer(), val.Type()}
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, cycleError(fieldPath, prevPath)
		}
		visited[ptrAddr] = fieldPath
		// the same pointer may appear again in a different branch
		defer delete(visited, ptrAddr)
	}

	if fields, ok := m.recordFields(val); ok {
		return m.fieldsToIR(fields, fieldPath, visited)
	}
	if text, ok, err := marshalText(val); ok {
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return ir.FromString(text), nil
	}

	switch kind {
	case reflect.Pointer, reflect.Interface:
		return m.toIR(val.Elem(), fieldPath, visited)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := m.enumName(val); ok {
			return ir.FromString(s), nil
		}
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if s, ok := m.enumName(val); ok {
			return ir.FromString(s), nil
		}
		u := val.Uint()
		if u > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(u, 10)), nil
		}
		return ir.FromInt(int64(u)), nil

	case reflect.Float32:
		// keep the shortest float32 literal rather than its float64 widening
		f, _ := strconv.ParseFloat(strconv.FormatFloat(val.Float(), 'g', -1, 32), 64)
		return ir.FromFloat(f), nil

	case reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return m.sliceToIR(val, fieldPath, visited)

	case reflect.Map:
		return m.mapToIR(val, fieldPath, visited)

	case reflect.Struct:
		return m.structToIR(val, fieldPath, visited)

	default:
		// chan, func, complex and unsafe pointers have no document shape
		if debug.Map() {
			debug.Logf("gomap: %s of type %s mapped to null\n", pathOrRoot(fieldPath), val.Type())
		}
		return ir.Null(), nil
	}
}

func (m *Mapper) enumName(val reflect.Value) (string, bool) {
	if !m.cfg.Enums || !val.CanInterface() || !val.Type().Implements(stringerType) {
		return "", false
	}
	return val.Interface().(fmt.Stringer).String(), true
}

// marshalText uses encoding.TextMarshaler on the value or, if addressable,
// its pointer.
func marshalText(val reflect.Value) (string, bool, error) {
	if !val.CanInterface() {
		return "", false, nil
	}
	var tm encoding.TextMarshaler
	switch {
	case val.Type().Implements(textMarshalerType):
		tm = val.Interface().(encoding.TextMarshaler)
	case val.CanAddr() && val.Addr().Type().Implements(textMarshalerType):
		tm = val.Addr().Interface().(encoding.TextMarshaler)
	default:
		return "", false, nil
	}
	text, err := tm.MarshalText()
	return string(text), true, err
}

// sliceToIR converts a slice or array to an IR array node.
func (m *Mapper) sliceToIR(val reflect.Value, fieldPath string, visited map[visitKey]string) (*ir.Node, error) {
	// For slices, check if we've seen this slice before (by its underlying array pointer)
	if val.Kind() == reflect.Slice && val.Len() > 0 {
		slicePtr := visitKey{val.Pointer(), val.Type()}
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, cycleError(fieldPath, prevPath)
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		elemNode, err := m.toIR(val.Index(i), elemPath, visited)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

// mapToIR converts a map with string keys to an IR object node, with the
// keys in sorted order.
func (m *Mapper) mapToIR(val reflect.Value, fieldPath string, visited map[visitKey]string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
			Err:       ErrMapKey,
		}
	}

	mapPtr := visitKey{val.Pointer(), val.Type()}
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, cycleError(fieldPath, prevPath)
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	irMap := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valueNode, err := m.toIR(iter.Value(), joinPath(fieldPath, key), visited)
		if err != nil {
			return nil, err
		}
		irMap[key] = valueNode
	}
	return ir.FromMap(irMap), nil
}

// structToIR converts a struct to an IR object node with its exported
// fields in declaration order.  Untagged embedded structs are flattened.
// A struct without exported fields has no document shape and maps to null.
func (m *Mapper) structToIR(val reflect.Value, fieldPath string, visited map[visitKey]string) (*ir.Node, error) {
	typ := val.Type()
	res := &fieldSet{}
	exported := 0

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() && !(field.Anonymous && field.Type.Kind() == reflect.Struct) {
			continue
		}
		exported++
		fieldVal := val.Field(i)

		dirs, err := tagDirectives(field.Tag.Get(m.cfg.TagKey))
		if err != nil {
			return nil, &MarshalError{
				FieldPath: joinPath(fieldPath, field.Name),
				Message:   err.Error(),
				Err:       err,
			}
		}

		if field.Anonymous && len(dirs) == 0 && isStructish(field.Type) {
			embedded, err := m.toIR(fieldVal, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			if embedded.Type != ir.ObjectType {
				if debug.Map() {
					debug.Logf("gomap: embedded %s of type %s mapped to %s, dropped\n", pathOrRoot(joinPath(fieldPath, field.Name)), field.Type, embedded.Type)
				}
				continue
			}
			for j, f := range embedded.Fields {
				if err := res.add(f.String, embedded.Values[j], fieldPath); err != nil {
					return nil, err
				}
			}
			continue
		}

		name, node, err := m.fieldToIR(field.Name, collect(dirs), fieldVal, fieldPath, visited)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		if err := res.add(name, node, fieldPath); err != nil {
			return nil, err
		}
	}

	if exported == 0 {
		if debug.Map() {
			debug.Logf("gomap: %s of type %s has no exported fields, mapped to null\n", pathOrRoot(fieldPath), typ)
		}
		return ir.Null(), nil
	}
	return res.node(), nil
}

// fieldsToIR converts explicitly described fields to an IR object node.
// Field values are dispatched on their runtime type.  As with map keys, an
// empty name is a valid field.
func (m *Mapper) fieldsToIR(fields []RecordField, fieldPath string, visited map[visitKey]string) (*ir.Node, error) {
	res := &fieldSet{}
	for i := range fields {
		f := &fields[i]
		name, node, err := m.fieldToIR(f.Name, collect(f.Directives), reflect.ValueOf(f.Value), fieldPath, visited)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		if err := res.add(name, node, fieldPath); err != nil {
			return nil, err
		}
	}
	return res.node(), nil
}

// fieldToIR applies the directives of a field and maps its value.  A nil
// node with a nil error means the field is excluded.
func (m *Mapper) fieldToIR(declared string, d directives, val reflect.Value, fieldPath string, visited map[visitKey]string) (string, *ir.Node, error) {
	if d.omit {
		return "", nil, nil
	}
	name := declared
	if d.hasID {
		if strings.TrimSpace(d.id) == "" {
			return "", nil, &MarshalError{
				FieldPath: joinPath(fieldPath, declared),
				Message:   fmt.Sprintf("blank field name override for %s", declared),
				Err:       ErrInvalidKey,
			}
		}
		name = d.id
	}
	if d.asString {
		return name, ir.FromString(stringify(val)), nil
	}
	node, err := m.toIR(val, joinPath(fieldPath, name), visited)
	if err != nil {
		return "", nil, err
	}
	return name, node, nil
}

// fieldSet gathers the fields of an object in order.
type fieldSet struct {
	kvs  []ir.KeyVal
	seen map[string]bool
}

func (s *fieldSet) add(name string, v *ir.Node, fieldPath string) error {
	if s.seen[name] {
		return &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("field name conflict: %q occurs more than once", name),
		}
	}
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	s.seen[name] = true
	s.kvs = append(s.kvs, ir.KeyVal{Key: name, Val: v})
	return nil
}

func (s *fieldSet) node() *ir.Node {
	return ir.FromKeyVals(s.kvs)
}

// stringify renders the runtime value of val as fmt would, looking through
// pointers and interfaces which have no String method.  Nil renders as
// null.
func stringify(val reflect.Value) string {
	for {
		if !val.IsValid() {
			return "null"
		}
		switch val.Kind() {
		case reflect.Pointer, reflect.Interface:
			if val.IsNil() {
				return "null"
			}
			if val.CanInterface() {
				switch val.Interface().(type) {
				case fmt.Stringer, error:
					return fmt.Sprint(val.Interface())
				}
			}
			val = val.Elem()
			continue
		}
		if !val.CanInterface() {
			return val.String()
		}
		return fmt.Sprint(val.Interface())
	}
}

func isStructish(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}

func pathOrRoot(fieldPath string) string {
	if fieldPath == "" {
		return "<root>"
	}
	return fieldPath
}

func cycleError(fieldPath, prevPath string) error {
	return &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("%s refers back to %s", pathOrRoot(fieldPath), pathOrRoot(prevPath)),
		Err:       ErrCycle,
	}
}
