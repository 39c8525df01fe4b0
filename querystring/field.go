package querystring

import (
	"reflect"

	"github.com/speakeasy-api/querystring/internal/sliceutil"
	"github.com/speakeasy-api/querystring/sequencedmap"
)

// Object is a structured object whose fields can be rendered into a query string.
// QueryFields returns the fields in declaration order; that order is kept in the output.
type Object interface {
	QueryFields() []Field
}

// Kind identifies how a Field is rendered.
type Kind int

const (
	// KindScalar is a single string, number, boolean, date, enum or identifier.
	KindScalar Kind = iota
	// KindSequence is an ordered sequence of scalars.
	KindSequence
	// KindObjectSequence is an ordered sequence of nested objects.
	KindObjectSequence
	// KindMapping is a string keyed mapping to scalars.
	KindMapping
	// KindNested is a single nested object.
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindObjectSequence:
		return "objectSequence"
	case KindMapping:
		return "mapping"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

type entry struct {
	key   string
	value any
}

// Field is a named, optionally present value of a structured object.
// Build one with Scalar, Optional, Sequence, ObjectSequence, Mapping, OrderedMapping or Nested.
type Field struct {
	Name string
	Kind Kind

	present bool
	value   any
	elems   []any
	objects []Object
	entries []entry
	object  Object
}

// Present reports whether the field carries a value. Absent fields are never serialized.
func (f Field) Present() bool {
	return f.present
}

// Absent returns a field that is never serialized.
func Absent(name string) Field {
	return Field{Name: name}
}

// Scalar returns a present scalar field, unless v is nil.
func Scalar(name string, v any) Field {
	return Field{
		Name:    name,
		Kind:    KindScalar,
		present: !isNil(v),
		value:   v,
	}
}

// Optional returns a scalar field that is absent when v is nil.
func Optional[T any](name string, v *T) Field {
	if v == nil {
		return Absent(name)
	}
	return Scalar(name, *v)
}

// Sequence returns a sequence of scalars. A nil slice is absent, an empty slice is present but renders nothing.
func Sequence[T any](name string, s []T) Field {
	if s == nil {
		return Absent(name)
	}

	return Field{
		Name:    name,
		Kind:    KindSequence,
		present: true,
		elems:   sliceutil.Boxed(s),
	}
}

// ObjectSequence returns a sequence of nested objects. Nil elements are kept so indexes stay stable.
func ObjectSequence[T Object](name string, s []T) Field {
	if s == nil {
		return Absent(name)
	}

	objects := make([]Object, len(s))
	for i, o := range s {
		if !isNil(o) {
			objects[i] = o
		}
	}

	return Field{
		Name:    name,
		Kind:    KindObjectSequence,
		present: true,
		objects: objects,
	}
}

// Mapping returns a mapping of scalars from a built-in map. Keys are rendered in ascending order.
func Mapping[V any](name string, m map[string]V) Field {
	if m == nil {
		return Absent(name)
	}

	return OrderedMapping(name, sequencedmap.FromSorted(m))
}

// OrderedMapping returns a mapping of scalars that renders in insertion order.
func OrderedMapping[V any](name string, m *sequencedmap.Map[string, V]) Field {
	if m == nil {
		return Absent(name)
	}

	entries := make([]entry, 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, entry{key: k, value: v})
	}

	return mappingField(name, entries)
}

// Nested returns a nested object field that is absent when o is nil.
func Nested(name string, o Object) Field {
	if isNil(o) {
		return Absent(name)
	}

	return Field{
		Name:    name,
		Kind:    KindNested,
		present: true,
		object:  o,
	}
}

func mappingField(name string, entries []entry) Field {
	return Field{
		Name:    name,
		Kind:    KindMapping,
		present: true,
		entries: entries,
	}
}

// isNil reports whether v is nil or a typed nil pointer, map, slice, interface or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
