package querystring

import (
	"encoding"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
	"time"
)

type untypedMap interface {
	AllUntyped() iter.Seq2[any, any]
}

var (
	objectType        = reflect.TypeFor[Object]()
	untypedMapType    = reflect.TypeFor[untypedMap]()
	timeType          = reflect.TypeFor[time.Time]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	stringerType      = reflect.TypeFor[fmt.Stringer]()
)

// Marshal renders v as a top level query string.
// v is either an Object or a struct (or pointer to struct) described by `query` tags.
func Marshal(v any) string {
	return DefaultCodec.Serialize(asObject(v))
}

// MarshalWithPrefix renders v with the given prefix, see SerializeWithPrefix.
func MarshalWithPrefix(v any, prefix *string) string {
	return DefaultCodec.SerializeWithPrefix(asObject(v), prefix)
}

// FieldsOf derives the fields of a struct from its `query` tags.
//
// Exported fields are used in declaration order. The tag gives the query name and
// options; an untagged field uses its Go name, and `query:"-"` skips the field:
//
//	type Filter struct {
//		Genres   []string          `query:"Genres"`
//		Limit    *int              `query:"Limit"`
//		Page     int               `query:"Page,omitempty"`
//		Internal string            `query:"-"`
//	}
//
// Nil pointers, slices and maps are absent. omitempty also treats zero values as absent.
// Embedded structs without a tag are flattened into the parent.
// It panics with ErrNotStruct if v is not a struct or pointer to struct.
func FieldsOf(v any) []Field {
	return Struct(v).QueryFields()
}

// Struct adapts a struct, or pointer to struct, into an Object using FieldsOf.
func Struct(v any) Object {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			panic(ErrNilObject)
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		panic(ErrNotStruct.Wrapf("%T", v))
	}

	return structObject{v: rv}
}

type structObject struct {
	v reflect.Value
}

func (s structObject) QueryFields() []Field {
	return structFields(s.v)
}

func asObject(v any) Object {
	if o, ok := v.(Object); ok {
		return o
	}
	return Struct(v)
}

type tagOptions struct {
	name      string
	omitEmpty bool
	skip      bool
}

func parseTag(sf reflect.StructField) tagOptions {
	tag, tagged := sf.Tag.Lookup("query")
	if tag == "-" {
		return tagOptions{skip: true}
	}

	name, rest, _ := strings.Cut(tag, ",")
	opts := tagOptions{name: name}
	if !tagged || name == "" {
		opts.name = sf.Name
	}
	opts.omitEmpty = slices.Contains(strings.Split(rest, ","), "omitempty")

	return opts
}

func structFields(rv reflect.Value) []Field {
	t := rv.Type()

	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		fv := rv.Field(i)

		// Exported fields of unexported embedded structs are still promoted.
		if sf.Anonymous && sf.Tag.Get("query") == "" {
			if inner, ok := embeddedStruct(fv); ok {
				fields = append(fields, structFields(inner)...)
				continue
			}
		}

		if !sf.IsExported() {
			continue
		}

		opts := parseTag(sf)
		if opts.skip {
			continue
		}

		if opts.omitEmpty && fv.IsZero() {
			fields = append(fields, Absent(opts.name))
			continue
		}

		fields = append(fields, fieldOf(opts.name, fv))
	}

	return fields
}

func embeddedStruct(fv reflect.Value) (reflect.Value, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return reflect.Value{}, false
		}
		fv = fv.Elem()
	}

	if fv.Kind() != reflect.Struct || isScalarType(fv.Type()) || implementsObject(fv) {
		return reflect.Value{}, false
	}

	return fv, true
}

func fieldOf(name string, fv reflect.Value) Field {
	t := fv.Type()

	if isNilValue(fv) {
		return Absent(name)
	}

	switch {
	case implementsObject(fv):
		return Nested(name, objectOf(fv))
	case t.Implements(untypedMapType):
		return untypedMappingField(name, fv.Interface().(untypedMap))
	case reflect.PointerTo(t).Implements(untypedMapType):
		// sequencedmap.Map held by value, its methods are on the pointer.
		return untypedMappingField(name, addressOf(fv).Interface().(untypedMap))
	case isScalarType(t):
		return Scalar(name, fv.Interface())
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return fieldOf(name, fv.Elem())
	case reflect.Slice, reflect.Array:
		if isScalarType(t.Elem()) || (t.Elem().Kind() == reflect.Interface && holdsScalars(name, fv)) {
			elems := make([]any, fv.Len())
			for i := range fv.Len() {
				elems[i] = fv.Index(i).Interface()
			}
			return Field{Name: name, Kind: KindSequence, present: true, elems: elems}
		}

		objects := make([]Object, fv.Len())
		for i := range fv.Len() {
			ev := fv.Index(i)
			if ev.Kind() == reflect.Interface && !ev.IsNil() {
				ev = ev.Elem()
			}
			if isNilValue(ev) {
				continue
			}
			objects[i] = objectOf(ev)
		}
		return Field{Name: name, Kind: KindObjectSequence, present: true, objects: objects}
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			panic(ErrUnsupportedValue.Wrapf("field %s: map key type %s is not a string", name, t.Key()))
		}

		keys := fv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})

		entries := make([]entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, entry{key: k.String(), value: fv.MapIndex(k).Interface()})
		}
		return mappingField(name, entries)
	case reflect.Struct:
		return Nested(name, objectOf(fv))
	}

	panic(ErrUnsupportedValue.Wrapf("field %s of type %s", name, t))
}

// holdsScalars reports whether the non-nil elements of an interface slice are all scalars.
// It panics with ErrUnsupportedValue if scalars and objects are mixed.
func holdsScalars(name string, fv reflect.Value) bool {
	scalars, objects := 0, 0
	for i := range fv.Len() {
		ev := fv.Index(i)
		if isNilValue(ev) {
			continue
		}
		if isScalarType(ev.Elem().Type()) {
			scalars++
		} else {
			objects++
		}
	}

	if scalars > 0 && objects > 0 {
		panic(ErrUnsupportedValue.Wrapf("field %s mixes scalars and objects", name))
	}

	return objects == 0
}

// addressOf returns a pointer to v, copying v when it is not addressable.
func addressOf(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}

	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

func untypedMappingField(name string, m untypedMap) Field {
	var entries []entry
	for k, v := range m.AllUntyped() {
		entries = append(entries, entry{key: ValueToString(k), value: v})
	}
	return mappingField(name, entries)
}

func implementsObject(v reflect.Value) bool {
	if v.Type().Implements(objectType) {
		return true
	}
	return v.CanAddr() && reflect.PointerTo(v.Type()).Implements(objectType)
}

// objectOf returns v as an Object, preferring its own QueryFields over struct tags.
func objectOf(v reflect.Value) Object {
	if v.Type().Implements(objectType) {
		return v.Interface().(Object)
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(objectType) {
		return v.Addr().Interface().(Object)
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		panic(ErrNotStruct.Wrapf("%s", v.Type()))
	}

	return structObject{v: v}
}

func isScalarType(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == timeType || t.Implements(textMarshalerType) || t.Implements(stringerType) {
		return true
	}

	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
