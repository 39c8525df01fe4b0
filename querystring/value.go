package querystring

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// ValueToString renders a scalar to its canonical text form.
//
//   - nil and nil pointers render as the empty string
//   - time.Time renders as ISO-8601 with offset (RFC 3339, nanoseconds trimmed)
//   - encoding.TextMarshaler (identifiers such as uuid.UUID) renders via MarshalText
//   - fmt.Stringer (enums) renders via String
//   - strings, booleans, integers and floats render in their shortest exact form
//
// Any other value panics with ErrUnsupportedValue.
func ValueToString(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return ValueToString(rv.Elem().Interface())
	}

	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			panic(ErrUnsupportedValue.Wrap(err))
		}
		return string(b)
	case fmt.Stringer:
		return t.String()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}

	panic(ErrUnsupportedValue.Wrapf("%T", v))
}
