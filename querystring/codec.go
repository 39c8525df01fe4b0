// Package querystring renders structured objects into URL query strings.
//
// The top level of an object is rendered in OpenAPI style=form, explode=true:
//
//	Limit=10&SortBy=Name&SortBy=DateCreated
//
// Everything below the top level is rendered in style=deepObject, with bracketed key paths:
//
//	UserData[PlayCount]=3&MediaSources[0][Id]=abc
//
// Fields are rendered in the order the object declares them, absent fields are skipped,
// and only values are percent-encoded; names and brackets are written as-is.
package querystring

import (
	"github.com/speakeasy-api/querystring/internal/utils"
)

// Codec renders objects into query strings using pluggable value rendering and encoding.
// The zero value uses URLEncode and ValueToString.
type Codec struct {
	// URLEncode percent-encodes a rendered value.
	URLEncode func(string) string
	// ValueToString renders a scalar value to its canonical text form.
	ValueToString func(any) string
}

// DefaultCodec is the codec used by the package level functions.
var DefaultCodec = Codec{
	URLEncode:     URLEncode,
	ValueToString: ValueToString,
}

// Serialize renders obj as a top level (form style) query string.
func Serialize(obj Object) string {
	return DefaultCodec.Serialize(obj)
}

// SerializeWithPrefix renders obj with the given prefix; a nil prefix is equivalent to Serialize.
func SerializeWithPrefix(obj Object, prefix *string) string {
	return DefaultCodec.SerializeWithPrefix(obj, prefix)
}

// Serialize renders obj as a top level (form style) query string.
func (c Codec) Serialize(obj Object) string {
	return c.SerializeWithPrefix(obj, nil)
}

// SerializeWithPrefix renders obj with the given prefix.
// A nil prefix renders in form style; a non-nil prefix renders obj's fields as prefix[Field].
// The prefix is written verbatim and must already be escaped by the caller.
// It panics with ErrNilObject if obj is nil.
func (c Codec) SerializeWithPrefix(obj Object, prefix *string) string {
	if isNil(obj) {
		panic(ErrNilObject)
	}

	return utils.JoinNonEmpty("&", c.fragments(obj, prefix)...)
}

// Fragments returns the individual key=value fragments of obj, in output order.
func (c Codec) Fragments(obj Object, prefix *string) []string {
	if isNil(obj) {
		panic(ErrNilObject)
	}

	return c.fragments(obj, prefix)
}

func (c Codec) fragments(obj Object, prefix *string) []string {
	ctx := newContext(prefix)

	var out []string
	for _, f := range obj.QueryFields() {
		if !f.present {
			continue
		}

		switch f.Kind {
		case KindScalar:
			out = append(out, c.fragment(ctx.key(f.Name), f.value))
		case KindSequence:
			// Nil elements render as an empty value and keep their index.
			for i, e := range f.elems {
				out = append(out, c.fragment(ctx.indexKey(f.Name, i), e))
			}
		case KindObjectSequence:
			for i, o := range f.objects {
				if o == nil {
					continue
				}
				child := ctx.indexKey(f.Name, i)
				out = append(out, c.fragments(o, &child)...)
			}
		case KindMapping:
			for _, e := range f.entries {
				out = append(out, c.fragment(ctx.mapKey(f.Name, e.key), e.value))
			}
		case KindNested:
			child := ctx.key(f.Name)
			out = append(out, c.fragments(f.object, &child)...)
		}
	}

	return out
}

func (c Codec) fragment(key string, value any) string {
	return utils.BuildString(key, "=", c.encode(c.render(value)))
}

func (c Codec) encode(s string) string {
	if c.URLEncode == nil {
		return URLEncode(s)
	}
	return c.URLEncode(s)
}

func (c Codec) render(v any) string {
	if c.ValueToString == nil {
		return ValueToString(v)
	}
	return c.ValueToString(v)
}
