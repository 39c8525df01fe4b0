package querystring

import (
	"fmt"
	"strconv"

	"github.com/speakeasy-api/querystring/internal/utils"
)

// Style is the OpenAPI query parameter style a serialization level is rendered in.
type Style string

var _ fmt.Stringer = (*Style)(nil)

func (s Style) String() string {
	return string(s)
}

const (
	// StyleForm is style=form, explode=true: bare keys, repeated keys for arrays, unprefixed map keys.
	StyleForm Style = "form"
	// StyleDeepObject is style=deepObject: bracketed key paths such as parent[child][0].
	StyleDeepObject Style = "deepObject"
)

// StyleOf returns the style used for a serialization level with the given prefix.
func StyleOf(prefix *string) Style {
	if prefix == nil {
		return StyleForm
	}
	return StyleDeepObject
}

// serializationContext carries the key decoration for one level of the object graph.
// It is built once per level and passed by value.
type serializationContext struct {
	prefix          string
	suffix          string
	containerPrefix string
	containerSuffix string
}

func newContext(prefix *string) serializationContext {
	if prefix == nil {
		// style=form, explode=true, e.g. ?name=cat&type=manx
		return serializationContext{}
	}

	// style=deepObject, e.g. ?id[name]=cat&id[type]=manx
	return serializationContext{
		prefix:          *prefix + "[",
		suffix:          "]",
		containerPrefix: "[",
		containerSuffix: "]",
	}
}

// key renders the name of a field at this level.
func (c serializationContext) key(name string) string {
	return utils.BuildString(c.prefix, name, c.suffix)
}

// indexKey renders the name of the i-th element of a sequence field.
// Form style omits the index, which yields repeated keys.
func (c serializationContext) indexKey(name string, i int) string {
	if c.suffix == "" {
		return c.key(name)
	}
	return utils.BuildString(c.prefix, name, c.suffix, c.containerPrefix, strconv.Itoa(i), c.containerSuffix)
}

// mapKey renders the name of the entry k of a mapping field.
func (c serializationContext) mapKey(name, k string) string {
	if c.suffix == "" {
		return c.key(name)
	}
	return utils.BuildString(c.prefix, name, c.suffix, c.containerPrefix, k, c.containerSuffix)
}
