package querystring

import (
	"reflect"
	"strings"

	"github.com/speakeasy-api/querystring/internal/utils"
)

// Pair is a single query parameter whose name and value are already percent-encoded.
type Pair struct {
	Name  string
	Value string
}

func (p Pair) String() string {
	return p.Name + "=" + p.Value
}

// CollectionFormat is how an array valued operation parameter is written to the query string.
type CollectionFormat string

const (
	// CollectionFormatCSV joins values with commas: ids=a%2Cb.
	CollectionFormatCSV CollectionFormat = "csv"
	// CollectionFormatSSV joins values with spaces: ids=a%20b.
	CollectionFormatSSV CollectionFormat = "ssv"
	// CollectionFormatTSV joins values with tabs: ids=a%09b.
	CollectionFormatTSV CollectionFormat = "tsv"
	// CollectionFormatPipes joins values with pipes: ids=a%7Cb.
	CollectionFormatPipes CollectionFormat = "pipes"
	// CollectionFormatMulti repeats the parameter for each value: ids=a&ids=b.
	CollectionFormatMulti CollectionFormat = "multi"
)

func (f CollectionFormat) delimiter() (string, bool) {
	switch f {
	case CollectionFormatCSV, "":
		return ",", true
	case CollectionFormatSSV:
		return " ", true
	case CollectionFormatTSV:
		return "\t", true
	case CollectionFormatPipes:
		return "|", true
	default:
		return "", false
	}
}

// ParameterToPairs returns the pair for a single valued operation parameter.
// An empty name or a nil value yields no pairs.
func ParameterToPairs(name string, value any) []Pair {
	return DefaultCodec.ParameterToPairs(name, value)
}

// CollectionToPairs returns the pairs for an array valued operation parameter, see Codec.CollectionToPairs.
func CollectionToPairs(format CollectionFormat, name string, values any) []Pair {
	return DefaultCodec.CollectionToPairs(format, name, values)
}

// ParameterToPairs returns the pair for a single valued operation parameter.
// An empty name or a nil value yields no pairs.
func (c Codec) ParameterToPairs(name string, value any) []Pair {
	if name == "" || isNil(value) {
		return nil
	}

	return []Pair{{Name: c.encode(name), Value: c.encode(c.render(value))}}
}

// CollectionToPairs returns the pairs for an array valued operation parameter.
// values must be a slice or array; an empty name or a nil or empty slice yields no pairs.
// CollectionFormatMulti yields one pair per element, every other format yields a single pair
// of encoded elements joined by the encoded delimiter. An empty format is csv.
// It panics with ErrUnknownCollectionFormat for any other format.
func (c Codec) CollectionToPairs(format CollectionFormat, name string, values any) []Pair {
	if name == "" || isNil(values) {
		return nil
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		panic(ErrUnsupportedValue.Wrapf("collection parameter %s of type %T", name, values))
	}
	if rv.Len() == 0 {
		return nil
	}

	encodedName := c.encode(name)

	if format == CollectionFormatMulti {
		pairs := make([]Pair, 0, rv.Len())
		for i := range rv.Len() {
			pairs = append(pairs, Pair{Name: encodedName, Value: c.encode(c.render(rv.Index(i).Interface()))})
		}
		return pairs
	}

	delimiter, ok := format.delimiter()
	if !ok {
		panic(ErrUnknownCollectionFormat.Wrapf("%q", format))
	}

	encoded := make([]string, rv.Len())
	for i := range rv.Len() {
		encoded[i] = c.encode(c.render(rv.Index(i).Interface()))
	}

	return []Pair{{Name: encodedName, Value: strings.Join(encoded, c.encode(delimiter))}}
}

// BuildURL appends the pairs, then every non-empty extra query string, to base+path.
// The ? separator is only added when there is at least one parameter.
func BuildURL(base, path string, pairs []Pair, extra ...string) string {
	parts := make([]string, 0, len(pairs)+len(extra))
	for _, p := range pairs {
		parts = append(parts, p.String())
	}
	parts = append(parts, extra...)

	query := utils.JoinNonEmpty("&", parts...)
	if query == "" {
		return base + path
	}

	return utils.BuildString(base, path, "?", query)
}
