package querystring_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/speakeasy-api/querystring/pointer"
	"github.com/speakeasy-api/querystring/querystring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sortOrder string

func (s sortOrder) String() string {
	return string(s)
}

type plainName string

type brokenMarshaler struct{}

func (brokenMarshaler) MarshalText() ([]byte, error) {
	return nil, errors.New("cannot render")
}

func TestValueToString_Success(t *testing.T) {
	t.Parallel()

	cet := time.FixedZone("CET", 60*60)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "typed nil pointer", input: (*int)(nil), expected: ""},
		{name: "string", input: "Action", expected: "Action"},
		{name: "empty string", input: "", expected: ""},
		{name: "bool", input: true, expected: "true"},
		{name: "int", input: 42, expected: "42"},
		{name: "negative int64", input: int64(-9000000000), expected: "-9000000000"},
		{name: "int32", input: int32(7), expected: "7"},
		{name: "uint64", input: uint64(18446744073709551615), expected: "18446744073709551615"},
		{name: "float64 fraction", input: 1.5, expected: "1.5"},
		{name: "float64 integral", input: float64(3), expected: "3"},
		{name: "float64 large", input: 1e21, expected: "1000000000000000000000"},
		{name: "float32", input: float32(0.1), expected: "0.1"},
		{name: "pointer to int", input: pointer.From(5), expected: "5"},
		{name: "pointer to pointer", input: pointer.From(pointer.From("x")), expected: "x"},
		{name: "time utc", input: time.Date(2024, 3, 1, 19, 0, 0, 500000000, time.UTC), expected: "2024-03-01T19:00:00.5Z"},
		{name: "time with offset", input: time.Date(2024, 3, 1, 20, 0, 0, 0, cet), expected: "2024-03-01T20:00:00+01:00"},
		{name: "pointer to time", input: pointer.From(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), expected: "2024-01-02T03:04:05Z"},
		{name: "uuid", input: uuid.MustParse("5c5b7b9a-9d5e-4c4b-8f3a-1f2e3d4c5b6a"), expected: "5c5b7b9a-9d5e-4c4b-8f3a-1f2e3d4c5b6a"},
		{name: "stringer enum", input: sortOrder("Descending"), expected: "Descending"},
		{name: "named string without stringer", input: plainName("Movie"), expected: "Movie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, querystring.ValueToString(tt.input))
		})
	}
}

func TestValueToString_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{name: "struct", input: struct{ A int }{A: 1}},
		{name: "slice", input: []string{"a"}},
		{name: "map", input: map[string]string{}},
		{name: "failing text marshaler", input: brokenMarshaler{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				r := recover()
				require.NotNil(t, r, "expected a panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value should be an error")
				assert.ErrorIs(t, err, querystring.ErrUnsupportedValue)
			}()

			querystring.ValueToString(tt.input)
		})
	}
}

func TestValueToString_SpecialFloats_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NaN", querystring.ValueToString(math.NaN()))
	assert.Equal(t, "+Inf", querystring.ValueToString(math.Inf(1)))
}

func TestURLEncode_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		plus     string
	}{
		{name: "plain", input: "Action", expected: "Action", plus: "Action"},
		{name: "space", input: "Science Fiction", expected: "Science%20Fiction", plus: "Science+Fiction"},
		{name: "literal plus", input: "a+b", expected: "a%2Bb", plus: "a%2Bb"},
		{name: "reserved characters", input: "x=y&z", expected: "x%3Dy%26z", plus: "x%3Dy%26z"},
		{name: "brackets", input: "[0]", expected: "%5B0%5D", plus: "%5B0%5D"},
		{name: "unreserved characters", input: "-_.~", expected: "-_.~", plus: "-_.~"},
		{name: "utf-8", input: "Amélie", expected: "Am%C3%A9lie", plus: "Am%C3%A9lie"},
		{name: "empty", input: "", expected: "", plus: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, querystring.URLEncode(tt.input))
			assert.Equal(t, tt.plus, querystring.URLEncodePlus(tt.input))
		})
	}
}
