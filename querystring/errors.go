package querystring

import "github.com/speakeasy-api/querystring/errors"

const (
	// ErrNilObject is raised when a nil Object is passed where a structured object is required.
	ErrNilObject = errors.Error("querystring: nil object")
	// ErrUnsupportedValue is raised when a scalar cannot be rendered as a string.
	ErrUnsupportedValue = errors.Error("querystring: unsupported value")
	// ErrNotStruct is raised when the reflection adapter is given something other than a struct.
	ErrNotStruct = errors.Error("querystring: value is not a struct")
	// ErrUnknownCollectionFormat is raised for a collection format outside csv, ssv, tsv, pipes and multi.
	ErrUnknownCollectionFormat = errors.Error("querystring: unknown collection format")
)
