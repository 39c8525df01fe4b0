package document

import (
	"bytes"
	"strings"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/speakeasy-api/querystring/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	ErrInvalidSchema  = errors.Error("invalid schema")
	ErrSchemaMismatch = errors.Error("document does not match schema")
)

const schemaResource = "schema.json"

var defaultPrinter = message.NewPrinter(language.English)

// Schema is a compiled JSON Schema that documents can be checked against before decoding.
type Schema struct {
	schema *jsValidator.Schema
}

// CompileSchema compiles the JSON Schema held in node. The schema may be written in JSON or YAML.
func CompileSchema(node *yaml.Node) (*Schema, error) {
	doc, err := toValidatorValue(node)
	if err != nil {
		return nil, ErrInvalidSchema.Wrap(err)
	}

	c := jsValidator.NewCompiler()
	if err := c.AddResource(schemaResource, doc); err != nil {
		return nil, ErrInvalidSchema.Wrap(err)
	}

	s, err := c.Compile(schemaResource)
	if err != nil {
		return nil, ErrInvalidSchema.Wrap(err)
	}

	return &Schema{schema: s}, nil
}

// Validate checks node against the schema.
// It returns one error per failing leaf location, each matching ErrSchemaMismatch.
func (s *Schema) Validate(node *yaml.Node) []error {
	doc, err := toValidatorValue(node)
	if err != nil {
		return []error{ErrSchemaMismatch.Wrap(err)}
	}

	err = s.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if !errors.As(err, &validationErr) {
		return []error{ErrSchemaMismatch.Wrap(err)}
	}

	return rootCauses(validationErr)
}

// toValidatorValue converts node into the value model the validator expects, with numbers kept exact.
func toValidatorValue(node *yaml.Node) (any, error) {
	var buf bytes.Buffer
	if err := ToJSON(node, &buf); err != nil {
		return nil, err
	}

	return jsValidator.UnmarshalJSON(&buf)
}

func rootCauses(err *jsValidator.ValidationError) []error {
	if len(err.Causes) == 0 {
		return []error{causeError(err)}
	}

	var errs []error
	for _, cause := range err.Causes {
		errs = append(errs, rootCauses(cause)...)
	}

	return errs
}

func causeError(err *jsValidator.ValidationError) error {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	msg := err.ErrorKind.LocalizedString(defaultPrinter)

	switch err.ErrorKind.(type) {
	case *kind.Type:
		return ErrSchemaMismatch.Wrapf("type mismatch at %s: %s", location, msg)
	case *kind.Required:
		return ErrSchemaMismatch.Wrapf("missing field at %s: %s", location, msg)
	default:
		return ErrSchemaMismatch.Wrapf("%s: %s", location, msg)
	}
}
