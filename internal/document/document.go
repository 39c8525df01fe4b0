// Package document loads the JSON or YAML documents that are rendered as query strings.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/querystring/errors"
	"github.com/speakeasy-api/querystring/sequencedmap"
	"gopkg.in/yaml.v3"
)

const (
	ErrEmptyDocument   = errors.Error("document is empty")
	ErrNoMatch         = errors.Error("selector matched no nodes")
	ErrAmbiguousMatch  = errors.Error("selector matched more than one node")
	ErrUnknownEngine   = errors.Error("unknown jsonpath engine")
	ErrInvalidSelector = errors.Error("invalid selector")
)

// Parse reads a JSON or YAML document.
func Parse(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	return &root, nil
}

// Load reads r fully and parses it, see Parse.
func Load(r io.Reader) (*yaml.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Parse(data)
}

// ToJSON writes node as compact JSON, keeping mapping keys in document order.
func ToJSON(node *yaml.Node, w io.Writer) error {
	return ToIndentedJSON(node, 0, w)
}

// ToIndentedJSON writes node as JSON indented by the given number of spaces.
func ToIndentedJSON(node *yaml.Node, indentation int, w io.Writer) error {
	v, err := fromNode(node)
	if err != nil {
		return err
	}

	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	e.SetIndent("", strings.Repeat(" ", indentation))

	return e.Encode(v)
}

// Decode converts node to JSON and decodes it into target.
// Fields of target that are backed by sequencedmap.Map keep the document's key order.
func Decode(node *yaml.Node, target any) error {
	var buf bytes.Buffer
	if err := ToJSON(node, &buf); err != nil {
		return err
	}

	if err := json.Unmarshal(buf.Bytes(), target); err != nil {
		return fmt.Errorf("failed to decode %T: %w", target, err)
	}

	return nil
}

func fromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		return fromNode(node.Content[0])
	case yaml.SequenceNode:
		return fromSequence(node)
	case yaml.MappingNode:
		return fromMapping(node)
	case yaml.ScalarNode:
		return fromScalar(node)
	case yaml.AliasNode:
		return fromNode(node.Alias)
	default:
		return nil, fmt.Errorf("unknown node kind: %s", kindName(node.Kind))
	}
}

func fromMapping(node *yaml.Node) (any, error) {
	v := sequencedmap.New[string, any]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		kv, err := fromNode(node.Content[i])
		if err != nil {
			return nil, err
		}

		key, ok := kv.(string)
		if !ok {
			data, err := json.Marshal(kv)
			if err != nil {
				return nil, err
			}
			key = string(data)
		}

		vv, err := fromNode(node.Content[i+1])
		if err != nil {
			return nil, err
		}

		v.Set(key, vv)
	}

	return v, nil
}

func fromSequence(node *yaml.Node) (any, error) {
	v := make([]any, len(node.Content))
	for i, n := range node.Content {
		vv, err := fromNode(n)
		if err != nil {
			return nil, err
		}
		v[i] = vv
	}

	return v, nil
}

func fromScalar(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
