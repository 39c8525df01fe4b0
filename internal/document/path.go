package document

import (
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"github.com/speakeasy-api/querystring/errors"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

// Engine names the JSONPath implementation used to evaluate selectors.
type Engine string

const (
	// EngineRFC9535 evaluates selectors as RFC 9535 JSONPath. It is the default.
	EngineRFC9535 Engine = "rfc9535"
	// EngineLegacy evaluates selectors with the older yamlpath dialect.
	EngineLegacy Engine = "legacy"
)

// Queryable finds the nodes a selector matches below root.
type Queryable interface {
	Query(root *yaml.Node) []*yaml.Node
}

type rfcQueryable struct {
	path *jsonpath.JSONPath
}

func (r rfcQueryable) Query(root *yaml.Node) []*yaml.Node {
	return r.path.Query(root)
}

type legacyQueryable struct {
	path *yamlpath.Path
}

func (l legacyQueryable) Query(root *yaml.Node) []*yaml.Node {
	// yamlpath never returns an error from Find.
	nodes, _ := l.path.Find(root)
	return nodes
}

// NewPath compiles expr for the given engine. An empty engine means EngineRFC9535.
func NewPath(expr string, engine Engine) (Queryable, error) {
	switch engine {
	case "", EngineRFC9535:
		path, err := jsonpath.NewPath(expr, config.WithPropertyNameExtension())
		if err != nil {
			return nil, err
		}
		return rfcQueryable{path: path}, nil
	case EngineLegacy:
		path, err := yamlpath.NewPath(expr)
		if err != nil {
			return nil, err
		}
		return legacyQueryable{path: path}, nil
	default:
		return nil, ErrUnknownEngine.Wrapf("%q", engine)
	}
}

// Select returns the single node expr matches in root using the RFC 9535 engine.
// An empty expr selects the document's top level node.
func Select(root *yaml.Node, expr string) (*yaml.Node, error) {
	return SelectWith(root, expr, EngineRFC9535)
}

// SelectWith is Select with an explicit engine.
func SelectWith(root *yaml.Node, expr string, engine Engine) (*yaml.Node, error) {
	if expr == "" {
		return topLevel(root), nil
	}

	path, err := NewPath(expr, engine)
	if err != nil {
		if errors.Is(err, ErrUnknownEngine) {
			return nil, err
		}
		return nil, ErrInvalidSelector.Wrap(err)
	}

	nodes := path.Query(root)
	switch len(nodes) {
	case 0:
		return nil, ErrNoMatch.Wrapf("%s", expr)
	case 1:
		return nodes[0], nil
	default:
		return nil, ErrAmbiguousMatch.Wrapf("%s matched %d nodes", expr, len(nodes))
	}
}

func topLevel(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return root.Content[0]
	}
	return root
}
