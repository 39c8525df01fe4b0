package query

import (
	"github.com/speakeasy-api/querystring/internal/config"
	"github.com/speakeasy-api/querystring/internal/document"
	"github.com/spf13/pflag"
)

// documentFlags are the flags shared by commands that render a document.
type documentFlags struct {
	typ           string
	prefix        string
	selector      string
	engine        string
	schema        string
	spaceEncoding string
}

func (f *documentFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.typ, "type", "t", "", "DTO the input is decoded into (see 'querystring types')")
	fs.StringVarP(&f.prefix, "prefix", "p", "", "Parameter name for deepObject output; omit for form output")
	fs.StringVarP(&f.selector, "select", "s", "", "JSONPath selecting the object within the input document")
	fs.StringVar(&f.engine, "jsonpath", string(document.EngineRFC9535), "JSONPath engine for --select (rfc9535 or legacy)")
	fs.StringVar(&f.schema, "schema", "", "JSON Schema file the input is validated against before decoding")
	fs.StringVar(&f.spaceEncoding, "space-encoding", string(config.SpaceEncodingPercent), "How spaces are escaped in values (percent or plus)")
}

// apply copies the flags the user set over cfg. Flags left at their defaults keep the config values.
func (f *documentFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("type") {
		cfg.Type = f.typ
	}
	if fs.Changed("prefix") {
		prefix := f.prefix
		cfg.Prefix = &prefix
	}
	if fs.Changed("select") {
		cfg.Select = f.selector
	}
	if fs.Changed("jsonpath") {
		cfg.JSONPath = document.Engine(f.engine)
	}
	if fs.Changed("schema") {
		cfg.Schema = f.schema
	}
	if fs.Changed("space-encoding") {
		cfg.SpaceEncoding = config.SpaceEncoding(f.spaceEncoding)
	}
}
