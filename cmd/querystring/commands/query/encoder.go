package query

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/querystring/cmd/querystring/commands/cmdutil"
	"github.com/speakeasy-api/querystring/errors"
	"github.com/speakeasy-api/querystring/internal/config"
	"github.com/speakeasy-api/querystring/internal/document"
	"github.com/speakeasy-api/querystring/internal/utils"
	"github.com/speakeasy-api/querystring/jellyfin"
	"github.com/speakeasy-api/querystring/querystring"
	"golang.org/x/sync/errgroup"
)

const (
	ErrMissingType   = errors.Error("no type given, use --type or set type in the config")
	ErrUnknownType   = errors.Error("unknown type")
	ErrStdinReused   = errors.Error("stdin can only be read once")
	ErrSchemaInvalid = errors.Error("input does not match schema")
)

// result is the rendering of one input document.
type result struct {
	Source    string
	Query     string
	Fragments int
}

// encoder decodes documents into the configured DTO and renders them.
type encoder struct {
	cfg    *config.Config
	codec  querystring.Codec
	newObj func() querystring.Object
	schema *document.Schema
}

// newEncoder prepares an encoder for files, reading the schema when one is configured.
func newEncoder(cfg *config.Config, files []string, stdin io.Reader) (*encoder, error) {
	if err := checkStdinOnce(cfg.Schema, files); err != nil {
		return nil, err
	}

	if cfg.Type == "" {
		return nil, ErrMissingType
	}

	ctor, ok := jellyfin.Lookup(cfg.Type)
	if !ok {
		return nil, ErrUnknownType.Wrapf("%q, run 'querystring types' to list the available types", cfg.Type)
	}

	e := &encoder{
		cfg:    cfg,
		codec:  cfg.Codec(),
		newObj: ctor,
	}

	if cfg.Schema != "" {
		data, err := cmdutil.ReadInput(cfg.Schema, stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema: %w", err)
		}

		node, err := document.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", cmdutil.DisplayName(cfg.Schema), err)
		}

		if e.schema, err = document.CompileSchema(node); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func (e *encoder) encode(data []byte) (result, error) {
	root, err := document.Load(bytes.NewReader(data))
	if err != nil {
		return result{}, err
	}

	if e.schema != nil {
		if errs := e.schema.Validate(root); len(errs) > 0 {
			return result{}, ErrSchemaInvalid.Wrap(errors.Join(errs...))
		}
	}

	node, err := document.SelectWith(root, e.cfg.Select, e.cfg.JSONPath)
	if err != nil {
		return result{}, err
	}

	obj := e.newObj()
	if err := document.Decode(node, obj); err != nil {
		return result{}, err
	}

	fragments := e.codec.Fragments(obj, e.cfg.Prefix)

	return result{
		Query:     utils.JoinNonEmpty("&", fragments...),
		Fragments: len(fragments),
	}, nil
}

// encodeFiles encodes every file concurrently. Results are returned in the order of files.
func (e *encoder) encodeFiles(ctx context.Context, files []string, stdin io.Reader) ([]result, error) {
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if e.cfg.Concurrency > 0 {
		g.SetLimit(e.cfg.Concurrency)
	}

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := cmdutil.ReadInput(file, stdin)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", cmdutil.DisplayName(file), err)
			}

			res, err := e.encode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", cmdutil.DisplayName(file), err)
			}

			res.Source = cmdutil.DisplayName(file)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// checkStdinOnce fails when stdin is named more than once across the schema and the input files.
func checkStdinOnce(schema string, files []string) error {
	seen := cmdutil.IsStdin(schema)
	for _, f := range files {
		if !cmdutil.IsStdin(f) {
			continue
		}
		if seen {
			return ErrStdinReused
		}
		seen = true
	}
	return nil
}
