// Package config holds the settings of the querystring command, loaded from YAML and carried in a context.
package config

import (
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/querystring/errors"
	"github.com/speakeasy-api/querystring/internal/document"
	"github.com/speakeasy-api/querystring/querystring"
	"gopkg.in/yaml.v3"
)

const (
	ErrInvalidSpaceEncoding = errors.Error("invalid space encoding")
	ErrInvalidEngine        = errors.Error("invalid jsonpath engine")
	ErrInvalidConcurrency   = errors.Error("invalid concurrency")
)

type contextKey string

func (c contextKey) String() string {
	return "querystring-context-key-" + string(c)
}

const configContextKey = contextKey("config")

// SpaceEncoding selects how a space in a value is escaped.
type SpaceEncoding string

const (
	SpaceEncodingPercent SpaceEncoding = "percent" // %20
	SpaceEncodingPlus    SpaceEncoding = "plus"    // +
)

type Config struct {
	Type          string          `yaml:"type"`          // Registered DTO name the input is decoded into
	Prefix        *string         `yaml:"prefix"`        // Parameter name for deepObject output, nil for form output
	Select        string          `yaml:"select"`        // JSONPath selecting the object within the input document
	JSONPath      document.Engine `yaml:"jsonpath"`      // Engine used to evaluate Select
	Schema        string          `yaml:"schema"`        // Optional JSON Schema file inputs are validated against
	SpaceEncoding SpaceEncoding   `yaml:"spaceEncoding"` // How spaces in values are escaped
	BaseURL       string          `yaml:"baseURL"`       // Server address used by the url command
	Path          string          `yaml:"path"`          // Endpoint path used by the url command
	Concurrency   int             `yaml:"concurrency"`   // Maximum number of inputs encoded at once
}

var defaultConfig = &Config{
	JSONPath:      document.EngineRFC9535,
	SpaceEncoding: SpaceEncodingPercent,
	Concurrency:   8,
}

// Default returns a copy of the default configuration.
func Default() *Config {
	def := *defaultConfig
	return &def
}

// Load decodes a YAML configuration on top of the defaults. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.SpaceEncoding {
	case "", SpaceEncodingPercent, SpaceEncodingPlus:
	default:
		return ErrInvalidSpaceEncoding.Wrapf("%q, expected %q or %q", c.SpaceEncoding, SpaceEncodingPercent, SpaceEncodingPlus)
	}

	switch c.JSONPath {
	case "", document.EngineRFC9535, document.EngineLegacy:
	default:
		return ErrInvalidEngine.Wrapf("%q, expected %q or %q", c.JSONPath, document.EngineRFC9535, document.EngineLegacy)
	}

	if c.Concurrency < 0 {
		return ErrInvalidConcurrency.Wrapf("%d", c.Concurrency)
	}

	return nil
}

// Codec returns the codec matching the configured space encoding.
func (c *Config) Codec() querystring.Codec {
	if c.SpaceEncoding == SpaceEncodingPlus {
		return querystring.Codec{
			URLEncode:     querystring.URLEncodePlus,
			ValueToString: querystring.ValueToString,
		}
	}

	return querystring.DefaultCodec
}

func ContextWithConfig(ctx context.Context, config *Config) context.Context {
	if config == nil {
		return ctx
	}

	return context.WithValue(ctx, configContextKey, config)
}

// FromContext returns the config stored in ctx, or a copy of the defaults.
func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok || cfg == nil {
		return Default()
	}

	return cfg
}
