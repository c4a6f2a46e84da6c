// Package json provides the JSON engines used by jsoncodec.
//
// A Printer holds two engines built from the same options, one pretty-printing
// and one compact. Everything except whitespace is shared between them.
package json

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// ContentType is the MIME type produced by every engine.
const ContentType = "application/json"

// DefaultIndent is the indentation unit of pretty engines.
const DefaultIndent = "  "

// RawMessage is an undecoded JSON value.
type RawMessage = gojson.RawMessage

// Option configures a Printer.
type Option func(*config)

type config struct {
	indent       string
	escapeHTML   bool
	strictFields bool
}

// WithIndent sets the indentation unit used by the pretty engine.
// An empty indent falls back to DefaultIndent.
func WithIndent(indent string) Option {
	return func(c *config) {
		if indent != "" {
			c.indent = indent
		}
	}
}

// WithHTMLEscape controls escaping of <, > and & inside strings.
// Enabled by default.
func WithHTMLEscape(enabled bool) Option {
	return func(c *config) {
		c.escapeHTML = enabled
	}
}

// WithStrictFields rejects input objects carrying fields the target does not
// declare. Decoding is lenient by default.
func WithStrictFields() Option {
	return func(c *config) {
		c.strictFields = true
	}
}

// Printer holds a pretty and a compact engine that share one configuration.
// Printers are immutable and safe for concurrent use.
type Printer struct {
	pretty  *Engine
	compact *Engine
}

var defaultPrinter = New()

// Default returns the process-wide printer built with default options.
func Default() *Printer {
	return defaultPrinter
}

// New builds a printer.
func New(opts ...Option) *Printer {
	cfg := config{
		indent:     DefaultIndent,
		escapeHTML: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var encOpts []gojson.EncodeOptionFunc
	if !cfg.escapeHTML {
		encOpts = append(encOpts, gojson.DisableHTMLEscape())
	}

	return &Printer{
		pretty:  &Engine{pretty: true, indent: cfg.indent, encOpts: encOpts, strict: cfg.strictFields},
		compact: &Engine{pretty: false, indent: cfg.indent, encOpts: encOpts, strict: cfg.strictFields},
	}
}

// Engine returns the pretty or compact engine.
func (p *Printer) Engine(pretty bool) *Engine {
	if pretty {
		return p.pretty
	}
	return p.compact
}

// Engine is one configured JSON engine.
type Engine struct {
	pretty  bool
	indent  string
	encOpts []gojson.EncodeOptionFunc
	strict  bool
}

// Pretty reports whether the engine emits newlines and indentation.
func (e *Engine) Pretty() bool {
	return e.pretty
}

// Indent returns the indentation unit. Compact engines never apply it.
func (e *Engine) Indent() string {
	return e.indent
}

// Marshal encodes v. Pretty engines indent with no line prefix.
func (e *Engine) Marshal(v any) ([]byte, error) {
	if e.pretty {
		return gojson.MarshalIndentWithOption(v, "", e.indent, e.encOpts...)
	}
	return gojson.MarshalWithOption(v, e.encOpts...)
}

// MarshalKey encodes an object key as a quoted JSON string with the engine's
// escaping rules.
func (e *Engine) MarshalKey(key string) ([]byte, error) {
	return gojson.MarshalWithOption(key, e.encOpts...)
}

// Unmarshal decodes data into v.
func (e *Engine) Unmarshal(data []byte, v any) error {
	if !e.strict {
		return gojson.Unmarshal(data, v)
	}
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Valid reports whether data is well-formed JSON.
func Valid(data []byte) bool {
	return gojson.Valid(data)
}

// Marshaler is implemented by types that render their own JSON.
type Marshaler = gojson.Marshaler

// Unmarshaler is implemented by types that parse their own JSON.
type Unmarshaler = gojson.Unmarshaler
