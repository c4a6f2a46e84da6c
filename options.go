package jsoncodec

import "github.com/zoobzio/jsoncodec/json"

// Option configures codec construction.
type Option func(*options)

type options struct {
	printer *json.Printer
	pretty  bool
}

func applyOptions(opts []Option) options {
	o := options{
		printer: json.Default(),
		pretty:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPrinter builds the codec on p instead of the default printer.
// A nil printer is ignored.
func WithPrinter(p *json.Printer) Option {
	return func(o *options) {
		if p != nil {
			o.printer = p
		}
	}
}

// Compact builds the codec with pretty-printing disabled.
func Compact() Option {
	return func(o *options) {
		o.pretty = false
	}
}
