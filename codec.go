package jsoncodec

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/zoobzio/jsoncodec/json"
)

const contentType = json.ContentType

// Codec converts values of type T to JSON and back.
//
// A Codec is immutable once built: every method is safe for concurrent use,
// and the derivations (WithoutPretty, WithPretty) return new instances.
type Codec[T any] struct {
	shape    *Shape
	typeName string
	printer  *json.Printer
	engine   *json.Engine
	node     node
}

// New builds a codec for T.
//
// T may itself be a slice, array or string-keyed map (at any nesting depth).
// Each composite level is rendered by the same framing ListOf and MapOf use,
// so New[[]E] and ListOf(New[E]) produce identical output. Types the engine
// cannot represent fail here rather than on first use.
func New[T any](opts ...Option) (*Codec[T], error) {
	o := applyOptions(opts)

	shape, err := resolveType[T]()
	if err != nil {
		return nil, err
	}

	return newCodec[T](shape, o.printer, o.pretty), nil
}

// Must panics if err is non-nil. It is intended for package-level codecs.
func Must[T any](c *Codec[T], err error) *Codec[T] {
	if err != nil {
		panic(err)
	}
	return c
}

// List builds a codec for []E. It is equivalent to ListOf(New[E](opts...)).
func List[E any](opts ...Option) (*Codec[[]E], error) {
	elem, err := New[E](opts...)
	if err != nil {
		return nil, err
	}
	return ListOf(elem), nil
}

// ListOf builds a codec for []E that delegates each element to elem.
// The result inherits elem's printer and prettiness.
func ListOf[E any](elem *Codec[E]) *Codec[[]E] {
	shape := sequenceShape(reflect.TypeFor[[]E](), elem.shape)
	return newCodec[[]E](shape, elem.printer, elem.engine.Pretty())
}

// Map builds a codec for map[string]E. It is equivalent to
// MapOf[string](New[E](opts...)).
func Map[E any](opts ...Option) (*Codec[map[string]E], error) {
	elem, err := New[E](opts...)
	if err != nil {
		return nil, err
	}
	return MapOf[string](elem), nil
}

// MapOf builds a codec for map[K]E that delegates each value to elem.
// Keys are written in sorted order. The result inherits elem's printer and
// prettiness.
func MapOf[K ~string, E any](elem *Codec[E]) *Codec[map[K]E] {
	shape := mappingShape(reflect.TypeFor[map[K]E](), elem.shape)
	return newCodec[map[K]E](shape, elem.printer, elem.engine.Pretty())
}

func newCodec[T any](shape *Shape, printer *json.Printer, pretty bool) *Codec[T] {
	c := &Codec[T]{
		shape:    shape,
		typeName: shape.String(),
		printer:  printer,
		engine:   printer.Engine(pretty),
		node:     buildNode(shape),
	}
	emitCodecCreated(context.Background(), c.typeName, shape.Kind().String())
	return c
}

// ContentType returns the MIME type for JSON.
func (c *Codec[T]) ContentType() string {
	return contentType
}

// Shape returns the resolved shape descriptor.
func (c *Codec[T]) Shape() *Shape {
	return c.shape
}

// IsPretty reports whether output is indented.
func (c *Codec[T]) IsPretty() bool {
	return c.engine.Pretty()
}

// WithoutPretty returns an equivalent codec that writes compact output.
// The receiver is unchanged.
func (c *Codec[T]) WithoutPretty() *Codec[T] {
	return c.withEngine(c.printer.Engine(false))
}

// WithPretty returns an equivalent codec that writes indented output.
// The receiver is unchanged.
func (c *Codec[T]) WithPretty() *Codec[T] {
	return c.withEngine(c.printer.Engine(true))
}

func (c *Codec[T]) withEngine(e *json.Engine) *Codec[T] {
	derived := *c
	derived.engine = e
	return &derived
}

// Encode converts v to JSON. On failure no partial output is returned.
func (c *Codec[T]) Encode(v T) ([]byte, error) {
	start := time.Now()

	s := newSink(unbounded)
	if err := c.node.encode(s, c.engine, reflect.ValueOf(&v).Elem(), ""); err != nil {
		err = newCodecError(ErrEncode, c.typeName, err)
		emitEncodeComplete(context.Background(), c.typeName, 0, time.Since(start), err)
		return nil, err
	}

	emitEncodeComplete(context.Background(), c.typeName, len(s.bytes()), time.Since(start), nil)
	return s.bytes(), nil
}

// EncodeWithLimit converts v to JSON if the UTF-8 encoding fits in limit
// bytes. When it does not fit, ok is false and no output is returned;
// serialization stops at the first write that crosses the limit. The output,
// when present, is identical to Encode(v). A negative limit behaves like 0.
func (c *Codec[T]) EncodeWithLimit(v T, limit int) (data []byte, ok bool, err error) {
	start := time.Now()
	if limit < 0 {
		limit = 0
	}

	s := newSink(limit)
	err = c.node.encode(s, c.engine, reflect.ValueOf(&v).Elem(), "")
	switch {
	case errors.Is(err, errLimitExceeded):
		emitLimitExceeded(context.Background(), c.typeName, limit, len(s.bytes()))
		return nil, false, nil
	case err != nil:
		err = newCodecError(ErrEncode, c.typeName, err)
		emitEncodeComplete(context.Background(), c.typeName, 0, time.Since(start), err)
		return nil, false, err
	}

	emitEncodeComplete(context.Background(), c.typeName, len(s.bytes()), time.Since(start), nil)
	return s.bytes(), true, nil
}

// Decode parses data into a new T. Fields missing from data keep their zero
// value and fields T does not declare are ignored, unless the printer was
// built with json.WithStrictFields.
func (c *Codec[T]) Decode(data []byte) (T, error) {
	start := time.Now()

	var v T
	if err := c.node.decode(c.engine, data, reflect.ValueOf(&v).Elem()); err != nil {
		err = newCodecError(ErrDecode, c.typeName, err)
		emitDecodeComplete(context.Background(), c.typeName, len(data), time.Since(start), err)
		var zero T
		return zero, err
	}

	emitDecodeComplete(context.Background(), c.typeName, len(data), time.Since(start), nil)
	return v, nil
}
