package jsoncodec

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/zoobzio/jsoncodec/json"
)

// node renders and parses one shape level. Composite nodes write their own
// framing and hand each element to the element node. Every codec builds its
// tree from its Shape, so []E reached through New, List or ListOf runs the
// same code.
type node struct {
	encode func(s *sink, e *json.Engine, v reflect.Value, prefix string) error
	// decode requires v to be settable.
	decode func(e *json.Engine, data []byte, v reflect.Value) error
}

// buildNode builds the node tree for shape.
func buildNode(shape *Shape) node {
	switch shape.Kind() {
	case KindSequence:
		return sequenceNode(shape.Type(), buildNode(shape.Elem()))
	case KindMapping:
		return mappingNode(shape.Type(), buildNode(shape.Elem()))
	default:
		return scalarNode()
	}
}

// scalarNode hands the whole value to the engine. The engine always sees a
// pointer, so pointer-receiver marshalers fire for map values and slice
// elements alike.
func scalarNode() node {
	return node{
		encode: func(s *sink, e *json.Engine, v reflect.Value, prefix string) error {
			data, err := e.Marshal(addressOf(v).Interface())
			if err != nil {
				return err
			}
			return s.writeIndented(data, prefix)
		},
		decode: func(e *json.Engine, data []byte, v reflect.Value) error {
			return e.Unmarshal(data, v.Addr().Interface())
		},
	}
}

// sequenceNode renders a slice or array of rt element by element.
func sequenceNode(rt reflect.Type, elem node) node {
	return node{
		encode: func(s *sink, e *json.Engine, v reflect.Value, prefix string) error {
			if v.Kind() == reflect.Slice && v.IsNil() {
				return s.writeString("null")
			}
			n := v.Len()
			if n == 0 {
				return s.writeString("[]")
			}

			inner := ""
			if e.Pretty() {
				inner = prefix + e.Indent()
			}
			if err := s.writeByte('['); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if i > 0 {
					if err := s.writeByte(','); err != nil {
						return err
					}
				}
				if err := openLine(s, e, inner); err != nil {
					return err
				}
				if err := elem.encode(s, e, v.Index(i), inner); err != nil {
					return err
				}
			}
			if err := openLine(s, e, prefix); err != nil {
				return err
			}
			return s.writeByte(']')
		},
		decode: func(e *json.Engine, data []byte, v reflect.Value) error {
			var raws []json.RawMessage
			if err := e.Unmarshal(data, &raws); err != nil {
				return err
			}
			if raws == nil {
				v.SetZero()
				return nil
			}

			var out reflect.Value
			if rt.Kind() == reflect.Array {
				out = reflect.New(rt).Elem()
			} else {
				out = reflect.MakeSlice(rt, len(raws), len(raws))
			}
			for i, raw := range raws {
				if i >= out.Len() {
					break
				}
				if len(raw) == 0 {
					continue
				}
				if err := elem.decode(e, raw, out.Index(i)); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
			}
			v.Set(out)
			return nil
		},
	}
}

// mappingNode renders a string-keyed map of rt with keys in sorted order.
func mappingNode(rt reflect.Type, elem node) node {
	return node{
		encode: func(s *sink, e *json.Engine, v reflect.Value, prefix string) error {
			if v.IsNil() {
				return s.writeString("null")
			}
			if v.Len() == 0 {
				return s.writeString("{}")
			}

			keys := v.MapKeys()
			slices.SortFunc(keys, func(a, b reflect.Value) int {
				return cmp.Compare(a.String(), b.String())
			})

			inner := ""
			sep := ":"
			if e.Pretty() {
				inner = prefix + e.Indent()
				sep = ": "
			}
			if err := s.writeByte('{'); err != nil {
				return err
			}
			for i, k := range keys {
				if i > 0 {
					if err := s.writeByte(','); err != nil {
						return err
					}
				}
				if err := openLine(s, e, inner); err != nil {
					return err
				}
				key, err := e.MarshalKey(k.String())
				if err != nil {
					return err
				}
				if err := s.write(key); err != nil {
					return err
				}
				if err := s.writeString(sep); err != nil {
					return err
				}
				if err := elem.encode(s, e, v.MapIndex(k), inner); err != nil {
					return err
				}
			}
			if err := openLine(s, e, prefix); err != nil {
				return err
			}
			return s.writeByte('}')
		},
		decode: func(e *json.Engine, data []byte, v reflect.Value) error {
			var raws map[string]json.RawMessage
			if err := e.Unmarshal(data, &raws); err != nil {
				return err
			}
			if raws == nil {
				v.SetZero()
				return nil
			}

			out := reflect.MakeMapWithSize(rt, len(raws))
			for k, raw := range raws {
				item := reflect.New(rt.Elem()).Elem()
				if len(raw) > 0 {
					if err := elem.decode(e, raw, item); err != nil {
						return fmt.Errorf("key %q: %w", k, err)
					}
				}
				out.SetMapIndex(reflect.ValueOf(k).Convert(rt.Key()), item)
			}
			v.Set(out)
			return nil
		},
	}
}

// addressOf returns a pointer to v, copying v when it is not addressable
// (map values, elements of arrays held by value).
func addressOf(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

// openLine starts a new indented line in pretty mode and is a no-op otherwise.
func openLine(s *sink, e *json.Engine, indent string) error {
	if !e.Pretty() {
		return nil
	}
	if err := s.writeByte('\n'); err != nil {
		return err
	}
	return s.writeString(indent)
}
