package jsoncodec

import "reflect"

// Kind identifies the structure a Shape describes.
type Kind uint8

// Shape kinds.
const (
	// KindScalar is a value the engine renders whole: structs, primitives, pointers.
	KindScalar Kind = iota

	// KindSequence is a slice or array of an element shape.
	KindSequence

	// KindMapping is a string-keyed map of an element shape.
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Shape describes what a Codec serializes. Shapes are immutable and nest:
// a sequence of mappings has a mapping Elem whose Elem is the scalar.
type Shape struct {
	kind Kind
	typ  reflect.Type
	elem *Shape
}

func scalarShape(rt reflect.Type) *Shape {
	return &Shape{kind: KindScalar, typ: rt}
}

func sequenceShape(rt reflect.Type, elem *Shape) *Shape {
	return &Shape{kind: KindSequence, typ: rt, elem: elem}
}

func mappingShape(rt reflect.Type, elem *Shape) *Shape {
	return &Shape{kind: KindMapping, typ: rt, elem: elem}
}

// Kind returns the shape kind.
func (s *Shape) Kind() Kind { return s.kind }

// Type returns the Go type the shape binds.
func (s *Shape) Type() reflect.Type { return s.typ }

// Elem returns the element shape of a sequence or mapping, nil for scalars.
func (s *Shape) Elem() *Shape { return s.elem }

// Depth returns the number of composite levels above the innermost scalar.
func (s *Shape) Depth() int {
	n := 0
	for cur := s; cur.elem != nil; cur = cur.elem {
		n++
	}
	return n
}

// String returns the Go type name, e.g. "[]map[string]model.Person".
func (s *Shape) String() string {
	return s.typ.String()
}
