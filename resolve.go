package jsoncodec

import (
	"encoding"
	"reflect"

	"github.com/zoobzio/jsoncodec/json"
	"github.com/zoobzio/sentinel"
)

var (
	marshalerType     = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// resolver walks a type once at construction. Struct fields come from
// sentinel metadata; types sentinel never scanned are read with reflection.
type resolver struct {
	typeName string
	metadata map[reflect.Type]sentinel.Metadata
	seen     map[reflect.Type]bool
}

// resolveType resolves the shape for T. Struct roots (and pointers to them)
// are scanned with sentinel, which also caches every related type in the
// same module.
func resolveType[T any]() (*Shape, error) {
	rt := reflect.TypeFor[T]()
	r := &resolver{
		typeName: rt.String(),
		metadata: make(map[reflect.Type]sentinel.Metadata),
		seen:     make(map[reflect.Type]bool),
	}

	if meta, err := sentinel.TryScan[T](); err == nil {
		st := rt
		if st.Kind() == reflect.Pointer {
			st = st.Elem()
		}
		if st.Kind() == reflect.Struct && describes(meta, st) {
			r.metadata[st] = meta
		}
	}

	return r.resolve(rt)
}

// resolve builds the shape tree for rt. Sequences and string-keyed maps become
// composite shapes; everything else is a scalar validated against the engine.
func (r *resolver) resolve(rt reflect.Type) (*Shape, error) {
	if !hasMarshaler(rt) {
		switch rt.Kind() {
		case reflect.Slice, reflect.Array:
			// []byte is a base64 string, not a sequence.
			if rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8 {
				break
			}
			elem, err := r.resolve(rt.Elem())
			if err != nil {
				return nil, err
			}
			return sequenceShape(rt, elem), nil

		case reflect.Map:
			if rt.Key().Kind() != reflect.String {
				return nil, newConstructionError(ErrUnsupportedKey, r.typeName, "")
			}
			elem, err := r.resolve(rt.Elem())
			if err != nil {
				return nil, err
			}
			return mappingShape(rt, elem), nil
		}
	}

	if err := r.validate(rt, "", true); err != nil {
		return nil, err
	}
	return scalarShape(rt), nil
}

// validate walks rt and rejects anything the engine cannot render.
// requireFields is set only for the scalar itself, not for nested fields.
func (r *resolver) validate(rt reflect.Type, path string, requireFields bool) error {
	if hasMarshaler(rt) || r.seen[rt] {
		return nil
	}
	r.seen[rt] = true

	switch rt.Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return newConstructionError(ErrUnsupportedType, r.typeName, path)

	case reflect.Pointer:
		return r.validate(rt.Elem(), path, requireFields)

	case reflect.Slice, reflect.Array:
		return r.validate(rt.Elem(), path, false)

	case reflect.Map:
		if !validKey(rt.Key()) {
			return newConstructionError(ErrUnsupportedKey, r.typeName, path)
		}
		return r.validate(rt.Elem(), path, false)

	case reflect.Struct:
		if requireFields && !hasExportedFields(rt) {
			return newConstructionError(ErrNoFields, r.typeName, path)
		}
		for _, field := range r.structMetadata(rt).Fields {
			if field.Tags["json"] == "-" {
				continue
			}
			if err := r.validate(field.ReflectType, join(path, field.Name), false); err != nil {
				return err
			}
		}
		// The engine promotes fields of unexported embedded structs.
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.Anonymous || sf.IsExported() || sf.Tag.Get("json") == "-" {
				continue
			}
			if err := r.validate(sf.Type, join(path, sf.Name), false); err != nil {
				return err
			}
		}
	}

	return nil
}

// structMetadata returns the sentinel metadata for rt. sentinel keys its cache
// by bare type name, so a hit is only trusted when it describes rt itself.
func (r *resolver) structMetadata(rt reflect.Type) sentinel.Metadata {
	if meta, ok := r.metadata[rt]; ok {
		return meta
	}

	meta, ok := sentinel.Lookup(rt.Name())
	if rt.Name() == "" || !ok || !describes(meta, rt) {
		meta = reflectMetadata(rt)
	}
	r.metadata[rt] = meta
	return meta
}

// describes reports whether meta was extracted from rt.
func describes(meta sentinel.Metadata, rt reflect.Type) bool {
	if meta.TypeName != rt.Name() || meta.PackageName != rt.PkgPath() {
		return false
	}
	for _, f := range meta.Fields {
		if len(f.Index) == 0 || f.Index[0] >= rt.NumField() {
			return false
		}
		sf := rt.FieldByIndex(f.Index)
		if sf.Name != f.Name || sf.Type != f.ReflectType {
			return false
		}
	}
	return true
}

// reflectMetadata reads the exported fields of a struct sentinel has no
// entry for: anonymous structs, and named types outside the scanned module.
func reflectMetadata(rt reflect.Type) sentinel.Metadata {
	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		meta.Fields = append(meta.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{"json": sf.Tag.Get("json")},
		})
	}
	return meta
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// hasExportedFields reports whether any field, promoted ones included, is
// visible to the engine.
func hasExportedFields(rt reflect.Type) bool {
	for _, f := range reflect.VisibleFields(rt) {
		if f.IsExported() && !f.Anonymous && f.Tag.Get("json") != "-" {
			return true
		}
	}
	return false
}

func hasMarshaler(rt reflect.Type) bool {
	if rt.Implements(marshalerType) || rt.Implements(textMarshalerType) {
		return true
	}
	if rt.Kind() != reflect.Pointer {
		pt := reflect.PointerTo(rt)
		return pt.Implements(marshalerType) || pt.Implements(textMarshalerType)
	}
	return false
}

// validKey mirrors the key kinds the engine accepts for nested maps.
func validKey(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return rt.Implements(textMarshalerType) || reflect.PointerTo(rt).Implements(textMarshalerType)
}
