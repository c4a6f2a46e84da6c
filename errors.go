package jsoncodec

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrConstruction indicates a codec could not be built for a type.
	ErrConstruction = errors.New("codec construction failed")

	// ErrEncode indicates a value could not be converted to JSON.
	ErrEncode = errors.New("encode failed")

	// ErrDecode indicates input was malformed or could not be bound to the target.
	ErrDecode = errors.New("decode failed")

	// ErrUnsupportedType indicates a type the JSON engine cannot represent
	// (channels, functions, complex numbers, unsafe pointers).
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnsupportedKey indicates a mapping whose key type is not string-kinded.
	ErrUnsupportedKey = errors.New("unsupported map key")

	// ErrNoFields indicates a struct with no exported fields and no custom marshaler.
	ErrNoFields = errors.New("no serializable fields")

	// ErrUnknownDigest indicates a digest algorithm that is not registered.
	ErrUnknownDigest = errors.New("unknown digest algorithm")
)

// ConstructionError reports a type that cannot be resolved into a codec.
// It matches both ErrConstruction and the wrapped detail sentinel.
type ConstructionError struct {
	Err   error  // Detail sentinel (ErrUnsupportedType, ErrUnsupportedKey, ErrNoFields)
	Type  string // Type the codec was requested for
	Field string // Field path where resolution failed, empty at the root
}

func (e *ConstructionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s for %s: %s (field %s)", ErrConstruction.Error(), e.Type, e.Err.Error(), e.Field)
	}
	return fmt.Sprintf("%s for %s: %s", ErrConstruction.Error(), e.Type, e.Err.Error())
}

func (e *ConstructionError) Unwrap() []error {
	return []error{ErrConstruction, e.Err}
}

// CodecError represents an encode/decode error.
type CodecError struct {
	Err   error  // Underlying sentinel error (ErrEncode, ErrDecode)
	Type  string // Type bound to the codec
	Cause error  // Original error from the engine
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.Type, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Type)
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newConstructionError creates a ConstructionError.
func newConstructionError(sentinel error, typeName, field string) error {
	return &ConstructionError{
		Err:   sentinel,
		Type:  typeName,
		Field: field,
	}
}

// newCodecError creates a CodecError for encode/decode failures.
func newCodecError(sentinel error, typeName string, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Type:  typeName,
		Cause: cause,
	}
}
