// Package jsoncodec provides typed, reusable JSON codecs.
//
// A Codec[T] is bound to one shape and one printing mode at construction.
// After that it holds no mutable state, so a single codec can be cached and
// shared by any number of goroutines.
//
// # Construction
//
// Codecs are built for a type, or composed from an existing element codec:
//
//	person, _ := jsoncodec.New[Person]()
//	people, _ := jsoncodec.List[Person]()          // []Person
//	same := jsoncodec.ListOf(person)               // []Person, same output
//	byName, _ := jsoncodec.Map[Person]()           // map[string]Person
//	nested, _ := jsoncodec.New[[]map[string]Person]()
//
// List and Map are shorthand for ListOf and MapOf over New, so both paths run
// the same composite code. Types the engine cannot represent (channels,
// functions, complex numbers, non-string map keys, structs with nothing to
// serialize) fail at construction with a *ConstructionError.
//
// # Pretty printing
//
// Codecs indent by default. WithoutPretty returns a compact copy and leaves
// the receiver untouched:
//
//	compact := person.WithoutPretty()
//
// # Length limits
//
// EncodeWithLimit answers whether the encoding fits in a byte budget and
// returns it only when it does. Output is written into a bounded sink and
// stops at the first write that would cross the limit, so oversized
// collections are never fully serialized:
//
//	data, ok, err := people.EncodeWithLimit(list, 4096)
//
// Limits count UTF-8 bytes, not characters.
//
// # Decoding
//
// Decode is lenient: fields missing from the input keep their zero value and
// fields the target does not declare are ignored. Build the codec on a printer
// created with json.WithStrictFields to reject unknown fields.
//
// # Events
//
// Construction, encode, decode, and limit overflow emit capitan signals
// (SignalCodecCreated, SignalEncodeComplete, SignalDecodeComplete,
// SignalLimitExceeded). Errors are always returned to the caller.
package jsoncodec
