// Package testing provides fixtures and validation helpers for jsoncodec.
package testing

import (
	"reflect"
	"strings"
	stdtesting "testing"

	"github.com/zoobzio/jsoncodec"
)

// Person is a mutable test type with an optional field.
type Person struct {
	Name     string  `json:"name"`
	Rocks    bool    `json:"rocks"`
	LastName *string `json:"lastName,omitempty"`
}

// NewPerson returns a Person without a last name.
func NewPerson(name string, rocks bool) Person {
	return Person{Name: name, Rocks: rocks}
}

// WithLastName returns a copy of p with the last name set.
func (p Person) WithLastName(lastName string) Person {
	p.LastName = &lastName
	return p
}

// ReadOnly is a string written on encode and ignored on decode.
type ReadOnly string

// UnmarshalJSON discards the input, leaving the current value.
func (r *ReadOnly) UnmarshalJSON([]byte) error {
	return nil
}

// ImmutablePerson is a test type with a field that has no write path.
type ImmutablePerson struct {
	Name        string   `json:"name"`
	Rocks       bool     `json:"rocks"`
	NotWritable ReadOnly `json:"notWritable,omitempty"`
}

// NewImmutablePerson returns an ImmutablePerson.
func NewImmutablePerson(name string, rocks bool) ImmutablePerson {
	return ImmutablePerson{Name: name, Rocks: rocks}
}

// People returns the shared Person fixtures.
func People() []Person {
	return []Person{
		NewPerson("dain", true),
		NewPerson("martin", true).WithLastName("traverso"),
		NewPerson("mark", false),
	}
}

// PeopleByName returns People keyed by name.
func PeopleByName() map[string]Person {
	out := make(map[string]Person)
	for _, p := range People() {
		out[p.Name] = p
	}
	return out
}

// ImmutablePeople returns the shared ImmutablePerson fixtures.
func ImmutablePeople() []ImmutablePerson {
	return []ImmutablePerson{
		NewImmutablePerson("dain", true),
		NewImmutablePerson("martin", true),
		NewImmutablePerson("mark", false),
	}
}

// ImmutablePeopleByName returns ImmutablePeople keyed by name.
func ImmutablePeopleByName() map[string]ImmutablePerson {
	out := make(map[string]ImmutablePerson)
	for _, p := range ImmutablePeople() {
		out[p.Name] = p
	}
	return out
}

// ValidateRoundTrip checks that v survives encode/decode through c and through
// its compact variant, that compact output has no newlines, and that each
// variant reads the other's output.
func ValidateRoundTrip[T any](tb stdtesting.TB, c *jsoncodec.Codec[T], v T) {
	tb.Helper()

	compact := c.WithoutPretty()
	for _, variant := range []*jsoncodec.Codec[T]{c, compact} {
		data, err := variant.Encode(v)
		if err != nil {
			tb.Fatalf("Encode() error: %v", err)
		}
		if !variant.IsPretty() && strings.Contains(string(data), "\n") {
			tb.Errorf("compact Encode() contains newline: %q", data)
		}

		for _, reader := range []*jsoncodec.Codec[T]{c, compact} {
			got, err := reader.Decode(data)
			if err != nil {
				tb.Fatalf("Decode() error: %v", err)
			}
			if !reflect.DeepEqual(got, v) {
				tb.Errorf("round-trip mismatch:\n got  %#v\n want %#v", got, v)
			}
		}
	}
}

// ValidatePersonCodec checks a Person codec against the fixtures.
func ValidatePersonCodec(tb stdtesting.TB, c *jsoncodec.Codec[Person]) {
	tb.Helper()
	for _, p := range People() {
		ValidateRoundTrip(tb, c, p)
	}

	got, err := c.Decode([]byte(`{"name":"dain","rocks":true}`))
	if err != nil {
		tb.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(got, NewPerson("dain", true)) {
		tb.Errorf("Decode() = %#v", got)
	}
}

// ValidatePersonListCodec checks a []Person codec against the fixtures.
func ValidatePersonListCodec(tb stdtesting.TB, c *jsoncodec.Codec[[]Person]) {
	tb.Helper()
	ValidateRoundTrip(tb, c, People())
	ValidateRoundTrip(tb, c, []Person{})
}

// ValidatePersonMapCodec checks a map[string]Person codec against the fixtures.
func ValidatePersonMapCodec(tb stdtesting.TB, c *jsoncodec.Codec[map[string]Person]) {
	tb.Helper()
	ValidateRoundTrip(tb, c, PeopleByName())
	ValidateRoundTrip(tb, c, map[string]Person{})
}

// ValidateImmutablePersonCodec checks an ImmutablePerson codec against the fixtures.
func ValidateImmutablePersonCodec(tb stdtesting.TB, c *jsoncodec.Codec[ImmutablePerson]) {
	tb.Helper()
	for _, p := range ImmutablePeople() {
		ValidateRoundTrip(tb, c, p)
	}
}

// ValidateImmutablePersonListCodec checks an []ImmutablePerson codec.
func ValidateImmutablePersonListCodec(tb stdtesting.TB, c *jsoncodec.Codec[[]ImmutablePerson]) {
	tb.Helper()
	ValidateRoundTrip(tb, c, ImmutablePeople())
}

// ValidateImmutablePersonMapCodec checks a map[string]ImmutablePerson codec.
func ValidateImmutablePersonMapCodec(tb stdtesting.TB, c *jsoncodec.Codec[map[string]ImmutablePerson]) {
	tb.Helper()
	ValidateRoundTrip(tb, c, ImmutablePeopleByName())
}
