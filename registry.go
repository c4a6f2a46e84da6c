package jsoncodec

import (
	"reflect"
	"sync"

	"github.com/zoobzio/jsoncodec/json"
)

// registryKey combines type and printer for cache lookup.
type registryKey struct {
	typ     reflect.Type
	printer *json.Printer
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached pretty codec for T on the default printer, building it
// on first use. Derive compact variants with WithoutPretty.
func Use[T any]() (*Codec[T], error) {
	return UseWith[T](json.Default())
}

// UseWith returns a cached pretty codec for T on printer p.
func UseWith[T any](p *json.Printer) (*Codec[T], error) {
	if p == nil {
		p = json.Default()
	}
	key := registryKey{typ: reflect.TypeFor[T](), printer: p}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Codec[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Codec[T]), nil
	}

	c, err := New[T](WithPrinter(p))
	if err != nil {
		return nil, err
	}

	registry[key] = c
	return c, nil
}

// Reset clears the codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
