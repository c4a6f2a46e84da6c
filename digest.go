package jsoncodec

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestAlgo represents a supported fingerprint algorithm.
type DigestAlgo string

const (
	// DigestSHA256 uses SHA-256.
	DigestSHA256 DigestAlgo = "sha256"

	// DigestSHA512 uses SHA-512.
	DigestSHA512 DigestAlgo = "sha512"

	// DigestBLAKE2b uses BLAKE2b-256.
	DigestBLAKE2b DigestAlgo = "blake2b"

	// DigestSHA3 uses SHA3-256.
	DigestSHA3 DigestAlgo = "sha3"
)

// Hasher computes a deterministic, hex-encoded digest.
type Hasher interface {
	Hash(data []byte) (string, error)
}

// HasherFunc adapts a function to Hasher.
type HasherFunc func(data []byte) (string, error)

// Hash calls f(data).
func (f HasherFunc) Hash(data []byte) (string, error) {
	return f(data)
}

var hashers = map[DigestAlgo]Hasher{
	DigestSHA256: HasherFunc(func(data []byte) (string, error) {
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	}),
	DigestSHA512: HasherFunc(func(data []byte) (string, error) {
		sum := sha512.Sum512(data)
		return hex.EncodeToString(sum[:]), nil
	}),
	DigestBLAKE2b: HasherFunc(func(data []byte) (string, error) {
		sum := blake2b.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	}),
	DigestSHA3: HasherFunc(func(data []byte) (string, error) {
		sum := sha3.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	}),
}

// IsValidDigestAlgo checks if the given algorithm is supported.
func IsValidDigestAlgo(algo DigestAlgo) bool {
	_, ok := hashers[algo]
	return ok
}

// HasherFor returns the builtin hasher for algo.
func HasherFor(algo DigestAlgo) (Hasher, error) {
	h, ok := hashers[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDigest, algo)
	}
	return h, nil
}

// Fingerprint returns a digest of v's compact encoding. Map keys are sorted,
// so equal values produce equal fingerprints regardless of the codec's
// prettiness.
func (c *Codec[T]) Fingerprint(v T, algo DigestAlgo) (string, error) {
	h, err := HasherFor(algo)
	if err != nil {
		return "", err
	}

	data, err := c.WithoutPretty().Encode(v)
	if err != nil {
		return "", err
	}
	return h.Hash(data)
}
