package jsoncodec_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/jsoncodec"
	codectest "github.com/zoobzio/jsoncodec/testing"
)

func TestFingerprint(t *testing.T) {
	c := jsoncodec.Must(jsoncodec.Map[codectest.Person]())
	v := codectest.PeopleByName()

	tests := []struct {
		algo   jsoncodec.DigestAlgo
		hexLen int
	}{
		{jsoncodec.DigestSHA256, 64},
		{jsoncodec.DigestSHA512, 128},
		{jsoncodec.DigestBLAKE2b, 64},
		{jsoncodec.DigestSHA3, 64},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			pretty, err := c.Fingerprint(v, tt.algo)
			if err != nil {
				t.Fatalf("Fingerprint() error: %v", err)
			}
			if len(pretty) != tt.hexLen {
				t.Errorf("len = %d, want %d", len(pretty), tt.hexLen)
			}

			compact, err := c.WithoutPretty().Fingerprint(v, tt.algo)
			if err != nil {
				t.Fatalf("Fingerprint() error: %v", err)
			}
			if pretty != compact {
				t.Error("fingerprint should not depend on prettiness")
			}
		})
	}
}

func TestFingerprint_Distinguishes(t *testing.T) {
	c := jsoncodec.Must(jsoncodec.New[codectest.Person]())

	a, _ := c.Fingerprint(codectest.NewPerson("dain", true), jsoncodec.DigestSHA256)
	b, _ := c.Fingerprint(codectest.NewPerson("dain", false), jsoncodec.DigestSHA256)

	if a == b {
		t.Error("different values should produce different fingerprints")
	}
}

func TestFingerprint_UnknownAlgo(t *testing.T) {
	c := jsoncodec.Must(jsoncodec.New[codectest.Person]())

	_, err := c.Fingerprint(codectest.NewPerson("dain", true), "md5")
	if !errors.Is(err, jsoncodec.ErrUnknownDigest) {
		t.Errorf("Fingerprint() err = %v, want ErrUnknownDigest", err)
	}
}

func TestIsValidDigestAlgo(t *testing.T) {
	if !jsoncodec.IsValidDigestAlgo(jsoncodec.DigestBLAKE2b) {
		t.Error("blake2b should be valid")
	}
	if jsoncodec.IsValidDigestAlgo("md5") {
		t.Error("md5 should not be valid")
	}
}

func TestHasherFunc(t *testing.T) {
	h := jsoncodec.HasherFunc(func(data []byte) (string, error) {
		return string(data), nil
	})

	got, err := h.Hash([]byte("abc"))
	if err != nil || got != "abc" {
		t.Errorf("Hash() = %q, %v", got, err)
	}
}
