// Package hashing provides the incremental content hash used for
// deterministic asset naming and build-cache invalidation.
//
// A Hasher is an opaque accumulator: callers feed it bytes and finalize
// to a digest string in a configurable encoding. Identical inputs with
// identical function and encoding settings always yield identical digests,
// across calls and across process restarts (reproducible builds).
package hashing

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// Hash function identifiers.
const (
	FunctionSHA256   = "sha256"
	FunctionSHA512   = "sha512"
	FunctionBlake3   = "blake3"
	FunctionXXHash64 = "xxhash64"
)

// Digest encoding identifiers.
const (
	EncodingHex       = "hex"
	EncodingBase64URL = "base64url"
)

// Hasher is an incremental content hash.
type Hasher struct {
	h hash.Hash
}

// New creates a Hasher for the given function identifier.
// Returns an error for unknown functions.
func New(function string) (*Hasher, error) {
	var h hash.Hash
	switch function {
	case FunctionSHA256:
		h = sha256.New()
	case FunctionSHA512:
		h = sha512.New()
	case FunctionBlake3:
		h = blake3.New()
	case FunctionXXHash64:
		h = xxhash.New()
	default:
		return nil, fmt.Errorf("unknown hash function %q", function)
	}
	return &Hasher{h: h}, nil
}

// Write feeds bytes into the running hash. Never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// WriteString feeds a string into the running hash.
func (h *Hasher) WriteString(s string) {
	// hash.Hash.Write never errors.
	_, _ = h.h.Write([]byte(s))
}

// Digest finalizes the hash and renders it in the given encoding.
// The Hasher remains usable; further writes extend the same stream.
func (h *Hasher) Digest(encoding string) (string, error) {
	sum := h.h.Sum(nil)
	switch encoding {
	case EncodingHex:
		return hex.EncodeToString(sum), nil
	case EncodingBase64URL:
		return base64.RawURLEncoding.EncodeToString(sum), nil
	default:
		return "", fmt.Errorf("unknown digest encoding %q", encoding)
	}
}

// Truncate shortens a digest string to n characters. A non-positive n or
// an n beyond the digest length returns the digest unchanged.
func Truncate(digest string, n int) string {
	if n <= 0 || n >= len(digest) {
		return digest
	}
	return digest[:n]
}
