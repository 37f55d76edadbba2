// Package xxmac provides keyed message authentication and secret derivation built on XXH3.
//
// MACs are computed with a nested construction at XXH3's native 64-bit and 128-bit widths, using
// a key of the same width as the digest. Secrets are 192-byte XXH3 keying tables derived from
// arbitrary seeds via an extract-then-expand construction over the 128-bit MAC.
//
// XXH3 is not a cryptographic hash. These constructions resist forgery only as far as XXH3's
// practical properties allow. Do not use them where a cryptographic MAC or KDF is required.
package xxmac

import (
	"crypto/subtle"

	"github.com/codahale/xxmac/pkg/xxmac/internal/nested"
	"github.com/zeebo/xxh3"
)

const (
	// Size64 is the size of a 64-bit key or digest in bytes.
	Size64 = 8

	// Size128 is the size of a 128-bit key or digest in bytes.
	Size128 = 16

	// MidsizeMax is the message length below which one-shot MACs hash from a single buffer
	// instead of a streaming engine. It has no effect on the output.
	MidsizeMax = nested.MidsizeMax
)

var (
	// ErrFinalized is the panic value when a MAC is written to after its digest was read.
	ErrFinalized = nested.ErrFinalized

	// ErrUninitialized is the panic value when a zero-value MAC is used without a key.
	ErrUninitialized = nested.ErrUninitialized
)

// Sum64 returns the 64-bit MAC of msg using key.
func Sum64(msg []byte, key uint64) uint64 {
	return nested.Sum(nested.W64, msg, key)
}

// Sum128 returns the 128-bit MAC of msg using key.
func Sum128(msg []byte, key Uint128) Uint128 {
	return Uint128(nested.Sum(nested.W128, msg, xxh3.Uint128(key)))
}

// Verify64 returns true if tag is the 64-bit MAC of msg using key.
func Verify64(msg []byte, key, tag uint64) bool {
	var a, b [Size64]byte

	return subtle.ConstantTimeCompare(
		nested.W64.Append(a[:0], Sum64(msg, key)),
		nested.W64.Append(b[:0], tag),
	) == 1
}

// Verify128 returns true if tag is the 128-bit MAC of msg using key.
func Verify128(msg []byte, key, tag Uint128) bool {
	a, b := Sum128(msg, key).Bytes(), tag.Bytes()

	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// Hash64 returns the unkeyed 64-bit XXH3 digest of b.
func Hash64(b []byte) uint64 {
	return xxh3.Hash(b)
}

// Hash64Seed returns the seeded 64-bit XXH3 digest of b.
func Hash64Seed(b []byte, seed uint64) uint64 {
	return xxh3.HashSeed(b, seed)
}

// Hash128 returns the unkeyed 128-bit XXH3 digest of b.
func Hash128(b []byte) Uint128 {
	return Uint128(xxh3.Hash128(b))
}

// Hash128Seed returns the seeded 128-bit XXH3 digest of b.
func Hash128Seed(b []byte, seed uint64) Uint128 {
	return Uint128(xxh3.Hash128Seed(b, seed))
}
