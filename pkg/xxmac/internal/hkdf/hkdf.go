// Package hkdf stretches a short, possibly low-entropy seed into an XXH3 secret buffer.
//
// Derivation uses the 128-bit nested MAC in an extract-then-expand construction, given a seed S
// and an output buffer of N 16-byte segments:
//
//     PRK = MAC128(K=0, S)
//     T   = 0^32
//     for i in 0..N-1:
//         T[16:24] = LE_U64(i)
//         T[0:16]  = MAC128(K=PRK, T)
//         OUT[16i:16i+16] = T[0:16]
//
// Each segment is chained from the previous one, so segments are produced strictly in order.
// Bytes T[24:32] are never written and stay zero.
package hkdf

import (
	"encoding/binary"
	"errors"

	"github.com/codahale/xxmac/pkg/xxmac/internal/nested"
	"github.com/zeebo/xxh3"
)

// SegmentSize is the number of output bytes produced per chained MAC.
const SegmentSize = 16

// ErrInvalidLength is the panic value when the output length is not a whole number of segments.
var ErrInvalidLength = errors.New("xxmac: output length must be a multiple of 16")

// Extract returns the pseudorandom key for the given seed.
func Extract(seed []byte) xxh3.Uint128 {
	return nested.Sum(nested.W128, seed, xxh3.Uint128{})
}

// Expand fills dst with segments derived from prk.
func Expand(dst []byte, prk xxh3.Uint128) {
	if len(dst)%SegmentSize != 0 {
		panic(ErrInvalidLength)
	}

	var t [2 * SegmentSize]byte

	for i := 0; i < len(dst)/SegmentSize; i++ {
		// Mix the segment index into the second slot.
		binary.LittleEndian.PutUint64(t[SegmentSize:], uint64(i))

		// Replace the first slot with the chained output.
		nested.W128.Append(t[:0], nested.Sum(nested.W128, t[:], prk))

		copy(dst[i*SegmentSize:], t[:SegmentSize])
	}
}

// Derive fills dst with the expansion of seed.
func Derive(dst, seed []byte) {
	Expand(dst, Extract(seed))
}
