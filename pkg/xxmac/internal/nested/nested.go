// Package nested implements the two-pass keyed construction xxmac uses over XXH3.
//
// Given a key K of the hash's native digest width W and a message M:
//
//     INNER = K ^ (0x36 * W/8)
//     OUTER = K ^ (0x5c * W/8)
//     MID   = XXH3_W(LE(INNER) || M)
//     MAC   = XXH3_W(LE(OUTER) || LE(MID))
//
// Short messages are hashed from a single contiguous buffer; longer ones are fed through a
// streaming XXH3 engine. Both paths produce identical output.
package nested

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/zeebo/xxh3"
)

const (
	// MidsizeMax is the largest message length (exclusive) which is hashed inline rather than
	// through a streaming engine. It matches XXH3's mid-size input bound.
	MidsizeMax = 240

	ipad = 0x36
	opad = 0x5c

	maxSize = 16
)

var (
	// ErrFinalized is the panic value when a State is written to after its digest was read.
	ErrFinalized = errors.New("xxmac: write after digest")

	// ErrUninitialized is the panic value when a State is used without being keyed.
	ErrUninitialized = errors.New("xxmac: state used before reset")

	// ErrNoWidth is the panic value when a State which was not created by NewState is reset.
	ErrNoWidth = errors.New("xxmac: state has no width")
)

// Hasher is a streaming XXH3 engine of a particular width.
type Hasher[D any] interface {
	io.Writer
	io.StringWriter

	// Reset returns the engine to its unseeded initial state.
	Reset()

	// Digest returns the digest of the data written so far without modifying the engine.
	Digest() D
}

// Width binds the operations of one XXH3 output width.
type Width[D any] struct {
	// Size is the encoded size of a key or digest in bytes.
	Size int

	// Pad returns d XORed with b repeated across the full width.
	Pad func(d D, b byte) D

	// Append appends the little-endian encoding of d to b.
	Append func(b []byte, d D) []byte

	// Hash is the unseeded one-shot digest.
	Hash func(b []byte) D

	// New returns a fresh streaming engine.
	New func() Hasher[D]
}

// W64 is the 64-bit XXH3 width.
//
//nolint:gochecknoglobals // immutable table
var W64 = &Width[uint64]{
	Size: 8,
	Pad: func(d uint64, b byte) uint64 {
		return d ^ fill(b)
	},
	Append: binary.LittleEndian.AppendUint64,
	Hash:   xxh3.Hash,
	New: func() Hasher[uint64] {
		return engine64{xxh3.New()}
	},
}

// W128 is the 128-bit XXH3 width. Values are encoded as the low half followed by the high half.
//
//nolint:gochecknoglobals // immutable table
var W128 = &Width[xxh3.Uint128]{
	Size: 16,
	Pad: func(d xxh3.Uint128, b byte) xxh3.Uint128 {
		return xxh3.Uint128{Hi: d.Hi ^ fill(b), Lo: d.Lo ^ fill(b)}
	},
	Append: func(b []byte, d xxh3.Uint128) []byte {
		b = binary.LittleEndian.AppendUint64(b, d.Lo)
		return binary.LittleEndian.AppendUint64(b, d.Hi)
	},
	Hash: xxh3.Hash128,
	New: func() Hasher[xxh3.Uint128] {
		return engine128{xxh3.New128()}
	},
}

// Keys returns the inner and outer padded keys for the given key.
func Keys[D any](w *Width[D], key D) (inner, outer D) {
	return w.Pad(key, ipad), w.Pad(key, opad)
}

// Sum returns the MAC of msg using key.
func Sum[D any](w *Width[D], msg []byte, key D) D {
	return sum(w, msg, key, MidsizeMax)
}

// sum hashes messages shorter than threshold inline and everything else via a streaming engine.
func sum[D any](w *Width[D], msg []byte, key D, threshold int) D {
	var mid D

	inner, outer := Keys(w, key)

	if len(msg) < threshold {
		var arr [maxSize + MidsizeMax]byte

		buf := arr[:0]
		if w.Size+len(msg) > len(arr) {
			buf = make([]byte, 0, w.Size+len(msg))
		}

		buf = w.Append(buf, inner)
		buf = append(buf, msg...)
		mid = w.Hash(buf)
	} else {
		h := w.New()
		writeKey(w, h, inner)
		_, _ = h.Write(msg)
		mid = h.Digest()
	}

	return finish(w, outer, mid)
}

// finish hashes the outer key and the inner digest.
func finish[D any](w *Width[D], outer, mid D) D {
	var arr [2 * maxSize]byte

	return w.Hash(w.Append(w.Append(arr[:0], outer), mid))
}

func writeKey[D any](w *Width[D], h Hasher[D], key D) {
	var arr [maxSize]byte

	_, _ = h.Write(w.Append(arr[:0], key))
}

func fill(b byte) uint64 {
	return 0x0101010101010101 * uint64(b)
}

type engine64 struct {
	*xxh3.Hasher
}

func (e engine64) Digest() uint64 {
	return e.Sum64()
}

type engine128 struct {
	*xxh3.Hasher128
}

func (e engine128) Digest() xxh3.Uint128 {
	return e.Sum128()
}
