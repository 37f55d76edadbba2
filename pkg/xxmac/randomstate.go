package xxmac

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/zeebo/xxh3"
)

// RandomState builds XXH3 hashers and MACs keyed with values drawn once from crypto/rand. Every
// hasher or MAC built from the same RandomState agrees with every other one, which makes it
// suitable for keying hash tables against collision flooding.
type RandomState struct {
	seed   uint64
	key64  uint64
	key128 Uint128
}

// NewRandomState returns a RandomState with a random seed and random MAC keys.
func NewRandomState() (*RandomState, error) {
	return readRandomState(rand.Reader)
}

func readRandomState(r io.Reader) (*RandomState, error) {
	var b [2*Size64 + Size128]byte

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, err
	}

	return &RandomState{
		seed:  binary.LittleEndian.Uint64(b[0:]),
		key64: binary.LittleEndian.Uint64(b[8:]),
		key128: Uint128{
			Lo: binary.LittleEndian.Uint64(b[16:]),
			Hi: binary.LittleEndian.Uint64(b[24:]),
		},
	}, nil
}

// NewHasher returns a streaming XXH3 hasher seeded with the state's seed.
func (rs *RandomState) NewHasher() *xxh3.Hasher {
	return xxh3.NewSeed(rs.seed)
}

// Hash64 returns the seeded 64-bit XXH3 digest of b.
func (rs *RandomState) Hash64(b []byte) uint64 {
	return Hash64Seed(b, rs.seed)
}

// Hash128 returns the seeded 128-bit XXH3 digest of b.
func (rs *RandomState) Hash128(b []byte) Uint128 {
	return Hash128Seed(b, rs.seed)
}

// New64 returns a MAC64 keyed with the state's 64-bit key.
func (rs *RandomState) New64() *MAC64 {
	return New64(rs.key64)
}

// New128 returns a MAC128 keyed with the state's 128-bit key.
func (rs *RandomState) New128() *MAC128 {
	return New128(rs.key128)
}
