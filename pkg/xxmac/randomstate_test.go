package xxmac

import (
	"bytes"
	"io"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRandomState(t *testing.T) {
	t.Parallel()

	rs, err := readRandomState(bytes.NewReader(counter(32)))
	if err != nil {
		t.Fatal(err)
	}

	msg := []byte("well this is a pickle")

	h := rs.NewHasher()
	_, _ = h.Write(msg)

	assert.Equal(t, "hasher", Hash64Seed(msg, 0x0706050403020100), h.Sum64())
	assert.Equal(t, "Hash64", Hash64Seed(msg, 0x0706050403020100), rs.Hash64(msg))
	assert.Equal(t, "Hash128", Hash128Seed(msg, 0x0706050403020100), rs.Hash128(msg))

	m64 := rs.New64()
	_, _ = m64.Write(msg)

	assert.Equal(t, "MAC64", Sum64(msg, 0x0f0e0d0c0b0a0908), m64.Sum64())

	m128 := rs.New128()
	_, _ = m128.Write(msg)

	assert.Equal(t, "MAC128",
		Sum128(msg, Uint128{Hi: 0x1f1e1d1c1b1a1918, Lo: 0x1716151413121110}), m128.Sum128())
}

func TestRandomState_ShortRead(t *testing.T) {
	t.Parallel()

	_, err := readRandomState(bytes.NewReader(counter(31)))

	assert.Equal(t, "error", io.ErrUnexpectedEOF, err, cmpopts.EquateErrors())
}

func TestNewRandomState(t *testing.T) {
	t.Parallel()

	a, err := NewRandomState()
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewRandomState()
	if err != nil {
		t.Fatal(err)
	}

	msg := []byte("well this is a pickle")

	if a.Hash64(msg) == b.Hash64(msg) {
		t.Error("independent states produced the same digest")
	}

	assert.Equal(t, "repeatable", a.Hash64(msg), a.Hash64(msg))
}

func counter(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}

	return b
}
