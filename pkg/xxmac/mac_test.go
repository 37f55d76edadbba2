package xxmac

import (
	"io"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMAC64(t *testing.T) {
	t.Parallel()

	msg := strings.Repeat("well this is a pickle ", 50)
	m := New64(seed64)

	if _, err := io.Copy(m, iotest(msg, 7)); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "digest", Sum64([]byte(msg), seed64), m.Sum64())
	assert.Equal(t, "size", Size64, m.Size())
}

func TestMAC128(t *testing.T) {
	t.Parallel()

	msg := strings.Repeat("well this is a pickle ", 50)
	m := New128(key128)

	if _, err := io.Copy(m, iotest(msg, 13)); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "digest", Sum128([]byte(msg), key128), m.Sum128())
	assert.Equal(t, "size", Size128, m.Size())
}

func TestMAC_Reset(t *testing.T) {
	t.Parallel()

	var m MAC64

	m.Reset(1)
	_, _ = m.WriteString("one")
	_ = m.Sum64()

	m.Reset(2)
	_, _ = m.WriteString("two")

	assert.Equal(t, "digest", Sum64([]byte("two"), 2), m.Sum64())

	var m128 MAC128

	m128.Reset(key128)
	_, _ = m128.WriteString("two")

	assert.Equal(t, "128-bit digest", Sum128([]byte("two"), key128), m128.Sum128())
}

func TestMAC_Misuse(t *testing.T) {
	t.Parallel()

	m := New64(seed64)
	_ = m.Sum64()

	assert.Equal(t, "write after sum", ErrFinalized, panicValue(func() {
		_, _ = m.WriteString("more")
	}), cmpopts.EquateErrors())

	var zero MAC128

	assert.Equal(t, "zero value", ErrUninitialized, panicValue(func() {
		_ = zero.Sum128()
	}), cmpopts.EquateErrors())
}

// iotest returns a reader which yields s in chunks of at most n bytes.
func iotest(s string, n int) io.Reader {
	return &chunkReader{r: strings.NewReader(s), n: n}
}

type chunkReader struct {
	r io.Reader
	n int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}

	return c.r.Read(p)
}

func panicValue(f func()) (v interface{}) {
	defer func() { v = recover() }()

	f()

	return nil
}
