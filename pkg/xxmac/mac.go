package xxmac

import (
	"io"

	"github.com/codahale/xxmac/pkg/xxmac/internal/nested"
	"github.com/zeebo/xxh3"
)

// MAC64 incrementally computes a 64-bit MAC. Its output is identical to Sum64 over the
// concatenation of everything written to it.
//
// Once Sum64 has been called, further writes panic with ErrFinalized until the MAC is Reset.
type MAC64 struct {
	s *nested.State[uint64]
}

// New64 returns a MAC64 keyed with key.
func New64(key uint64) *MAC64 {
	return &MAC64{s: nested.NewState(nested.W64, key)}
}

// Reset discards any written data and re-keys the MAC with key.
func (m *MAC64) Reset(key uint64) {
	if m.s == nil {
		m.s = nested.NewState(nested.W64, key)
		return
	}

	m.s.Reset(key)
}

func (m *MAC64) Write(p []byte) (int, error) {
	return m.state().Write(p)
}

func (m *MAC64) WriteString(s string) (int, error) {
	return m.state().WriteString(s)
}

// Sum64 returns the MAC of the data written so far.
func (m *MAC64) Sum64() uint64 {
	return m.state().Digest()
}

// Size returns the size of the MAC in bytes.
func (m *MAC64) Size() int {
	return Size64
}

func (m *MAC64) state() *nested.State[uint64] {
	if m.s == nil {
		panic(ErrUninitialized)
	}

	return m.s
}

// MAC128 incrementally computes a 128-bit MAC. Its output is identical to Sum128 over the
// concatenation of everything written to it.
//
// Once Sum128 has been called, further writes panic with ErrFinalized until the MAC is Reset.
type MAC128 struct {
	s *nested.State[xxh3.Uint128]
}

// New128 returns a MAC128 keyed with key.
func New128(key Uint128) *MAC128 {
	return &MAC128{s: nested.NewState(nested.W128, xxh3.Uint128(key))}
}

// Reset discards any written data and re-keys the MAC with key.
func (m *MAC128) Reset(key Uint128) {
	if m.s == nil {
		m.s = nested.NewState(nested.W128, xxh3.Uint128(key))
		return
	}

	m.s.Reset(xxh3.Uint128(key))
}

func (m *MAC128) Write(p []byte) (int, error) {
	return m.state().Write(p)
}

func (m *MAC128) WriteString(s string) (int, error) {
	return m.state().WriteString(s)
}

// Sum128 returns the MAC of the data written so far.
func (m *MAC128) Sum128() Uint128 {
	return Uint128(m.state().Digest())
}

// Size returns the size of the MAC in bytes.
func (m *MAC128) Size() int {
	return Size128
}

func (m *MAC128) state() *nested.State[xxh3.Uint128] {
	if m.s == nil {
		panic(ErrUninitialized)
	}

	return m.s
}

var (
	_ io.Writer       = &MAC64{}
	_ io.StringWriter = &MAC64{}
	_ io.Writer       = &MAC128{}
	_ io.StringWriter = &MAC128{}
)
