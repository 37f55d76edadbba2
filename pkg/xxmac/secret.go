package xxmac

import (
	"crypto/rand"
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/codahale/xxmac/pkg/xxmac/armor"
	"github.com/codahale/xxmac/pkg/xxmac/internal/hkdf"
	"github.com/codahale/xxmac/pkg/xxmac/internal/secretid"
	"github.com/mr-tron/base58"
)

// SecretSize is the size of an XXH3 secret buffer in bytes.
const SecretSize = 192

// ErrInvalidSecretSize is returned when decoding a secret which is not exactly SecretSize bytes.
var ErrInvalidSecretSize = errors.New("xxmac: invalid secret size")

// Secret is an XXH3 keying table.
//
// Secrets are opaque. String returns a short identifier rather than the secret's contents.
type Secret [SecretSize]byte

// NewSecret deterministically derives a Secret from a seed of any length, including zero.
func NewSecret(seed []byte) *Secret {
	var s Secret

	hkdf.Derive(s[:], seed)

	return &s
}

// RandomSecret returns a Secret filled from crypto/rand.
func RandomSecret() (*Secret, error) {
	return readSecret(rand.Reader)
}

func readSecret(r io.Reader) (*Secret, error) {
	var s Secret

	if _, err := io.ReadFull(r, s[:]); err != nil {
		return nil, err
	}

	return &s, nil
}

// ID returns a short identifier for the secret which does not reveal its contents.
func (s *Secret) ID() []byte {
	return secretid.ID(s[:])
}

// String returns the base58-encoded ID of the secret.
func (s *Secret) String() string {
	return base58.Encode(s.ID())
}

func (s *Secret) MarshalBinary() ([]byte, error) {
	b := make([]byte, SecretSize)
	copy(b, s[:])

	return b, nil
}

func (s *Secret) UnmarshalBinary(data []byte) error {
	if len(data) != SecretSize {
		return ErrInvalidSecretSize
	}

	copy(s[:], data)

	return nil
}

// MarshalText returns the armored form of the secret.
func (s *Secret) MarshalText() ([]byte, error) {
	return armor.Encode(s[:]), nil
}

func (s *Secret) UnmarshalText(text []byte) error {
	b, err := armor.Decode(text)
	if err != nil {
		return err
	}

	return s.UnmarshalBinary(b)
}

var (
	_ encoding.BinaryMarshaler   = &Secret{}
	_ encoding.BinaryUnmarshaler = &Secret{}
	_ encoding.TextMarshaler     = &Secret{}
	_ encoding.TextUnmarshaler   = &Secret{}
	_ fmt.Stringer               = &Secret{}
)
