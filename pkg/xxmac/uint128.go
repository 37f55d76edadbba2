package xxmac

import (
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// Uint128 is a 128-bit key or digest.
type Uint128 struct {
	Hi, Lo uint64
}

// ErrInvalidUint128 is returned when text is not 32 hexadecimal digits.
var ErrInvalidUint128 = errors.New("xxmac: invalid 128-bit value")

// ParseUint128 parses 32 hexadecimal digits, high half first.
func ParseUint128(s string) (Uint128, error) {
	var u Uint128

	if err := u.UnmarshalText([]byte(s)); err != nil {
		return Uint128{}, err
	}

	return u, nil
}

// Bytes returns the little-endian encoding of u: the low half followed by the high half.
func (u Uint128) Bytes() [Size128]byte {
	var b [Size128]byte

	binary.LittleEndian.PutUint64(b[:8], u.Lo)
	binary.LittleEndian.PutUint64(b[8:], u.Hi)

	return b
}

// String returns u as 32 hexadecimal digits, high half first.
func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint128) UnmarshalText(text []byte) error {
	if len(text) != 2*Size128 {
		return ErrInvalidUint128
	}

	var b [Size128]byte
	if _, err := hex.Decode(b[:], text); err != nil {
		return ErrInvalidUint128
	}

	u.Hi = binary.BigEndian.Uint64(b[:8])
	u.Lo = binary.BigEndian.Uint64(b[8:])

	return nil
}

var (
	_ encoding.TextMarshaler   = Uint128{}
	_ encoding.TextUnmarshaler = &Uint128{}
	_ fmt.Stringer             = Uint128{}
)
