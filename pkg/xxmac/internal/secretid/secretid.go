// Package secretid provides safe identifiers for XXH3 secret buffers.
//
// ID generation is performed as follows, given a secret buffer S:
//
//     K  = XXH3_64('xxmac.secretid')
//     ID = LE_U64(MAC64(K, S))
package secretid

import (
	"encoding/binary"

	"github.com/codahale/xxmac/pkg/xxmac/internal/nested"
	"github.com/zeebo/xxh3"
)

// Size is the length of an identifier in bytes.
const Size = 8

//nolint:gochecknoglobals // derived constant
var key = xxh3.HashString("xxmac.secretid")

// ID returns an identifier for the secret buffer which does not reveal its contents.
func ID(secret []byte) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, Size), nested.Sum(nested.W64, secret, key))
}
