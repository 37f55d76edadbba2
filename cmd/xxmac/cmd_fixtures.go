package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/codahale/xxmac/pkg/xxmac"
	"github.com/pkg/errors"
)

// fixtureSeed is the seed and key used for every golden value.
const fixtureSeed = 0x06cd630df7649871

type fixturesCmd struct {
	Dir    string `arg:"" type:"existingdir" help:"A directory containing data and key files."`
	Output string `type:"path" default:"-" help:"The output path for the golden values."`
}

func (cmd *fixturesCmd) Run(_ *kong.Context) error {
	// Read the fixture inputs.
	data, err := os.ReadFile(filepath.Join(cmd.Dir, "data"))
	if err != nil {
		return errors.Wrap(err, "reading data")
	}

	key, err := os.ReadFile(filepath.Join(cmd.Dir, "key"))
	if err != nil {
		return errors.Wrap(err, "reading key")
	}

	log.Debugf("read %d bytes of data and a %d-byte key", len(data), len(key))

	// Derive and write the secret.
	secret := xxmac.NewSecret(key)

	b, err := secret.MarshalBinary()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(cmd.Dir, "secret_entropy"), b, 0600); err != nil {
		return errors.Wrap(err, "writing secret_entropy")
	}

	// Write the golden values.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	return writeFixtures(dst, data, secret)
}

// writeFixtures prints the golden values as Rust constant declarations, one per line.
func writeFixtures(dst io.Writer, data []byte, secret *xxmac.Secret) error {
	key128 := xxmac.Uint128{Hi: fixtureSeed, Lo: ^uint64(fixtureSeed)}

	values := []struct {
		name, typ, value string
	}{
		{"SEED64", "u64", "0x" + hex64(fixtureSeed)},
		{"XXH3_64_HASH", "u64", "0x" + hex64(xxmac.Hash64(data))},
		{"XXH3_64_SEEDED", "u64", "0x" + hex64(xxmac.Hash64Seed(data, fixtureSeed))},
		{"XXH3_128_HASH", "u128", "0x" + xxmac.Hash128(data).String()},
		{"XXH3_128_SEEDED", "u128", "0x" + xxmac.Hash128Seed(data, fixtureSeed).String()},
		{"MAC64", "u64", "0x" + hex64(xxmac.Sum64(data, fixtureSeed))},
		{"MAC128", "u128", "0x" + xxmac.Sum128(data, key128).String()},
		{"SECRET_ID", "&str", fmt.Sprintf("%q", secret.String())},
	}

	for _, v := range values {
		if _, err := fmt.Fprintf(dst, "const %-15s : %4s = %s;\n", v.name, v.typ, v.value); err != nil {
			return err
		}
	}

	return nil
}
