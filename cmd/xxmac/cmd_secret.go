package main

import (
	"bytes"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/xxmac/pkg/xxmac"
	"github.com/pkg/errors"
)

var errSeedMismatch = errors.New("seed mismatch")

type secretCmd struct {
	Output string `arg:"" type:"path" help:"The output path for the secret."`
	Seed   string `type:"existingfile" xor:"seed" help:"Read the seed from a file instead of prompting for it."`
	Random bool   `xor:"seed" help:"Generate a random secret instead of deriving one from a seed."`
	Armor  bool   `help:"Write the secret as ASCII armor."`
}

func (cmd *secretCmd) Run(_ *kong.Context) error {
	// Generate or derive the secret.
	secret, err := cmd.secret()
	if err != nil {
		return err
	}

	// Encode it.
	var b []byte
	if cmd.Armor {
		b, err = secret.MarshalText()
	} else {
		b, err = secret.MarshalBinary()
	}

	if err != nil {
		return err
	}

	// Write it out.
	if err := os.WriteFile(cmd.Output, b, 0600); err != nil {
		return errors.Wrapf(err, "writing %s", cmd.Output)
	}

	log.Infof("wrote secret %s to %s", secret, cmd.Output)

	return nil
}

func (cmd *secretCmd) secret() (*xxmac.Secret, error) {
	if cmd.Random {
		secret, err := xxmac.RandomSecret()
		if err != nil {
			return nil, errors.Wrap(err, "generating secret")
		}

		return secret, nil
	}

	// Read or prompt for the seed.
	seed, err := cmd.seed()
	if err != nil {
		return nil, err
	}

	log.Debugf("deriving secret from a %d-byte seed", len(seed))

	return xxmac.NewSecret(seed), nil
}

func (cmd *secretCmd) seed() ([]byte, error) {
	if cmd.Seed != "" {
		b, err := os.ReadFile(cmd.Seed)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", cmd.Seed)
		}

		return b, nil
	}

	seed, err := askSeed("Enter seed: ")
	if err != nil {
		return nil, errors.Wrap(err, "reading seed")
	}

	cfm, err := askSeed("Confirm seed: ")
	if err != nil {
		return nil, errors.Wrap(err, "reading seed")
	}

	if !bytes.Equal(seed, cfm) {
		return nil, errSeedMismatch
	}

	return seed, nil
}
