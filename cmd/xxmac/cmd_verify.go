package main

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/codahale/xxmac/pkg/xxmac"
	"github.com/pkg/errors"
)

var errInvalidMAC = errors.New("invalid MAC")

type verifyCmd struct {
	Key   string `arg:"" help:"The key, in hexadecimal."`
	MAC   string `arg:"" help:"The expected MAC, in hexadecimal."`
	Input string `arg:"" type:"path" default:"-" help:"The path to the message."`
	Wide  bool   `help:"Use a 128-bit key and MAC."`
}

func (cmd *verifyCmd) Run(_ *kong.Context) error {
	// Open the input.
	src, err := openInput(cmd.Input)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// Read the message.
	msg, err := io.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "reading message")
	}

	// Check the MAC.
	ok, err := cmd.verify(msg)
	if err != nil {
		return err
	}

	if !ok {
		log.Debugf("MAC %s does not match %s", cmd.MAC, cmd.Input)

		return errInvalidMAC
	}

	log.Infof("valid MAC for %s", cmd.Input)

	return nil
}

func (cmd *verifyCmd) verify(msg []byte) (bool, error) {
	if cmd.Wide {
		key, err := parseKey128(cmd.Key)
		if err != nil {
			return false, err
		}

		tag, err := parseKey128(cmd.MAC)
		if err != nil {
			return false, err
		}

		return xxmac.Verify128(msg, key, tag), nil
	}

	key, err := parseKey64(cmd.Key)
	if err != nil {
		return false, err
	}

	tag, err := parseKey64(cmd.MAC)
	if err != nil {
		return false, err
	}

	return xxmac.Verify64(msg, key, tag), nil
}
