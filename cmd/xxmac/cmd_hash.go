package main

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/codahale/xxmac/pkg/xxmac"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
)

type hashCmd struct {
	Input  string `arg:"" type:"path" default:"-" help:"The path to the message."`
	Output string `type:"path" default:"-" help:"The output path for the digest."`
	Seed   uint64 `help:"The XXH3 seed."`
	Wide   bool   `help:"Calculate a 128-bit digest."`
}

func (cmd *hashCmd) Run(_ *kong.Context) error {
	// Open the input.
	src, err := openInput(cmd.Input)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// Hash the input.
	h := xxh3.NewSeed(cmd.Seed)
	if _, err := io.Copy(h, src); err != nil {
		return errors.Wrap(err, "reading message")
	}

	digest := hex64(h.Sum64())
	if cmd.Wide {
		d := h.Sum128()
		digest = xxmac.Uint128{Hi: d.Hi, Lo: d.Lo}.String()
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Write the digest.
	_, err = io.WriteString(dst, digest+"\n")

	return err
}
