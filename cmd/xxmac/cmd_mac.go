package main

import (
	"io"

	"github.com/alecthomas/kong"
)

type macCmd struct {
	Key    string `arg:"" help:"The key, in hexadecimal."`
	Input  string `arg:"" type:"path" default:"-" help:"The path to the message."`
	Output string `type:"path" default:"-" help:"The output path for the MAC."`
	Wide   bool   `help:"Use a 128-bit key and MAC."`
}

func (cmd *macCmd) Run(_ *kong.Context) error {
	// Open the input.
	src, err := openInput(cmd.Input)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// Calculate the MAC.
	tag, err := sum(cmd.Wide, cmd.Key, src)
	if err != nil {
		return err
	}

	log.Debugf("mac of %s is %s", cmd.Input, tag)

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Write the MAC.
	_, err = io.WriteString(dst, tag+"\n")

	return err
}
