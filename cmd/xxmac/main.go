package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/codahale/xxmac/pkg/xxmac"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type cli struct {
	Verbose bool `short:"v" env:"XXMAC_VERBOSE" help:"Log debugging information to stderr."`

	Mac      macCmd      `cmd:"" help:"Calculate the MAC of a message."`
	Verify   verifyCmd   `cmd:"" help:"Verify the MAC of a message."`
	Secret   secretCmd   `cmd:"" help:"Derive an XXH3 secret from a seed."`
	Hash     hashCmd     `cmd:"" help:"Calculate the XXH3 digest of a message."`
	Fixtures fixturesCmd `cmd:"" help:"Generate golden values for a fixture directory."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli, kong.Description("Keyed message authentication and secret derivation over XXH3."))
	setupLogging(os.Stderr, cli.Verbose)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

var errKeyTooLong = errors.New("too many hex digits")

// parseKey64 parses a 64-bit key or tag of at most 16 hexadecimal digits, with or without a 0x
// prefix.
func parseKey64(s string) (uint64, error) {
	h := trimHexPrefix(s)
	if len(h) > 2*xxmac.Size64 {
		return 0, errors.Wrapf(errKeyTooLong, "invalid 64-bit value %q", s)
	}

	k, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid 64-bit value %q", s)
	}

	return k, nil
}

// parseKey128 parses a 128-bit key or tag of at most 32 hexadecimal digits, with or without a 0x
// prefix. Shorter values are padded with leading zeros.
func parseKey128(s string) (xxmac.Uint128, error) {
	h := trimHexPrefix(s)
	if n := 2 * xxmac.Size128; len(h) > 0 && len(h) < n {
		h = strings.Repeat("0", n-len(h)) + h
	}

	k, err := xxmac.ParseUint128(h)
	if err != nil {
		return xxmac.Uint128{}, errors.Wrapf(err, "invalid 128-bit value %q", s)
	}

	return k, nil
}

// sum returns the hexadecimal MAC of everything read from src.
func sum(wide bool, key string, src io.Reader) (string, error) {
	if wide {
		k, err := parseKey128(key)
		if err != nil {
			return "", err
		}

		m := xxmac.New128(k)
		if _, err := io.Copy(m, src); err != nil {
			return "", errors.Wrap(err, "reading message")
		}

		return m.Sum128().String(), nil
	}

	k, err := parseKey64(key)
	if err != nil {
		return "", err
	}

	m := xxmac.New64(k)
	if _, err := io.Copy(m, src); err != nil {
		return "", errors.Wrap(err, "reading message")
	}

	return hex64(m.Sum64()), nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}

	return s
}

func hex64(v uint64) string {
	return fmt.Sprintf("%016x", v)
}

func askSeed(prompt string) ([]byte, error) {
	defer func() { _, _ = io.WriteString(os.Stderr, "\n") }()

	_, _ = io.WriteString(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}

	return f, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
