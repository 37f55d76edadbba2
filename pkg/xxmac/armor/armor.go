// Package armor encodes XXH3 secret buffers as ASCII text.
//
// An armored secret is standard base64 wrapped at 64 characters, enclosed in BEGIN and END lines.
// This makes secrets safe to paste into configuration files and terminals.
package armor

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"github.com/emersion/go-textwrapper"
)

const (
	beginLine = "-----BEGIN XXMAC SECRET-----"
	endLine   = "-----END XXMAC SECRET-----"
	lineLen   = 64
)

// ErrInvalidArmor is returned when armored text is missing its BEGIN or END lines or contains
// invalid base64.
var ErrInvalidArmor = errors.New("xxmac: invalid armor")

// NewEncoder returns an io.WriteCloser which armors data before writing it to dst. The END line
// is written on Close.
func NewEncoder(dst io.Writer) (io.WriteCloser, error) {
	if _, err := io.WriteString(dst, beginLine+"\n"); err != nil {
		return nil, err
	}

	return &encoder{
		dst: dst,
		enc: base64.NewEncoder(base64.StdEncoding, textwrapper.New(dst, "\n", lineLen)),
	}, nil
}

// Encode returns the armored form of b.
func Encode(b []byte) []byte {
	buf := bytes.NewBuffer(nil)

	// Writes to a bytes.Buffer never fail.
	enc, _ := NewEncoder(buf)
	_, _ = enc.Write(b)
	_ = enc.Close()

	return buf.Bytes()
}

// Decode returns the data enclosed in armored text.
func Decode(text []byte) ([]byte, error) {
	s := strings.TrimSpace(string(text))
	if len(s) < len(beginLine)+len(endLine) ||
		!strings.HasPrefix(s, beginLine) || !strings.HasSuffix(s, endLine) {
		return nil, ErrInvalidArmor
	}

	body := strings.Join(strings.Fields(s[len(beginLine):len(s)-len(endLine)]), "")

	b, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidArmor
	}

	return b, nil
}

type encoder struct {
	dst io.Writer
	enc io.WriteCloser
}

func (e *encoder) Write(p []byte) (int, error) {
	return e.enc.Write(p)
}

func (e *encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(e.dst, "\n"+endLine+"\n")

	return err
}

var _ io.WriteCloser = &encoder{}
