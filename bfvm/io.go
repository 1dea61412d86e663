package bfvm

import (
	"io"

	"golang.org/x/text/encoding/charmap"
)

type emptyInput struct{}

func (emptyInput) ReadByte() (byte, error) {
	return 0, io.EOF
}

type discardOutput struct{}

func (discardOutput) WriteByte(byte) error {
	return nil
}

type RuneWriter interface {
	WriteRune(r rune) (int, error)
}

// CharsetOutput displays each cell byte as the character it encodes in Charmap.
// A nil Charmap means ISO 8859-1.
type CharsetOutput struct {
	Charmap *charmap.Charmap
	W       RuneWriter
}

var _ io.ByteWriter = CharsetOutput{}

func (c CharsetOutput) WriteByte(b byte) error {
	cm := c.Charmap
	if cm == nil {
		cm = charmap.ISO8859_1
	}
	_, err := c.W.WriteRune(cm.DecodeByte(b))
	return err
}
