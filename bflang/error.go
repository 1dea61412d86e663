package bflang

import (
	"errors"
	"fmt"
)

var ErrMalformedProgram = errors.New("malformed program")

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	return fmt.Sprintf("%s at %s (offset %d)", p.Err.Error(), p.Pos, p.Pos.Offset)
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
