package bfvm

import "errors"

var (
	ErrPointerUnderflow = errors.New("pointer underflow")
	ErrInput            = errors.New("input")
	ErrOutput           = errors.New("output")
	ErrProgramMismatch  = errors.New("snapshot program mismatch")
	ErrBadSnapshot      = errors.New("bad snapshot")
)
