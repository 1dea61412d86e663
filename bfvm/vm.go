package bfvm

import (
	"io"

	"github.com/reusee/bftape/bflang"
)

type VM struct {
	Program bflang.Program
	IP      int
	DP      int
	Tape    Tape
	Steps   uint64

	// Quantum is the number of instructions between InterruptYield yields; zero disables them.
	Quantum int

	In  io.ByteReader
	Out io.ByteWriter
}

func NewVM(program bflang.Program, in io.ByteReader, out io.ByteWriter) *VM {
	if in == nil {
		in = emptyInput{}
	}
	if out == nil {
		out = discardOutput{}
	}
	return &VM{
		Program: program,
		Tape:    NewTape(1),
		In:      in,
		Out:     out,
	}
}

func (v *VM) Cell() byte {
	return v.Tape[v.DP]
}

func (v *VM) Done() bool {
	return v.IP >= len(v.Program.Insts)
}
