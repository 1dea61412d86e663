package bflang

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Instruction is one decoded operation.
// Arg is the repeat count for moves and arithmetic, and the index of the partner bracket for loops.
type Instruction struct {
	Op  Op
	Arg int
	Pos Pos
}

func (i Instruction) String() string {
	switch {
	case i.Op.Foldable():
		return fmt.Sprintf("%s%d", i.Op, i.Arg)
	case i.Op.IsBracket():
		return fmt.Sprintf("%s@%d", i.Op, i.Arg)
	}
	return i.Op.String()
}

type Program struct {
	Insts []Instruction
	Hash  [32]byte
}

func (p Program) Len() int {
	return len(p.Insts)
}

func (p Program) ID() string {
	return base58.Encode(p.Hash[:])
}

// String renders canonical source; counted instructions are expanded back to runs.
func (p Program) String() string {
	var b strings.Builder
	for _, inst := range p.Insts {
		n := 1
		if inst.Op.Foldable() {
			n = inst.Arg
		}
		for range n {
			b.WriteString(inst.Op.String())
		}
	}
	return b.String()
}
