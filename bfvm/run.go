package bfvm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bftape/bflang"
)

func (v *VM) Run(yield func(*Interrupt, error) bool) {
	insts := v.Program.Insts
	if len(v.Tape) == 0 {
		v.Tape = NewTape(1)
	}

	var n int
	for v.IP < len(insts) {
		if v.Quantum > 0 && n >= v.Quantum {
			n = 0
			if !yield(InterruptYield, nil) {
				return
			}
		}

		inst := insts[v.IP]
		v.Steps++
		n++

		switch inst.Op {
		case bflang.OpMoveRight:
			v.DP += inst.Arg
			v.Tape.Grow(v.DP)

		case bflang.OpMoveLeft:
			if inst.Arg > v.DP {
				yield(nil, bflang.WithPos(
					fmt.Errorf("%w: move left by %d from cell %d at instruction %d",
						ErrPointerUnderflow, inst.Arg, v.DP, v.IP),
					inst.Pos,
				))
				return
			}
			v.DP -= inst.Arg

		case bflang.OpIncrement:
			v.Tape[v.DP] += byte(inst.Arg)

		case bflang.OpDecrement:
			v.Tape[v.DP] -= byte(inst.Arg)

		case bflang.OpOutput:
			if err := v.Out.WriteByte(v.Tape[v.DP]); err != nil {
				yield(nil, fmt.Errorf("%w: %w", ErrOutput, err))
				return
			}

		case bflang.OpInput:
			b, err := v.In.ReadByte()
			if errors.Is(err, io.EOF) {
				b = 0
			} else if err != nil {
				yield(nil, fmt.Errorf("%w: %w", ErrInput, err))
				return
			}
			v.Tape[v.DP] = b

		case bflang.OpLoopOpen:
			if v.Tape[v.DP] == 0 {
				v.IP = inst.Arg + 1
				continue
			}

		case bflang.OpLoopClose:
			if v.Tape[v.DP] != 0 {
				v.IP = inst.Arg + 1
				continue
			}

		default:
			yield(nil, bflang.WithPos(
				fmt.Errorf("invalid op %d at instruction %d", inst.Op, v.IP),
				inst.Pos,
			))
			return
		}

		v.IP++
	}
}
