package bflang

import "fmt"

// Resolve links every bracket to the index of its partner, in place.
// On error the slice may be partially linked and must not be executed.
func Resolve(insts []Instruction) error {
	var opens []int
	for i := range insts {
		switch insts[i].Op {
		case OpLoopOpen:
			opens = append(opens, i)
		case OpLoopClose:
			if len(opens) == 0 {
				return WithPos(
					fmt.Errorf("%w: unmatched ']' at instruction %d", ErrMalformedProgram, i),
					insts[i].Pos,
				)
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			insts[open].Arg = i
			insts[i].Arg = open
		}
	}
	if len(opens) > 0 {
		open := opens[len(opens)-1]
		return WithPos(
			fmt.Errorf("%w: unmatched '[' at instruction %d", ErrMalformedProgram, open),
			insts[open].Pos,
		)
	}
	return nil
}
