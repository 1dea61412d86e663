package bflang

// Tokenize keeps the eight operator bytes and drops everything else.
func Tokenize(src []byte) []Instruction {
	insts := make([]Instruction, 0, len(src))
	pos := Pos{
		Line:   1,
		Column: 1,
	}
	for i, b := range src {
		pos.Offset = i
		if op := opFromByte(b); op != OpInvalid {
			inst := Instruction{
				Op:  op,
				Pos: pos,
			}
			if op.Foldable() {
				inst.Arg = 1
			}
			insts = append(insts, inst)
		}
		if b == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return insts
}
