package bflang

// Fold merges runs of identical moves or arithmetic into single counted instructions.
// Counts are not reduced; the engine applies them with wrapping arithmetic.
func Fold(insts []Instruction) []Instruction {
	ret := make([]Instruction, 0, len(insts))
	for _, inst := range insts {
		if n := len(ret); n > 0 && inst.Op.Foldable() && ret[n-1].Op == inst.Op {
			ret[n-1].Arg += inst.Arg
			continue
		}
		ret = append(ret, inst)
	}
	return ret
}
