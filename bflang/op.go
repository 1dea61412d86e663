package bflang

type Op uint8

const (
	OpInvalid Op = iota
	OpMoveRight
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpLoopOpen
	OpLoopClose
)

func opFromByte(b byte) Op {
	switch b {
	case '>':
		return OpMoveRight
	case '<':
		return OpMoveLeft
	case '+':
		return OpIncrement
	case '-':
		return OpDecrement
	case '.':
		return OpOutput
	case ',':
		return OpInput
	case '[':
		return OpLoopOpen
	case ']':
		return OpLoopClose
	}
	return OpInvalid
}

func (o Op) String() string {
	switch o {
	case OpMoveRight:
		return ">"
	case OpMoveLeft:
		return "<"
	case OpIncrement:
		return "+"
	case OpDecrement:
		return "-"
	case OpOutput:
		return "."
	case OpInput:
		return ","
	case OpLoopOpen:
		return "["
	case OpLoopClose:
		return "]"
	}
	return "?"
}

// Foldable reports whether consecutive instructions of this op may be merged into one counted instruction.
func (o Op) Foldable() bool {
	switch o {
	case OpMoveRight, OpMoveLeft, OpIncrement, OpDecrement:
		return true
	}
	return false
}

func (o Op) IsBracket() bool {
	return o == OpLoopOpen || o == OpLoopClose
}
