package bfvm

// Tape only grows to the right; cell 0 always exists.
type Tape []byte

func NewTape(capacity int) Tape {
	if capacity < 1 {
		capacity = 1
	}
	return make(Tape, 1, capacity)
}

// Grow makes dp a valid index, zero-filling new cells.
func (t *Tape) Grow(dp int) {
	if dp < len(*t) {
		return
	}
	if dp < cap(*t) {
		n := len(*t)
		*t = (*t)[:dp+1]
		clear((*t)[n:])
		return
	}
	newCap := cap(*t) * 2
	if newCap <= dp {
		newCap = dp + 1
	}
	newTape := make(Tape, dp+1, newCap)
	copy(newTape, *t)
	*t = newTape
}
