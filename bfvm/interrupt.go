package bfvm

type Interrupt struct {
	Yield bool
}

var (
	InterruptYield = &Interrupt{
		Yield: true,
	}
)
