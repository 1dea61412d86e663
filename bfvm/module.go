package bfvm

import (
	"context"
	"io"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bflang"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

type Compile func(ctx context.Context, src []byte) (bflang.Program, error)

func (Module) Compile(
	fold bfconfigs.Fold,
	logger logs.Logger,
) Compile {
	return func(ctx context.Context, src []byte) (bflang.Program, error) {
		program, err := bflang.Compile(src, bool(fold))
		if err != nil {
			return program, err
		}
		logger.InfoContext(ctx, "compiled",
			"program", program.ID(),
			"source_bytes", len(src),
			"instructions", program.Len(),
			"fold", bool(fold),
		)
		return program, nil
	}
}

type Spawn func(program bflang.Program, in io.ByteReader, out io.ByteWriter) *VM

func (Module) Spawn(
	capacity bfconfigs.TapeCapacity,
	quantum bfconfigs.Quantum,
) Spawn {
	return func(program bflang.Program, in io.ByteReader, out io.ByteWriter) *VM {
		vm := NewVM(program, in, out)
		vm.Tape = NewTape(int(capacity))
		vm.Quantum = int(quantum)
		return vm
	}
}

// Execute compiles and runs src to completion.
// The returned VM holds the final state, also when err is not nil.
type Execute func(ctx context.Context, src []byte, in io.ByteReader, out io.ByteWriter) (*VM, error)

func (Module) Execute(
	compile Compile,
	spawn Spawn,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, src []byte, in io.ByteReader, out io.ByteWriter) (*VM, error) {
		program, err := compile(ctx, src)
		if err != nil {
			return nil, err
		}

		vm := spawn(program, in, out)
		for intr, err := range vm.Run {
			if err != nil {
				logger.ErrorContext(ctx, "run failed",
					"program", program.ID(),
					"ip", vm.IP,
					"dp", vm.DP,
					"steps", vm.Steps,
					"error", err,
				)
				return vm, err
			}
			if intr != nil && intr.Yield {
				logger.DebugContext(ctx, "progress",
					"ip", vm.IP,
					"steps", vm.Steps,
					"tape", len(vm.Tape),
				)
			}
		}

		logger.DebugContext(ctx, "run done",
			"program", program.ID(),
			"steps", vm.Steps,
			"tape", len(vm.Tape),
		)
		return vm, nil
	}
}
