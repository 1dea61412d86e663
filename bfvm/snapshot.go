package bfvm

import (
	"encoding/gob"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/zstd"
	"github.com/reusee/bftape/bflang"
)

type snapshot struct {
	Hash  [32]byte
	Insts []bflang.Instruction
	IP    int
	DP    int
	Tape  []byte
	Steps uint64
}

func (v *VM) Snapshot(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(enc).Encode(snapshot{
		Hash:  v.Program.Hash,
		Insts: v.Program.Insts,
		IP:    v.IP,
		DP:    v.DP,
		Tape:  v.Tape,
		Steps: v.Steps,
	}); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Restore loads state written by Snapshot. A VM that already holds a program only accepts snapshots of the same program.
func (v *VM) Restore(r io.Reader) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer dec.Close()

	var s snapshot
	if err := gob.NewDecoder(dec).Decode(&s); err != nil {
		return err
	}

	if v.Program.Hash != ([32]byte{}) && v.Program.Hash != s.Hash {
		return fmt.Errorf("%w: have %s", ErrProgramMismatch, v.Program.ID())
	}
	if err := s.check(); err != nil {
		return err
	}

	v.Program = bflang.Program{
		Insts: s.Insts,
		Hash:  s.Hash,
	}
	v.IP = s.IP
	v.DP = s.DP
	v.Tape = s.Tape
	if len(v.Tape) == 0 {
		v.Tape = NewTape(1)
	}
	v.Tape.Grow(v.DP)
	v.Steps = s.Steps
	if v.In == nil {
		v.In = emptyInput{}
	}
	if v.Out == nil {
		v.Out = discardOutput{}
	}
	return nil
}

func (s *snapshot) check() error {
	if s.DP < 0 || s.DP >= max(len(s.Tape), 1) {
		return fmt.Errorf("%w: data pointer %d of %d cells", ErrBadSnapshot, s.DP, len(s.Tape))
	}
	if s.IP < 0 || s.IP > len(s.Insts) {
		return fmt.Errorf("%w: instruction pointer %d of %d", ErrBadSnapshot, s.IP, len(s.Insts))
	}

	resolved := slices.Clone(s.Insts)
	if err := bflang.Resolve(resolved); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	for i, inst := range s.Insts {
		switch inst.Op {
		case bflang.OpMoveRight, bflang.OpMoveLeft, bflang.OpIncrement, bflang.OpDecrement:
			if inst.Arg < 1 {
				return fmt.Errorf("%w: count %d at instruction %d", ErrBadSnapshot, inst.Arg, i)
			}
		case bflang.OpOutput, bflang.OpInput:
		case bflang.OpLoopOpen, bflang.OpLoopClose:
			if inst.Arg != resolved[i].Arg {
				return fmt.Errorf("%w: bracket target %d at instruction %d", ErrBadSnapshot, inst.Arg, i)
			}
		default:
			return fmt.Errorf("%w: op %d at instruction %d", ErrBadSnapshot, inst.Op, i)
		}
	}
	return nil
}
