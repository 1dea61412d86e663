package bfconfigs

import (
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/vars"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

const DefaultTapeCapacity = 1024

type Fold bool

var noFoldFlag = cmds.Switch("-no-fold")

func (Module) Fold(
	loader configs.Loader,
) Fold {
	if *noFoldFlag {
		return false
	}
	return Fold(vars.DerefOr(configs.First[*bool](loader, "fold"), true))
}

type TapeCapacity int

var tapeCapacityFlag = cmds.Var[int]("-tape-capacity")

func (Module) TapeCapacity(
	loader configs.Loader,
) TapeCapacity {
	return TapeCapacity(vars.FirstNonZero(
		*tapeCapacityFlag,
		configs.First[int](loader, "tape_capacity"),
		DefaultTapeCapacity,
	))
}

type Quantum int

// nil unless given, so an explicit 0 still overrides the config
var quantumFlag = cmds.Var[*int]("-quantum")

func (Module) Quantum(
	loader configs.Loader,
) Quantum {
	return Quantum(vars.DerefOr(
		*quantumFlag,
		vars.DerefOr(configs.First[*int](loader, "quantum"), 0),
	))
}

const DefaultCharset = "ISO-8859-1"

type Charset *charmap.Charmap

func (Module) Charset(
	loader configs.Loader,
	logger logs.Logger,
) Charset {
	name := vars.DerefOr(configs.First[*string](loader, "charset"), DefaultCharset)
	enc, err := ianaindex.IANA.Encoding(name)
	cm, ok := enc.(*charmap.Charmap)
	if err != nil || !ok {
		logger.Warn("unsupported charset",
			"charset", name,
			"fallback", DefaultCharset,
		)
		return charmap.ISO8859_1
	}
	return cm
}
