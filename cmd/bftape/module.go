package main

import (
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM bfvm.Module
}
