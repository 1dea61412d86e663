package main

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

//go:embed hello.bf
var program []byte

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		execute bfvm.Execute,
		newSpan logs.NewSpan,
		charset bfconfigs.Charset,
	) {
		err = run(execute, newSpan, charset, os.Stdin, os.Stdout)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(
	execute bfvm.Execute,
	newSpan logs.NewSpan,
	charset bfconfigs.Charset,
	stdin io.Reader,
	stdout io.Writer,
) error {
	ctx, _ := newSpan(context.Background(), "")

	in := bufio.NewReader(stdin)
	out := bufio.NewWriter(stdout)

	_, err := execute(ctx, program, in, bfvm.CharsetOutput{
		Charmap: charset,
		W:       out,
	})
	if err != nil {
		return logs.WrapSpan(ctx, errors.Join(err, out.Flush()))
	}

	if err := out.WriteByte('\n'); err != nil {
		return logs.WrapSpan(ctx, err)
	}
	if err := out.Flush(); err != nil {
		return logs.WrapSpan(ctx, err)
	}
	return nil
}
