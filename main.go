// Released under an MIT license. See LICENSE.

/*
Prim calls the primitive operations of an interpreter from the command line.

	prim integer_add 1 2
	prim string_join '", "' '"a"' '"b"'
	prim -u vm_exit 3
	prim -l

Each primitive is built into a call node exactly as it would be for a
method body in the language, so its receiver, argument lowering and
unsafe-operation checks can be exercised directly. With no NAME, calls
are read one per line from stdin, interactively if stdin is a TTY.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/engine"
	"github.com/michaelmacinnis/prim/internal/engine/commands"
	"github.com/michaelmacinnis/prim/internal/engine/interp"
	"github.com/michaelmacinnis/prim/internal/reader"
	"github.com/michaelmacinnis/prim/internal/system/logger"
	"github.com/michaelmacinnis/prim/internal/system/options"
	"github.com/michaelmacinnis/prim/internal/ui"
)

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println(commands.Version)

		return
	}

	log := logger.New(options.Debug())

	ctx := interp.New("prim", log)
	ctx.AllowUnsafe(options.Unsafe())

	status := run(engine.New(ctx), os.Stdin, os.Stdout)

	_ = log.Sync()

	os.Exit(status)
}

func run(e *engine.T, in io.Reader, out io.Writer) int {
	status := 0

	switch {
	case options.List():
		for _, name := range e.Names() {
			fmt.Fprintln(out, name)
		}
	case options.Name() != "":
		text := strings.Join(append([]string{options.Name()}, options.Args()...), " ")
		at := &loc.T{Label: "argv", Line: 1, Char: 1, Text: text}

		v, err := e.Run(at, options.Name(), reader.Values(options.Args()))
		if err != nil {
			fmt.Fprintln(out, err.Error())

			status = 1
		} else {
			fmt.Fprintln(out, literal.String(v))
		}
	case options.Interactive():
		ui.Run(e, e.Context().Log())
	default:
		failed, err := ui.Stream(e, "stdin", in, out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}

		if failed > 0 || err != nil {
			status = 1
		}
	}

	if code, exited := e.Context().Exited(); exited {
		return int(code)
	}

	return status
}
