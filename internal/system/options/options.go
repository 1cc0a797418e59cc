// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	args        []string
	debug       bool
	interactive bool
	list        bool
	name        string
	unsafe      bool
	version     bool
	usage       = `prim

Usage:
  prim [-du] NAME [ARGUMENTS...]
  prim [-du] -l
  prim [-diu]
  prim -h
  prim -v

Arguments:
  NAME       Primitive to call.
  ARGUMENTS  Values passed to the primitive. If the primitive needs a
             receiver, the first value is the receiver.

Options:
  -d, --debug        Log at debug level.
  -i, --interactive  Disable interactive mode.
  -l, --list         List the available primitives.
  -u, --unsafe       Allow unsafe primitives.
  -h, --help         Display this help.
  -v, --version      Print prim version.

If prim's stdin is a TTY, and prim was invoked with no NAME, prim reads
calls interactively, one per line. Otherwise, calls are read from stdin.
`
)

// Args returns the values that follow the primitive's name.
func Args() []string {
	return args
}

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Interactive returns true if calls are read from a terminal.
func Interactive() bool {
	return interactive
}

// List returns true if a listing of the primitives was requested.
func List() bool {
	return list
}

// Name returns the name of the primitive to call, if any.
func Name() string {
	return name
}

// Parse parses os.Args.
func Parse() {
	parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// Unsafe returns true if unsafe primitives are allowed.
func Unsafe() bool {
	return unsafe
}

// Version returns true if the version was requested.
func Version() bool {
	return version
}

func parse(argv []string, terminal bool) {
	// docopt reads os.Args when argv is nil.
	if argv == nil {
		argv = []string{}
	}

	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	name, _ = opts.String("NAME")
	args, _ = opts["ARGUMENTS"].([]string)

	debug, _ = opts.Bool("--debug")
	list, _ = opts.Bool("--list")
	unsafe, _ = opts.Bool("--unsafe")
	version, _ = opts.Bool("--version")

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = name == "" && !list && terminal != invertInteractive
}
