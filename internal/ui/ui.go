// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for calling primitives.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/system/history"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

// Evaluator is the interface for things that want to process calls.
type Evaluator interface {
	Evaluate(at *loc.T) (cell.I, error)
	Exited() bool
	Names() []string
}

// Run launches the interactive UI which sends calls to the Evaluator.
func Run(e Evaluator, log *zap.SugaredLogger) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetCompleter(func(line string) []string {
		return complete(e.Names(), line)
	})

	restore(cli.ReadHistory, log)

	for n := 1; !e.Exited(); n++ {
		line, err := cli.Prompt("> ")
		if err == liner.ErrPromptAborted {
			continue
		} else if err != nil {
			os.Stdout.Write([]byte("exit\n"))

			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		evaluate(e, os.Stdout, &loc.T{Label: "tty", Line: n, Char: 1, Text: line})
	}

	if err := history.Save(cli.WriteHistory); err != nil {
		log.Warnw("history not saved", "path", history.Path(), "error", err)
	}
}

// Stream sends each line read from r to the Evaluator, writing results to w.
// It returns the number of calls that failed.
func Stream(e Evaluator, label string, r io.Reader, w io.Writer) (int, error) {
	failed := 0
	s := bufio.NewScanner(r)

	for n := 1; !e.Exited() && s.Scan(); n++ {
		if !evaluate(e, w, &loc.T{Label: label, Line: n, Char: 1, Text: s.Text()}) {
			failed++
		}
	}

	return failed, s.Err()
}

func complete(names []string, line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}

	cs := []string{}

	for _, name := range names {
		if strings.HasPrefix(name, line) {
			cs = append(cs, name+" ")
		}
	}

	return cs
}

// restore loads the saved history with read. A missing or unreadable
// history file is not an error for the session.
func restore(read func(r io.Reader) (int, error), log *zap.SugaredLogger) {
	if err := history.Load(read); err != nil {
		log.Debugw("history not loaded", "path", history.Path(), "error", err)
	}
}

func evaluate(e Evaluator, w io.Writer, at *loc.T) bool {
	v, err := e.Evaluate(at)
	if err != nil {
		fmt.Fprintln(w, err.Error())

		return false
	}

	if v != nil {
		fmt.Fprintln(w, literal.String(v))
	}

	return true
}
