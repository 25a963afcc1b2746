// Package ui provides the calculator's interactive REPL front-end:
// line editing, history persistence, and prompt rendering (spec §1's
// "external collaborator" front-end, SPEC_FULL.md §4.9, §6.2-§6.3).
//
// Grounded on the teacher's internal/ui package: a peterh/liner loop
// that reads a line, hands it to an Evaluator, and saves history on
// exit. Where the teacher drives a lexer/parser pair producing cell.T
// commands, this package hands each raw line straight to the engine's
// line-at-a-time token evaluator instead, since the calculator has no
// multi-line grammar to parse incrementally.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface the REPL drives: one line in, the
// resulting stack display out. *eval.Evaluator satisfies this.
type Evaluator interface {
	Eval(line string) error
	Display() string
}

// Run starts an interactive, line-edited REPL against e. It loads
// persisted history (silently ignoring a missing file) before the
// first prompt and saves it back on exit, per spec §6.3. Run returns
// when the user exits (exit/q, Ctrl-D, or an aborted prompt).
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, "calc: history:", err)
	}

	for {
		line, err := cli.Prompt("> ")
		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted, io.EOF:
			save(cli)
			return
		default:
			fmt.Fprintln(os.Stderr, "calc:", err)
			save(cli)
			return
		}

		if evalLine(e, line) {
			save(cli)
			return
		}
	}
}

// RunPiped reads lines from r (non-interactive stdin, e.g. a pipe) and
// evaluates each one without line editing or history, per
// SPEC_FULL.md §6.2.
func RunPiped(e Evaluator, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if evalLine(e, scanner.Text()) {
			return
		}
	}
}

// evalLine evaluates one line against e and prints its result or
// error. It reports whether the line requested an exit (spec §4.8).
func evalLine(e Evaluator, line string) (exit bool) {
	err := e.Eval(line)
	switch {
	case err == nil:
		fmt.Println(e.Display())
	case errors.Is(err, calcerr.ErrExitRequested):
		return true
	default:
		fmt.Fprintln(os.Stderr, "calc:", err)
	}
	return false
}

func save(cli *liner.State) {
	if err := history.Save(cli.WriteHistory); err != nil {
		fmt.Fprintln(os.Stderr, "calc: history:", err)
	}
}
