/*
Calc is a terminal, units-aware reverse-Polish-notation calculator. It
reads whitespace-separated tokens and maintains a stack of typed
values: real numbers, integers, bare units, and number-with-unit
quantities. Tokens are pushed as literals, resolved as named constants
or units, or dispatched as commands that mutate the stack. The
following lines behave as expected:

    1 2 +
    2 in 1.27 cm -
    78 tempF tempC into
    0xeb9f 0b10001101 &

For more detail, see SPEC_FULL.md.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/eval"
	"github.com/electronfraud/calc/internal/system/options"
	"github.com/electronfraud/calc/internal/ui"
)

func main() {
	opts, err := options.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}

	e := eval.New()

	if opts.HasCommand {
		os.Exit(runCommand(e, opts.Command))
	}

	if opts.Interactive {
		ui.Run(e)
		return
	}

	ui.RunPiped(e, os.Stdin)
}

// runCommand evaluates a single -c COMMAND line non-interactively and
// returns the process exit status (spec §6.2): 0 on success, non-zero
// if the line errors. It never touches the history file.
func runCommand(e *eval.Evaluator, line string) int {
	err := e.Eval(line)
	switch {
	case err == nil:
		fmt.Println(e.Display())
		return 0
	case errors.Is(err, calcerr.ErrExitRequested):
		return 0
	default:
		fmt.Fprintln(os.Stderr, "calc:", err)
		return 1
	}
}
