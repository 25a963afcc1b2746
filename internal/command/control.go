package command

import (
	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
)

func addControl(t Table) {
	t["exit"] = exitCmd
	t["q"] = exitCmd
}

// exitCmd raises calcerr.ErrExitRequested, the control signal the
// evaluator driver distinguishes from an ordinary command failure
// (spec §4.8). It never touches the stack.
func exitCmd(_ *stack.Stack) error {
	return calcerr.ErrExitRequested
}
