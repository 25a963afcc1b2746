// Package command implements the command table and dispatcher described
// in spec §4.4-§4.7: the builtin words that pop operands off the stack,
// enforce their type/arity contracts, and push a result.
//
// Grounded on original_source/src/builtins.rs for the contracts each
// command enforces, and on the teacher's map[string]func command-table
// pattern (internal/engine/commands/commands.go).
package command

import (
	"fmt"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/unit"
	"github.com/electronfraud/calc/internal/value"
)

// Func is a command's implementation. It mutates s in place. The
// evaluator driver owns the per-line snapshot/restore (spec §4.8), so a
// Func need not undo values it has already popped before returning an
// error.
type Func func(s *stack.Stack) error

// Table maps a command name to its implementation.
type Table map[string]Func

// New returns the table of every builtin command. cat supplies the
// radian unit that the trigonometric commands convert angle quantities
// through (spec §4.5).
func New(cat *unit.Catalog) Table {
	t := Table{}
	addArithmetic(t)
	addTrig(t, cat.Units["rad"])
	addBitwise(t)
	addConversion(t)
	addStackOps(t)
	addControl(t)
	return t
}

// popOne pops a single value, the common shape for unary commands.
func popOne(s *stack.Stack) (value.Value, error) {
	return s.Pop()
}

// popTwo pops the top two values, returning them as (a, b) with b as the
// value that was on top (spec §4.4's "let top = b, below = a").
func popTwo(s *stack.Stack) (a, b value.Value, err error) {
	b, err = s.Pop()
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	a, err = s.Pop()
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	return a, b, nil
}

// wantInteger extracts an Integer operand or fails with TypeError.
func wantInteger(v value.Value) (value.Value, error) {
	if v.Kind != value.Integer {
		return value.Value{}, typeError(v, "an integer")
	}
	return v, nil
}

func typeError(v value.Value, want string) error {
	return fmt.Errorf("%w: expected %s, got %s", calcerr.ErrTypeError, want, v.Kind)
}
