// Package eval implements the evaluator driver (spec §4.8): it
// tokenizes one input line, resolves each token per spec §4.3, and
// applies it to the stack transactionally, so either the whole line
// commits or none of it does.
package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/command"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/token"
	"github.com/electronfraud/calc/internal/unit"
	"github.com/electronfraud/calc/internal/value"
)

// Evaluator bundles the live stack with the command and catalog tables
// a line is resolved against.
type Evaluator struct {
	Stack    *stack.Stack
	Commands command.Table
	Catalog  *unit.Catalog
}

// New returns an Evaluator with an empty stack and the full builtin
// command and catalog tables.
func New() *Evaluator {
	cat := unit.NewCatalog()
	return &Evaluator{
		Stack:    stack.New(),
		Commands: command.New(cat),
		Catalog:  cat,
	}
}

// Eval evaluates one line of input per spec §4.8. On success the live
// stack reflects every token's effect. On any error (including a
// malformed literal) the stack is restored to its state before the
// line ran, and the returned error names the offending token.
//
// Eval returns an error satisfying errors.Is(err, calcerr.ErrExitRequested)
// when the line invoked exit/q. The stack is not restored in that case:
// tokens before exit/q keep their effect, and exit itself never mutates
// the stack.
func (e *Evaluator) Eval(line string) error {
	snapshot := e.Stack.Snapshot()

	for _, tok := range token.Split(line) {
		err := e.resolve(tok)
		if err == nil {
			continue
		}
		if errors.Is(err, calcerr.ErrExitRequested) {
			return err
		}
		e.Stack.Restore(snapshot)
		return fmt.Errorf("%s: %w", tok, err)
	}

	return nil
}

// resolve classifies and applies a single token per spec §4.3: literal,
// command, constant, unit (with auto-tagging), else UnknownToken.
func (e *Evaluator) resolve(tok string) error {
	if v, ok, err := token.ParseLiteral(tok); ok {
		if err != nil {
			return err
		}
		e.Stack.Push(v)
		return nil
	}

	if fn, ok := e.Commands[tok]; ok {
		return fn(e.Stack)
	}

	if c, ok := e.Catalog.Constants[tok]; ok {
		e.Stack.Push(constantValue(c))
		return nil
	}

	if u, ok := e.Catalog.Units[tok]; ok {
		return e.autoTag(u)
	}

	return fmt.Errorf("%w: %q", calcerr.ErrUnknownToken, tok)
}

// Display renders the live stack bottom-to-top as a single parenthesised,
// space-separated line, e.g. "(3)" or "([1.5 in])", the form used by the
// end-to-end scenarios in spec §8.2.
func (e *Evaluator) Display() string {
	values := e.Stack.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func constantValue(c unit.Constant) value.Value {
	if c.Unit == nil {
		return value.NewReal(c.Magnitude)
	}
	return value.NewQuantity(c.Magnitude, c.Unit)
}

// autoTag implements the §4.3 auto-tag rule for a resolved unit token u.
func (e *Evaluator) autoTag(u *unit.Unit) error {
	top, err := e.Stack.Peek()
	if err != nil {
		// Empty stack: push the bare unit.
		e.Stack.Push(value.NewUnit(u))
		return nil
	}

	switch top.Kind {
	case value.Real:
		return e.Stack.ReplaceTop(value.NewQuantity(top.Num, u))
	case value.Integer:
		return e.Stack.ReplaceTop(value.NewQuantity(float64(top.Int), u))
	default: // Quantity or UnitKind: push rather than tag.
		e.Stack.Push(value.NewUnit(u))
		return nil
	}
}
