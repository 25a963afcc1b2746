// Package stack implements the calculator's working stack: an ordered
// sequence of value.Value with top-of-stack at the end of the slice
// (spec §3.4, §4.2).
package stack

import (
	"fmt"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/value"
)

// Stack is the engine's single mutable resource (spec §5): ordered,
// top = last element.
type Stack struct {
	values []value.Value
}

// New returns an empty Stack.
func New() *Stack {
	return &Stack{}
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int {
	return len(s.values)
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v value.Value) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value, or calcerr.ErrStackUnderflow if
// the stack is empty.
func (s *Stack) Pop() (value.Value, error) {
	if len(s.values) == 0 {
		return value.Value{}, calcerr.ErrStackUnderflow
	}
	top := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return top, nil
}

// Peek returns the top value without removing it, or
// calcerr.ErrStackUnderflow if the stack is empty.
func (s *Stack) Peek() (value.Value, error) {
	if len(s.values) == 0 {
		return value.Value{}, calcerr.ErrStackUnderflow
	}
	return s.values[len(s.values)-1], nil
}

// ReplaceTop overwrites the top value with v. It is the mechanism behind
// the auto-tag rule (spec §4.3): returns calcerr.ErrStackUnderflow if the
// stack is empty.
func (s *Stack) ReplaceTop(v value.Value) error {
	if len(s.values) == 0 {
		return calcerr.ErrStackUnderflow
	}
	s.values[len(s.values)-1] = v
	return nil
}

// Dup duplicates the top value: ( ... v -- ... v v ).
func (s *Stack) Dup() error {
	v, err := s.Peek()
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

// Swap exchanges the top two values: ( ... a b -- ... b a ).
func (s *Stack) Swap() error {
	if len(s.values) < 2 {
		return calcerr.ErrStackUnderflow
	}
	n := len(s.values)
	s.values[n-1], s.values[n-2] = s.values[n-2], s.values[n-1]
	return nil
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.values = nil
}

// Keep drops everything below the top n values, consuming the count
// argument n itself first: ( x1 ... xn n -- x1 ... xn ). n must be a
// non-negative Integer no greater than the depth remaining once it is
// popped (spec §4.2).
func (s *Stack) Keep(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: keep count %d is negative", calcerr.ErrRangeError, n)
	}
	if n > len(s.values) {
		return fmt.Errorf("%w: keep count %d exceeds depth %d", calcerr.ErrRangeError, n, len(s.values))
	}
	s.values = s.values[len(s.values)-n:]
	return nil
}

// Snapshot returns an independent copy of the stack's contents, used by
// the evaluator driver to implement per-line atomicity (spec §4.8).
func (s *Stack) Snapshot() []value.Value {
	c := make([]value.Value, len(s.values))
	copy(c, s.values)
	return c
}

// Restore replaces the stack's contents with a previously captured
// Snapshot.
func (s *Stack) Restore(snap []value.Value) {
	s.values = snap
}

// Values returns the stack's contents, bottom first, for display. The
// caller must not mutate the returned slice.
func (s *Stack) Values() []value.Value {
	return s.values
}
