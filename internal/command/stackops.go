package command

import (
	"github.com/electronfraud/calc/internal/stack"
)

func addStackOps(t Table) {
	t["pop"] = popCmd
	t["dup"] = dupCmd
	t["swap"] = swapCmd
	t["clear"] = clearCmd
	t["keep"] = keepCmd
}

func popCmd(s *stack.Stack) error {
	_, err := s.Pop()
	return err
}

func dupCmd(s *stack.Stack) error {
	return s.Dup()
}

func swapCmd(s *stack.Stack) error {
	return s.Swap()
}

func clearCmd(s *stack.Stack) error {
	s.Clear()
	return nil
}

// keepCmd implements `keep`: ( x1 ... xn n -- x1 ... xn ). n must be a
// non-negative Integer no greater than the remaining depth (spec §4.2).
func keepCmd(s *stack.Stack) error {
	n, err := popOne(s)
	if err != nil {
		return err
	}
	if _, err := wantInteger(n); err != nil {
		return err
	}
	return s.Keep(int(n.Int))
}
