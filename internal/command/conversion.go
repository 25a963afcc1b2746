package command

import (
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/unit"
	"github.com/electronfraud/calc/internal/value"
)

func addConversion(t Table) {
	t["into"] = intoCmd
	t["drop"] = dropCmd
}

// intoCmd implements `into`: ( [n u1] u2 -- [n' u2] ). Pops a Unit then
// a Quantity and applies unit.Convert (spec §4.7).
func intoCmd(s *stack.Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if b.Kind != value.UnitKind {
		return typeError(b, "a unit")
	}
	if a.Kind != value.Quantity {
		return typeError(a, "a quantity")
	}
	x, err := unit.Convert(a.Num, a.Unit, b.Unit)
	if err != nil {
		return err
	}
	s.Push(value.NewQuantity(x, b.Unit))
	return nil
}

// dropCmd implements `drop`: ( [n u] -- n ). Pops a Quantity and pushes
// its magnitude as Real, discarding the unit (spec §4.7).
func dropCmd(s *stack.Stack) error {
	a, err := popOne(s)
	if err != nil {
		return err
	}
	if a.Kind != value.Quantity {
		return typeError(a, "a quantity")
	}
	s.Push(value.NewReal(a.Num))
	return nil
}
