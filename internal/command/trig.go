package command

import (
	"math"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/unit"
	"github.com/electronfraud/calc/internal/value"
)

func addTrig(t Table, rad *unit.Unit) {
	t["sin"] = trig(math.Sin, rad)
	t["cos"] = trig(math.Cos, rad)
	t["tan"] = trig(math.Tan, rad)
	t["asin"] = inverseTrig(math.Asin, -1, 1, rad)
	t["acos"] = inverseTrig(math.Acos, -1, 1, rad)
	t["atan"] = inverseTrig(math.Atan, math.Inf(-1), math.Inf(1), rad)
}

// trig returns the builtin for sin/cos/tan: accepts any Quantity of
// Dimension Angle or a bare Real interpreted as radians, converts to
// radians, applies fn, and pushes a dimensionless Real (spec §4.5).
func trig(fn func(float64) float64, rad *unit.Unit) Func {
	return func(s *stack.Stack) error {
		a, err := popOne(s)
		if err != nil {
			return err
		}
		x, err := toRadians(a, rad)
		if err != nil {
			return err
		}
		s.Push(value.NewReal(fn(x)))
		return nil
	}
}

func toRadians(a value.Value, rad *unit.Unit) (float64, error) {
	switch a.Kind {
	case value.Real, value.Integer:
		return a.AsFloat(), nil
	case value.Quantity:
		if !a.Unit.Commensurable(rad) {
			return 0, typeError(a, "an angle quantity")
		}
		return unit.Convert(a.Num, a.Unit, rad)
	default:
		return 0, typeError(a, "a bare number or an angle quantity")
	}
}

// inverseTrig returns the builtin for asin/acos/atan: accepts a
// dimensionless number, validates domain, and pushes Quantity(r, rad)
// (spec §4.5).
func inverseTrig(fn func(float64) float64, lo, hi float64, rad *unit.Unit) Func {
	return func(s *stack.Stack) error {
		a, err := popOne(s)
		if err != nil {
			return err
		}
		if !a.IsNumeric() {
			return typeError(a, "a dimensionless number")
		}
		x := a.AsFloat()
		if x < lo || x > hi {
			return calcerr.ErrDomainError
		}
		s.Push(value.NewQuantity(fn(x), rad))
		return nil
	}
}
