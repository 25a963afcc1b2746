package command

import (
	"fmt"
	"math"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/unit"
	"github.com/electronfraud/calc/internal/value"
)

func addArithmetic(t Table) {
	t["+"] = addCmd
	t["-"] = subCmd
	t["*"] = mulCmd
	t["/"] = divCmd
	t["**"] = powCmd
	t["exp"] = expCmd
	t["sqrt"] = sqrtCmd
	t["cbrt"] = cbrtCmd
	t["/**"] = rootCmd
}

// addCmd and subCmd implement `+`/`-` (spec §4.4).
func addCmd(s *stack.Stack) error { return addSub(s, true) }
func subCmd(s *stack.Stack) error { return addSub(s, false) }

func addSub(s *stack.Stack, plus bool) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	result, err := combineAddSub(a, b, plus)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

func combineAddSub(a, b value.Value, plus bool) (value.Value, error) {
	switch {
	case a.Kind == value.UnitKind || b.Kind == value.UnitKind:
		return value.Value{}, typeError(b, "a number or quantity")
	case a.IsNumeric() && b.IsNumeric():
		if a.Kind == value.Integer && b.Kind == value.Integer {
			if plus {
				return value.NewInteger(a.Int+b.Int, a.Radix), nil
			}
			return value.NewInteger(a.Int-b.Int, a.Radix), nil
		}
		if plus {
			return value.NewReal(a.AsFloat() + b.AsFloat()), nil
		}
		return value.NewReal(a.AsFloat() - b.AsFloat()), nil
	case a.Kind == value.Quantity && b.Kind == value.Quantity:
		return addSubQuantities(a, b, plus)
	default:
		return value.Value{}, fmt.Errorf("%w: %s and %s", calcerr.ErrDimensionalityError, a.Kind, b.Kind)
	}
}

func addSubQuantities(a, b value.Value, plus bool) (value.Value, error) {
	if !a.Unit.Commensurable(b.Unit) {
		return value.Value{}, fmt.Errorf("%w: %s and %s", calcerr.ErrDimensionalityError, a.Unit, b.Unit)
	}
	bv, err := unit.Convert(b.Num, b.Unit, a.Unit)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %s and %s", calcerr.ErrDimensionalityError, a.Unit, b.Unit)
	}

	resultUnit := a.Unit
	var mag float64
	if plus {
		mag = a.Num + bv
	} else {
		mag = a.Num - bv
		if a.Unit.Kind() == unit.AbsoluteTemperature && b.Unit.Kind() == unit.AbsoluteTemperature {
			resultUnit = a.Unit.IntervalEquivalent()
		}
	}
	return value.NewQuantity(mag, resultUnit), nil
}

func mulCmd(s *stack.Stack) error { return mulDiv(s, true) }
func divCmd(s *stack.Stack) error { return mulDiv(s, false) }

func mulDiv(s *stack.Stack, mul bool) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	result, err := combineMulDiv(a, b, mul)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

// combineMulDiv implements `*`/`/` (spec §4.4), grounded on
// original_source/src/units/number.rs's Mul/Div impls. Only a bare Unit
// on top (b) combines with a number or quantity below (a); a bare Unit
// below never combines with a plain number above it.
func combineMulDiv(a, b value.Value, mul bool) (value.Value, error) {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		return numericMulDiv(a, b, mul)
	case a.Kind == value.Quantity && b.Kind == value.Quantity:
		return quantityMulDiv(a, b, mul)
	case a.Kind == value.Quantity && b.IsNumeric():
		return scaleQuantity(a, b.AsFloat(), mul)
	case a.IsNumeric() && b.Kind == value.Quantity:
		return scaleQuantity(b, a.AsFloat(), mul)
	case a.Kind == value.UnitKind && b.Kind == value.UnitKind:
		return unitMulDiv(a, b, mul)
	case a.IsNumeric() && b.Kind == value.UnitKind:
		return tagWithUnit(a, b.Unit, mul)
	case a.Kind == value.Quantity && b.Kind == value.UnitKind:
		return extendQuantityUnit(a, b.Unit, mul)
	default:
		return value.Value{}, typeError(b, "a number, unit, or quantity compatible with the operand below it")
	}
}

func numericMulDiv(a, b value.Value, mul bool) (value.Value, error) {
	if a.Kind == value.Integer && b.Kind == value.Integer {
		if mul {
			return value.NewInteger(a.Int*b.Int, a.Radix), nil
		}
		if b.Int == 0 {
			return value.Value{}, calcerr.ErrDivisionByZero
		}
		return value.NewReal(float64(a.Int) / float64(b.Int)), nil
	}
	af, bf := a.AsFloat(), b.AsFloat()
	if mul {
		return value.NewReal(af * bf), nil
	}
	if bf == 0 {
		return value.Value{}, calcerr.ErrDivisionByZero
	}
	return value.NewReal(af / bf), nil
}

func quantityMulDiv(a, b value.Value, mul bool) (value.Value, error) {
	var resultUnit *unit.Unit
	var err error
	if mul {
		resultUnit, err = a.Unit.Mul(b.Unit)
	} else {
		if b.Num == 0 {
			return value.Value{}, calcerr.ErrDivisionByZero
		}
		resultUnit, err = a.Unit.Div(b.Unit)
	}
	if err != nil {
		return value.Value{}, err
	}
	mag := a.Num * b.Num
	if !mul {
		mag = a.Num / b.Num
	}
	if resultUnit.IsDimensionless() {
		return value.NewReal(mag), nil
	}
	return value.NewQuantity(mag, resultUnit), nil
}

func scaleQuantity(q value.Value, n float64, mul bool) (value.Value, error) {
	if q.Unit.Kind() != unit.Linear {
		return value.Value{}, fmt.Errorf("%w: %s is not a linear unit", calcerr.ErrNonLinearInCompound, q.Unit)
	}
	if mul {
		return value.NewQuantity(q.Num*n, q.Unit), nil
	}
	if n == 0 {
		return value.Value{}, calcerr.ErrDivisionByZero
	}
	return value.NewQuantity(q.Num/n, q.Unit), nil
}

func unitMulDiv(a, b value.Value, mul bool) (value.Value, error) {
	var result *unit.Unit
	var err error
	if mul {
		result, err = a.Unit.Mul(b.Unit)
	} else {
		result, err = a.Unit.Div(b.Unit)
	}
	if err != nil {
		return value.Value{}, err
	}
	return value.NewUnit(result), nil
}

func tagWithUnit(n value.Value, u *unit.Unit, mul bool) (value.Value, error) {
	if u.Kind() != unit.Linear {
		return value.Value{}, fmt.Errorf("%w: %s is not a linear unit", calcerr.ErrNonLinearInCompound, u)
	}
	result := u
	if !mul {
		result, _ = unit.Dimensionless.Div(u)
	}
	return value.NewQuantity(n.AsFloat(), result), nil
}

func extendQuantityUnit(q value.Value, u *unit.Unit, mul bool) (value.Value, error) {
	var result *unit.Unit
	var err error
	if mul {
		result, err = q.Unit.Mul(u)
	} else {
		result, err = q.Unit.Div(u)
	}
	if err != nil {
		return value.Value{}, err
	}
	if result.IsDimensionless() {
		return value.NewReal(q.Num), nil
	}
	return value.NewQuantity(q.Num, result), nil
}

func powCmd(s *stack.Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if a.Kind == value.UnitKind || b.Kind == value.UnitKind {
		return typeError(b, "dimensionless numbers")
	}
	if a.Kind == value.Quantity {
		if b.Kind != value.Integer {
			return fmt.Errorf("%w: exponent of a quantity must be a dimensionless integer", calcerr.ErrDimensionalityError)
		}
		return pushPoweredQuantity(s, a, int(b.Int))
	}
	if b.Kind == value.Quantity {
		return typeError(b, "a dimensionless exponent")
	}
	s.Push(value.NewReal(math.Pow(a.AsFloat(), b.AsFloat())))
	return nil
}

func pushPoweredQuantity(s *stack.Stack, a value.Value, n int) error {
	u, err := a.Unit.Pow(n, 1)
	if err != nil {
		return err
	}
	mag := math.Pow(a.Num, float64(n))
	if u.IsDimensionless() {
		s.Push(value.NewReal(mag))
		return nil
	}
	s.Push(value.NewQuantity(mag, u))
	return nil
}

func expCmd(s *stack.Stack) error {
	a, err := popOne(s)
	if err != nil {
		return err
	}
	if !a.IsNumeric() {
		return typeError(a, "a dimensionless number")
	}
	s.Push(value.NewReal(math.Exp(a.AsFloat())))
	return nil
}

func sqrtCmd(s *stack.Stack) error { return rootN(s, 2) }
func cbrtCmd(s *stack.Stack) error { return rootN(s, 3) }

func rootN(s *stack.Stack, n int) error {
	a, err := popOne(s)
	if err != nil {
		return err
	}
	return pushRoot(s, a, n)
}

func rootCmd(s *stack.Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if b.Kind != value.Integer {
		return typeError(b, "a dimensionless integer root")
	}
	return pushRoot(s, a, int(b.Int))
}

func pushRoot(s *stack.Stack, a value.Value, n int) error {
	if a.Kind == value.UnitKind {
		return typeError(a, "a number or quantity")
	}
	if a.Kind == value.Quantity {
		u, err := a.Unit.Pow(1, n)
		if err != nil {
			return err
		}
		mag := math.Pow(a.Num, 1.0/float64(n))
		if u.IsDimensionless() {
			s.Push(value.NewReal(mag))
			return nil
		}
		s.Push(value.NewQuantity(mag, u))
		return nil
	}
	f := a.AsFloat()
	if f < 0 && n%2 == 0 {
		return calcerr.ErrDomainError
	}
	if f < 0 {
		s.Push(value.NewReal(-math.Pow(-f, 1.0/float64(n))))
		return nil
	}
	s.Push(value.NewReal(math.Pow(f, 1.0/float64(n))))
	return nil
}
