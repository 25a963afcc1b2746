package command

import (
	"testing"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/unit"
	"github.com/electronfraud/calc/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T) (Table, *unit.Catalog) {
	t.Helper()
	cat := unit.NewCatalog()
	return New(cat), cat
}

func TestIntegerAdditionStaysIntegerAndWraps(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewInteger(9223372036854775807, value.Hex))
	s.Push(value.NewInteger(1, value.Dec))

	require.NoError(t, tab["+"](s))

	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Integer, top.Kind)
	assert.Equal(t, int64(-9223372036854775808), top.Int)
	assert.Equal(t, value.Hex, top.Radix, "result keeps a's radix")
}

func TestRealPromotesMixedAddition(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewInteger(1, value.Dec))
	s.Push(value.NewReal(2.5))

	require.NoError(t, tab["+"](s))

	top, _ := s.Pop()
	assert.Equal(t, value.Real, top.Kind)
	assert.Equal(t, 3.5, top.Num)
}

func TestAddMixedNumberAndBareUnitIsTypeError(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	s.Push(value.NewReal(1))
	s.Push(value.NewUnit(cat.Units["m"]))

	assert.ErrorIs(t, tab["+"](s), calcerr.ErrTypeError)
}

func TestAddIncommensurableQuantitiesIsDimensionalityError(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	s.Push(value.NewQuantity(1, cat.Units["m"]))
	s.Push(value.NewQuantity(1, cat.Units["kg"]))

	assert.ErrorIs(t, tab["+"](s), calcerr.ErrDimensionalityError)
}

func TestSubtractTwoAbsoluteTemperaturesYieldsInterval(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	s.Push(value.NewQuantity(100, cat.Units["tempC"]))
	s.Push(value.NewQuantity(1, cat.Units["tempC"]))

	require.NoError(t, tab["-"](s))

	top, _ := s.Pop()
	assert.Equal(t, value.Quantity, top.Kind)
	assert.Equal(t, cat.Units["degC"], top.Unit)
	assert.InDelta(t, 99, top.Num, 1e-9)
}

func TestDivUnitByUnitBuildsCompound(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	s.Push(value.NewUnit(cat.Units["mi"]))
	s.Push(value.NewUnit(cat.Units["hr"]))

	require.NoError(t, tab["/"](s))

	top, _ := s.Pop()
	assert.Equal(t, value.UnitKind, top.Kind)
	assert.Equal(t, "mi⋅hr⁻¹", top.Unit.String())
}

func TestDivQuantityByQuantityUnwrapsDimensionless(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	s.Push(value.NewQuantity(10, cat.Units["m"]))
	s.Push(value.NewQuantity(2, cat.Units["m"]))

	require.NoError(t, tab["/"](s))

	top, _ := s.Pop()
	assert.Equal(t, value.Real, top.Kind)
	assert.Equal(t, 5.0, top.Num)
}

func TestDivisionByZero(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewReal(1))
	s.Push(value.NewReal(0))

	assert.ErrorIs(t, tab["/"](s), calcerr.ErrDivisionByZero)
}

func TestScalingNonLinearUnitErrors(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	s.Push(value.NewQuantity(1, cat.Units["tempC"]))
	s.Push(value.NewReal(2))

	assert.ErrorIs(t, tab["*"](s), calcerr.ErrNonLinearInCompound)
}

func TestPowDimensionlessNumbers(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewReal(2))
	s.Push(value.NewReal(10))

	require.NoError(t, tab["**"](s))

	top, _ := s.Pop()
	assert.Equal(t, 1024.0, top.Num)
}

func TestPowQuantityByIntegerExponent(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	s.Push(value.NewQuantity(3, cat.Units["m"]))
	s.Push(value.NewInteger(2, value.Dec))

	require.NoError(t, tab["**"](s))

	top, _ := s.Pop()
	assert.Equal(t, value.Quantity, top.Kind)
	assert.Equal(t, 9.0, top.Num)
}

func TestSqrtOfNegativeIsDomainError(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewReal(-4))

	assert.ErrorIs(t, tab["sqrt"](s), calcerr.ErrDomainError)
}

func TestCbrtOfNegativeIsNegativeResult(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewReal(-8))

	require.NoError(t, tab["cbrt"](s))
	top, _ := s.Pop()
	assert.InDelta(t, -2, top.Num, 1e-9)
}

func TestRootOfQuantityWithDivisibleExponent(t *testing.T) {
	tab, cat := newTable(t)
	s := stack.New()
	m2, err := cat.Units["m"].Mul(cat.Units["m"])
	require.NoError(t, err)
	s.Push(value.NewQuantity(9, m2))
	s.Push(value.NewInteger(2, value.Dec))

	require.NoError(t, tab["/**"](s))

	top, _ := s.Pop()
	assert.Equal(t, cat.Units["m"], top.Unit)
	assert.InDelta(t, 3, top.Num, 1e-9)
}

func TestUnderflowPropagates(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	assert.ErrorIs(t, tab["+"](s), calcerr.ErrStackUnderflow)
}
