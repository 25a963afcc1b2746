package value

import (
	"testing"

	"github.com/electronfraud/calc/internal/unit"
	"github.com/stretchr/testify/assert"
)

func TestRealDisplay(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{-0.25, "-0.25"},
		{0, "0"},
		{1.23456789e12, "1.234568e+12"},
		{0.0000001, "1e-7"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewReal(c.f).String())
	}
}

func TestIntegerDisplayByRadix(t *testing.T) {
	cases := []struct {
		i     int64
		radix Radix
		want  string
	}{
		{141, Hex, "0x8d"},
		{8, Oct, "0o10"},
		{5, Bin, "0b101"},
		{42, Dec, "42"},
		{-5, Dec, "-5"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewInteger(c.i, c.radix).String())
	}
}

func TestQuantityDisplay(t *testing.T) {
	m := &unit.Unit{Factors: []unit.Factor{{Base: &unit.Base{Symbol: "m"}, Exp: 1}}}
	assert.Equal(t, "[3 m]", NewQuantity(3, m).String())
}

func TestUnitDisplayIsBare(t *testing.T) {
	m := &unit.Unit{Factors: []unit.Factor{{Base: &unit.Base{Symbol: "m"}, Exp: 1}}}
	assert.Equal(t, "m", NewUnit(m).String())
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, NewReal(1).IsNumeric())
	assert.True(t, NewInteger(1, Dec).IsNumeric())
	assert.False(t, NewUnit(unit.Dimensionless).IsNumeric())
	assert.False(t, NewQuantity(1, unit.Dimensionless).IsNumeric())
}

func TestAsFloat(t *testing.T) {
	assert.Equal(t, 2.0, NewReal(2).AsFloat())
	assert.Equal(t, 2.0, NewInteger(2, Dec).AsFloat())
	assert.Equal(t, 2.0, NewQuantity(2, unit.Dimensionless).AsFloat())
}

func TestAsFloatPanicsOnUnit(t *testing.T) {
	assert.Panics(t, func() {
		NewUnit(unit.Dimensionless).AsFloat()
	})
}
