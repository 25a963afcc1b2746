package unit

import (
	"math"

	"github.com/electronfraud/calc/internal/dimension"
)

// Catalog is the process-wide, immutable name -> {Unit, Constant} table
// described in spec §3.5. It is populated once by NewCatalog and never
// mutated afterward, matching the teacher's pattern of building read-only
// tables at startup (see internal/engine/commands.Builtins in the example
// pack) rather than exposing a mutable registry.
type Catalog struct {
	Units     map[string]*Unit
	Constants map[string]Constant
}

// Constant is a named value in the constant catalog. Value is either a
// bare float64 (dimensionless, e.g. pi) or a magnitude-with-unit pair
// (e.g. c). Quantity constants carry a non-nil Unit.
type Constant struct {
	Magnitude float64
	Unit      *Unit // nil for dimensionless constants
}

// bases holds every atomic (single-factor) base unit and the derived
// compound units built from them, so catalog construction can reference
// them by name.
type bases struct {
	m, kg, g, s, K, rad, A, mol, cd, bit *Base
	degC, degF, tempC, tempF, R          *Base
	in, cm, mm, ft, mi, nm, mil          *Base
	hr, min, day                         *Base
	byteBase                             *Base

	hz, j, n, w *Unit
}

// NewCatalog builds the mandatory catalog from spec §3.5, plus the
// supplemental entries from SPEC_FULL.md §3.5 drawn from
// original_source/src/units.
func NewCatalog() *Catalog {
	b := buildBases()

	c := &Catalog{
		Units:     map[string]*Unit{},
		Constants: map[string]Constant{},
	}

	addBase := func(name string, base *Base) {
		c.Units[name] = FromBase(base)
	}

	addBase("m", b.m)
	addBase("kg", b.kg)
	addBase("g", b.g)
	addBase("s", b.s)
	addBase("K", b.K)
	addBase("R", b.R)
	addBase("rad", b.rad)
	addBase("deg", angleDeg())
	addBase("in", b.in)
	addBase("cm", b.cm)
	addBase("mi", b.mi)
	addBase("hr", b.hr)
	addBase("degC", b.degC)
	addBase("degF", b.degF)
	addBase("tempC", b.tempC)
	addBase("tempF", b.tempF)

	// Supplemental units (SPEC_FULL.md §3.5).
	addBase("min", b.min)
	addBase("day", b.day)
	addBase("ft", b.ft)
	addBase("mm", b.mm)
	addBase("NM", b.nm)
	addBase("mil", b.mil)
	addBase("A", b.A)
	addBase("mol", b.mol)
	addBase("cd", b.cd)
	addBase("b", b.bit)
	addBase("B", b.byteBase)

	c.Units["Hz"] = b.hz
	c.Units["J"] = b.j
	c.Units["N"] = b.n
	c.Units["W"] = b.w

	c.Constants["pi"] = Constant{Magnitude: math.Pi}
	c.Constants["e"] = Constant{Magnitude: math.E}
	c.Constants["c"] = Constant{Magnitude: 299792458, Unit: mustDiv(FromBase(b.m), FromBase(b.s))}
	c.Constants["h"] = Constant{Magnitude: 6.62607015e-34, Unit: mustDiv(b.j, b.hz)}
	c.Constants["hbar"] = Constant{Magnitude: 1.054571817e-34, Unit: mustMul(b.j, FromBase(b.s))}

	gNumer := mustMul(FromBase(b.m), FromBase(b.m))
	gNumer = mustMul(gNumer, FromBase(b.m))
	gDenom := mustMul(FromBase(b.kg), FromBase(b.s))
	gDenom = mustMul(gDenom, FromBase(b.s))
	c.Constants["G"] = Constant{Magnitude: 6.67430e-11, Unit: mustDiv(gNumer, gDenom)}

	c.Constants["N_A"] = Constant{Magnitude: 6.02214076e23}

	return c
}

func mustMul(a, b *Unit) *Unit {
	u, err := a.Mul(b)
	if err != nil {
		panic("catalog construction: " + err.Error())
	}
	return u
}

func mustDiv(a, b *Unit) *Unit {
	u, err := a.Div(b)
	if err != nil {
		panic("catalog construction: " + err.Error())
	}
	return u
}

func buildBases() bases {
	var b bases

	b.m = &Base{Symbol: "m", Dim: dimension.Basis(dimension.Length), Scale: 1}
	b.kg = &Base{Symbol: "kg", Dim: dimension.Basis(dimension.Mass), Scale: 1}
	b.g = &Base{Symbol: "g", Dim: dimension.Basis(dimension.Mass), Scale: 0.001}
	b.s = &Base{Symbol: "s", Dim: dimension.Basis(dimension.Time), Scale: 1}
	b.K = &Base{Symbol: "K", Dim: dimension.Basis(dimension.Temperature), Scale: 1, Kind: AbsoluteTemperature, Dual: true}
	b.rad = &Base{Symbol: "rad", Dim: dimension.Basis(dimension.Angle), Scale: 1}
	b.A = &Base{Symbol: "A", Dim: dimension.Basis(dimension.Current), Scale: 1}
	b.mol = &Base{Symbol: "mol", Dim: dimension.Basis(dimension.AmountOfSubstance), Scale: 1}
	b.cd = &Base{Symbol: "cd", Dim: dimension.Basis(dimension.LuminousIntensity), Scale: 1}
	b.bit = &Base{Symbol: "b", Dim: dimension.Basis(dimension.Information), Scale: 1}
	b.byteBase = &Base{Symbol: "B", Dim: dimension.Basis(dimension.Information), Scale: 8}

	// Linear temperature intervals: plain multiplicative conversion, no
	// zero-point adjustment (spec §3.2, §4.1 "Linear branch").
	b.degC = &Base{Symbol: "degC", Dim: dimension.Basis(dimension.Temperature), Scale: 1, Kind: Linear}
	b.degF = &Base{Symbol: "degF", Dim: dimension.Basis(dimension.Temperature), Scale: 5.0 / 9.0, Kind: Linear}

	// R (Rankine) has no zero-point of its own to adjust for: like K, its
	// zero already coincides with absolute zero, so it is Dual (spec
	// §3.2's "R: converts similarly" note).
	b.R = &Base{Symbol: "R", Dim: dimension.Basis(dimension.Temperature), Scale: 5.0 / 9.0, Kind: AbsoluteTemperature, Dual: true}

	// Absolute temperatures: affine, expressed relative to Kelvin.
	b.tempC = &Base{Symbol: "tempC", Dim: dimension.Basis(dimension.Temperature), Scale: 1, Offset: 273.15, Kind: AbsoluteTemperature}
	b.tempF = &Base{Symbol: "tempF", Dim: dimension.Basis(dimension.Temperature), Scale: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0, Kind: AbsoluteTemperature}
	b.tempC.Interval = b.degC
	b.tempF.Interval = b.degF

	b.in = &Base{Symbol: "in", Dim: dimension.Basis(dimension.Length), Scale: 0.3048 / 12.0}
	b.ft = &Base{Symbol: "ft", Dim: dimension.Basis(dimension.Length), Scale: 0.3048}
	b.cm = &Base{Symbol: "cm", Dim: dimension.Basis(dimension.Length), Scale: 0.01}
	b.mm = &Base{Symbol: "mm", Dim: dimension.Basis(dimension.Length), Scale: 0.001}
	b.mi = &Base{Symbol: "mi", Dim: dimension.Basis(dimension.Length), Scale: 1609.344}
	b.nm = &Base{Symbol: "NM", Dim: dimension.Basis(dimension.Length), Scale: 1852.0}
	b.mil = &Base{Symbol: "mil", Dim: dimension.Basis(dimension.Length), Scale: 0.0000254}

	b.hr = &Base{Symbol: "hr", Dim: dimension.Basis(dimension.Time), Scale: 3600}
	b.min = &Base{Symbol: "min", Dim: dimension.Basis(dimension.Time), Scale: 60}
	b.day = &Base{Symbol: "day", Dim: dimension.Basis(dimension.Time), Scale: 86400}

	b.hz = mustDiv(Dimensionless, FromBase(b.s)).WithSymbol("Hz")
	b.j = mustDiv(mustDiv(mustMul(mustMul(FromBase(b.kg), FromBase(b.m)), FromBase(b.m)), FromBase(b.s)), FromBase(b.s)).WithSymbol("J")
	b.n = mustDiv(mustMul(FromBase(b.kg), FromBase(b.m)), FromBase(b.s))
	b.n = mustDiv(b.n, FromBase(b.s)).WithSymbol("N")
	b.w = mustDiv(b.j, FromBase(b.s)).WithSymbol("W")

	return b
}

func angleDeg() *Base {
	return &Base{Symbol: "deg", Dim: dimension.Basis(dimension.Angle), Scale: math.Pi / 180.0}
}
