// Package unit implements the dimensional-algebra subsystem: base units,
// the canonicalised compound Unit they combine into, and the arithmetic,
// compatibility, and conversion rules that operate on them.
//
// Grounded on original_source/src/units/{base,unit}.rs: a Unit is a
// canonicalised product of (base, exponent) factors carrying an aggregate
// scale and, for the single-factor absolute-temperature case, an affine
// offset.
package unit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/dimension"
)

// Kind distinguishes a unit whose conversion is pure multiplication
// (Linear) from one that carries an affine, zero-point offset
// (AbsoluteTemperature).
type Kind int

const (
	Linear Kind = iota
	AbsoluteTemperature
)

func (k Kind) String() string {
	if k == AbsoluteTemperature {
		return "absolute-temperature"
	}
	return "linear"
}

// Base is a named, atomic unit: one that is not itself expressed as a
// product of other named units. Compound units (Hz, J, N, W, ...) are
// expanded into Base factors at catalog construction time; a Base is a
// singleton, so its address doubles as an identity for canonicalisation.
type Base struct {
	Symbol string
	Dim    dimension.Dimension
	Scale  float64
	Offset float64
	Kind   Kind

	// Dual marks a unit whose own zero point already coincides with
	// absolute zero (K, R), so it converts correctly against both the
	// linear-interval family (degC/degF) and the absolute-temperature
	// family (tempC/tempF) without a kind mismatch. See DESIGN.md.
	Dual bool

	// Interval names the Linear-interval counterpart of an
	// AbsoluteTemperature base (tempC -> degC, tempF -> degF), used when
	// subtracting two absolute temperatures (spec §4.4). Dual bases leave
	// this nil: they already serve as their own interval form.
	Interval *Base
}

// Factor pairs a Base with the integer exponent it contributes to a Unit.
type Factor struct {
	Base *Base
	Exp  int
}

// Unit is a canonicalised product of Factors: no base appears twice, no
// factor has a zero exponent, and factors are ordered positive-exponent
// first, then by symbol, to give equal units equal representations
// (invariant: "Canonical units", spec §8.1.6).
//
// Symbol optionally names the unit itself, overriding the factor-list
// rendering in String() (original_source/src/units/unit.rs's
// with_symbol, used for the catalog's named derived units: Hz, J, N, W).
// It is not part of a Unit's identity for Equal/Commensurable/Convert,
// and arithmetic (Mul/Div/Pow) always produces a Unit with no Symbol,
// since a product or quotient of named units is not itself named.
type Unit struct {
	Factors []Factor
	Symbol  string
}

// Dimensionless is the empty-factor Unit, the multiplicative identity.
var Dimensionless = &Unit{}

// FromBase returns the single-factor Unit naming b with exponent 1.
func FromBase(b *Base) *Unit {
	return &Unit{Factors: []Factor{{Base: b, Exp: 1}}}
}

// WithSymbol returns a Unit identical to u except that it renders as
// symbol instead of its factor list (original_source/src/units/unit.rs's
// with_symbol), for naming derived units like Hz, J, N, and W.
func (u *Unit) WithSymbol(symbol string) *Unit {
	return &Unit{Factors: u.Factors, Symbol: symbol}
}

// Dim returns the aggregated Dimension of u: the sum of each factor's own
// dimension weighted by that factor's exponent.
func (u *Unit) Dim() dimension.Dimension {
	d := dimension.Zero
	for _, f := range u.Factors {
		d = d.Add(f.Base.Dim.Scale(f.Exp))
	}
	return d
}

// Scale returns the aggregate multiplier taking a magnitude in u to the
// canonical SI base.
func (u *Unit) Scale() float64 {
	s := 1.0
	for _, f := range u.Factors {
		for n := 0; n < abs(f.Exp); n++ {
			if f.Exp > 0 {
				s *= f.Base.Scale
			} else {
				s /= f.Base.Scale
			}
		}
	}
	return s
}

// Offset returns the affine offset of u. Only a single-factor, exponent-1
// AbsoluteTemperature unit has a nonzero offset (invariant U1).
func (u *Unit) Offset() float64 {
	if k, ok := u.singleAbsoluteTemperatureFactor(); ok {
		return k.Base.Offset
	}
	return 0
}

// Kind returns Linear unless u is exactly one AbsoluteTemperature factor
// with exponent +1.
func (u *Unit) Kind() Kind {
	if _, ok := u.singleAbsoluteTemperatureFactor(); ok {
		return AbsoluteTemperature
	}
	return Linear
}

func (u *Unit) singleAbsoluteTemperatureFactor() (Factor, bool) {
	f, ok := u.singleFactor()
	if ok && f.Exp == 1 && f.Base.Kind == AbsoluteTemperature {
		return f, true
	}
	return Factor{}, false
}

func (u *Unit) hasAbsoluteTemperatureFactor() bool {
	for _, f := range u.Factors {
		if f.Base.Kind == AbsoluteTemperature {
			return true
		}
	}
	return false
}

// IsDimensionless reports whether u carries no factors.
func (u *Unit) IsDimensionless() bool {
	return len(u.Factors) == 0
}

// Equal reports structural equality of the canonicalised factor lists.
func (u *Unit) Equal(o *Unit) bool {
	if len(u.Factors) != len(o.Factors) {
		return false
	}
	for i, f := range u.Factors {
		if f.Base != o.Factors[i].Base || f.Exp != o.Factors[i].Exp {
			return false
		}
	}
	return true
}

// Commensurable reports whether u and o have equal Dimension vectors
// (invariant U2).
func (u *Unit) Commensurable(o *Unit) bool {
	return u.Dim().Equal(o.Dim())
}

// Mul returns the canonicalised product of u and o, or
// calcerr.ErrNonLinearInCompound if the result would fold an
// absolute-temperature factor into a multi-factor compound.
func (u *Unit) Mul(o *Unit) (*Unit, error) {
	return combine(u, o, 1)
}

// Div returns the canonicalised quotient of u and o (u / o), or
// calcerr.ErrNonLinearInCompound under the same rule as Mul.
func (u *Unit) Div(o *Unit) (*Unit, error) {
	return combine(u, o, -1)
}

func combine(u, o *Unit, sign int) (*Unit, error) {
	merged := map[*Base]int{}
	order := []*Base{}
	for _, f := range u.Factors {
		if _, seen := merged[f.Base]; !seen {
			order = append(order, f.Base)
		}
		merged[f.Base] += f.Exp
	}
	for _, f := range o.Factors {
		if _, seen := merged[f.Base]; !seen {
			order = append(order, f.Base)
		}
		merged[f.Base] += sign * f.Exp
	}

	factors := make([]Factor, 0, len(order))
	for _, b := range order {
		if exp := merged[b]; exp != 0 {
			factors = append(factors, Factor{Base: b, Exp: exp})
		}
	}
	result := canonicalize(factors)

	if result.hasAbsoluteTemperatureFactor() {
		// The only way an absolute-temperature factor can survive
		// combination is if it was already alone on one side and the
		// other side contributed nothing.
		_, uOK := u.singleAbsoluteTemperatureFactor()
		_, oOK := o.singleAbsoluteTemperatureFactor()
		valid := (uOK && o.IsDimensionless()) || (oOK && u.IsDimensionless())
		if _, ok := result.singleAbsoluteTemperatureFactor(); !ok || !valid {
			return nil, fmt.Errorf("%w: %s and %s", calcerr.ErrNonLinearInCompound, u, o)
		}
	}

	return result, nil
}

// Pow raises u to the rational power num/den. It requires every factor's
// exponent to be evenly divisible by den (num/den = 1/2 is a square root,
// for instance); otherwise it returns calcerr.ErrDimensionalityError. An
// absolute-temperature unit can only be raised to an integral power of 1.
func (u *Unit) Pow(num, den int) (*Unit, error) {
	if u.IsDimensionless() {
		return Dimensionless, nil
	}
	if _, ok := u.singleAbsoluteTemperatureFactor(); ok {
		if num == den {
			return u, nil
		}
		return nil, fmt.Errorf("%w: cannot raise absolute-temperature unit %s to a power", calcerr.ErrDimensionalityError, u)
	}
	factors := make([]Factor, 0, len(u.Factors))
	for _, f := range u.Factors {
		e := f.Exp * num
		if e%den != 0 {
			return nil, fmt.Errorf("%w: exponent of %s is not divisible by %d", calcerr.ErrDimensionalityError, f.Base.Symbol, den)
		}
		factors = append(factors, Factor{Base: f.Base, Exp: e / den})
	}
	return canonicalize(factors), nil
}

func canonicalize(factors []Factor) *Unit {
	out := make([]Factor, 0, len(factors))
	for _, f := range factors {
		if f.Exp != 0 {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Exp > 0, out[j].Exp > 0
		if pi != pj {
			return pi
		}
		return out[i].Base.Symbol < out[j].Base.Symbol
	})
	return &Unit{Factors: out}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Convert produces the magnitude of the same physical quantity that x
// (expressed in from) has when expressed in to (spec §4.1). Offset() is
// zero for every Linear unit by construction, so the single affine
// formula below degenerates to pure scaling for the Linear branch and
// only does real zero-point work for the AbsoluteTemperature branch; the
// two "branches" in spec §4.1 are this one formula specialised by each
// unit's own Offset.
func Convert(x float64, from, to *Unit) (float64, error) {
	if !from.Commensurable(to) {
		return 0, fmt.Errorf("%w: %s and %s", calcerr.ErrIncommensurableUnits, from, to)
	}
	if !compatibleKind(from, to) {
		return 0, fmt.Errorf("%w: %s (%s) and %s (%s)", calcerr.ErrTemperatureKindMismatch, from, from.Kind(), to, to.Kind())
	}
	return (x*from.Scale() + from.Offset() - to.Offset()) / to.Scale(), nil
}

// compatibleKind reports whether from and to may be mixed in a
// conversion: either they share the same Kind, or one of them is a Dual
// unit (K, R) whose zero already coincides with absolute zero and so
// converts validly against either family.
func compatibleKind(from, to *Unit) bool {
	if from.Kind() == to.Kind() {
		return true
	}
	return from.isDual() || to.isDual()
}

func (u *Unit) isDual() bool {
	f, ok := u.singleFactor()
	return ok && f.Base.Dual
}

func (u *Unit) singleFactor() (Factor, bool) {
	if len(u.Factors) == 1 {
		return u.Factors[0], true
	}
	return Factor{}, false
}

// IntervalEquivalent returns the Linear-interval unit that corresponds to
// u when u is a single AbsoluteTemperature factor with a registered
// Interval counterpart (tempC -> degC, tempF -> degF). Any other unit,
// including the Dual K and R (which already serve as their own interval
// form), is returned unchanged.
func (u *Unit) IntervalEquivalent() *Unit {
	f, ok := u.singleAbsoluteTemperatureFactor()
	if !ok || f.Base.Interval == nil {
		return u
	}
	return FromBase(f.Base.Interval)
}

// String renders u using "⋅" for multiplication and Unicode superscript
// exponents, positive exponents first, per spec §4.1. A Unit with a
// Symbol (Hz, J, N, W) renders as that symbol instead.
func (u *Unit) String() string {
	if u.Symbol != "" {
		return u.Symbol
	}
	if u.IsDimensionless() {
		return ""
	}
	parts := make([]string, 0, len(u.Factors))
	for _, f := range u.Factors {
		s := f.Base.Symbol
		if f.Exp != 1 {
			s += superscriptExp(f.Exp)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "⋅")
}

var superDigits = map[byte]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

func superscriptExp(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if len(digits) == 0 {
		digits = []byte{'0'}
	}
	out := []rune{}
	if neg {
		out = append(out, superDigits['-'])
	}
	for _, b := range digits {
		out = append(out, superDigits[b])
	}
	return string(out)
}
