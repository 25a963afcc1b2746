package command

import (
	"fmt"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/value"
)

func addBitwise(t Table) {
	t["&"] = bitwiseBinary(func(a, b int64) int64 { return a & b })
	t["|"] = bitwiseBinary(func(a, b int64) int64 { return a | b })
	t["^"] = bitwiseBinary(func(a, b int64) int64 { return a ^ b })
	t["~"] = bitwiseComplement
	t["hex"] = radixCmd(value.Hex)
	t["dec"] = radixCmd(value.Dec)
	t["oct"] = radixCmd(value.Oct)
	t["bin"] = radixCmd(value.Bin)
	t["bset"] = bitSet
	t["bclr"] = bitClear
	t["bget"] = bitGet
}

// bitwiseBinary implements `& | ^`: both operands must be Integer, no
// units; the result inherits a's radix (spec §4.6).
func bitwiseBinary(fn func(a, b int64) int64) Func {
	return func(s *stack.Stack) error {
		a, b, err := popTwo(s)
		if err != nil {
			return err
		}
		if _, err := wantInteger(a); err != nil {
			return err
		}
		if _, err := wantInteger(b); err != nil {
			return err
		}
		s.Push(value.NewInteger(fn(a.Int, b.Int), a.Radix))
		return nil
	}
}

func bitwiseComplement(s *stack.Stack) error {
	a, err := popOne(s)
	if err != nil {
		return err
	}
	if _, err := wantInteger(a); err != nil {
		return err
	}
	s.Push(value.NewInteger(^a.Int, a.Radix))
	return nil
}

// radixCmd implements `hex/dec/oct/bin`: pops an Integer and pushes the
// same value with the new display radix (spec §4.6).
func radixCmd(r value.Radix) Func {
	return func(s *stack.Stack) error {
		a, err := popOne(s)
		if err != nil {
			return err
		}
		if _, err := wantInteger(a); err != nil {
			return err
		}
		s.Push(value.NewInteger(a.Int, r))
		return nil
	}
}

// bitIndex validates b as an Integer bit index in [0,63] (spec §4.6).
func bitIndex(b value.Value) (uint, error) {
	if _, err := wantInteger(b); err != nil {
		return 0, err
	}
	if b.Int < 0 || b.Int > 63 {
		return 0, fmt.Errorf("%w: bit index %d out of range", calcerr.ErrRangeError, b.Int)
	}
	return uint(b.Int), nil
}

func bitSet(s *stack.Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if _, err := wantInteger(a); err != nil {
		return err
	}
	i, err := bitIndex(b)
	if err != nil {
		return err
	}
	s.Push(value.NewInteger(a.Int|(1<<i), a.Radix))
	return nil
}

func bitClear(s *stack.Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if _, err := wantInteger(a); err != nil {
		return err
	}
	i, err := bitIndex(b)
	if err != nil {
		return err
	}
	s.Push(value.NewInteger(a.Int&^(1<<i), a.Radix))
	return nil
}

func bitGet(s *stack.Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if _, err := wantInteger(a); err != nil {
		return err
	}
	i, err := bitIndex(b)
	if err != nil {
		return err
	}
	bit := (a.Int >> i) & 1
	s.Push(a)
	s.Push(value.NewInteger(bit, value.Bin))
	return nil
}
