package command

import (
	"testing"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitwiseAndKeepsLowerOperandRadix(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewInteger(0xeb9f, value.Hex))
	s.Push(value.NewInteger(0x8d, value.Bin))

	require.NoError(t, tab["&"](s))

	top, _ := s.Pop()
	assert.Equal(t, int64(0x8d), top.Int)
	assert.Equal(t, value.Hex, top.Radix)
}

func TestBitwiseRequiresIntegers(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewReal(1))
	s.Push(value.NewInteger(1, value.Dec))

	assert.ErrorIs(t, tab["&"](s), calcerr.ErrTypeError)
}

func TestComplement(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewInteger(0, value.Dec))

	require.NoError(t, tab["~"](s))
	top, _ := s.Pop()
	assert.Equal(t, int64(-1), top.Int)
}

func TestRadixChangeIsCosmetic(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewInteger(255, value.Dec))

	require.NoError(t, tab["hex"](s))
	top, _ := s.Pop()
	assert.Equal(t, int64(255), top.Int)
	assert.Equal(t, value.Hex, top.Radix)
	assert.Equal(t, "0xff", top.String())
}

func TestRadixChangeOnRealIsTypeError(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewReal(1))

	assert.ErrorIs(t, tab["hex"](s), calcerr.ErrTypeError)
}

func TestBitSetClearGet(t *testing.T) {
	tab, _ := newTable(t)

	s := stack.New()
	s.Push(value.NewInteger(0, value.Dec))
	s.Push(value.NewInteger(3, value.Dec))
	require.NoError(t, tab["bset"](s))
	top, _ := s.Pop()
	assert.Equal(t, int64(8), top.Int)

	s.Push(top)
	s.Push(value.NewInteger(3, value.Dec))
	require.NoError(t, tab["bclr"](s))
	top, _ = s.Pop()
	assert.Equal(t, int64(0), top.Int)

	s.Push(value.NewInteger(8, value.Dec))
	s.Push(value.NewInteger(3, value.Dec))
	require.NoError(t, tab["bget"](s))
	bit, _ := s.Pop()
	assert.Equal(t, int64(1), bit.Int)
}

func TestBitIndexOutOfRangeIsRangeError(t *testing.T) {
	tab, _ := newTable(t)
	s := stack.New()
	s.Push(value.NewInteger(1, value.Dec))
	s.Push(value.NewInteger(64, value.Dec))

	assert.ErrorIs(t, tab["bget"](s), calcerr.ErrRangeError)
}
