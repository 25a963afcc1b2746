package token

import (
	"testing"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralNotALiteral(t *testing.T) {
	_, ok, err := ParseLiteral("foo")
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestParseLiteralDecimalInteger(t *testing.T) {
	v, ok, err := ParseLiteral("1,000")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(1000, value.Dec), v)
}

func TestParseLiteralNegativeDecimalInteger(t *testing.T) {
	v, ok, err := ParseLiteral("-42")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(-42, value.Dec), v)
}

func TestParseLiteralDecimalReal(t *testing.T) {
	v, ok, err := ParseLiteral("1,000.5")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewReal(1000.5), v)
}

func TestParseLiteralExponent(t *testing.T) {
	v, ok, err := ParseLiteral("6.62607015e-34")
	require.True(t, ok)
	require.NoError(t, err)
	assert.InDelta(t, 6.62607015e-34, v.Num, 1e-45)
}

func TestParseLiteralHex(t *testing.T) {
	for _, tok := range []string{"0xeb9f", "0XEB9F", "$eb9f"} {
		v, ok, err := ParseLiteral(tok)
		require.True(t, ok, tok)
		require.NoError(t, err, tok)
		assert.Equal(t, value.NewInteger(0xeb9f, value.Hex), v, tok)
	}
}

func TestParseLiteralBinary(t *testing.T) {
	v, ok, err := ParseLiteral("0b10001101")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(0x8d, value.Bin), v)
}

func TestParseLiteralOctalPrefixed(t *testing.T) {
	v, ok, err := ParseLiteral("0o17")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(15, value.Oct), v)
}

func TestParseLiteralLeadingZeroOctal(t *testing.T) {
	v, ok, err := ParseLiteral("017")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(15, value.Oct), v)
}

func TestParseLiteralBareZero(t *testing.T) {
	v, ok, err := ParseLiteral("0")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(0, value.Dec), v)
}

func TestParseLiteralUnderscoreSeparator(t *testing.T) {
	v, ok, err := ParseLiteral("0xFF_FF")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(0xFFFF, value.Hex), v)
}

func TestParseLiteralOverflowIsNumberFormatError(t *testing.T) {
	_, ok, err := ParseLiteral("0xffffffffffffffffff")
	require.True(t, ok)
	assert.ErrorIs(t, err, calcerr.ErrNumberFormatError)
}

func TestParseLiteralPlainWordIsNotALiteral(t *testing.T) {
	_, ok, _ := ParseLiteral("into")
	assert.False(t, ok)
}
