// Package token implements the numeric-literal grammar of spec §6.1 and
// the whitespace splitting of an input line. Classifying a token as a
// command, constant, or unit (spec §4.3) is done by the eval package.
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/value"
)

// ParseLiteral attempts to read tok as a numeric literal per spec §6.1.
// It returns ok=false (with a nil error) when tok simply isn't shaped
// like a literal, so the caller can fall through to command/constant/
// unit resolution. A token that looks like a literal but fails to parse
// (e.g. overflow) returns ok=true and a non-nil, wrapped
// calcerr.ErrNumberFormatError.
func ParseLiteral(tok string) (v value.Value, ok bool, err error) {
	if tok == "" {
		return value.Value{}, false, nil
	}

	switch {
	case hasFoldPrefix(tok, "0x"), hasFoldPrefix(tok, "0X"), strings.HasPrefix(tok, "$"):
		return parseRadix(tok, prefixLen(tok), 16, value.Hex)
	case hasFoldPrefix(tok, "0b"):
		return parseRadix(tok, 2, 2, value.Bin)
	case hasFoldPrefix(tok, "0o"):
		return parseRadix(tok, 2, 8, value.Oct)
	case tok == "0":
		return value.NewInteger(0, value.Dec), true, nil
	case tok[0] == '0' && isOctalBody(tok[1:]):
		return parseRadix(tok, 1, 8, value.Oct)
	}

	return parseSignedDecimal(tok)
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func prefixLen(tok string) int {
	if strings.HasPrefix(tok, "$") {
		return 1
	}
	return 2
}

func isOctalBody(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c == '_' {
			continue
		}
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}

// parseRadix parses a prefixed non-decimal integer literal (hex, octal,
// or binary), with '_' permitted as a separator between digits.
func parseRadix(tok string, skip, base int, radix value.Radix) (value.Value, bool, error) {
	body := strings.ReplaceAll(tok[skip:], "_", "")
	if body == "" {
		return value.Value{}, true, fmt.Errorf("%w: %q has no digits", calcerr.ErrNumberFormatError, tok)
	}
	u, err := strconv.ParseUint(body, base, 64)
	if err != nil {
		return value.Value{}, true, fmt.Errorf("%w: %q: %s", calcerr.ErrNumberFormatError, tok, err)
	}
	return value.NewInteger(int64(u), radix), true, nil
}

// parseSignedDecimal handles both the decimal-real and decimal-integer
// grammars, which share an optional sign and ',' thousands separators.
func parseSignedDecimal(tok string) (value.Value, bool, error) {
	s := tok
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return value.Value{}, false, nil
	}
	if !looksDecimal(s) {
		return value.Value{}, false, nil
	}

	isReal := strings.ContainsAny(s, ".eE")
	stripped := strings.ReplaceAll(tok, ",", "")

	if isReal {
		f, err := strconv.ParseFloat(stripped, 64)
		if err != nil {
			return value.Value{}, true, fmt.Errorf("%w: %q: %s", calcerr.ErrNumberFormatError, tok, err)
		}
		return value.NewReal(f), true, nil
	}

	i, err := strconv.ParseInt(stripped, 10, 64)
	if err != nil {
		return value.Value{}, true, fmt.Errorf("%w: %q: %s", calcerr.ErrNumberFormatError, tok, err)
	}
	return value.NewInteger(i, value.Dec), true, nil
}

// looksDecimal reports whether s (sign already stripped) is shaped like
// a decimal literal: digits, optional ',' separators, at most one '.',
// and an optional exponent, with at least one digit overall. A real
// literal additionally requires a '.' or an exponent; that distinction
// is made by the caller.
func looksDecimal(s string) bool {
	digits := false
	sawDot := false
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == ',':
			// separator only valid once digits precede it; tolerated
			// anywhere among digits for simplicity, matching the
			// original_source integer parser's blanket "remove commas"
			// approach.
		case c == '.':
			if sawDot {
				return false
			}
			sawDot = true
		case (c == 'e' || c == 'E') && digits:
			return looksExponent(s[i+1:]) && digits
		default:
			return false
		}
	}
	return digits
}

func looksExponent(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
