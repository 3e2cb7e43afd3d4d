package locale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts free-typed text into a number.
//
// Whitespace anywhere in s is ignored. When s contains a comma or a period,
// the rightmost one is the decimal separator and every other comma or period
// is treated as grouping. Text without any separator keeps only its digits
// and minus signs, so "abc" parses to 0 while "1-2" is NaN.
//
// Examples:
//
//	Parse("1.234,56") // 1234.56
//	Parse("1,234.56") // 1234.56
//	Parse("2,50")     // 2.5
//	Parse("77,")      // 77
//	Parse("")         // NaN
func Parse(s string) float64 {
	s = stripSpace(s)
	if s == "" {
		return math.NaN()
	}

	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')

	if lastComma == -1 && lastDot == -1 {
		digits := keepDigits(s, true)
		if digits == "" {
			// An all-garbage string has no digits left to reject.
			return 0
		}
		return parseFloat(digits)
	}

	sep := max(lastComma, lastDot)
	intPart := keepDigits(s[:sep], true)
	fracPart := keepDigits(s[sep+1:], false)

	return parseFloat(intPart + "." + fracPart)
}

// ParseValue is the entry point for host values that are not already
// strings, such as numbers decoded from JSON or YAML documents. They are
// stringified and then parsed exactly like typed text. A nil value is
// treated as the empty string and so yields NaN. Widgets read their own
// fields as text and call Parse directly.
func ParseValue(v any) float64 {
	switch val := v.(type) {
	case nil:
		return math.NaN()
	case string:
		return Parse(val)
	case fmt.Stringer:
		return Parse(val.String())
	default:
		return Parse(fmt.Sprint(val))
	}
}

// stripSpace removes every Unicode whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// keepDigits drops every rune that is not an ASCII digit. Minus signs are
// kept when withMinus is set; their placement is validated by parseFloat.
func keepDigits(s string, withMinus bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || (withMinus && r == '-') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// parseFloat wraps strconv.ParseFloat. Syntax errors become NaN. Range
// errors keep the ±Inf (or 0) that strconv returns, matching what a
// browser does with an over-long digit string.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}
