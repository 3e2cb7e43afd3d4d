package locale

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is what Format returns for NaN and ±Inf.
const Placeholder = "-"

// DecimalSeparator and GroupSeparator are the Danish number punctuation.
const (
	DecimalSeparator = ","
	GroupSeparator   = "."
)

// printer is the locale-aware message printer used for digit grouping.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.Danish)

// Format renders v with exactly digits fractional digits using Danish
// punctuation. Rounding works on the shortest decimal form of v, so 1.005
// rounds to "1,01" even though its binary value is slightly below the
// half. Halves round away from zero.
//
// Example: Format(1234.5, 2) returns "1.234,50", Format(1234.5, 0)
// returns "1.235" and Format(math.NaN(), 2) returns "-".
func Format(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if digits < 0 {
		digits = 0
	}

	negative := math.Signbit(v)
	intPart, fracPart := roundDecimal(strconv.FormatFloat(math.Abs(v), 'f', -1, 64), digits)

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	sb.WriteString(groupIntPart(intPart))
	if digits > 0 {
		sb.WriteString(DecimalSeparator)
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// roundDecimal rounds an unsigned plain decimal string to digits fractional
// digits, half away from zero, and returns the integer and fractional parts.
func roundDecimal(s string, digits int) (string, string) {
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(fracPart) <= digits {
		return intPart, fracPart + strings.Repeat("0", digits-len(fracPart))
	}

	roundUp := fracPart[digits] >= '5'
	kept := []byte(intPart + fracPart[:digits])
	if roundUp {
		i := len(kept) - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i < 0 {
			kept = append([]byte{'1'}, kept...)
		} else {
			kept[i]++
		}
	}

	split := len(kept) - digits
	return string(kept[:split]), string(kept[split:])
}

// groupIntPart inserts thousands separators into an unsigned digit string.
func groupIntPart(s string) string {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}

	// Beyond int64: group by hand.
	const groupSize = 3
	var sb strings.Builder
	lead := len(s) % groupSize
	if lead == 0 {
		lead = groupSize
	}
	sb.WriteString(s[:lead])
	for i := lead; i < len(s); i += groupSize {
		sb.WriteString(GroupSeparator)
		sb.WriteString(s[i : i+groupSize])
	}
	return sb.String()
}
