package locale_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/elvencalc/internal/locale"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"european grouping and decimal", "1.234,56", 1234.56},
		{"us grouping and decimal", "1,234.56", 1234.56},
		{"comma decimal", "2,50", 2.5},
		{"period decimal", "2.50", 2.5},
		{"surrounding whitespace", "  450  ", 450},
		{"inner whitespace", "20 000", 20000},
		{"non-breaking space", "20\u00a0000", 20000},
		{"plain integer", "100", 100},
		{"negative integer", "-42", -42},
		{"negative decimal", "-3,75", -3.75},
		{"several grouping marks", "1.234.567,8", 1234567.8},
		{"grouping mark read as decimal", "1.234", 1.234},
		{"trailing separator", "77,", 77},
		{"leading separator", ",5", 0.5},
		{"stray text around number", "kr. 14,50", 14.5},
		{"letters without separator", "abc", 0},
		{"unit suffix without separator", "450km", 450},
		{"leading zeros", "007", 7},
		{"stray punctuation in fraction", "1,2.3x", 12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, locale.Parse(tt.input), 1e-9)
		})
	}
}

func TestParse_NaN(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only whitespace", " \t\n "},
		{"lone comma", ","},
		{"lone period", "."},
		{"minus in the middle", "1-2"},
		{"lone minus", "-"},
		{"letters around separator", "abc,def"},
		{"minus after digits before separator", "12-3,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, math.IsNaN(locale.Parse(tt.input)), "Parse(%q) should be NaN", tt.input)
		})
	}
}

func TestParse_Overflow(t *testing.T) {
	huge := strings.Repeat("9", 400)

	assert.True(t, math.IsInf(locale.Parse(huge), 1))
	assert.True(t, math.IsInf(locale.Parse("-"+huge), -1))
	assert.True(t, math.IsInf(locale.Parse(huge+",5"), 1))
}

type priceText string

func (p priceText) String() string { return string(p) }

func TestParseValue(t *testing.T) {
	t.Run("nil is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(locale.ParseValue(nil)))
	})

	t.Run("string is parsed", func(t *testing.T) {
		assert.InDelta(t, 2.5, locale.ParseValue("2,50"), 1e-9)
	})

	t.Run("int is stringified", func(t *testing.T) {
		assert.InDelta(t, 450.0, locale.ParseValue(450), 1e-9)
	})

	t.Run("float is stringified", func(t *testing.T) {
		assert.InDelta(t, 14.5, locale.ParseValue(14.5), 1e-9)
	})

	t.Run("stringer uses its text", func(t *testing.T) {
		assert.InDelta(t, 1234.5, locale.ParseValue(priceText("1.234,50")), 1e-9)
	})

	t.Run("bool has no digits", func(t *testing.T) {
		assert.Equal(t, 0.0, locale.ParseValue(true))
	})
}
