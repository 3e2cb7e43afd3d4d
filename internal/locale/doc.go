// Package locale converts between user-typed number text and float64 values.
//
// Parsing is tolerant of both European ("1.234,56") and US ("1,234.56")
// punctuation: the rightmost comma or period is always taken as the decimal
// separator. Formatting uses the Danish convention, period for grouping and
// comma for the decimal mark, with a fixed number of fractional digits.
//
// Neither direction reports errors. Unparsable input yields NaN, and any
// non-finite value formats to Placeholder.
package locale
