// Package format turns generated sequences into the strings shown to users:
// the term list, the general formula, the two-decimal sum and the
// step-by-step derivation of the first terms.
package format

import (
	"math"
	"strconv"
)

// Number renders a value in its default textual form.
// Whole numbers carry no fractional part ("1", not "1.0"). Magnitudes outside
// [1e-4, 1e21) switch to exponent notation to keep the output short.
func Number(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-4 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Sum renders a sum with exactly two decimal places.
func Sum(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
