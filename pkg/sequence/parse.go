package sequence

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFloat reads a decimal number typed by a user for the given field.
func ParseFloat(field, text string) (float64, error) {
	text = strings.TrimSpace(text)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, invalidNumber(field, text)
	}
	if err := CheckFinite(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckFinite rejects NaN and infinite values for the given field
// with the same error ParseFloat returns for them.
func CheckFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidNumber(field, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return nil
}

func invalidNumber(field, text string) *ValidationError {
	return newValidationError(field, text, fmt.Sprintf("%q is not a valid number.", text), ErrInvalidNumber)
}

// ParseTermCount reads a term count typed by a user.
// Whole-valued decimals such as "10.0" are accepted. Whole values beyond
// MaxTerms are clamped to MaxTerms+1 so Validate reports them as too large.
func ParseTermCount(text string) (int, error) {
	text = strings.TrimSpace(text)
	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) || !math.IsInf(v, 0) {
			return 0, newValidationError("term_count", text, MsgTermCountNotPositive, ErrTermCountNotPositive)
		}
		// An overflowing exponent is still a whole number.
		v = math.Copysign(MaxTerms+1, v)
	}
	return TermCount(v)
}

// TermCount converts a whole float to a term count, clamped to
// [-1, MaxTerms+1]. Fractional and non-finite values are rejected.
func TermCount(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, newValidationError("term_count", v, MsgTermCountNotPositive, ErrTermCountNotPositive)
	}
	switch {
	case v > MaxTerms:
		return MaxTerms + 1, nil
	case v < -1:
		return -1, nil
	}
	return int(v), nil
}
