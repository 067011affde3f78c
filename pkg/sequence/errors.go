package sequence

import (
	"errors"
	"fmt"
)

// ErrTermCountNotPositive is returned when a request asks for zero or fewer terms.
var ErrTermCountNotPositive = errors.New("term count must be positive")

// ErrTermCountTooLarge is returned when a request asks for more than MaxTerms terms.
var ErrTermCountTooLarge = errors.New("term count exceeds limit")

// ErrZeroRatio is returned when a geometric request has a common ratio of zero.
var ErrZeroRatio = errors.New("geometric ratio is zero")

// ErrUnknownKind is returned when a kind name cannot be parsed.
var ErrUnknownKind = errors.New("unknown sequence kind")

// ErrInvalidNumber is returned when user text is not a decimal number.
var ErrInvalidNumber = errors.New("invalid number")

// User facing messages.
const (
	MsgTermCountNotPositive = "Number of terms must be a positive integer."
	MsgTermCountTooLarge    = "Number of terms cannot exceed 1000 for performance reasons."
	MsgZeroRatio            = "Common ratio cannot be zero for geometric sequences."
)

// ValidationError reports a request field that failed validation.
// Error returns the message meant for the user; errors.Is matches the wrapped sentinel.
type ValidationError struct {
	Field   string // Request field name
	Value   any    // The rejected value
	Message string // Human-readable message
	err     error
}

func newValidationError(field string, value any, msg string, sentinel error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: msg, err: sentinel}
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("field %q: %v", e.Field, e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// IsValidation reports whether err (or anything it wraps) is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
