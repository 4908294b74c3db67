package model

import (
	"errors"
	"fmt"
)

// ErrInvalidDomainInput reports an input outside the model's accepted domain,
// such as an inverted temperature range or a non-positive step.
var ErrInvalidDomainInput = errors.New("invalid domain input")

// ErrDivisionByZero reports a computation whose denominator evaluated to zero.
// It is surfaced explicitly instead of letting an Inf or NaN propagate.
var ErrDivisionByZero = errors.New("division by zero")

// Invalidf wraps ErrInvalidDomainInput with a formatted detail message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDomainInput, fmt.Sprintf(format, args...))
}
