package commute

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks inputs the engine cannot compute with.
var ErrInvalidInput = errors.New("invalid input")

// InputError names the offending field. It matches ErrInvalidInput with
// errors.Is.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %g)", ErrInvalidInput, e.Field, e.Reason, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
