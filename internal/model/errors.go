package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is wrapped by every failure caused by a caller-supplied
	// value outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCalculation is wrapped by CalculationError.
	ErrCalculation = errors.New("calculation error")
)

// CalculationError reports a numeric step that could not produce a usable value.
type CalculationError struct {
	Step   string
	Detail string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation error in %s: %s", e.Step, e.Detail)
}

func (e *CalculationError) Unwrap() error { return ErrCalculation }

// NewCalculationError builds a CalculationError for the named step.
func NewCalculationError(step, format string, args ...any) error {
	return &CalculationError{Step: step, Detail: fmt.Sprintf(format, args...)}
}

// InvalidArgument formats a message and wraps ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
