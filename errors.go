package wgmask

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates a non-positive radius, width, gap or length,
	// or a sample count below 2.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrGeometry indicates a geometric construction without solution, e.g.
	// a circle which cannot span a chord.
	ErrGeometry = errors.New("geometry has no solution")
	// ErrNumericDomain indicates a parameter outside the domain of a formula,
	// e.g. a non-positive curvature rate.
	ErrNumericDomain = errors.New("parameter outside numeric domain")
)

// CheckPositive returns an ErrConfiguration for a non-positive or
// non-finite value v. name is used for the error message.
func CheckPositive(name string, v float64) error {
	if !IsFinite(v) || v <= 0 {
		tracer().Errorf("%s must be positive, is %g", name, v)
		return fmt.Errorf("%w: %s must be positive, is %g", ErrConfiguration, name, v)
	}
	return nil
}

// CheckSamples returns an ErrConfiguration if a sample count is below 2.
func CheckSamples(n int) error {
	if n < 2 {
		tracer().Errorf("sample count must be at least 2, is %d", n)
		return fmt.Errorf("%w: sample count must be at least 2, is %d", ErrConfiguration, n)
	}
	return nil
}

// FirstError returns the first non-nil error of a list of checks.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
