// Package calcerr holds the error kinds shared by the beam calculators.
// Calculators wrap one of the sentinels with field context; callers match
// with errors.Is.
package calcerr

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrInvalidLoad     = errors.New("invalid load")
	ErrInvalidSampling = errors.New("invalid sampling")
)

// Kind returns a short machine-readable name for err, or "" if err is not a
// calculation error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidGeometry):
		return "invalid_geometry"
	case errors.Is(err, ErrInvalidLoad):
		return "invalid_load"
	case errors.Is(err, ErrInvalidSampling):
		return "invalid_sampling"
	default:
		return ""
	}
}

// Positive rejects zero, negative and non-finite values with ErrInvalidGeometry.
func Positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidGeometry, name, v)
	}
	return nil
}

// NonNegativeLoad rejects negative and non-finite values with ErrInvalidLoad.
func NonNegativeLoad(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidLoad, name, v)
	}
	return nil
}
