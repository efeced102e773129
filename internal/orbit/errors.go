package orbit

import (
	"errors"
	"fmt"
)

var (
	// ErrConvergence indicates Kepler's equation was not solved within MaxIterations.
	ErrConvergence = errors.New("orbit: kepler solve did not converge")

	// ErrInvalidElements indicates an element set outside the bound-orbit domain.
	ErrInvalidElements = errors.New("orbit: invalid orbital elements")
)

// ConvergenceError carries the inputs and last residual of a failed Kepler solve.
type ConvergenceError struct {
	MeanAnomaly  float64
	Eccentricity float64
	Iterations   int
	Residual     float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v (M=%g, e=%g, %d iterations, residual %g)",
		ErrConvergence, e.MeanAnomaly, e.Eccentricity, e.Iterations, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergence
}
