package sim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("sim: invalid configuration")
	ErrInvalidState  = errors.New("sim: invalid state (NaN or Inf detected)")
	ErrNoBodies      = errors.New("sim: no bodies to simulate")
)

// SimulationError wraps an error with the frame it occurred in.
type SimulationError struct {
	Frame   int
	Time    float64
	Body    string
	Wrapped error
}

func (e *SimulationError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%v: %s at frame %d (t=%.0fs)", e.Wrapped, e.Body, e.Frame, e.Time)
	}
	return fmt.Sprintf("%v at frame %d (t=%.0fs)", e.Wrapped, e.Frame, e.Time)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
