package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/nbody"
)

const (
	DefaultSecondsPerStep = 1.0
	DefaultStepsPerFrame  = 60

	SecondsPerDay = 86_400.0
)

type Config struct {
	SecondsPerStep float64
	StepsPerFrame  int
	// Frames bounds Run; zero means RunWithCallback continues until stopped.
	Frames int
}

func DefaultConfig() Config {
	return Config{
		SecondsPerStep: DefaultSecondsPerStep,
		StepsPerFrame:  DefaultStepsPerFrame,
	}
}

func (c Config) Validate() error {
	if !(c.SecondsPerStep > 0) || math.IsInf(c.SecondsPerStep, 0) {
		return fmt.Errorf("%w: seconds per step must be positive, got %v", ErrInvalidConfig, c.SecondsPerStep)
	}
	if c.StepsPerFrame <= 0 {
		return fmt.Errorf("%w: steps per frame must be positive, got %d", ErrInvalidConfig, c.StepsPerFrame)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidConfig, c.Frames)
	}
	return nil
}

// DaysPerFrame is the simulated time covered by one frame, in days.
func (c Config) DaysPerFrame() float64 {
	return float64(c.StepsPerFrame) * c.SecondsPerStep / SecondsPerDay
}

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(bodies []nbody.Celestial, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every frame. bodies is only valid for the
// duration of the call.
type Observer interface {
	OnFrame(f FrameInfo, bodies []nbody.Celestial)
}

type FrameInfo struct {
	Frame  int
	Steps  int
	Time   float64
	Day    int
	Paused bool
}

type Result struct {
	Frames int
	Steps  int
	Time   float64

	InitialEnergy float64
	FinalEnergy   float64
	EnergyDrift   float64
	// Drift holds the relative energy drift after each frame.
	Drift []float64

	Metrics map[string]float64
	Bodies  []nbody.Celestial
}
