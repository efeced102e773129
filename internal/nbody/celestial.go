package nbody

import (
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/vec"
)

// G is the gravitational constant in m³/(kg·s²).
const G = 6.674e-11

type Celestial struct {
	Name   string
	Color  vec.Vec3[float32] // RGB in [0, 1], display only
	Mass   float64
	Radius float64
	Orbit  orbit.StateVectors
}

// Clone returns a copy of bodies that shares no storage with it.
func Clone(bodies []Celestial) []Celestial {
	c := make([]Celestial, len(bodies))
	copy(c, bodies)
	return c
}

// Index returns the position of the body called name, or -1.
func Index(bodies []Celestial, name string) int {
	for i := range bodies {
		if bodies[i].Name == name {
			return i
		}
	}
	return -1
}
