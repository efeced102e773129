package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/vec"
)

// ClosestApproach tracks the smallest surface-to-surface gap between any
// two bodies. Negative values mean the bodies overlapped.
type ClosestApproach struct {
	name    string
	min     float64
	a, b    string
	samples int
}

func NewClosestApproach() *ClosestApproach {
	return &ClosestApproach{name: "closest_approach", min: math.Inf(1)}
}

func (c *ClosestApproach) Name() string {
	return c.name
}

func (c *ClosestApproach) Observe(bodies []nbody.Celestial, t float64) {
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			gap := vec.Distance(bodies[i].Orbit.Position, bodies[j].Orbit.Position) - bodies[i].Radius - bodies[j].Radius
			if gap < c.min {
				c.min = gap
				c.a, c.b = bodies[i].Name, bodies[j].Name
			}
		}
	}
	c.samples++
}

func (c *ClosestApproach) Value() float64 {
	if c.samples == 0 || math.IsInf(c.min, 1) {
		return 0
	}
	return c.min
}

// Pair names the bodies of the closest approach.
func (c *ClosestApproach) Pair() (string, string) {
	return c.a, c.b
}

func (c *ClosestApproach) Reset() {
	c.min = math.Inf(1)
	c.a, c.b = "", ""
	c.samples = 0
}
