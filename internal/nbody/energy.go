package nbody

import (
	"github.com/san-kum/orbitsim/internal/vec"
)

func KineticEnergy(bodies []Celestial) float64 {
	ke := 0.0
	for i := range bodies {
		v := vec.Magnitude(bodies[i].Orbit.Velocity)
		ke += 0.5 * bodies[i].Mass * v * v
	}
	return ke
}

// PotentialEnergy sums -g·mi·mj/r over all pairs. Coincident pairs are skipped.
func PotentialEnergy(bodies []Celestial, g float64) float64 {
	pe := 0.0
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			r := vec.Distance(bodies[i].Orbit.Position, bodies[j].Orbit.Position)
			if r == 0 {
				continue
			}
			pe -= g * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return pe
}

func TotalEnergy(bodies []Celestial, g float64) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies, g)
}

// Momentum returns the total linear momentum.
func Momentum(bodies []Celestial) vec.Vector {
	var p vec.Vector
	for i := range bodies {
		p = p.Add(bodies[i].Orbit.Velocity.ScaleBy(bodies[i].Mass))
	}
	return p
}

// Barycenter returns the mass-weighted mean position.
func Barycenter(bodies []Celestial) vec.Vector {
	var c vec.Vector
	total := 0.0
	for i := range bodies {
		c = c.Add(bodies[i].Orbit.Position.ScaleBy(bodies[i].Mass))
		total += bodies[i].Mass
	}
	if total == 0 {
		return vec.Zero
	}
	return c.ScaleBy(1 / total)
}
