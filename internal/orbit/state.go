// Package orbit converts classical orbital elements into Cartesian state
// vectors in a parent-centred inertial frame.
package orbit

import "github.com/san-kum/orbitsim/internal/vec"

// StateVectors is the dynamical state of one body at one instant.
type StateVectors struct {
	Position vec.Vector
	Velocity vec.Vector
}

// RelativeTo adds parent's absolute state to s. The result no longer
// depends on the parent frame.
func (s StateVectors) RelativeTo(parent StateVectors) StateVectors {
	return StateVectors{
		Position: s.Position.Add(parent.Position),
		Velocity: s.Velocity.Add(parent.Velocity),
	}
}

func (s StateVectors) IsFinite() bool {
	return vec.IsFinite(s.Position) && vec.IsFinite(s.Velocity)
}
