// Package system builds ordered body collections from static element tables.
//
// Rows are consumed strictly in order. A child's elements are converted
// with the gravitational parameter of its already-built parent and the
// resulting parent-relative state is composed with the parent's absolute
// state:
//
//	bodies, err := system.Default()
//	in := nbody.NewIntegrator(nil)
//	in.Step(bodies, 1.0)
package system
