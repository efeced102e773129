package nbody

import "github.com/san-kum/orbitsim/internal/vec"

// Collision is reported when two bodies come closer than the sum of their radii.
type Collision struct {
	I, J     int
	A, B     string
	Distance float64
}

// Singularity is reported when a pair's impulse cannot be computed.
type Singularity struct {
	I, J     int
	A, B     string
	Distance float64
}

type Reporter interface {
	OnCollision(c Collision)
	OnSingularity(s Singularity)
}

type pair struct{ i, j int }

type Integrator struct {
	G        float64
	reporter Reporter
	contacts map[pair]bool
	steps    int
}

// NewIntegrator returns an integrator using G. reporter may be nil.
func NewIntegrator(reporter Reporter) *Integrator {
	return &Integrator{
		G:        G,
		reporter: reporter,
		contacts: make(map[pair]bool),
	}
}

// Steps returns the number of Step calls made so far.
func (in *Integrator) Steps() int { return in.steps }

// Step advances bodies by dt seconds in place.
func (in *Integrator) Step(bodies []Celestial, dt float64) {
	n := len(bodies)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bi, bj := &bodies[i], &bodies[j]

			distance := vec.Distance(bi.Orbit.Position, bj.Orbit.Position)
			impulse := dt * (in.G * bi.Mass * bj.Mass) / (distance * distance)
			direction := bi.Orbit.Position.Sub(bj.Orbit.Position)

			in.checkContact(bodies, i, j, distance)

			dvi, erri := vec.ScaleTo(direction, impulse/bi.Mass)
			dvj, errj := vec.ScaleTo(direction, impulse/bj.Mass)
			if erri != nil || errj != nil || !vec.IsFinite(dvi) || !vec.IsFinite(dvj) {
				in.report(Singularity{I: i, J: j, A: bi.Name, B: bj.Name, Distance: distance})
				continue
			}

			bi.Orbit.Velocity = bi.Orbit.Velocity.Sub(dvi)
			bj.Orbit.Velocity = bj.Orbit.Velocity.Add(dvj)
		}

		b := &bodies[i]
		b.Orbit.Position = b.Orbit.Position.Add(b.Orbit.Velocity.ScaleBy(dt))
	}

	in.steps++
}

func (in *Integrator) checkContact(bodies []Celestial, i, j int, distance float64) {
	key := pair{i, j}
	touching := distance < bodies[i].Radius+bodies[j].Radius

	if !touching {
		if in.contacts[key] {
			delete(in.contacts, key)
		}
		return
	}
	if in.contacts[key] {
		return
	}

	if in.contacts == nil {
		in.contacts = make(map[pair]bool)
	}
	in.contacts[key] = true
	if in.reporter != nil {
		in.reporter.OnCollision(Collision{I: i, J: j, A: bodies[i].Name, B: bodies[j].Name, Distance: distance})
	}
}

func (in *Integrator) report(s Singularity) {
	if in.reporter != nil {
		in.reporter.OnSingularity(s)
	}
}
