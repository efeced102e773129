package metrics

import (
	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Bound is the fraction of frames in which every body stayed within
// threshold metres of the barycenter.
type Bound struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewBound(threshold float64) *Bound {
	return &Bound{
		name:      "bound",
		threshold: threshold,
	}
}

func (b *Bound) Name() string {
	return b.name
}

func (b *Bound) Observe(bodies []nbody.Celestial, t float64) {
	b.samples++
	c := nbody.Barycenter(bodies)
	for i := range bodies {
		if vec.Distance(bodies[i].Orbit.Position, c) > b.threshold {
			b.violations++
			break
		}
	}
}

func (b *Bound) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bound) Reset() {
	b.violations = 0
	b.samples = 0
}
