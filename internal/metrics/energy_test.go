package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/vec"
)

func pair() []nbody.Celestial {
	return []nbody.Celestial{
		{Name: "A", Mass: 1e10, Radius: 1, Orbit: orbit.StateVectors{Position: vec.Vector{X: -50}, Velocity: vec.Vector{Y: -0.05}}},
		{Name: "B", Mass: 1e10, Radius: 1, Orbit: orbit.StateVectors{Position: vec.Vector{X: 50}, Velocity: vec.Vector{Y: 0.05}}},
	}
}

func TestEnergyValue(t *testing.T) {
	bodies := pair()
	m := NewEnergy(nbody.G)

	m.Observe(bodies, 0)

	ke := 2 * 0.5 * 1e10 * 0.05 * 0.05
	pe := -nbody.G * 1e10 * 1e10 / 100
	expected := ke + pe

	if math.Abs(m.Value()-expected) > 1e-9*math.Abs(expected) {
		t.Errorf("expected energy %g, got %g", expected, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	bodies := pair()
	m := NewEnergyDrift(nbody.G)

	m.Observe(bodies, 0)
	if m.Value() != 0 {
		t.Errorf("expected zero drift on first sample, got %g", m.Value())
	}

	e0 := nbody.TotalEnergy(bodies, nbody.G)
	bodies[0].Orbit.Velocity = vec.Vector{Y: -0.1}
	e1 := nbody.TotalEnergy(bodies, nbody.G)
	m.Observe(bodies, 1)

	want := math.Abs(e1-e0) / math.Abs(e0)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected drift %g, got %g", want, m.Value())
	}

	// Returning to the initial energy keeps the maximum.
	bodies[0].Orbit.Velocity = vec.Vector{Y: -0.05}
	m.Observe(bodies, 2)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("max drift lost: %g", m.Value())
	}
	if m.Current() > 1e-12 {
		t.Errorf("current drift: %g", m.Current())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyDriftTwoBody(t *testing.T) {
	bodies := pair()
	m := NewEnergyDrift(nbody.G)
	in := nbody.NewIntegrator(nil)

	for i := 0; i < 1000; i++ {
		m.Observe(bodies, float64(i))
		in.Step(bodies, 1.0)
	}

	if m.Value() > 0.05 {
		t.Errorf("energy drift too large: %g", m.Value())
	}
}

// Pairwise impulses are equal and opposite, so momentum is conserved to rounding.
func TestMomentumDrift(t *testing.T) {
	bodies := pair()
	m := NewMomentumDrift()
	in := nbody.NewIntegrator(nil)

	for i := 0; i < 500; i++ {
		m.Observe(bodies, float64(i))
		in.Step(bodies, 1.0)
	}

	if m.Value() > 1e-9 {
		t.Errorf("momentum drift: %g", m.Value())
	}

	bodies[0].Orbit.Velocity = bodies[0].Orbit.Velocity.Add(vec.Vector{X: 1})
	m.Observe(bodies, 500)
	if m.Value() < 1 {
		t.Errorf("expected large drift after a kick, got %g", m.Value())
	}
}

func TestBound(t *testing.T) {
	bodies := pair()
	m := NewBound(100)

	if m.Value() != 1.0 {
		t.Errorf("expected 1 before samples, got %g", m.Value())
	}

	m.Observe(bodies, 0)
	bodies[1].Orbit.Position = vec.Vector{X: 1000}
	m.Observe(bodies, 1)

	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %g", m.Value())
	}
}

func TestClosestApproach(t *testing.T) {
	bodies := pair()
	m := NewClosestApproach()

	if m.Value() != 0 {
		t.Errorf("expected 0 before samples, got %g", m.Value())
	}

	m.Observe(bodies, 0)
	if m.Value() != 98 {
		t.Errorf("expected gap 98, got %g", m.Value())
	}

	bodies[1].Orbit.Position = vec.Vector{X: -49}
	m.Observe(bodies, 1)
	bodies[1].Orbit.Position = vec.Vector{X: 50}
	m.Observe(bodies, 2)

	if m.Value() != -1 {
		t.Errorf("expected overlap -1, got %g", m.Value())
	}
	if a, b := m.Pair(); a != "A" || b != "B" {
		t.Errorf("pair: %s %s", a, b)
	}
}
