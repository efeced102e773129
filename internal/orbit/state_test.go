package orbit

import (
	"testing"

	"github.com/san-kum/orbitsim/internal/vec"
)

func TestRelativeTo(t *testing.T) {
	child := StateVectors{Position: vec.Vector{X: 1, Y: 2, Z: 3}, Velocity: vec.Vector{X: -1, Y: 0, Z: 1}}
	parent := StateVectors{Position: vec.Vector{X: 10, Y: 20, Z: 30}, Velocity: vec.Vector{X: 5, Y: 5, Z: 5}}

	got := child.RelativeTo(parent)
	want := StateVectors{Position: vec.Vector{X: 11, Y: 22, Z: 33}, Velocity: vec.Vector{X: 4, Y: 5, Z: 6}}
	if got != want {
		t.Errorf("RelativeTo = %+v, want %+v", got, want)
	}
}

func TestRelativeToAssociative(t *testing.T) {
	grandparent := StateVectors{Position: vec.Vector{X: 1.3e10, Y: -2.1e9, Z: 4e7}, Velocity: vec.Vector{X: 1200.5, Y: 9100.25, Z: -3.5}}
	parent := StateVectors{Position: vec.Vector{X: 1.2e7, Y: 3.3e6, Z: -1e5}, Velocity: vec.Vector{X: -540.125, Y: 310.75, Z: 12}}
	child := StateVectors{Position: vec.Vector{X: 2.5e5, Y: -7e4, Z: 1e3}, Velocity: vec.Vector{X: 80.5, Y: -12.25, Z: 1}}

	stepwise := child.RelativeTo(parent).RelativeTo(grandparent)
	direct := child.RelativeTo(parent.RelativeTo(grandparent))

	if d := vec.Distance(stepwise.Position, direct.Position); d > 1e-6 {
		t.Errorf("positions differ by %v", d)
	}
	if d := vec.Distance(stepwise.Velocity, direct.Velocity); d > 1e-9 {
		t.Errorf("velocities differ by %v", d)
	}

	offsets := StateVectors{
		Position: child.Position.Add(parent.Position),
		Velocity: child.Velocity.Add(parent.Velocity),
	}
	summed := offsets.RelativeTo(grandparent)
	if d := vec.Distance(stepwise.Position, summed.Position); d > 1e-6 {
		t.Errorf("summed offsets differ by %v", d)
	}
}
