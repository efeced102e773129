package viz

import (
	"math"

	"github.com/san-kum/orbitsim/internal/nbody"
)

// Plane selects which two axes are drawn.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
)

func (p Plane) String() string {
	if p == PlaneXZ {
		return "x-z"
	}
	return "x-y"
}

// Scene describes how bodies are projected onto a canvas.
type Scene struct {
	Focus     int
	Scale     float64 // dots per metre
	Highlight bool
	Plane     Plane
}

const (
	// ZoomFactor is applied once per zoom notch.
	ZoomFactor = 1.1

	// highlightRadius is the ring radius, in dots, around bodies smaller than one dot.
	highlightRadius = 3

	maxOffset = 1 << 20
)

// Project returns the canvas dot of position p relative to the focus.
// ok is false when the point is too far away to address.
func (s Scene) Project(c *Canvas, bodies []nbody.Celestial, i int) (x, y int, ok bool) {
	f := bodies[s.Focus].Orbit.Position
	p := bodies[i].Orbit.Position.Sub(f)

	u, v := p.X, p.Y
	if s.Plane == PlaneXZ {
		v = p.Z
	}

	du, dv := u*s.Scale, v*s.Scale
	if math.IsNaN(du) || math.IsNaN(dv) || math.Abs(du) > maxOffset || math.Abs(dv) > maxOffset {
		return 0, 0, false
	}

	cw, ch := c.Dots()
	return cw/2 + int(math.Round(du)), ch/2 - int(math.Round(dv)), true
}

// Draw clears c and draws every body in slice order.
func (s Scene) Draw(c *Canvas, bodies []nbody.Celestial) {
	c.Clear()
	if len(bodies) == 0 {
		return
	}

	for i := range bodies {
		x, y, ok := s.Project(c, bodies, i)
		if !ok {
			continue
		}

		color := BodyColor(bodies[i].Color)
		diameter := 2 * bodies[i].Radius * s.Scale

		if r := int(diameter / 2); r >= 1 {
			c.Disk(x, y, r, color)
		} else {
			c.SetColor(x, y, color)
		}

		if s.Highlight && diameter < 1 {
			c.Ring(x, y, highlightRadius, color)
		}
	}
}

// NextFocus returns the focus after moving by delta, wrapping at both ends.
func NextFocus(focus, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((focus+delta)%n + n) % n
}
