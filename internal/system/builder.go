package system

import (
	"errors"
	"fmt"

	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/vec"
)

var (
	ErrUnknownParent = errors.New("system: parent not built before child")
	ErrDuplicateBody = errors.New("system: duplicate body name")
	ErrInvalidBody   = errors.New("system: mass must be positive and radius non-negative")
)

// Row describes one body. A row with an empty Parent is a root fixed at
// the origin at rest; its Elements are ignored.
type Row struct {
	Name     string
	Parent   string
	Color    vec.Vec3[float32]
	Mass     float64
	Radius   float64
	Elements orbit.Elements
}

// BodyError reports which row stopped a build.
type BodyError struct {
	Index int
	Name  string
	Err   error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("system: body %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// Build constructs bodies in row order. On error it returns the bodies
// built before the failing row, unchanged, together with a *BodyError.
func Build(rows []Row) ([]nbody.Celestial, error) {
	bodies := make([]nbody.Celestial, 0, len(rows))
	index := make(map[string]int, len(rows))

	for i, row := range rows {
		b, err := buildOne(row, bodies, index)
		if err != nil {
			return bodies, &BodyError{Index: i, Name: row.Name, Err: err}
		}
		index[row.Name] = len(bodies)
		bodies = append(bodies, b)
	}

	return bodies, nil
}

func buildOne(row Row, built []nbody.Celestial, index map[string]int) (nbody.Celestial, error) {
	if _, dup := index[row.Name]; dup {
		return nbody.Celestial{}, ErrDuplicateBody
	}
	if !(row.Mass > 0) || !(row.Radius >= 0) {
		return nbody.Celestial{}, ErrInvalidBody
	}

	b := nbody.Celestial{
		Name:   row.Name,
		Color:  row.Color,
		Mass:   row.Mass,
		Radius: row.Radius,
	}
	if row.Parent == "" {
		return b, nil
	}

	pi, ok := index[row.Parent]
	if !ok {
		return nbody.Celestial{}, fmt.Errorf("%w: %q", ErrUnknownParent, row.Parent)
	}
	parent := built[pi]

	rel, err := orbit.FromKeplerian(nbody.G*parent.Mass, row.Elements)
	if err != nil {
		return nbody.Celestial{}, err
	}
	b.Orbit = rel.RelativeTo(parent.Orbit)

	return b, nil
}

// Default builds the Kerbolar system.
func Default() ([]nbody.Celestial, error) {
	return Build(Kerbolar())
}
