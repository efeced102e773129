package vec

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrDegenerateVector is returned when a zero-length vector is scaled to a magnitude.
var ErrDegenerateVector = errors.New("vec: cannot scale zero-length vector")

type Number interface {
	constraints.Integer | constraints.Float
}

// Vec3 is a value type; copies are independent.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Vector is the float64 instantiation used for dynamical state.
type Vector = Vec3[float64]

var Zero = Vector{}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// ScaleBy returns k·v.
func (v Vec3[T]) ScaleBy(k T) Vec3[T] {
	return Vec3[T]{v.X * k, v.Y * k, v.Z * k}
}

// Distance returns the Euclidean distance between a and b.
func Distance[T constraints.Float](a, b Vec3[T]) T {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return T(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

func Magnitude[T constraints.Float](v Vec3[T]) T {
	return Distance(v, Vec3[T]{})
}

// ScaleTo returns v rescaled to magnitude m, keeping its direction. A
// negative m flips the direction. A zero vector yields the zero vector and
// ErrDegenerateVector.
func ScaleTo[T constraints.Float](v Vec3[T], m T) (Vec3[T], error) {
	mag := Magnitude(v)
	if mag == 0 {
		return Vec3[T]{}, ErrDegenerateVector
	}
	return v.ScaleBy(m / mag), nil
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite[T constraints.Float](v Vec3[T]) bool {
	for _, c := range [3]float64{float64(v.X), float64(v.Y), float64(v.Z)} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
