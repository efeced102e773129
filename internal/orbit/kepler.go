package orbit

import (
	"math"
)

const (
	// Tolerance is the residual threshold of the Kepler solve.
	Tolerance = 1e-30

	// MaxIterations bounds the Newton-Raphson loop.
	MaxIterations = 100

	// highEccentricity switches the initial guess from M to pi.
	highEccentricity = 0.8
)

// Elements are classical Keplerian elements. Inclination, argument of
// periapsis and longitude of ascending node are in degrees; the mean
// anomaly is in radians.
type Elements struct {
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64
	ArgumentOfPeriapsis      float64
	LongitudeOfAscendingNode float64
	MeanAnomaly              float64
}

func (el Elements) validate(gm float64) error {
	switch {
	case !(gm > 0) || math.IsInf(gm, 0):
		return ErrInvalidElements
	case !(el.SemiMajorAxis > 0) || math.IsInf(el.SemiMajorAxis, 0):
		return ErrInvalidElements
	case !(el.Eccentricity >= 0 && el.Eccentricity < 1):
		return ErrInvalidElements
	}
	for _, a := range []float64{el.Inclination, el.ArgumentOfPeriapsis, el.LongitudeOfAscendingNode} {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return ErrInvalidElements
		}
	}
	return nil
}

// EccentricAnomaly solves M = E - e·sin(E) by Newton-Raphson.
//
// Each iteration applies the update and then stops if the residual
// computed before that update is below Tolerance. The comparison is
// signed, so a negative residual also ends the loop. A residual that
// settles one ulp above zero never passes the test, so some valid bound
// orbits (M=0.34, e=0.81 for one) run out of MaxIterations and return a
// *ConvergenceError.
func EccentricAnomaly(ma, ecc float64) (float64, error) {
	ea := ma
	if ecc > highEccentricity {
		ea = math.Pi
	}

	var f float64
	for i := 0; i < MaxIterations; i++ {
		f = ea - ecc*math.Sin(ea) - ma
		ea = ea - f/(1.0-ecc*math.Cos(ea))

		if f < Tolerance {
			return ea, nil
		}
	}

	return 0, &ConvergenceError{
		MeanAnomaly:  ma,
		Eccentricity: ecc,
		Iterations:   MaxIterations,
		Residual:     f,
	}
}

// TrueAnomaly converts a mean anomaly to the true anomaly (radians).
func TrueAnomaly(ma, ecc float64) (float64, error) {
	ea, err := EccentricAnomaly(ma, ecc)
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Atan(math.Sqrt((1.0+ecc)/(1.0-ecc))*math.Tan(ea/2.0)), nil
}

// FromKeplerian returns the state of a body on the given bound orbit
// around a parent with gravitational parameter gm, in the parent's
// inertial frame.
func FromKeplerian(gm float64, el Elements) (StateVectors, error) {
	if err := el.validate(gm); err != nil {
		return StateVectors{}, err
	}

	ecc := el.Eccentricity
	p := el.SemiMajorAxis * (1.0 - ecc*ecc)

	ta, err := TrueAnomaly(el.MeanAnomaly, ecc)
	if err != nil {
		return StateVectors{}, err
	}
	radius := p / (1.0 + ecc*math.Cos(ta))

	inc := radians(el.Inclination)
	aop := radians(el.ArgumentOfPeriapsis)
	lan := radians(el.LongitudeOfAscendingNode)

	sinAopTa, cosAopTa := math.Sincos(aop + ta)
	sinInc, cosInc := math.Sincos(inc)
	sinLan, cosLan := math.Sincos(lan)
	sinAop, cosAop := math.Sincos(aop)

	var s StateVectors
	s.Position.X = radius * (cosAopTa*cosLan - cosInc*sinAopTa*sinLan)
	s.Position.Y = radius * (cosAopTa*sinLan + cosInc*sinAopTa*cosLan)
	s.Position.Z = radius * sinAopTa * sinInc

	sqrtGmP := math.Sqrt(gm / p)
	cosTaEcc := math.Cos(ta) + ecc
	sinTa := math.Sin(ta)

	s.Velocity.X = sqrtGmP*cosTaEcc*(-sinAop*cosLan-cosInc*sinLan*cosAop) - sqrtGmP*sinTa*(cosAop*cosLan-cosInc*sinLan*sinAop)
	s.Velocity.Y = sqrtGmP*cosTaEcc*(-sinAop*sinLan+cosInc*cosLan*cosAop) - sqrtGmP*sinTa*(cosAop*sinLan+cosInc*cosLan*sinAop)
	s.Velocity.Z = sqrtGmP * (cosTaEcc*sinInc*cosAop - sinTa*sinInc*sinAop)

	if !s.IsFinite() {
		return StateVectors{}, ErrInvalidElements
	}
	return s, nil
}

// Period returns the orbital period in seconds.
func Period(gm, sma float64) float64 {
	return 2 * math.Pi * math.Sqrt(sma*sma*sma/gm)
}

// VisViva returns the orbital speed at distance r.
func VisViva(gm, sma, r float64) float64 {
	return math.Sqrt(gm * (2/r - 1/sma))
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
