// Package vec provides a small generic 3-component vector.
//
// [Vec3] is parameterized over any integer or floating-point component
// type. Arithmetic that needs a square root ([Distance], [Magnitude],
// [ScaleTo]) is only defined for floating-point instantiations.
//
// # Zero vectors
//
// [ScaleTo] cannot preserve the direction of a zero-length vector. It
// returns [Zero]-valued output together with [ErrDegenerateVector] instead
// of producing NaN components.
package vec
