// Package curve implements the group law of a short Weierstrass elliptic
// curve y² = x³ + ax + b, generic over the coordinate type.
//
// The coordinate type only needs the arithmetic of [ring.Ring]. It is
// usually a [field.Element], but raw integers such as [ring.Int64] work too,
// which is handy for textbook examples:
//
//	p, _ := curve.New(ring.Int64(2), ring.Int64(5), ring.Int64(5), ring.Int64(7))
//	q, _ := p.ScalarMul(ring.Int64(3)) // Point(2, -5)_5_7
//
// # Points
//
// A [Point] is a tagged union of two variants, [OnCurve] and [AtInfinity].
// The point at infinity is the group identity and carries no coordinates;
// every operation checks the tag before touching coordinates. Points are
// validated once, by [New] or [Curve.Point], and are immutable afterwards.
//
// Adding points with different (a, b) fails with [ErrCurveMismatch].
// A vertical chord or a vertical tangent (doubling a point with y = 0)
// yields the point at infinity; the doubling formula never divides by zero.
//
// Scalar multiplication is binary double-and-add, so multipliers the size
// of a curve order are practical. It is not constant time.
package curve
