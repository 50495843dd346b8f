package curve

import (
	"fmt"

	"github.com/f3rmion/weier/ring"
)

// Curve describes y² = x³ + ax + b over the coordinate type T.
type Curve[T ring.Ring[T]] struct {
	a, b T
}

// NewCurve returns the curve with coefficients a and b.
func NewCurve[T ring.Ring[T]](a, b T) Curve[T] {
	return Curve[T]{a: a, b: b}
}

// Coefficients returns a and b.
func (c Curve[T]) Coefficients() (a, b T) { return c.a, c.b }

// Point returns (x, y) as a point of c.
// Returns an error if (x, y) is not on c.
func (c Curve[T]) Point(x, y T) (Point[T], error) {
	return New(x, y, c.a, c.b)
}

// Infinity returns the identity of the curve group.
func (c Curve[T]) Infinity() Point[T] { return Infinity[T]() }

// Contains reports whether (x, y) lies on c. Coordinates the curve's
// arithmetic rejects are reported as not on the curve.
func (c Curve[T]) Contains(x, y T) bool {
	ok, err := satisfies(x, y, c.a, c.b)
	return err == nil && ok
}

// Has reports whether p is the identity or an affine point of c.
func (c Curve[T]) Has(p Point[T]) bool {
	if p.IsInfinity() {
		return true
	}
	return p.a.Equal(c.a) && p.b.Equal(c.b)
}

func (c Curve[T]) String() string {
	return fmt.Sprintf("y^2 = x^3 + %v*x + %v", c.a, c.b)
}
