package curve

import (
	"errors"
	"fmt"

	"github.com/f3rmion/weier/ring"
)

var (
	// ErrPointNotOnCurve is returned when coordinates fail y² = x³ + ax + b.
	ErrPointNotOnCurve = errors.New("curve: point not on curve")
	// ErrCurveMismatch is returned when combining points of different curves.
	ErrCurveMismatch = errors.New("curve: points are not on the same curve")
	// ErrNegativeScalar is returned by ScalarMul for k < 0.
	ErrNegativeScalar = errors.New("curve: negative scalar")
)

// Kind tags the two variants of a [Point].
type Kind uint8

const (
	// AtInfinity is the group identity. It carries no coordinates.
	AtInfinity Kind = iota
	// OnCurve is an affine point (x, y) on y² = x³ + ax + b.
	OnCurve
)

func (k Kind) String() string {
	switch k {
	case AtInfinity:
		return "AtInfinity"
	case OnCurve:
		return "OnCurve"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Point is an element of the group of a short Weierstrass curve: either an
// affine point on the curve or the point at infinity. The zero value is the
// point at infinity.
//
// Coordinates are read only when the kind is OnCurve. Points are immutable;
// the group operations return new points.
type Point[T ring.Ring[T]] struct {
	kind       Kind
	x, y, a, b T
}

// New returns the point (x, y) on y² = x³ + ax + b.
// Returns an error if the coordinates do not satisfy the equation.
func New[T ring.Ring[T]](x, y, a, b T) (Point[T], error) {
	ok, err := satisfies(x, y, a, b)
	if err != nil {
		return Point[T]{}, err
	}
	if !ok {
		return Point[T]{}, fmt.Errorf("%w: (%v, %v) on a=%v b=%v", ErrPointNotOnCurve, x, y, a, b)
	}
	return Point[T]{kind: OnCurve, x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the point at infinity.
func Infinity[T ring.Ring[T]]() Point[T] {
	return Point[T]{kind: AtInfinity}
}

// Kind returns the variant of p.
func (p Point[T]) Kind() Kind { return p.kind }

// IsInfinity reports whether p is the point at infinity.
func (p Point[T]) IsInfinity() bool { return p.kind == AtInfinity }

// Coordinates returns the affine coordinates of p. ok is false for the
// point at infinity.
func (p Point[T]) Coordinates() (x, y T, ok bool) {
	if p.kind != OnCurve {
		return x, y, false
	}
	return p.x, p.y, true
}

// Coefficients returns the a and b of the curve p lies on. ok is false for
// the point at infinity, which belongs to every curve.
func (p Point[T]) Coefficients() (a, b T, ok bool) {
	if p.kind != OnCurve {
		return a, b, false
	}
	return p.a, p.b, true
}

// Equal reports whether p and q are the same point on the same curve.
func (p Point[T]) Equal(q Point[T]) bool {
	if p.kind != q.kind {
		return false
	}
	if p.kind == AtInfinity {
		return true
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y) && p.a.Equal(q.a) && p.b.Equal(q.b)
}

// Add returns p + q under the chord-tangent law.
// Returns an error if p and q lie on different curves or the coordinate
// arithmetic fails.
func (p Point[T]) Add(q Point[T]) (Point[T], error) {
	switch {
	case p.kind == AtInfinity:
		return q, nil
	case q.kind == AtInfinity:
		return p, nil
	}
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return Point[T]{}, ErrCurveMismatch
	}

	if p.x.Equal(q.x) {
		// Vertical chord, or vertical tangent at y = 0.
		if !p.y.Equal(q.y) || p.y.IsZero() {
			return Infinity[T](), nil
		}
		s, err := p.tangent()
		if err != nil {
			return Point[T]{}, fmt.Errorf("curve: doubling: %w", err)
		}
		return p.third(s, q.x)
	}

	s, err := chord(p, q)
	if err != nil {
		return Point[T]{}, fmt.Errorf("curve: addition: %w", err)
	}
	return p.third(s, q.x)
}

// Double returns p + p.
func (p Point[T]) Double() (Point[T], error) {
	return p.Add(p)
}

// Neg returns -p, the reflection of p across the x axis.
func (p Point[T]) Neg() (Point[T], error) {
	if p.kind == AtInfinity {
		return p, nil
	}
	zero, err := p.y.Sub(p.y)
	if err != nil {
		return Point[T]{}, err
	}
	y, err := zero.Sub(p.y)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{kind: OnCurve, x: p.x, y: y, a: p.a, b: p.b}, nil
}

// Sub returns p - q.
func (p Point[T]) Sub(q Point[T]) (Point[T], error) {
	nq, err := q.Neg()
	if err != nil {
		return Point[T]{}, err
	}
	return p.Add(nq)
}

// ScalarMul returns k·p by binary double-and-add, using O(log k) group
// operations. A zero k yields the point at infinity.
// Returns an error if k is negative.
func (p Point[T]) ScalarMul(k ring.Scalar) (Point[T], error) {
	if k.Sign() < 0 {
		return Point[T]{}, ErrNegativeScalar
	}
	result := Infinity[T]()
	addend := p
	n := k.BitLen()
	for i := 0; i < n; i++ {
		var err error
		if k.Bit(i) == 1 {
			if result, err = result.Add(addend); err != nil {
				return Point[T]{}, err
			}
		}
		if i == n-1 {
			break
		}
		if addend, err = addend.Double(); err != nil {
			return Point[T]{}, err
		}
	}
	return result, nil
}

func (p Point[T]) String() string {
	if p.kind == AtInfinity {
		return "Point(Infinity)"
	}
	return fmt.Sprintf("Point(%v, %v)_%v_%v", p.x, p.y, p.a, p.b)
}

// tangent returns (3x² + a) / 2y.
func (p Point[T]) tangent() (T, error) {
	var zero T
	x2, err := p.x.Mul(p.x)
	if err != nil {
		return zero, err
	}
	num, err := triple(x2)
	if err != nil {
		return zero, err
	}
	if num, err = num.Add(p.a); err != nil {
		return zero, err
	}
	den, err := p.y.Add(p.y)
	if err != nil {
		return zero, err
	}
	return num.Div(den)
}

// chord returns (y1 - y0) / (x1 - x0).
func chord[T ring.Ring[T]](p, q Point[T]) (T, error) {
	var zero T
	dy, err := q.y.Sub(p.y)
	if err != nil {
		return zero, err
	}
	dx, err := q.x.Sub(p.x)
	if err != nil {
		return zero, err
	}
	return dy.Div(dx)
}

// third returns the point x2 = s² - x0 - x1, y2 = s(x0 - x2) - y0 on the
// curve of p, for slope s through p and a point with abscissa x1.
func (p Point[T]) third(s, x1 T) (Point[T], error) {
	x2, err := s.Mul(s)
	if err != nil {
		return Point[T]{}, err
	}
	if x2, err = x2.Sub(p.x); err != nil {
		return Point[T]{}, err
	}
	if x2, err = x2.Sub(x1); err != nil {
		return Point[T]{}, err
	}
	y2, err := p.x.Sub(x2)
	if err != nil {
		return Point[T]{}, err
	}
	if y2, err = s.Mul(y2); err != nil {
		return Point[T]{}, err
	}
	if y2, err = y2.Sub(p.y); err != nil {
		return Point[T]{}, err
	}
	return Point[T]{kind: OnCurve, x: x2, y: y2, a: p.a, b: p.b}, nil
}

func triple[T ring.Ring[T]](v T) (T, error) {
	d, err := v.Add(v)
	if err != nil {
		return d, err
	}
	return d.Add(v)
}

// satisfies evaluates y² == x³ + ax + b.
func satisfies[T ring.Ring[T]](x, y, a, b T) (bool, error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return false, err
	}
	rhs, err := x.Mul(x)
	if err != nil {
		return false, err
	}
	if rhs, err = rhs.Add(a); err != nil {
		return false, err
	}
	if rhs, err = rhs.Mul(x); err != nil {
		return false, err
	}
	if rhs, err = rhs.Add(b); err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}
