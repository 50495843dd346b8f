package group

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/weier/curve"
	"github.com/f3rmion/weier/ring"
)

// ErrInfinity is returned when an operation needs affine coordinates of the
// point at infinity.
var ErrInfinity = errors.New("group: point at infinity")

// Group is a prime-order subgroup of a short Weierstrass curve, generated
// by a fixed base point. It bundles the curve, its generator and order, and
// the glue signing schemes need: random scalars, hashing to scalars and a
// canonical point encoding.
//
// A Group implementation encapsulates all curve-specific details, allowing
// signing code to be generic over the coordinate type.
//
// Example usage:
//
//	g := secp256k1.New()
//	k, _ := g.RandomScalar(rand.Reader)
//	p, _ := g.Generator().ScalarMul(k)
type Group[T ring.Ring[T]] interface {
	// Name returns a short identifier such as "secp256k1".
	Name() string
	// Curve returns the curve the group lives on.
	Curve() curve.Curve[T]
	// Generator returns the group's base point.
	Generator() curve.Point[T]
	// Order returns the number of elements of the group.
	Order() ring.Int
	// RandomScalar returns a uniformly random scalar in [1, order).
	RandomScalar(r io.Reader) (ring.Int, error)
	// HashToScalar hashes the input data to a scalar in [0, order).
	HashToScalar(data ...[]byte) (ring.Int, error)
	// Abscissa returns the x coordinate of p as an integer.
	// Returns an error for the point at infinity.
	Abscissa(p curve.Point[T]) (ring.Int, error)
	// Encode returns the SEC1 uncompressed encoding of p.
	Encode(p curve.Point[T]) ([]byte, error)
}

// RandomScalar returns a uniformly random integer in [1, order) using the
// procedure of FIPS 186-4 B.5.1: read 64 extra bits, reduce modulo
// order-1 and add one.
func RandomScalar(r io.Reader, order ring.Int) (ring.Int, error) {
	if order.Cmp(ring.NewInt(2)) <= 0 {
		return ring.Int{}, fmt.Errorf("group: order %v too small", order)
	}
	buf := make([]byte, order.BitLen()/8+8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return ring.Int{}, err
	}
	n, err := order.Sub(order.One())
	if err != nil {
		return ring.Int{}, err
	}
	k, err := ring.IntFromBytes(buf).Rem(n)
	if err != nil {
		return ring.Int{}, err
	}
	return k.Add(k.One())
}

// EncodeUncompressed returns 0x04 || x || y with each coordinate padded to
// size bytes, or the single byte 0x00 when inf is set.
func EncodeUncompressed(x, y ring.Int, size int, inf bool) []byte {
	if inf {
		return []byte{0x00}
	}
	out := make([]byte, 1+2*size)
	out[0] = 0x04
	x.FillBytes(out[1 : 1+size])
	y.FillBytes(out[1+size:])
	return out
}
