package secp256k1

import (
	"fmt"
	"io"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/f3rmion/weier/curve"
	"github.com/f3rmion/weier/digest"
	"github.com/f3rmion/weier/field"
	"github.com/f3rmion/weier/group"
	"github.com/f3rmion/weier/ring"
)

// coordSize is the byte length of an encoded coordinate.
const coordSize = 32

// Curve parameters, read once from the decred curve definition.
var (
	fieldPrime ring.Int
	curveOrder ring.Int
	s256       curve.Curve[field.Element[ring.Int]]
	generator  curve.Point[field.Element[ring.Int]]
)

func init() {
	params := decred.S256().Params()
	fieldPrime = ring.IntFromBig(params.P)
	curveOrder = ring.IntFromBig(params.N)

	a := mustElement(ring.Int{})
	b := mustElement(ring.IntFromBig(params.B))
	s256 = curve.NewCurve(a, b)

	var err error
	generator, err = s256.Point(mustElement(ring.IntFromBig(params.Gx)), mustElement(ring.IntFromBig(params.Gy)))
	if err != nil {
		panic(err)
	}
}

func mustElement(v ring.Int) field.Element[ring.Int] {
	e, err := Element(v)
	if err != nil {
		panic(err)
	}
	return e
}

// Element returns v as an element of the base field F_p.
// Returns an error if v is not in [0, p).
func Element(v ring.Int) (field.Element[ring.Int], error) {
	return field.New(v, fieldPrime)
}

// ScalarElement returns v as an element of the scalar field F_n.
// Returns an error if v is not in [0, n).
func ScalarElement(v ring.Int) (field.Element[ring.Int], error) {
	return field.New(v, curveOrder)
}

// Option configures a [Group].
type Option func(*Group)

// WithHasher sets the hash used by HashToScalar. The default is SHA-256.
func WithHasher(h digest.Hasher) Option {
	return func(g *Group) {
		g.hasher = h
	}
}

// Group implements [group.Group] for secp256k1 with coordinates in
// [field.Element] over [ring.Int].
//
// Create an instance with New.
type Group struct {
	hasher digest.Hasher
}

// New returns the secp256k1 group.
func New(opts ...Option) *Group {
	g := &Group{hasher: digest.SHA256{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns "secp256k1".
func (g *Group) Name() string { return "secp256k1" }

// Curve returns y² = x³ + 7 over F_p.
func (g *Group) Curve() curve.Curve[field.Element[ring.Int]] { return s256 }

// Generator returns the standard base point G.
func (g *Group) Generator() curve.Point[field.Element[ring.Int]] { return generator }

// Order returns n, the order of G.
func (g *Group) Order() ring.Int { return curveOrder }

// FieldPrime returns p, the modulus of the coordinate field.
func (g *Group) FieldPrime() ring.Int { return fieldPrime }

// RandomScalar returns a uniformly random scalar in [1, n).
func (g *Group) RandomScalar(r io.Reader) (ring.Int, error) {
	return group.RandomScalar(r, curveOrder)
}

// HashToScalar hashes the concatenated data with the configured hasher and
// reduces the digest into [0, n).
func (g *Group) HashToScalar(data ...[]byte) (ring.Int, error) {
	return digest.ToScalar(g.hasher, curveOrder, data...)
}

// Abscissa returns the x coordinate of p.
func (g *Group) Abscissa(p curve.Point[field.Element[ring.Int]]) (ring.Int, error) {
	x, _, ok := p.Coordinates()
	if !ok {
		return ring.Int{}, group.ErrInfinity
	}
	return x.Value(), nil
}

// Encode returns the 65-byte SEC1 uncompressed encoding of p, or 0x00 for
// the point at infinity.
// Returns an error if p is not a point of this curve.
func (g *Group) Encode(p curve.Point[field.Element[ring.Int]]) ([]byte, error) {
	if !s256.Has(p) {
		return nil, fmt.Errorf("secp256k1: %w", curve.ErrCurveMismatch)
	}
	x, y, ok := p.Coordinates()
	if !ok {
		return group.EncodeUncompressed(ring.Int{}, ring.Int{}, coordSize, true), nil
	}
	return group.EncodeUncompressed(x.Value(), y.Value(), coordSize, false), nil
}

// Decode parses a SEC1 encoding, compressed or uncompressed, into a point
// of the curve.
func (g *Group) Decode(data []byte) (curve.Point[field.Element[ring.Int]], error) {
	pub, err := decred.ParsePubKey(data)
	if err != nil {
		return curve.Point[field.Element[ring.Int]]{}, fmt.Errorf("secp256k1: %w", err)
	}
	x, err := Element(ring.IntFromBig(pub.X()))
	if err != nil {
		return curve.Point[field.Element[ring.Int]]{}, err
	}
	y, err := Element(ring.IntFromBig(pub.Y()))
	if err != nil {
		return curve.Point[field.Element[ring.Int]]{}, err
	}
	return s256.Point(x, y)
}

var _ group.Group[field.Element[ring.Int]] = (*Group)(nil)
