package gnarkfp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	bnfp "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	secpfp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	secpfr "github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/f3rmion/weier/curve"
	"github.com/f3rmion/weier/digest"
	"github.com/f3rmion/weier/group"
	"github.com/f3rmion/weier/ring"
)

const coordSize = 32

type config struct {
	hasher digest.Hasher
}

// Option configures a [Group].
type Option func(*config)

// WithHasher sets the hash used by HashToScalar. The default is SHA-256.
func WithHasher(h digest.Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}

// Group implements [group.Group] over gnark-crypto field elements.
type Group[E any, P element[E]] struct {
	name   string
	curve  curve.Curve[Element[E, P]]
	gen    curve.Point[Element[E, P]]
	order  ring.Int
	hasher digest.Hasher
}

func newGroup[E any, P element[E]](name string, b int64, gx, gy E, order *big.Int, opts []Option) (*Group[E, P], error) {
	cfg := config{hasher: digest.SHA256{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := curve.NewCurve(Element[E, P]{}, FromBig[E, P](big.NewInt(b)))
	gen, err := c.Point(Element[E, P]{v: gx}, Element[E, P]{v: gy})
	if err != nil {
		return nil, fmt.Errorf("gnarkfp: %s generator: %w", name, err)
	}
	return &Group[E, P]{
		name:   name,
		curve:  c,
		gen:    gen,
		order:  ring.IntFromBig(order),
		hasher: cfg.hasher,
	}, nil
}

// NewSecp256k1 returns secp256k1, y² = x³ + 7, with coordinates in
// gnark-crypto's Montgomery representation.
func NewSecp256k1(opts ...Option) (*Group[secpfp.Element, *secpfp.Element], error) {
	_, g := secp256k1.Generators()
	return newGroup[secpfp.Element, *secpfp.Element]("secp256k1-gnark", 7, g.X, g.Y, secpfr.Modulus(), opts)
}

// NewBN254 returns the G1 group of BN254, y² = x³ + 3, with generator
// (1, 2).
func NewBN254(opts ...Option) (*Group[bnfp.Element, *bnfp.Element], error) {
	_, _, g, _ := bn254.Generators()
	return newGroup[bnfp.Element, *bnfp.Element]("bn254", 3, g.X, g.Y, bnfr.Modulus(), opts)
}

// Name returns the group identifier.
func (g *Group[E, P]) Name() string { return g.name }

// Curve returns the curve of the group.
func (g *Group[E, P]) Curve() curve.Curve[Element[E, P]] { return g.curve }

// Generator returns the base point.
func (g *Group[E, P]) Generator() curve.Point[Element[E, P]] { return g.gen }

// Order returns the order of the base point.
func (g *Group[E, P]) Order() ring.Int { return g.order }

// RandomScalar returns a uniformly random scalar in [1, order).
func (g *Group[E, P]) RandomScalar(r io.Reader) (ring.Int, error) {
	return group.RandomScalar(r, g.order)
}

// HashToScalar hashes the concatenated data to a scalar in [0, order).
func (g *Group[E, P]) HashToScalar(data ...[]byte) (ring.Int, error) {
	return digest.ToScalar(g.hasher, g.order, data...)
}

// Abscissa returns the x coordinate of p.
func (g *Group[E, P]) Abscissa(p curve.Point[Element[E, P]]) (ring.Int, error) {
	x, _, ok := p.Coordinates()
	if !ok {
		return ring.Int{}, group.ErrInfinity
	}
	return x.Int(), nil
}

// Encode returns the SEC1 uncompressed encoding of p.
func (g *Group[E, P]) Encode(p curve.Point[Element[E, P]]) ([]byte, error) {
	if !g.curve.Has(p) {
		return nil, fmt.Errorf("gnarkfp: %w", curve.ErrCurveMismatch)
	}
	x, y, ok := p.Coordinates()
	if !ok {
		return group.EncodeUncompressed(ring.Int{}, ring.Int{}, coordSize, true), nil
	}
	return group.EncodeUncompressed(x.Int(), y.Int(), coordSize, false), nil
}

var (
	_ group.Group[Secp256k1Fp] = (*Group[secpfp.Element, *secpfp.Element])(nil)
	_ group.Group[BN254Fp]     = (*Group[bnfp.Element, *bnfp.Element])(nil)
)
