package schnorr

import (
	"errors"
	"io"

	"github.com/f3rmion/weier/curve"
	"github.com/f3rmion/weier/field"
	"github.com/f3rmion/weier/group"
	"github.com/f3rmion/weier/ring"
)

// ErrInvalidKey is returned for a secret outside [1, n).
var ErrInvalidKey = errors.New("schnorr: invalid private key")

// Signature is a Schnorr signature (R, z).
type Signature[T ring.Ring[T]] struct {
	R curve.Point[T]
	Z ring.Int
}

// Sign signs msg with the secret d. The public key is recomputed from d.
//
//	R = k·G
//	c = H(R, Y, msg)
//	z = k + c·d mod n
func Sign[T ring.Ring[T]](r io.Reader, g group.Group[T], d ring.Int, msg []byte) (*Signature[T], error) {
	n := g.Order()
	if d.Sign() <= 0 || d.Cmp(n) >= 0 {
		return nil, ErrInvalidKey
	}
	pub, err := g.Generator().ScalarMul(d)
	if err != nil {
		return nil, err
	}

	k, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	R, err := g.Generator().ScalarMul(k)
	if err != nil {
		return nil, err
	}

	c, err := challenge(g, R, pub, msg)
	if err != nil {
		return nil, err
	}

	kf, err := field.New(k, n)
	if err != nil {
		return nil, err
	}
	cf, err := field.New(c, n)
	if err != nil {
		return nil, err
	}
	df, err := field.New(d, n)
	if err != nil {
		return nil, err
	}

	// z = k + c·d
	cd, err := cf.Mul(df)
	if err != nil {
		return nil, err
	}
	z, err := kf.Add(cd)
	if err != nil {
		return nil, err
	}
	return &Signature[T]{R: R, Z: z.Value()}, nil
}

// Verify checks a Schnorr signature against the public key.
func Verify[T ring.Ring[T]](g group.Group[T], pub curve.Point[T], msg []byte, sig *Signature[T]) bool {
	if sig == nil || sig.Z.Sign() < 0 || sig.Z.Cmp(g.Order()) >= 0 {
		return false
	}
	if pub.IsInfinity() || !g.Curve().Has(pub) || !g.Curve().Has(sig.R) {
		return false
	}

	// c = H(R, Y, msg)
	c, err := challenge(g, sig.R, pub, msg)
	if err != nil {
		return false
	}

	// Check: z*G == R + c*Y
	lhs, err := g.Generator().ScalarMul(sig.Z)
	if err != nil {
		return false
	}
	cY, err := pub.ScalarMul(c)
	if err != nil {
		return false
	}
	rhs, err := sig.R.Add(cY)
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

func challenge[T ring.Ring[T]](g group.Group[T], R, pub curve.Point[T], msg []byte) (ring.Int, error) {
	rb, err := g.Encode(R)
	if err != nil {
		return ring.Int{}, err
	}
	yb, err := g.Encode(pub)
	if err != nil {
		return ring.Int{}, err
	}
	return g.HashToScalar(rb, yb, msg)
}
