package ecdsa

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/weier/curve"
	"github.com/f3rmion/weier/digest"
	"github.com/f3rmion/weier/field"
	"github.com/f3rmion/weier/group"
	"github.com/f3rmion/weier/ring"
)

var (
	// ErrInvalidKey is returned for a private key outside [1, n).
	ErrInvalidKey = errors.New("ecdsa: invalid private key")
	// ErrInvalidNonce is returned when a nonce is outside [1, n) or yields
	// r = 0 or s = 0.
	ErrInvalidNonce = errors.New("ecdsa: invalid nonce")
)

// maxAttempts bounds the nonce retries in Sign.
const maxAttempts = 64

// PrivateKey is a secret scalar with its public point.
type PrivateKey[T ring.Ring[T]] struct {
	D      ring.Int
	Public curve.Point[T]
}

// Signature is an ECDSA signature (r, s), both in [1, n).
type Signature struct {
	R, S ring.Int
}

// Bytes returns r || s, each padded to size bytes.
func (sig *Signature) Bytes(size int) []byte {
	out := make([]byte, 2*size)
	sig.R.FillBytes(out[:size])
	sig.S.FillBytes(out[size:])
	return out
}

// NewPrivateKey returns the key with secret d and public point d·G.
// Returns [ErrInvalidKey] unless 1 <= d < n.
func NewPrivateKey[T ring.Ring[T]](g group.Group[T], d ring.Int) (*PrivateKey[T], error) {
	if !inRange(d, g.Order()) {
		return nil, ErrInvalidKey
	}
	pub, err := g.Generator().ScalarMul(d)
	if err != nil {
		return nil, err
	}
	return &PrivateKey[T]{D: d, Public: pub}, nil
}

// GenerateKey returns a new key with a secret drawn from r.
func GenerateKey[T ring.Ring[T]](g group.Group[T], r io.Reader) (*PrivateKey[T], error) {
	d, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(g, d)
}

// Sign signs a message hash with a nonce drawn from r. The hash is
// truncated to the bit length of the group order.
func Sign[T ring.Ring[T]](r io.Reader, g group.Group[T], priv *PrivateKey[T], hash []byte) (*Signature, error) {
	for i := 0; i < maxAttempts; i++ {
		k, err := g.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		sig, err := SignWithNonce(g, priv, hash, k)
		if errors.Is(err, ErrInvalidNonce) {
			continue
		}
		return sig, err
	}
	return nil, fmt.Errorf("ecdsa: no usable nonce after %d attempts", maxAttempts)
}

// SignWithNonce signs a message hash with the given nonce k:
//
//	r = x(k·G) mod n
//	s = (z + r·d) / k mod n
//
// s is replaced by n - s when it exceeds n/2.
// Returns [ErrInvalidNonce] if k is not in [1, n) or r or s is zero.
func SignWithNonce[T ring.Ring[T]](g group.Group[T], priv *PrivateKey[T], hash []byte, k ring.Int) (*Signature, error) {
	n := g.Order()
	if !inRange(k, n) {
		return nil, ErrInvalidNonce
	}
	if !inRange(priv.D, n) {
		return nil, ErrInvalidKey
	}

	kG, err := g.Generator().ScalarMul(k)
	if err != nil {
		return nil, err
	}
	rx, err := g.Abscissa(kG)
	if err != nil {
		return nil, err
	}
	r, err := field.Reduce(rx, n)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return nil, ErrInvalidNonce
	}

	z, err := hashElement(hash, n)
	if err != nil {
		return nil, err
	}
	d, err := field.New(priv.D, n)
	if err != nil {
		return nil, err
	}
	kf, err := field.New(k, n)
	if err != nil {
		return nil, err
	}

	// s = (z + r·d) / k
	rd, err := r.Mul(d)
	if err != nil {
		return nil, err
	}
	num, err := z.Add(rd)
	if err != nil {
		return nil, err
	}
	s, err := num.Div(kf)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return nil, ErrInvalidNonce
	}
	if s, err = lowS(s); err != nil {
		return nil, err
	}
	return &Signature{R: r.Value(), S: s.Value()}, nil
}

// Verify reports whether sig is a valid signature of hash by pub. Both
// low-S and high-S forms are accepted.
func Verify[T ring.Ring[T]](g group.Group[T], pub curve.Point[T], hash []byte, sig *Signature) bool {
	n := g.Order()
	if sig == nil || !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false
	}
	if pub.IsInfinity() || !g.Curve().Has(pub) {
		return false
	}

	z, err := hashElement(hash, n)
	if err != nil {
		return false
	}
	r, err := field.New(sig.R, n)
	if err != nil {
		return false
	}
	s, err := field.New(sig.S, n)
	if err != nil {
		return false
	}
	w, err := s.Inverse()
	if err != nil {
		return false
	}
	u1, err := z.Mul(w)
	if err != nil {
		return false
	}
	u2, err := r.Mul(w)
	if err != nil {
		return false
	}

	// X = u1·G + u2·Q
	p1, err := g.Generator().ScalarMul(u1.Value())
	if err != nil {
		return false
	}
	p2, err := pub.ScalarMul(u2.Value())
	if err != nil {
		return false
	}
	x, err := p1.Add(p2)
	if err != nil || x.IsInfinity() {
		return false
	}
	xv, err := g.Abscissa(x)
	if err != nil {
		return false
	}
	v, err := field.Reduce(xv, n)
	if err != nil {
		return false
	}
	return v.Equal(r)
}

func hashElement(hash []byte, n ring.Int) (field.Element[ring.Int], error) {
	return field.Reduce(digest.Truncate(hash, n), n)
}

func lowS(s field.Element[ring.Int]) (field.Element[ring.Int], error) {
	half, err := s.Modulus().Div(ring.NewInt(2))
	if err != nil {
		return s, err
	}
	if s.Value().Cmp(half) > 0 {
		return s.Neg()
	}
	return s, nil
}

func inRange(x, n ring.Int) bool {
	return x.Sign() > 0 && x.Cmp(n) < 0
}
