package gnarkfp

import (
	"math/big"

	bnfp "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	secpfp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"

	"github.com/f3rmion/weier/ring"
)

// element is the method set shared by gnark-crypto's generated fp.Element
// types, expressed on the pointer type.
type element[E any] interface {
	*E
	Add(x, y *E) *E
	Sub(x, y *E) *E
	Mul(x, y *E) *E
	Div(x, y *E) *E
	Equal(x *E) bool
	IsZero() bool
	SetBigInt(v *big.Int) *E
	BigInt(res *big.Int) *big.Int
	String() string
}

// Element adapts a gnark-crypto field element to [ring.Ring]. Values are
// copied on every operation, so an Element behaves as an immutable value.
//
// The zero value is the zero element.
type Element[E any, P element[E]] struct {
	v E
}

// Secp256k1Fp is the base field of secp256k1.
type Secp256k1Fp = Element[secpfp.Element, *secpfp.Element]

// BN254Fp is the base field of BN254.
type BN254Fp = Element[bnfp.Element, *bnfp.Element]

// FromBig returns v reduced into the field.
func FromBig[E any, P element[E]](v *big.Int) Element[E, P] {
	var r Element[E, P]
	P(&r.v).SetBigInt(v)
	return r
}

// FromInt returns v reduced into the field.
func FromInt[E any, P element[E]](v ring.Int) Element[E, P] {
	return FromBig[E, P](v.Big())
}

// Add returns e + b.
func (e Element[E, P]) Add(b Element[E, P]) (Element[E, P], error) {
	var r Element[E, P]
	P(&r.v).Add(&e.v, &b.v)
	return r, nil
}

// Sub returns e - b.
func (e Element[E, P]) Sub(b Element[E, P]) (Element[E, P], error) {
	var r Element[E, P]
	P(&r.v).Sub(&e.v, &b.v)
	return r, nil
}

// Mul returns e * b.
func (e Element[E, P]) Mul(b Element[E, P]) (Element[E, P], error) {
	var r Element[E, P]
	P(&r.v).Mul(&e.v, &b.v)
	return r, nil
}

// Div returns e / b.
// Returns [ring.ErrDivisionByZero] if b is zero.
func (e Element[E, P]) Div(b Element[E, P]) (Element[E, P], error) {
	if P(&b.v).IsZero() {
		return Element[E, P]{}, ring.ErrDivisionByZero
	}
	var r Element[E, P]
	P(&r.v).Div(&e.v, &b.v)
	return r, nil
}

// Equal reports whether e and b are the same element.
func (e Element[E, P]) Equal(b Element[E, P]) bool {
	return P(&e.v).Equal(&b.v)
}

// IsZero reports whether e is zero.
func (e Element[E, P]) IsZero() bool {
	return P(&e.v).IsZero()
}

// Int returns the canonical value of e in [0, p).
func (e Element[E, P]) Int() ring.Int {
	return ring.IntFromBig(P(&e.v).BigInt(new(big.Int)))
}

func (e Element[E, P]) String() string {
	return P(&e.v).String()
}

var (
	_ ring.Ring[Secp256k1Fp] = Secp256k1Fp{}
	_ ring.Ring[BN254Fp]     = BN254Fp{}
)
