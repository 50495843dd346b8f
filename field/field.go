package field

import (
	"errors"
	"fmt"

	"github.com/f3rmion/weier/ring"
)

var (
	// ErrOutOfRange is returned when a value does not lie in [0, modulus).
	ErrOutOfRange = errors.New("field: value out of range")
	// ErrInvalidModulus is returned for a modulus below 2.
	ErrInvalidModulus = errors.New("field: invalid modulus")
	// ErrModulusMismatch is returned when combining elements of different fields.
	ErrModulusMismatch = errors.New("field: modulus mismatch")
	// ErrDivisionByZero is returned when inverting the zero element.
	ErrDivisionByZero = errors.New("field: division by zero")
)

// Element is a residue modulo a prime. The value always lies in
// [0, modulus); every operation reduces before constructing its result.
//
// Element is immutable and satisfies [ring.Ring], so it can serve as the
// coordinate type of a curve point.
type Element[T ring.Integer[T]] struct {
	value   T
	modulus T
}

// New returns value as an element of the field of the given modulus.
// Returns an error if value is outside [0, modulus) or the modulus is
// below 2. The modulus is assumed prime; Div and Inverse rely on it.
func New[T ring.Integer[T]](value, modulus T) (Element[T], error) {
	if modulus.Cmp(modulus.One()) <= 0 {
		return Element[T]{}, fmt.Errorf("%w: %v", ErrInvalidModulus, modulus)
	}
	if value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return Element[T]{}, fmt.Errorf("%w: %v not in [0, %v)", ErrOutOfRange, value, modulus)
	}
	return Element[T]{value: value, modulus: modulus}, nil
}

// Reduce returns value mod modulus as a field element. Unlike [New] it
// accepts any integer, including negative ones.
func Reduce[T ring.Integer[T]](value, modulus T) (Element[T], error) {
	if modulus.Cmp(modulus.One()) <= 0 {
		return Element[T]{}, fmt.Errorf("%w: %v", ErrInvalidModulus, modulus)
	}
	r, err := mod(value, modulus)
	if err != nil {
		return Element[T]{}, err
	}
	return New(r, modulus)
}

// Value returns the canonical representative in [0, modulus).
func (e Element[T]) Value() T { return e.value }

// Modulus returns the field prime.
func (e Element[T]) Modulus() T { return e.modulus }

// Add returns e + b.
func (e Element[T]) Add(b Element[T]) (Element[T], error) {
	if err := e.check(b); err != nil {
		return Element[T]{}, err
	}
	s, err := e.value.Add(b.value)
	if err != nil {
		return Element[T]{}, err
	}
	if s.Cmp(e.modulus) >= 0 {
		if s, err = s.Sub(e.modulus); err != nil {
			return Element[T]{}, err
		}
	}
	return New(s, e.modulus)
}

// Sub returns e - b.
func (e Element[T]) Sub(b Element[T]) (Element[T], error) {
	if err := e.check(b); err != nil {
		return Element[T]{}, err
	}
	if e.value.Cmp(b.value) >= 0 {
		d, err := e.value.Sub(b.value)
		if err != nil {
			return Element[T]{}, err
		}
		return New(d, e.modulus)
	}
	// p - (b - a) stays in range without going negative.
	d, err := b.value.Sub(e.value)
	if err != nil {
		return Element[T]{}, err
	}
	if d, err = e.modulus.Sub(d); err != nil {
		return Element[T]{}, err
	}
	return New(d, e.modulus)
}

// Mul returns e * b.
func (e Element[T]) Mul(b Element[T]) (Element[T], error) {
	if err := e.check(b); err != nil {
		return Element[T]{}, err
	}
	p, err := e.value.Mul(b.value)
	if err != nil {
		return Element[T]{}, err
	}
	if p, err = p.Rem(e.modulus); err != nil {
		return Element[T]{}, err
	}
	return New(p, e.modulus)
}

// Pow returns e raised to exponent by square-and-multiply. The exponent is
// first reduced modulo p-1, so negative exponents yield powers of the
// inverse. Raising zero to a negative power fails with [ErrDivisionByZero].
func (e Element[T]) Pow(exponent T) (Element[T], error) {
	one, err := New(e.modulus.One(), e.modulus)
	if err != nil {
		return Element[T]{}, err
	}
	if e.IsZero() {
		switch exponent.Sign() {
		case 0:
			return one, nil
		case 1:
			return e, nil
		}
		return Element[T]{}, ErrDivisionByZero
	}

	order, err := e.modulus.Sub(e.modulus.One())
	if err != nil {
		return Element[T]{}, err
	}
	k, err := mod(exponent, order)
	if err != nil {
		return Element[T]{}, err
	}

	result := one
	for i := k.BitLen() - 1; i >= 0; i-- {
		if result, err = result.Mul(result); err != nil {
			return Element[T]{}, err
		}
		if k.Bit(i) == 1 {
			if result, err = result.Mul(e); err != nil {
				return Element[T]{}, err
			}
		}
	}
	return result, nil
}

// Inverse returns e^(p-2), the multiplicative inverse by Fermat's little
// theorem. Returns an error if e is zero.
func (e Element[T]) Inverse() (Element[T], error) {
	if e.IsZero() {
		return Element[T]{}, ErrDivisionByZero
	}
	two, err := e.modulus.One().Add(e.modulus.One())
	if err != nil {
		return Element[T]{}, err
	}
	k, err := e.modulus.Sub(two)
	if err != nil {
		return Element[T]{}, err
	}
	return e.Pow(k)
}

// Div returns e * b^(p-2).
// Returns an error if b is zero or belongs to another field.
func (e Element[T]) Div(b Element[T]) (Element[T], error) {
	if err := e.check(b); err != nil {
		return Element[T]{}, err
	}
	inv, err := b.Inverse()
	if err != nil {
		return Element[T]{}, err
	}
	return e.Mul(inv)
}

// Neg returns -e.
func (e Element[T]) Neg() (Element[T], error) {
	if e.IsZero() {
		return e, nil
	}
	v, err := e.modulus.Sub(e.value)
	if err != nil {
		return Element[T]{}, err
	}
	return New(v, e.modulus)
}

// Equal reports whether e and b have the same value and modulus.
func (e Element[T]) Equal(b Element[T]) bool {
	return e.value.Equal(b.value) && e.modulus.Equal(b.modulus)
}

// IsZero reports whether e is the zero element.
func (e Element[T]) IsZero() bool { return e.value.IsZero() }

func (e Element[T]) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", e.modulus, e.value)
}

func (e Element[T]) check(b Element[T]) error {
	if !e.modulus.Equal(b.modulus) {
		return fmt.Errorf("%w: %v != %v", ErrModulusMismatch, e.modulus, b.modulus)
	}
	return nil
}

// mod returns the Euclidean remainder of x by a positive m.
func mod[T ring.Integer[T]](x, m T) (T, error) {
	r, err := x.Rem(m)
	if err != nil {
		return r, err
	}
	if r.Sign() < 0 {
		return r.Add(m)
	}
	return r, nil
}
