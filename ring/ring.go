package ring

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by, or reducing modulo, zero.
	ErrDivisionByZero = errors.New("ring: division by zero")
	// ErrOverflow is returned when a fixed-width result does not fit.
	ErrOverflow = errors.New("ring: overflow")
)

// Ring is the arithmetic a curve coordinate must supply. All methods leave
// the receiver untouched and return a fresh value.
type Ring[T any] interface {
	// Add returns the receiver plus b.
	Add(b T) (T, error)
	// Sub returns the receiver minus b.
	Sub(b T) (T, error)
	// Mul returns the receiver times b.
	Mul(b T) (T, error)
	// Div returns the receiver divided by b.
	// Returns an error if b is zero.
	Div(b T) (T, error)
	// Equal reports whether the receiver equals b.
	Equal(b T) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
}

// Scalar is a multiplier for repeated group addition. Only non-negative
// scalars are meaningful; callers check Sign before walking the bits.
type Scalar interface {
	// Sign returns -1, 0 or +1.
	Sign() int
	// BitLen returns the length of the absolute value in bits.
	BitLen() int
	// Bit returns bit i of the absolute value.
	Bit(i int) uint
}

// Integer is an ordered ring with truncated division. It is the backing type
// of a prime field.
type Integer[T any] interface {
	Ring[T]
	Scalar
	// Rem returns the remainder of the receiver divided by b, with the sign
	// of the receiver. Returns an error if b is zero.
	Rem(b T) (T, error)
	// Cmp returns -1, 0 or +1 as the receiver is less than, equal to or
	// greater than b.
	Cmp(b T) int
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
}
