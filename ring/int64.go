package ring

import (
	"math"
	"math/bits"
	"strconv"
)

// Int64 is a native signed integer satisfying [Integer]. Results that do not
// fit in 64 bits are reported as [ErrOverflow] instead of wrapping, so a
// field over Int64 is safe for moduli up to about 2^31.
type Int64 int64

// Add returns x + b.
func (x Int64) Add(b Int64) (Int64, error) {
	s := x + b
	// Overflow iff both operands share a sign the result lacks.
	if (x >= 0) == (b >= 0) && (s >= 0) != (x >= 0) {
		return 0, ErrOverflow
	}
	return s, nil
}

// Sub returns x - b.
func (x Int64) Sub(b Int64) (Int64, error) {
	d := x - b
	if (x >= 0) != (b >= 0) && (d >= 0) != (x >= 0) {
		return 0, ErrOverflow
	}
	return d, nil
}

// Mul returns x * b.
func (x Int64) Mul(b Int64) (Int64, error) {
	if x == 0 || b == 0 {
		return 0, nil
	}
	p := x * b
	if p/b != x || (x == -1 && b == math.MinInt64) || (b == -1 && x == math.MinInt64) {
		return 0, ErrOverflow
	}
	return p, nil
}

// Div returns x / b truncated toward zero.
func (x Int64) Div(b Int64) (Int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if x == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return x / b, nil
}

// Rem returns x % b.
func (x Int64) Rem(b Int64) (Int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if b == -1 {
		return 0, nil
	}
	return x % b, nil
}

// Equal reports whether x == b.
func (x Int64) Equal(b Int64) bool { return x == b }

// IsZero reports whether x == 0.
func (x Int64) IsZero() bool { return x == 0 }

// Cmp compares x and b.
func (x Int64) Cmp(b Int64) int {
	switch {
	case x < b:
		return -1
	case x > b:
		return 1
	}
	return 0
}

// Sign returns the sign of x.
func (x Int64) Sign() int { return x.Cmp(0) }

// BitLen returns the bit length of |x|.
func (x Int64) BitLen() int { return bits.Len64(x.abs()) }

// Bit returns bit i of |x|.
func (x Int64) Bit(i int) uint {
	if i < 0 || i >= 64 {
		return 0
	}
	return uint(x.abs()>>uint(i)) & 1
}

// Zero returns 0.
func (Int64) Zero() Int64 { return 0 }

// One returns 1.
func (Int64) One() Int64 { return 1 }

func (x Int64) String() string { return strconv.FormatInt(int64(x), 10) }

// abs handles MinInt64 by working in uint64.
func (x Int64) abs() uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
