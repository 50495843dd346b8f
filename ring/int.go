package ring

import (
	"fmt"
	"math/big"
)

// Int is an immutable arbitrary-precision integer satisfying [Integer].
// It wraps a big.Int that is never modified after construction. The zero
// value is 0 and ready to use.
type Int struct {
	v *big.Int
}

var bigZero = new(big.Int)

// NewInt returns x as an Int.
func NewInt(x int64) Int {
	return Int{v: big.NewInt(x)}
}

// IntFromBig returns a copy of x as an Int. A nil x yields 0.
func IntFromBig(x *big.Int) Int {
	if x == nil {
		return Int{}
	}
	return Int{v: new(big.Int).Set(x)}
}

// IntFromBytes interprets b as a big-endian unsigned integer.
func IntFromBytes(b []byte) Int {
	return Int{v: new(big.Int).SetBytes(b)}
}

// ParseInt parses s in the given base. Base 0 honours the 0x, 0o and 0b
// prefixes.
func ParseInt(s string, base int) (Int, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, fmt.Errorf("ring: invalid integer %q", s)
	}
	return Int{v: v}, nil
}

// MustParseInt is like ParseInt but panics on malformed input. It is meant
// for package-level constants.
func MustParseInt(s string, base int) Int {
	x, err := ParseInt(s, base)
	if err != nil {
		panic(err)
	}
	return x
}

func (x Int) big() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

// Add returns x + b.
func (x Int) Add(b Int) (Int, error) {
	return Int{v: new(big.Int).Add(x.big(), b.big())}, nil
}

// Sub returns x - b.
func (x Int) Sub(b Int) (Int, error) {
	return Int{v: new(big.Int).Sub(x.big(), b.big())}, nil
}

// Mul returns x * b.
func (x Int) Mul(b Int) (Int, error) {
	return Int{v: new(big.Int).Mul(x.big(), b.big())}, nil
}

// Div returns x / b truncated toward zero.
func (x Int) Div(b Int) (Int, error) {
	if b.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	return Int{v: new(big.Int).Quo(x.big(), b.big())}, nil
}

// Rem returns the remainder of x / b with the sign of x.
func (x Int) Rem(b Int) (Int, error) {
	if b.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	return Int{v: new(big.Int).Rem(x.big(), b.big())}, nil
}

// Equal reports whether x == b.
func (x Int) Equal(b Int) bool { return x.big().Cmp(b.big()) == 0 }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.big().Sign() == 0 }

// Cmp compares x and b.
func (x Int) Cmp(b Int) int { return x.big().Cmp(b.big()) }

// Sign returns the sign of x.
func (x Int) Sign() int { return x.big().Sign() }

// BitLen returns the bit length of |x|.
func (x Int) BitLen() int { return x.big().BitLen() }

// Bit returns bit i of |x|.
func (x Int) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	return new(big.Int).Abs(x.big()).Bit(i)
}

// Zero returns 0.
func (Int) Zero() Int { return Int{} }

// One returns 1.
func (Int) One() Int { return NewInt(1) }

// Big returns a copy of x as a big.Int.
func (x Int) Big() *big.Int { return new(big.Int).Set(x.big()) }

// Bytes returns the big-endian bytes of |x|.
func (x Int) Bytes() []byte { return x.big().Bytes() }

// FillBytes writes |x| into buf big-endian, zero padded, and returns buf.
// It panics if |x| does not fit, like big.Int.FillBytes.
func (x Int) FillBytes(buf []byte) []byte {
	return new(big.Int).Abs(x.big()).FillBytes(buf)
}

// Uint64 returns the low 64 bits of |x|.
func (x Int) Uint64() uint64 { return x.big().Uint64() }

// Text returns x in the given base.
func (x Int) Text(base int) string { return x.big().Text(base) }

func (x Int) String() string { return x.big().String() }
