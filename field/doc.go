// Package field implements arithmetic in a prime field, generic over any
// integer type satisfying [ring.Integer].
//
// An [Element] pairs a value with its modulus. Elements are created through
// the validating constructor [New] and never change afterwards; Add, Sub,
// Mul, Div and Pow all return new elements:
//
//	a, _ := field.New(ring.Int64(7), ring.Int64(19))
//	b, _ := field.New(ring.Int64(5), ring.Int64(19))
//	q, err := a.Div(b) // FieldElement_19(9)
//
// Combining elements of different moduli fails with [ErrModulusMismatch]
// rather than silently reducing. Division inverts via Fermat's little
// theorem and therefore assumes the modulus is prime.
//
// Exponentiation is square-and-multiply and multiplication is a single
// multiply-then-reduce, so the package is usable at cryptographic sizes
// with [ring.Int]. It is not constant time.
package field
