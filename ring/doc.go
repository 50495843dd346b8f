// Package ring defines the numeric contracts that the field and curve
// packages are generic over.
//
// The package provides three interfaces:
//
//   - [Ring]: the arithmetic a curve coordinate must supply
//   - [Scalar]: a non-negative multiplier read bit by bit
//   - [Integer]: an ordered ring with truncated division, the backing type
//     of a prime field
//
// and two concrete integers that satisfy [Integer]:
//
//   - [Int64]: a native int64, convenient for small textbook curves
//   - [Int]: an immutable arbitrary-precision integer over math/big
//
// # Design Philosophy
//
// Every arithmetic method returns a new value together with an error. No
// receiver is ever modified, so values can be shared freely between
// goroutines. Operations that have no failure mode on a given type simply
// return a nil error, which keeps one contract for native integers (that can
// overflow), big integers (that cannot) and field elements (that can be
// combined with an element of another field):
//
//	sum, err := a.Add(b)
//	if err != nil {
//		return err
//	}
package ring
