// Package group defines the prime-order group contract that the signing
// packages are written against.
//
// A [Group] fixes a short Weierstrass curve, a generator of prime order n,
// and the glue every signature scheme needs around the curve arithmetic:
//
//   - [Group.RandomScalar]: a uniform secret or nonce in [1, n)
//   - [Group.HashToScalar]: a message digest reduced into [0, n)
//   - [Group.Abscissa] and [Group.Encode]: reading points back as bytes
//
// # Design Philosophy
//
// The group is generic over the coordinate type. The same signing code runs
// on arbitrary-precision field elements (package secp256k1) and on
// fixed-width Montgomery fields (package gnarkfp):
//
//	func sign[T ring.Ring[T]](g group.Group[T], d ring.Int) { ... }
//
// Scalars are always [ring.Int]; arithmetic modulo the order is done with
// field elements of the scalar field.
//
// # Implementing a Group
//
// To implement this interface for a new curve:
//
//  1. Pick a coordinate type satisfying [ring.Ring]
//  2. Build the curve and generator with the curve package
//  3. Use [RandomScalar] and [EncodeUncompressed] for the shared glue
//
// See the secp256k1 package for a complete implementation.
//
// # Security Considerations
//
// Nothing here is constant time. The package is meant for learning and for
// testing other implementations against, not for handling real keys.
package group
