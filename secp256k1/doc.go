// Package secp256k1 provides the secp256k1 curve as a [group.Group] whose
// coordinates are arbitrary-precision prime field elements.
//
// secp256k1 is the curve used by Bitcoin and Ethereum signatures. The
// parameters are taken from the decred implementation; the arithmetic is
// done entirely by the generic curve and field packages, which makes this
// package a large-number exercise of the same code the toy-curve tests run.
//
// # Curve Parameters
//
// The curve is defined by the equation:
//
//	y^2 = x^3 + 7
//
// over the prime field of order
//
//	p = 2^256 - 2^32 - 977
//
// and the base point G has prime order
//
//	n = 115792089237316195423570985008687907852837564279074904382605163141518161494337
//
// # Usage
//
//	g := secp256k1.New(secp256k1.WithHasher(digest.Hash256{}))
//	d, _ := g.RandomScalar(rand.Reader)
//	pub, _ := g.Generator().ScalarMul(d)
//	enc, _ := g.Encode(pub)
//
// # Security
//
// Arithmetic is not constant time. Use decred or btcec for real keys.
package secp256k1
