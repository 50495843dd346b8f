// Package gnarkfp runs the generic curve arithmetic on gnark-crypto's
// fixed-width Montgomery field elements.
//
// gnark-crypto generates one fp.Element type per curve. [Element] wraps any
// of them behind [ring.Ring], so the curve package treats secp256k1 and
// BN254 coordinates the same way it treats big-integer field elements:
//
//	g, err := gnarkfp.NewBN254()
//	p, err := g.Generator().ScalarMul(k)
//
// Only the coordinate arithmetic comes from gnark-crypto. The group law and
// scalar multiplication are those of the curve package, which lets the
// tests compare both against gnark's own G1 implementation.
package gnarkfp
