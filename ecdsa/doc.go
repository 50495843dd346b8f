// Package ecdsa implements ECDSA signing and verification over any
// [group.Group].
//
// Signatures are produced in low-S form, so secp256k1 signatures created
// here are accepted by btcec and decred. Scalar arithmetic is done with
// field elements modulo the group order.
//
//	g := secp256k1.New()
//	priv, _ := ecdsa.GenerateKey[field.Element[ring.Int]](g, rand.Reader)
//	sig, _ := ecdsa.Sign[field.Element[ring.Int]](rand.Reader, g, priv, hash)
//	ok := ecdsa.Verify[field.Element[ring.Int]](g, priv.Public, hash, sig)
package ecdsa
