// Package schnorr implements single-signer Schnorr signatures over any
// [group.Group].
//
// A signature is a commitment R = k·G and a response z = k + c·d, where the
// challenge c hashes R, the public key and the message with the group's
// hasher. Verification checks
//
//	z·G == R + c·Y
//
// Points are hashed in their SEC1 uncompressed encoding.
package schnorr
