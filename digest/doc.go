// Package digest derives scalars and field elements from byte strings.
//
// A [Hasher] is a fixed-width hash over concatenated inputs. [ToScalar]
// and [ToElement] turn its digest into a number below an order or modulus,
// which is how signing code obtains message digests and secret keys:
//
//	z, err := digest.ToScalar(digest.Hash256{}, order, []byte("my message"))
package digest
