package digest

import (
	"fmt"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/f3rmion/weier/field"
	"github.com/f3rmion/weier/ring"
)

// Hasher turns byte strings into a fixed-width digest. Multiple inputs are
// concatenated before hashing.
type Hasher interface {
	// Sum returns the digest of the concatenated data.
	Sum(data ...[]byte) []byte
	// Size returns the digest length in bytes.
	Size() int
}

func sum(h hash.Hash, data ...[]byte) []byte {
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// SHA256 implements Hasher using SHA-256.
// This is the default hasher for general use.
type SHA256 struct{}

// Sum implements Hasher.Sum.
func (SHA256) Sum(data ...[]byte) []byte {
	return sum(sha256simd.New(), data...)
}

// Size implements Hasher.Size.
func (SHA256) Size() int { return sha256simd.Size }

// Hash256 implements Hasher using double SHA-256, the message digest used
// by Bitcoin signatures.
type Hash256 struct{}

// Sum implements Hasher.Sum.
func (Hash256) Sum(data ...[]byte) []byte {
	first := sum(sha256simd.New(), data...)
	second := sha256simd.Sum256(first)
	return second[:]
}

// Size implements Hasher.Size.
func (Hash256) Size() int { return sha256simd.Size }

// Blake2b implements Hasher using Blake2b-512 with domain separation.
//
// Domain separation format: prefix + input.
type Blake2b struct {
	// Prefix is the domain separation prefix. It may be empty.
	Prefix string
}

// Sum implements Hasher.Sum.
func (h Blake2b) Sum(data ...[]byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(h.Prefix))
	return sum(hasher, data...)
}

// Size implements Hasher.Size.
func (Blake2b) Size() int { return blake2b.Size }

// Keccak256 implements Hasher using the original Keccak-256 padding, as
// used by Ethereum.
type Keccak256 struct{}

// Sum implements Hasher.Sum.
func (Keccak256) Sum(data ...[]byte) []byte {
	return sum(sha3.NewLegacyKeccak256(), data...)
}

// Size implements Hasher.Size.
func (Keccak256) Size() int { return 32 }

// ByName returns the hasher registered under name: sha256, hash256,
// blake2b or keccak256.
func ByName(name string) (Hasher, error) {
	switch name {
	case "sha256":
		return SHA256{}, nil
	case "hash256":
		return Hash256{}, nil
	case "blake2b":
		return Blake2b{}, nil
	case "keccak256":
		return Keccak256{}, nil
	}
	return nil, fmt.Errorf("digest: unknown hash %q", name)
}

// Truncate interprets digest as a big-endian integer and keeps its leftmost
// order.BitLen() bits, as ECDSA does with message hashes.
func Truncate(digest []byte, order ring.Int) ring.Int {
	orderBits := order.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}
	x := ring.IntFromBytes(digest)
	if excess := len(digest)*8 - orderBits; excess > 0 {
		b := x.Big()
		b.Rsh(b, uint(excess))
		x = ring.IntFromBig(b)
	}
	return x
}

// ToScalar hashes data and maps the digest into [0, order): the digest is
// truncated to the bit length of order and then reduced.
func ToScalar(h Hasher, order ring.Int, data ...[]byte) (ring.Int, error) {
	x := Truncate(h.Sum(data...), order)
	return x.Rem(order)
}

// ToElement hashes data into an element of the prime field of the given
// modulus, for message digests and secret keys.
func ToElement(h Hasher, modulus ring.Int, data ...[]byte) (field.Element[ring.Int], error) {
	x, err := ToScalar(h, modulus, data...)
	if err != nil {
		return field.Element[ring.Int]{}, err
	}
	return field.New(x, modulus)
}
