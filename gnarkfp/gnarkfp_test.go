package gnarkfp

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	bnfp "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	secpfp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/weier/curve"
	"github.com/f3rmion/weier/digest"
	"github.com/f3rmion/weier/group"
	"github.com/f3rmion/weier/ring"
)

func TestElement(t *testing.T) {
	p := bnfp.Modulus()

	t.Run("Arithmetic", func(t *testing.T) {
		a := FromBig[bnfp.Element, *bnfp.Element](big.NewInt(12))
		b := FromBig[bnfp.Element, *bnfp.Element](big.NewInt(5))

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "17", sum.Int().String())

		diff, err := b.Sub(a)
		require.NoError(t, err)
		want := new(big.Int).Sub(p, big.NewInt(7))
		assert.Equal(t, want.String(), diff.Int().String(), "5 - 12 wraps to p - 7")

		prod, err := a.Mul(b)
		require.NoError(t, err)
		assert.Equal(t, "60", prod.Int().String())

		q, err := prod.Div(b)
		require.NoError(t, err)
		assert.True(t, q.Equal(a))
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		a := FromInt[secpfp.Element, *secpfp.Element](ring.NewInt(3))
		_, err := a.Div(Secp256k1Fp{})
		assert.ErrorIs(t, err, ring.ErrDivisionByZero)
	})

	t.Run("Reduction", func(t *testing.T) {
		over := new(big.Int).Add(p, big.NewInt(4))
		e := FromBig[bnfp.Element, *bnfp.Element](over)
		assert.Equal(t, "4", e.Int().String())
		assert.Equal(t, "4", e.String())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var z BN254Fp
		assert.True(t, z.IsZero())
		assert.True(t, z.Equal(FromBig[bnfp.Element, *bnfp.Element](big.NewInt(0))))
	})

	t.Run("Immutable", func(t *testing.T) {
		a := FromBig[secpfp.Element, *secpfp.Element](big.NewInt(9))
		b := FromBig[secpfp.Element, *secpfp.Element](big.NewInt(2))
		_, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "9", a.Int().String())
	})
}

func TestSecp256k1MatchesGnark(t *testing.T) {
	g, err := NewSecp256k1()
	require.NoError(t, err)
	_, base := secp256k1.Generators()

	assert.Equal(t, "secp256k1-gnark", g.Name())

	for i := 0; i < 4; i++ {
		k, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)

		p, err := g.Generator().ScalarMul(k)
		require.NoError(t, err)

		var want secp256k1.G1Affine
		want.ScalarMultiplication(&base, k.Big())

		x, y, ok := p.Coordinates()
		require.True(t, ok)
		assert.True(t, x.Equal(Secp256k1Fp{v: want.X}))
		assert.True(t, y.Equal(Secp256k1Fp{v: want.Y}))
	}
}

func TestBN254(t *testing.T) {
	g, err := NewBN254()
	require.NoError(t, err)
	_, _, base, _ := bn254.Generators()

	t.Run("Generator", func(t *testing.T) {
		x, y, ok := g.Generator().Coordinates()
		require.True(t, ok)
		assert.Equal(t, "1", x.Int().String())
		assert.Equal(t, "2", y.Int().String())

		_, b := g.Curve().Coefficients()
		assert.Equal(t, "3", b.Int().String())
	})

	t.Run("Order", func(t *testing.T) {
		nG, err := g.Generator().ScalarMul(g.Order())
		require.NoError(t, err)
		assert.True(t, nG.IsInfinity())
	})

	t.Run("MatchesGnark", func(t *testing.T) {
		k, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)

		p, err := g.Generator().ScalarMul(k)
		require.NoError(t, err)

		var want bn254.G1Affine
		want.ScalarMultiplication(&base, k.Big())

		x, err := g.Abscissa(p)
		require.NoError(t, err)
		assert.Equal(t, 0, x.Big().Cmp(want.X.BigInt(new(big.Int))))
	})
}

func TestGroupGlue(t *testing.T) {
	g, err := NewBN254(WithHasher(digest.Blake2b{Prefix: "test"}))
	require.NoError(t, err)

	t.Run("HashToScalar", func(t *testing.T) {
		got, err := g.HashToScalar([]byte("msg"))
		require.NoError(t, err)
		want, err := digest.ToScalar(digest.Blake2b{Prefix: "test"}, g.Order(), []byte("msg"))
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	})

	t.Run("Encode", func(t *testing.T) {
		enc, err := g.Encode(g.Generator())
		require.NoError(t, err)
		require.Len(t, enc, 65)
		assert.Equal(t, byte(0x04), enc[0])
		assert.Equal(t, byte(1), enc[32])
		assert.Equal(t, byte(2), enc[64])

		inf, err := g.Encode(curve.Infinity[BN254Fp]())
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00}, inf)
	})

	t.Run("AbscissaInfinity", func(t *testing.T) {
		_, err := g.Abscissa(curve.Infinity[BN254Fp]())
		assert.ErrorIs(t, err, group.ErrInfinity)
	})
}
