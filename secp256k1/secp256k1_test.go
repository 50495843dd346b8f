package secp256k1

import (
	"crypto/rand"
	"math/big"
	"testing"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/weier/curve"
	"github.com/f3rmion/weier/digest"
	"github.com/f3rmion/weier/field"
	"github.com/f3rmion/weier/group"
	"github.com/f3rmion/weier/ring"
)

func TestParameters(t *testing.T) {
	g := New()

	assert.Equal(t, "secp256k1", g.Name())
	assert.Equal(t,
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		g.FieldPrime().Text(16))
	assert.Equal(t,
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		g.Order().Text(16))

	a, b := g.Curve().Coefficients()
	assert.True(t, a.IsZero())
	assert.Equal(t, "7", b.Value().String())

	gen := g.Generator()
	x, y, ok := gen.Coordinates()
	require.True(t, ok)
	assert.True(t, g.Curve().Contains(x, y))
}

func TestOrder(t *testing.T) {
	g := New()

	nG, err := g.Generator().ScalarMul(g.Order())
	require.NoError(t, err)
	assert.True(t, nG.IsInfinity(), "n·G must be the identity")

	nMinusOne, err := g.Order().Sub(ring.NewInt(1))
	require.NoError(t, err)
	p, err := g.Generator().ScalarMul(nMinusOne)
	require.NoError(t, err)
	neg, err := g.Generator().Neg()
	require.NoError(t, err)
	assert.True(t, p.Equal(neg), "(n-1)·G = -G")
}

func TestScalarMulMatchesDecred(t *testing.T) {
	g := New()
	ref := decred.S256()

	t.Run("TwoG", func(t *testing.T) {
		p, err := g.Generator().Double()
		require.NoError(t, err)
		x, err := g.Abscissa(p)
		require.NoError(t, err)
		assert.Equal(t,
			"c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
			x.Text(16))
	})

	for i := 0; i < 4; i++ {
		t.Run("Random", func(t *testing.T) {
			k, err := g.RandomScalar(rand.Reader)
			require.NoError(t, err)

			p, err := g.Generator().ScalarMul(k)
			require.NoError(t, err)

			wx, wy := ref.ScalarBaseMult(k.Bytes())
			x, y, ok := p.Coordinates()
			require.True(t, ok)
			assert.Equal(t, 0, x.Value().Big().Cmp(wx))
			assert.Equal(t, 0, y.Value().Big().Cmp(wy))
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	g := New()

	k, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	p, err := g.Generator().ScalarMul(k)
	require.NoError(t, err)

	enc, err := g.Encode(p)
	require.NoError(t, err)
	require.Len(t, enc, 65)
	assert.Equal(t, byte(0x04), enc[0])

	pub, err := decred.ParsePubKey(enc)
	require.NoError(t, err, "decred must accept the encoding")
	compressed := pub.SerializeCompressed()

	back, err := g.Decode(compressed)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))

	inf, err := g.Encode(curve.Infinity[field.Element[ring.Int]]())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, inf)

	_, err = g.Decode([]byte{0x04, 0x01})
	assert.Error(t, err)
}

func TestEncodeForeignCurve(t *testing.T) {
	g := New()

	// y² = x³ + 7 over F_223 shares b but not the field.
	f := func(v int64) field.Element[ring.Int] {
		e, err := field.New(ring.NewInt(v), ring.NewInt(223))
		require.NoError(t, err)
		return e
	}
	p, err := curve.New(f(47), f(71), f(0), f(7))
	require.NoError(t, err)

	_, err = g.Encode(p)
	assert.ErrorIs(t, err, curve.ErrCurveMismatch)
}

func TestAbscissaInfinity(t *testing.T) {
	_, err := New().Abscissa(curve.Infinity[field.Element[ring.Int]]())
	assert.ErrorIs(t, err, group.ErrInfinity)
}

func TestHashToScalar(t *testing.T) {
	msg := []byte("my message")

	t.Run("Default", func(t *testing.T) {
		got, err := New().HashToScalar(msg)
		require.NoError(t, err)
		want, err := digest.ToScalar(digest.SHA256{}, New().Order(), msg)
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	})

	t.Run("WithHasher", func(t *testing.T) {
		g := New(WithHasher(digest.Keccak256{}))
		got, err := g.HashToScalar(msg)
		require.NoError(t, err)
		want, err := digest.ToScalar(digest.Keccak256{}, g.Order(), msg)
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
		assert.Equal(t, -1, got.Cmp(g.Order()))
	})
}

func TestElements(t *testing.T) {
	_, err := Element(New().FieldPrime())
	assert.ErrorIs(t, err, field.ErrOutOfRange)

	s, err := ScalarElement(ring.IntFromBig(big.NewInt(5)))
	require.NoError(t, err)
	inv, err := s.Inverse()
	require.NoError(t, err)
	one, err := s.Mul(inv)
	require.NoError(t, err)
	assert.Equal(t, "1", one.Value().String())
}
