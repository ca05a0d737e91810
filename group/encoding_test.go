package group

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	c := Secp256k1()
	_, points := randomPoints(t, c, 8)
	points = append(points, c.Generator(), c.Negate(c.Generator()))

	for _, p := range points {
		compressed := p.SerializeCompressed()
		require.Len(t, compressed, 33)
		if p.IsEven() {
			assert.Equal(t, PrefixEven, compressed[0])
		} else {
			assert.Equal(t, PrefixOdd, compressed[0])
		}

		decoded, err := c.ParsePoint(compressed)
		require.NoError(t, err)
		assert.True(t, decoded.Equal(p), "compressed %x", compressed)

		uncompressed := p.SerializeUncompressed()
		require.Len(t, uncompressed, 65)
		assert.Equal(t, PrefixUncompressed, uncompressed[0])

		decoded, err = c.ParsePoint(uncompressed)
		require.NoError(t, err)
		assert.True(t, decoded.Equal(p), "uncompressed %x", uncompressed)
	}
}

func TestSerializeInfinity(t *testing.T) {
	c := Secp256k1()
	o := c.Infinity()

	assert.Equal(t, []byte{0x00}, o.SerializeCompressed())
	assert.Equal(t, []byte{0x00}, o.SerializeUncompressed())

	decoded, err := c.ParsePoint([]byte{0x00})
	require.NoError(t, err)
	assert.True(t, decoded.IsInfinity())
}

func TestSerializeMatchesDecred(t *testing.T) {
	c := Secp256k1()
	scalars, points := randomPoints(t, c, 4)

	for i, k := range scalars {
		pub := dcrsecp.PrivKeyFromBytes(k.Bytes()).PubKey()
		assert.Equal(t, pub.SerializeCompressed(), points[i].SerializeCompressed())
		assert.Equal(t, pub.SerializeUncompressed(), points[i].SerializeUncompressed())
	}
}

func TestExternalParsersAcceptEncoding(t *testing.T) {
	c := Secp256k1()
	_, points := randomPoints(t, c, 4)

	for _, p := range points {
		for _, enc := range [][]byte{p.SerializeCompressed(), p.SerializeUncompressed()} {
			pub, err := btcec.ParsePubKey(enc)
			require.NoError(t, err, "btcec rejected %x", enc)
			assert.True(t, bytes.Equal(p.SerializeCompressed(), pub.SerializeCompressed()))

			_, err = dcrsecp.ParsePubKey(enc)
			require.NoError(t, err, "decred rejected %x", enc)
		}
	}
}

func TestParsePointErrors(t *testing.T) {
	c := Secp256k1()
	g := c.Generator()
	p := c.Params().P().FillBytes(make([]byte, 32))

	offCurve := g.SerializeUncompressed()
	offCurve[64] ^= 0x01

	testCases := []struct {
		name   string
		input  []byte
		target error
	}{
		{"empty", nil, ErrInvalidEncoding},
		{"truncated compressed", g.SerializeCompressed()[:32], ErrInvalidEncoding},
		{"truncated uncompressed", g.SerializeUncompressed()[:64], ErrInvalidEncoding},
		{"unknown prefix", append([]byte{0x05}, g.SerializeCompressed()[1:]...), ErrInvalidEncoding},
		{"infinity with payload", append([]byte{0x00}, g.SerializeCompressed()[1:]...), ErrInvalidEncoding},
		{"x equal to p", append([]byte{PrefixEven}, p...), ErrCurveViolation},
		{"no y for x", append([]byte{PrefixEven}, make([]byte, 32)...), ErrCurveViolation},
		{"off curve", offCurve, ErrCurveViolation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.ParsePoint(tc.input)
			assert.True(t, errors.Is(err, tc.target), "got %v", err)
		})
	}
}

func TestCompressedRequiresSqrt(t *testing.T) {
	// 97 ≡ 1 (mod 4), so compressed points cannot be decoded on the toy curve
	c := toyCurve(t)
	g := c.Generator()

	_, err := c.ParsePoint(g.SerializeCompressed())
	assert.True(t, errors.Is(err, ErrCurveViolation))

	decoded, err := c.ParsePoint(g.SerializeUncompressed())
	require.NoError(t, err)
	assert.True(t, decoded.Equal(g))
	assert.Equal(t, []byte{PrefixUncompressed, 3, 6}, g.SerializeUncompressed())
}
