package secp256k1

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/group"
	"github.com/rafaelescrich/secp256k1-keygen/scalar"
)

// PrivateKey is a scalar in [1, n-1].
type PrivateKey struct {
	curve *group.Curve
	key   *scalar.Scalar
}

// PrivateKeyFromBytes decodes a 32-byte big-endian secp256k1 private key.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	c := group.Secp256k1()
	k, err := scalarFromBytes(c, b)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{curve: c, key: k}, nil
}

// Curve returns the curve priv belongs to.
func (priv *PrivateKey) Curve() *group.Curve {
	return priv.curve
}

// Secret returns a copy of the private scalar.
func (priv *PrivateKey) Secret() *big.Int {
	return priv.key.BigInt()
}

// Scalar returns the private scalar.
func (priv *PrivateKey) Scalar() *scalar.Scalar {
	return priv.key
}

// Bytes returns the fixed-length big-endian encoding of the key.
func (priv *PrivateKey) Bytes() []byte {
	return priv.key.Bytes()
}

// PublicKey returns k·G.
func (priv *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{curve: priv.curve, point: priv.curve.ScalarBaseMult(priv.key)}
}

// Zero drops the secret. The key must not be used afterwards.
func (priv *PrivateKey) Zero() {
	priv.key.Clear()
}

// PublicKey is a point of the curve other than the point at infinity.
type PublicKey struct {
	curve *group.Curve
	point *group.Point
}

// NewPublicKey validates (x, y) as a secp256k1 public key.
func NewPublicKey(x, y *big.Int) (*PublicKey, error) {
	c := group.Secp256k1()
	p, err := c.NewPoint(x, y)
	if err != nil {
		return nil, errors.Wrap(err, "secp256k1: public key")
	}
	return &PublicKey{curve: c, point: p}, nil
}

// ParsePublicKey decodes a compressed or uncompressed SEC 1 secp256k1 public
// key. Encodings of points off the curve, and of the point at infinity, fail
// with an error wrapping group.ErrCurveViolation.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	c := group.Secp256k1()
	p, err := c.ParsePoint(b)
	if err != nil {
		return nil, errors.Wrap(err, "secp256k1: public key")
	}
	if p.IsInfinity() {
		return nil, errors.Wrap(group.ErrCurveViolation, "secp256k1: public key is the point at infinity")
	}
	return &PublicKey{curve: c, point: p}, nil
}

// Curve returns the curve pub belongs to.
func (pub *PublicKey) Curve() *group.Curve {
	return pub.curve
}

// Point returns the underlying curve point.
func (pub *PublicKey) Point() *group.Point {
	return pub.point
}

// X returns a copy of the x coordinate.
func (pub *PublicKey) X() *big.Int {
	return pub.point.X()
}

// Y returns a copy of the y coordinate.
func (pub *PublicKey) Y() *big.Int {
	return pub.point.Y()
}

// SerializeCompressed returns the 33-byte SEC 1 compressed encoding.
func (pub *PublicKey) SerializeCompressed() []byte {
	return pub.point.SerializeCompressed()
}

// SerializeUncompressed returns the 65-byte SEC 1 uncompressed encoding.
func (pub *PublicKey) SerializeUncompressed() []byte {
	return pub.point.SerializeUncompressed()
}

// Hash160 returns RIPEMD160(SHA256(compressed key)), the identifier used in
// Bitcoin addresses.
func (pub *PublicKey) Hash160() []byte {
	return Hash160(pub.SerializeCompressed())
}

// IsEqual reports whether pub and other are the same key.
func (pub *PublicKey) IsEqual(other *PublicKey) bool {
	return pub.point.Equal(other.point)
}

// ToECDSA returns pub as a crypto/ecdsa key over S256.
func (pub *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return &ecdsa.PublicKey{Curve: S256(), X: pub.X(), Y: pub.Y()}
}
