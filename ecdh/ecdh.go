// Package ecdh implements elliptic curve Diffie-Hellman key agreement on top
// of the group package.
package ecdh

import (
	sha256simd "github.com/minio/sha256-simd"
	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/group"
	"github.com/rafaelescrich/secp256k1-keygen/scalar"
)

var (
	ErrInvalidPrivateKey = errors.New("ecdh: invalid private key")
	ErrInvalidPublicKey  = errors.New("ecdh: invalid public key")
	ErrInvalidPoint      = errors.New("ecdh: shared point is the point at infinity")
)

// ComputeSharedSecret returns the x coordinate of privkey·peerPubkey as a
// fixed-length big-endian slice. This is the raw secret of SEC 1 section
// 3.3.1; callers normally feed it to a KDF.
func ComputeSharedSecret(c *group.Curve, privkey *scalar.Scalar, peerPubkey *group.Point) ([]byte, error) {
	if !ValidatePrivateKey(c, privkey) {
		return nil, ErrInvalidPrivateKey
	}
	if !ValidatePublicKey(c, peerPubkey) {
		return nil, ErrInvalidPublicKey
	}

	shared := c.ScalarMult(privkey, peerPubkey)
	if shared.IsInfinity() {
		return nil, ErrInvalidPoint
	}
	return shared.SerializeCompressed()[1:], nil
}

// HashedSharedSecret returns SHA256 of the shared x coordinate.
func HashedSharedSecret(c *group.Curve, privkey *scalar.Scalar, peerPubkey *group.Point) ([]byte, error) {
	x, err := ComputeSharedSecret(c, privkey, peerPubkey)
	if err != nil {
		return nil, err
	}
	sum := sha256simd.Sum256(x)
	return sum[:], nil
}

// GenerateSharedSecret parses a SEC 1 encoded peer key and computes the
// shared secret with it.
func GenerateSharedSecret(c *group.Curve, privkey *scalar.Scalar, peerPubkeyBytes []byte) ([]byte, error) {
	peerPubkey, err := c.ParsePoint(peerPubkeyBytes)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return ComputeSharedSecret(c, privkey, peerPubkey)
}

// ValidatePublicKey reports whether pubkey is a point of c other than the
// point at infinity.
func ValidatePublicKey(c *group.Curve, pubkey *group.Point) bool {
	return pubkey != nil && !pubkey.IsInfinity() && c.Contains(pubkey)
}

// ValidatePrivateKey reports whether privkey lies in [1, n-1].
func ValidatePrivateKey(c *group.Curve, privkey *scalar.Scalar) bool {
	return privkey != nil && !privkey.IsZero() && privkey.BigInt().Cmp(c.Order().Modulus()) < 0
}
