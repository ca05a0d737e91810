package secp256k1

import (
	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/ecdh"
)

// GenerateSharedSecret returns the 32-byte x coordinate of priv·pub, the
// secret both parties of an ECDH exchange arrive at.
func GenerateSharedSecret(priv *PrivateKey, pub *PublicKey) ([]byte, error) {
	if priv.curve != pub.curve {
		return nil, errors.Wrap(ErrInvalidPublicKey, "keys belong to different curves")
	}
	secret, err := ecdh.ComputeSharedSecret(priv.curve, priv.key, pub.point)
	if err != nil {
		if errors.Is(err, ecdh.ErrInvalidPrivateKey) {
			return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
		}
		return nil, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return secret, nil
}

// ECDH computes the shared secret between priv and pub.
func (priv *PrivateKey) ECDH(pub *PublicKey) ([]byte, error) {
	return GenerateSharedSecret(priv, pub)
}
