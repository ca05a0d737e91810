package secp256k1

import "github.com/pkg/errors"

var (
	// ErrInvalidPrivateKey is returned for private key encodings of the wrong
	// length or at or above the group order.
	ErrInvalidPrivateKey = errors.New("secp256k1: invalid private key")

	// ErrInvalidPublicKey is returned when a public key cannot take part in
	// a key agreement.
	ErrInvalidPublicKey = errors.New("secp256k1: invalid public key")

	// ErrDegenerateKey is returned for the zero private key, and by
	// GeneratePrivateKey when the random source keeps producing zero.
	ErrDegenerateKey = errors.New("secp256k1: degenerate private key")
)
