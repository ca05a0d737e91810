package secp256k1

import (
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the Hash160 format
)

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	sum := sha256simd.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// DoubleSHA256 returns SHA256(SHA256(b)).
func DoubleSHA256(b []byte) []byte {
	first := sha256simd.Sum256(b)
	second := sha256simd.Sum256(first[:])
	return second[:]
}
