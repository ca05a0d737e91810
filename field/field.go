// Package field implements arithmetic on integers modulo an odd prime.
// Elements are immutable and always kept reduced into [0, p); every operation
// returns a new element.
//
// The secp256k1 base field uses p = 2^256 - 2^32 - 977. The same type serves
// the group order n through the scalar package.
package field

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/bigint"
)

var (
	// ErrInvalidLength is returned by SetBytes for input of the wrong size.
	ErrInvalidLength = errors.New("field: invalid encoding length")

	// ErrNotCanonical is returned by SetBytes when the encoded value is not
	// below the modulus.
	ErrNotCanonical = errors.New("field: value is not reduced modulo the field prime")
)

// Field is the set of integers modulo a prime.
type Field struct {
	p       *big.Int
	byteLen int
}

// New returns the field of integers modulo p. It panics if p is not an odd
// integer greater than 2.
func New(p *big.Int) *Field {
	if p == nil || p.Cmp(big.NewInt(2)) <= 0 || p.Bit(0) == 0 {
		panic("field: modulus must be an odd prime")
	}
	return &Field{p: new(big.Int).Set(p), byteLen: bigint.ByteLen(p)}
}

// Modulus returns a copy of the field prime.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// ByteLen is the size of the fixed-length encoding of an element.
func (f *Field) ByteLen() int {
	return f.byteLen
}

// Equal reports whether f and other share a modulus.
func (f *Field) Equal(other *Field) bool {
	return f == other || f.p.Cmp(other.p) == 0
}

// Zero returns the additive identity.
func (f *Field) Zero() *Element {
	return &Element{f: f, v: new(big.Int)}
}

// One returns the multiplicative identity.
func (f *Field) One() *Element {
	return &Element{f: f, v: big.NewInt(1)}
}

// NewElement returns v reduced modulo p. Negative values are mapped onto
// their non-negative residue.
func (f *Field) NewElement(v *big.Int) *Element {
	return f.reduce(new(big.Int).Set(v))
}

// SetInt64 returns v reduced modulo p.
func (f *Field) SetInt64(v int64) *Element {
	return f.reduce(big.NewInt(v))
}

// SetBytes decodes a big-endian value of exactly ByteLen bytes. Values not
// below the modulus are rejected rather than reduced.
func (f *Field) SetBytes(b []byte) (*Element, error) {
	if len(b) != f.byteLen {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d bytes, want %d", len(b), f.byteLen)
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(f.p) >= 0 {
		return nil, ErrNotCanonical
	}
	return &Element{f: f, v: v}, nil
}

// reduce takes ownership of v.
func (f *Field) reduce(v *big.Int) *Element {
	// big.Int.Mod is Euclidean, so the result is already non-negative.
	v.Mod(v, f.p)
	return &Element{f: f, v: v}
}

// Element is an integer modulo the prime of its Field.
type Element struct {
	f *Field
	v *big.Int
}

// Field returns the field e belongs to.
func (e *Element) Field() *Field {
	return e.f
}

// BigInt returns a copy of the canonical value of e.
func (e *Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// Bytes returns e as a big-endian slice of exactly ByteLen bytes.
func (e *Element) Bytes() []byte {
	return e.v.FillBytes(make([]byte, e.f.byteLen))
}

// String returns e in hexadecimal.
func (e *Element) String() string {
	return e.v.Text(16)
}

// IsZero reports whether e is zero.
func (e *Element) IsZero() bool {
	return e.v.Sign() == 0
}

// IsOdd reports whether the canonical value of e is odd.
func (e *Element) IsOdd() bool {
	return e.v.Bit(0) == 1
}

// Equal reports whether e and other are the same element of the same field.
func (e *Element) Equal(other *Element) bool {
	return e.f.Equal(other.f) && e.v.Cmp(other.v) == 0
}

// Add returns e + other mod p.
func (e *Element) Add(other *Element) *Element {
	e.mustMatch(other)
	return e.f.reduce(new(big.Int).Add(e.v, other.v))
}

// Sub returns e - other mod p.
func (e *Element) Sub(other *Element) *Element {
	e.mustMatch(other)
	return e.f.reduce(new(big.Int).Sub(e.v, other.v))
}

// Mul returns e · other mod p.
func (e *Element) Mul(other *Element) *Element {
	e.mustMatch(other)
	return e.f.reduce(new(big.Int).Mul(e.v, other.v))
}

// MulInt64 returns k · e mod p.
func (e *Element) MulInt64(k int64) *Element {
	return e.f.reduce(new(big.Int).Mul(e.v, big.NewInt(k)))
}

// Square returns e² mod p.
func (e *Element) Square() *Element {
	return e.Mul(e)
}

// Negate returns -e mod p.
func (e *Element) Negate() *Element {
	return e.f.reduce(new(big.Int).Neg(e.v))
}

// Exp returns e^k mod p for k >= 0.
func (e *Element) Exp(k *big.Int) *Element {
	return &Element{f: e.f, v: new(big.Int).Exp(e.v, k, e.f.p)}
}

func (e *Element) mustMatch(other *Element) {
	if !e.f.Equal(other.f) {
		panic("field: operands belong to different fields")
	}
}
