// Package scalar implements integers modulo the order n of a curve's base
// point. Scalars are private keys and multipliers for point multiplication.
// Unless built with NewWithOrder, scalars use the secp256k1 order
// n = 0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141.
package scalar

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/curve"
	"github.com/rafaelescrich/secp256k1-keygen/field"
)

// ErrOverflow is returned when decoding a value that is not below the order.
var ErrOverflow = errors.New("scalar: value is not below the group order")

var secp256k1Order = sync.OnceValue(func() *field.Field {
	return field.New(curve.Secp256k1().N())
})

// Order returns the secp256k1 scalar field.
func Order() *field.Field {
	return secp256k1Order()
}

// Scalar is an integer in [0, n).
type Scalar struct {
	e *field.Element
}

// NewWithOrder returns v reduced modulo the given order.
func NewWithOrder(order *field.Field, v *big.Int) *Scalar {
	return &Scalar{e: order.NewElement(v)}
}

// FromBigInt returns v reduced modulo the secp256k1 order.
func FromBigInt(v *big.Int) *Scalar {
	return NewWithOrder(Order(), v)
}

// FromInt64 returns v reduced modulo the secp256k1 order.
func FromInt64(v int64) *Scalar {
	return &Scalar{e: Order().SetInt64(v)}
}

// FromBytes decodes a 32-byte big-endian secp256k1 scalar. Values at or above
// the order are rejected.
func FromBytes(b []byte) (*Scalar, error) {
	return FromBytesWithOrder(Order(), b)
}

// FromBytesWithOrder decodes a big-endian scalar of the order's byte length.
func FromBytesWithOrder(order *field.Field, b []byte) (*Scalar, error) {
	e, err := order.SetBytes(b)
	if err != nil {
		if errors.Is(err, field.ErrNotCanonical) {
			return nil, ErrOverflow
		}
		return nil, errors.Wrap(err, "scalar")
	}
	return &Scalar{e: e}, nil
}

// Zero returns the zero scalar.
func Zero() *Scalar {
	return &Scalar{e: Order().Zero()}
}

// One returns the scalar 1.
func One() *Scalar {
	return &Scalar{e: Order().One()}
}

// Order returns the scalar field s belongs to.
func (s *Scalar) Order() *field.Field {
	return s.e.Field()
}

// BigInt returns a copy of the value of s.
func (s *Scalar) BigInt() *big.Int {
	return s.e.BigInt()
}

// Bytes returns s as a fixed-length big-endian slice (32 bytes for secp256k1).
func (s *Scalar) Bytes() []byte {
	return s.e.Bytes()
}

// String returns s in hexadecimal.
func (s *Scalar) String() string {
	return s.e.String()
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s.e.IsZero()
}

// Equal reports whether s and other are equal.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.e.Equal(other.e)
}

// Cmp compares the canonical values of s and other and returns -1, 0 or +1.
func (s *Scalar) Cmp(other *Scalar) int {
	return s.e.BigInt().Cmp(other.e.BigInt())
}

// Add returns s + other mod n.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return &Scalar{e: s.e.Add(other.e)}
}

// Sub returns s - other mod n.
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return &Scalar{e: s.e.Sub(other.e)}
}

// Mul returns s · other mod n.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return &Scalar{e: s.e.Mul(other.e)}
}

// Negate returns -s mod n.
func (s *Scalar) Negate() *Scalar {
	return &Scalar{e: s.e.Negate()}
}

// Inverse returns s⁻¹ mod n, or field.ErrInverseUndefined for zero.
func (s *Scalar) Inverse() (*Scalar, error) {
	inv, err := s.e.Inverse()
	if err != nil {
		return nil, err
	}
	return &Scalar{e: inv}, nil
}

// BitLen returns the length of s in bits; zero has length 0.
func (s *Scalar) BitLen() int {
	return s.e.BigInt().BitLen()
}

// Bit returns bit i of s, counting from the least significant bit.
func (s *Scalar) Bit(i int) uint {
	return s.e.BigInt().Bit(i)
}

// Bits returns the bits of s from the most significant set bit down to bit 0.
func (s *Scalar) Bits() []uint {
	v := s.e.BigInt()
	bits := make([]uint, v.BitLen())
	for i := range bits {
		bits[i] = v.Bit(len(bits) - 1 - i)
	}
	return bits
}

// Clear drops the reference to the value of s and leaves it zero.
func (s *Scalar) Clear() {
	s.e = s.e.Field().Zero()
}
