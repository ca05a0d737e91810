// Package bigint is the arbitrary-precision integer layer shared by the curve
// packages. Arithmetic itself is math/big; this package adds strict literal
// parsing, fixed-length big-endian encoding and an unbiased random source.
package bigint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrOverflow is returned when a value does not fit the requested encoding.
var ErrOverflow = errors.New("bigint: value does not fit encoding")

// FormatError reports a literal that is not a valid non-negative integer in
// the stated base.
type FormatError struct {
	Input string
	Base  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bigint: invalid base-%d literal %q", e.Base, e.Input)
}

// Parse parses s as a non-negative integer in the given base. Signs, empty
// input and digits outside the base are rejected with a *FormatError. A
// leading "0x" is accepted for base 16.
func Parse(s string, base int) (*big.Int, error) {
	digits := s
	if base == 16 {
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	}
	if digits == "" || digits[0] == '-' || digits[0] == '+' || strings.Contains(digits, "_") {
		return nil, &FormatError{Input: s, Base: base}
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, &FormatError{Input: s, Base: base}
	}
	return v, nil
}

// ParseDecimal parses a base-10 literal.
func ParseDecimal(s string) (*big.Int, error) {
	return Parse(s, 10)
}

// ParseHex parses a base-16 literal.
func ParseHex(s string) (*big.Int, error) {
	return Parse(s, 16)
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level constants.
func MustParse(s string, base int) *big.Int {
	v, err := Parse(s, base)
	if err != nil {
		panic(err)
	}
	return v
}

// PaddedBytes returns v as a big-endian byte slice of exactly size bytes.
func PaddedBytes(v *big.Int, size int) ([]byte, error) {
	if v.Sign() < 0 || (v.BitLen()+7)/8 > size {
		return nil, errors.Wrapf(ErrOverflow, "%d bits into %d bytes", v.BitLen(), size)
	}
	return v.FillBytes(make([]byte, size)), nil
}

// Bytes32 returns v as a 32-byte big-endian array.
func Bytes32(v *big.Int) ([32]byte, error) {
	var out [32]byte
	b, err := PaddedBytes(v, 32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ByteLen is the number of bytes needed to hold any value below m.
func ByteLen(m *big.Int) int {
	return (m.BitLen() + 7) / 8
}
