package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrInverseUndefined is returned when inverting zero.
var ErrInverseUndefined = errors.New("field: inverse of zero is undefined")

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// Inverse returns e⁻¹ mod p using the extended Euclidean algorithm.
func (e *Element) Inverse() (*Element, error) {
	if e.IsZero() {
		return nil, ErrInverseUndefined
	}
	inv := new(big.Int).ModInverse(e.v, e.f.p)
	if inv == nil {
		// only reachable for a composite modulus
		return nil, errors.Wrapf(ErrInverseUndefined, "%s shares a factor with the modulus", e)
	}
	return &Element{f: e.f, v: inv}, nil
}

// InverseFermat returns e⁻¹ mod p as e^(p-2), which holds because p is prime.
func (e *Element) InverseFermat() (*Element, error) {
	if e.IsZero() {
		return nil, ErrInverseUndefined
	}
	return e.Exp(new(big.Int).Sub(e.f.p, two)), nil
}

// Sqrt returns a square root of e and true, or nil and false when e is not a
// quadratic residue. Only primes p ≡ 3 (mod 4) are supported, where the root
// is e^((p+1)/4); other moduli report false.
func (e *Element) Sqrt() (*Element, bool) {
	if new(big.Int).Mod(e.f.p, four).Cmp(three) != 0 {
		return nil, false
	}
	if e.IsZero() {
		return e.f.Zero(), true
	}

	exp := new(big.Int).Add(e.f.p, big.NewInt(1))
	exp.Rsh(exp, 2)
	root := e.Exp(exp)
	if !root.Square().Equal(e) {
		return nil, false
	}
	return root, true
}
