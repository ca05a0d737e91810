// Package curve holds the domain parameters of short Weierstrass curves
// y² = x³ + a·x + b over a prime field, and the secp256k1 constants.
//
// Params values are immutable once built: every accessor returns a copy, so
// a single instance can be shared by the whole process.
package curve

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/bigint"
)

// ErrInvalidParams is returned by New when a definition is inconsistent.
var ErrInvalidParams = errors.New("curve: invalid domain parameters")

// Literal is an integer constant written in the given base.
type Literal struct {
	Value string
	Base  int
}

// Definition describes a curve by its textual constants.
type Definition struct {
	Name string
	P    Literal // field prime
	A    Literal // linear coefficient
	B    Literal // constant coefficient
	Gx   Literal // base point x
	Gy   Literal // base point y
	N    Literal // order of the base point
}

// Params are the parsed, validated domain parameters of a curve.
type Params struct {
	name    string
	p       *big.Int
	a       *big.Int
	b       *big.Int
	gx      *big.Int
	gy      *big.Int
	n       *big.Int
	bitSize int
}

// New parses and validates def.
func New(def Definition) (*Params, error) {
	parse := func(label string, l Literal) (*big.Int, error) {
		v, err := bigint.Parse(l.Value, l.Base)
		if err != nil {
			return nil, errors.Wrapf(err, "curve %s: parameter %s", def.Name, label)
		}
		return v, nil
	}

	var (
		params = &Params{name: def.Name}
		err    error
	)
	if params.p, err = parse("P", def.P); err != nil {
		return nil, err
	}
	if params.a, err = parse("A", def.A); err != nil {
		return nil, err
	}
	if params.b, err = parse("B", def.B); err != nil {
		return nil, err
	}
	if params.gx, err = parse("Gx", def.Gx); err != nil {
		return nil, err
	}
	if params.gy, err = parse("Gy", def.Gy); err != nil {
		return nil, err
	}
	if params.n, err = parse("N", def.N); err != nil {
		return nil, err
	}
	params.bitSize = params.p.BitLen()

	if err := params.validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func (c *Params) validate() error {
	if c.p.Cmp(big.NewInt(3)) <= 0 || c.p.Bit(0) == 0 {
		return errors.Wrapf(ErrInvalidParams, "%s: field prime must be odd and greater than 3", c.name)
	}
	if c.n.Cmp(big.NewInt(2)) <= 0 || c.n.Bit(0) == 0 {
		return errors.Wrapf(ErrInvalidParams, "%s: group order must be an odd prime", c.name)
	}
	for label, v := range map[string]*big.Int{"A": c.a, "B": c.b, "Gx": c.gx, "Gy": c.gy} {
		if v.Cmp(c.p) >= 0 {
			return errors.Wrapf(ErrInvalidParams, "%s: %s is not reduced modulo P", c.name, label)
		}
	}

	// y² = x³ + a·x + b at the base point
	lhs := new(big.Int).Mul(c.gy, c.gy)
	lhs.Mod(lhs, c.p)
	rhs := new(big.Int).Mul(c.gx, c.gx)
	rhs.Add(rhs, c.a)
	rhs.Mul(rhs, c.gx)
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)
	if lhs.Cmp(rhs) != 0 {
		return errors.Wrapf(ErrInvalidParams, "%s: base point is not on the curve", c.name)
	}
	return nil
}

// Name returns the canonical name of the curve.
func (c *Params) Name() string { return c.name }

// P returns the field prime.
func (c *Params) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns the linear coefficient of the curve equation.
func (c *Params) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the constant coefficient of the curve equation.
func (c *Params) B() *big.Int { return new(big.Int).Set(c.b) }

// Gx returns the x coordinate of the base point.
func (c *Params) Gx() *big.Int { return new(big.Int).Set(c.gx) }

// Gy returns the y coordinate of the base point.
func (c *Params) Gy() *big.Int { return new(big.Int).Set(c.gy) }

// N returns the order of the base point.
func (c *Params) N() *big.Int { return new(big.Int).Set(c.n) }

// BitSize returns the bit length of the field prime.
func (c *Params) BitSize() int { return c.bitSize }

// secp256k1 constants, see https://www.secg.org/sec2-v2.pdf section 2.4.1.
var secp256k1Definition = Definition{
	Name: "secp256k1",
	P:    Literal{"115792089237316195423570985008687907853269984665640564039457584007908834671663", 10},
	A:    Literal{"0000000000000000000000000000000000000000000000000000000000000000", 16},
	B:    Literal{"0000000000000000000000000000000000000000000000000000000000000007", 16},
	Gx:   Literal{"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16},
	Gy:   Literal{"483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16},
	N:    Literal{"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16},
}

var secp256k1 = sync.OnceValue(func() *Params {
	params, err := New(secp256k1Definition)
	if err != nil {
		panic(err)
	}
	return params
})

// Secp256k1 returns the shared secp256k1 parameters.
func Secp256k1() *Params {
	return secp256k1()
}
