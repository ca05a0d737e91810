// Package group implements the group of points of a short Weierstrass curve
// y² = x³ + a·x + b over a prime field, in affine coordinates, together with
// double-and-add scalar multiplication.
//
// Every point handed out by this package lies on its curve or is the point at
// infinity. Points built from outside coordinates go through NewPoint or
// ParsePoint, which validate them first.
//
// None of the operations run in constant time: scalar multiplication branches
// on the bits of the scalar and inversion is variable time.
package group

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/curve"
	"github.com/rafaelescrich/secp256k1-keygen/field"
	"github.com/rafaelescrich/secp256k1-keygen/scalar"
)

// ErrCurveViolation is returned for coordinates that do not describe a point
// of the curve.
var ErrCurveViolation = errors.New("group: point is not on the curve")

// Curve performs point arithmetic for one set of domain parameters.
type Curve struct {
	params *curve.Params
	field  *field.Field
	order  *field.Field
	a, b   *field.Element
	g      *Point
}

// New returns the arithmetic engine for params.
func New(params *curve.Params) *Curve {
	f := field.New(params.P())
	c := &Curve{
		params: params,
		field:  f,
		order:  field.New(params.N()),
		a:      f.NewElement(params.A()),
		b:      f.NewElement(params.B()),
	}
	// curve.New already checked that G is on the curve.
	c.g = &Point{x: f.NewElement(params.Gx()), y: f.NewElement(params.Gy())}
	return c
}

var secp256k1 = sync.OnceValue(func() *Curve {
	c := New(curve.Secp256k1())
	c.order = scalar.Order()
	return c
})

// Secp256k1 returns the shared secp256k1 engine.
func Secp256k1() *Curve {
	return secp256k1()
}

// Params returns the domain parameters of c.
func (c *Curve) Params() *curve.Params {
	return c.params
}

// Field returns the base field of c.
func (c *Curve) Field() *field.Field {
	return c.field
}

// Order returns the scalar field, integers modulo the order of the base point.
func (c *Curve) Order() *field.Field {
	return c.order
}

// NewScalar returns k reduced modulo the order of c.
func (c *Curve) NewScalar(k *big.Int) *scalar.Scalar {
	return scalar.NewWithOrder(c.order, k)
}

// Point is an affine point or the point at infinity. Points are immutable.
type Point struct {
	x, y     *field.Element
	infinity bool
}

// Infinity returns the identity element.
func (c *Curve) Infinity() *Point {
	return &Point{infinity: true}
}

// Generator returns the base point G.
func (c *Curve) Generator() *Point {
	return c.g
}

// IsOnCurve reports whether y² ≡ x³ + a·x + b (mod p). Coordinates are reduced
// modulo p first; use NewPoint to also reject unreduced input.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	return c.contains(c.field.NewElement(x), c.field.NewElement(y))
}

func (c *Curve) contains(x, y *field.Element) bool {
	return y.Square().Equal(c.rhs(x))
}

// rhs evaluates x³ + a·x + b.
func (c *Curve) rhs(x *field.Element) *field.Element {
	return x.Square().Add(c.a).Mul(x).Add(c.b)
}

// NewPoint validates (x, y) and returns the point it describes. Coordinates
// outside [0, p) or off the curve yield an error wrapping ErrCurveViolation.
func (c *Curve) NewPoint(x, y *big.Int) (*Point, error) {
	p := c.field.Modulus()
	for _, v := range []*big.Int{x, y} {
		if v == nil || v.Sign() < 0 || v.Cmp(p) >= 0 {
			return nil, errors.Wrapf(ErrCurveViolation, "coordinate %v out of range", v)
		}
	}

	px, py := c.field.NewElement(x), c.field.NewElement(y)
	if !c.contains(px, py) {
		return nil, errors.Wrapf(ErrCurveViolation, "(%s, %s)", px, py)
	}
	return &Point{x: px, y: py}, nil
}

// Contains reports whether p is the identity or a point of c.
func (c *Curve) Contains(p *Point) bool {
	if p.infinity {
		return true
	}
	return p.x.Field().Equal(c.field) && c.contains(p.x, p.y)
}

// Add returns p1 + p2.
func (c *Curve) Add(p1, p2 *Point) *Point {
	if p1.infinity {
		return p2
	}
	if p2.infinity {
		return p1
	}

	var (
		lambda *field.Element
		err    error
	)
	if p1.x.Equal(p2.x) {
		if p1.y.Add(p2.y).IsZero() {
			// p2 = -p1, which includes doubling a point with y = 0
			return c.Infinity()
		}
		// λ = (3x₁² + a) / 2y₁
		lambda, err = c.div(p1.x.Square().MulInt64(3).Add(c.a), p1.y.MulInt64(2))
	} else {
		// λ = (y₂ - y₁) / (x₂ - x₁)
		lambda, err = c.div(p2.y.Sub(p1.y), p2.x.Sub(p1.x))
	}
	if err != nil {
		// a zero denominator only arises for inverse points
		return c.Infinity()
	}

	x3 := lambda.Square().Sub(p1.x).Sub(p2.x)
	y3 := lambda.Mul(p1.x.Sub(x3)).Sub(p1.y)
	return &Point{x: x3, y: y3}
}

func (c *Curve) div(num, den *field.Element) (*field.Element, error) {
	inv, err := den.Inverse()
	if err != nil {
		return nil, err
	}
	return num.Mul(inv), nil
}

// Double returns 2·p.
func (c *Curve) Double(p *Point) *Point {
	return c.Add(p, p)
}

// Negate returns -p, the reflection of p across the x axis.
func (c *Curve) Negate(p *Point) *Point {
	if p.infinity {
		return p
	}
	return &Point{x: p.x, y: p.y.Negate()}
}

// ScalarMult returns k·p using left-to-right double-and-add. Only the value of
// k matters, so a scalar of any order may be used.
func (c *Curve) ScalarMult(k *scalar.Scalar, p *Point) *Point {
	result := c.Infinity()
	if k.IsZero() || p.infinity {
		return result
	}

	for _, bit := range k.Bits() {
		result = c.Double(result)
		if bit == 1 {
			result = c.Add(result, p)
		}
	}
	return result
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k *scalar.Scalar) *Point {
	return c.ScalarMult(k, c.g)
}

// String returns "(x, y)" in hexadecimal, or "infinity".
func (p *Point) String() string {
	if p.infinity {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
