package group

import (
	"github.com/rafaelescrich/secp256k1-keygen/field"
	"github.com/rafaelescrich/secp256k1-keygen/scalar"
)

// jacobianPoint is (X, Y, Z) standing for the affine point (X/Z², Y/Z³).
// Z = 0 is the point at infinity.
type jacobianPoint struct {
	x, y, z *field.Element
}

func (c *Curve) toJacobian(p *Point) *jacobianPoint {
	if p.infinity {
		return c.jacobianInfinity()
	}
	return &jacobianPoint{x: p.x, y: p.y, z: c.field.One()}
}

func (c *Curve) jacobianInfinity() *jacobianPoint {
	return &jacobianPoint{x: c.field.One(), y: c.field.One(), z: c.field.Zero()}
}

func (c *Curve) fromJacobian(jp *jacobianPoint) *Point {
	zInv, err := jp.z.Inverse()
	if err != nil {
		return c.Infinity()
	}
	zInv2 := zInv.Square()
	return &Point{x: jp.x.Mul(zInv2), y: jp.y.Mul(zInv2).Mul(zInv)}
}

// jacobianAdd follows add-2007-bl,
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#addition-add-2007-bl
func (c *Curve) jacobianAdd(p1, p2 *jacobianPoint) *jacobianPoint {
	if p1.z.IsZero() {
		return p2
	}
	if p2.z.IsZero() {
		return p1
	}

	z1z1 := p1.z.Square()
	z2z2 := p2.z.Square()
	u1 := p1.x.Mul(z2z2)
	u2 := p2.x.Mul(z1z1)
	s1 := p1.y.Mul(p2.z).Mul(z2z2)
	s2 := p2.y.Mul(p1.z).Mul(z1z1)

	h := u2.Sub(u1)
	if h.IsZero() {
		if s1.Equal(s2) {
			return c.jacobianDouble(p1)
		}
		return c.jacobianInfinity()
	}

	i := h.MulInt64(2).Square()
	j := h.Mul(i)
	r := s2.Sub(s1).MulInt64(2)
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.MulInt64(2))
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).MulInt64(2))
	z3 := p1.z.Add(p2.z).Square().Sub(z1z1).Sub(z2z2).Mul(h)
	return &jacobianPoint{x: x3, y: y3, z: z3}
}

// jacobianDouble follows dbl-2007-bl, which allows any a,
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
func (c *Curve) jacobianDouble(p *jacobianPoint) *jacobianPoint {
	if p.z.IsZero() || p.y.IsZero() {
		return c.jacobianInfinity()
	}

	xx := p.x.Square()
	yy := p.y.Square()
	yyyy := yy.Square()
	zz := p.z.Square()

	s := p.x.Add(yy).Square().Sub(xx).Sub(yyyy).MulInt64(2)
	m := xx.MulInt64(3).Add(c.a.Mul(zz.Square()))
	t := m.Square().Sub(s.MulInt64(2))

	y3 := m.Mul(s.Sub(t)).Sub(yyyy.MulInt64(8))
	z3 := p.y.Add(p.z).Square().Sub(yy).Sub(zz)
	return &jacobianPoint{x: t, y: y3, z: z3}
}

// ScalarMultJacobian computes k·p like ScalarMult but keeps the accumulator in
// Jacobian coordinates, so only one inversion is performed.
func (c *Curve) ScalarMultJacobian(k *scalar.Scalar, p *Point) *Point {
	if k.IsZero() || p.infinity {
		return c.Infinity()
	}

	addend := c.toJacobian(p)
	acc := c.jacobianInfinity()
	for _, bit := range k.Bits() {
		acc = c.jacobianDouble(acc)
		if bit == 1 {
			acc = c.jacobianAdd(acc, addend)
		}
	}
	return c.fromJacobian(acc)
}
