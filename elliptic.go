package secp256k1

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/rafaelescrich/secp256k1-keygen/group"
)

// ellipticCurve exposes a group.Curve through the crypto/elliptic interface.
// The point at infinity is (0, 0), as in crypto/elliptic.
type ellipticCurve struct {
	c      *group.Curve
	params *elliptic.CurveParams
}

var s256 = sync.OnceValue(func() *ellipticCurve {
	c := group.Secp256k1()
	p := c.Params()
	return &ellipticCurve{
		c: c,
		params: &elliptic.CurveParams{
			P:       p.P(),
			N:       p.N(),
			B:       p.B(),
			Gx:      p.Gx(),
			Gy:      p.Gy(),
			BitSize: p.BitSize(),
			Name:    p.Name(),
		},
	}
})

// S256 returns secp256k1 as an elliptic.Curve.
func S256() elliptic.Curve {
	return s256()
}

func (e *ellipticCurve) Params() *elliptic.CurveParams {
	return e.params
}

func (e *ellipticCurve) IsOnCurve(x, y *big.Int) bool {
	_, err := e.c.NewPoint(x, y)
	return err == nil
}

func (e *ellipticCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return e.affine(e.c.Add(e.point(x1, y1), e.point(x2, y2)))
}

func (e *ellipticCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	return e.affine(e.c.Double(e.point(x1, y1)))
}

func (e *ellipticCurve) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	return e.affine(e.c.ScalarMult(e.c.NewScalar(new(big.Int).SetBytes(k)), e.point(x1, y1)))
}

func (e *ellipticCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return e.affine(e.c.ScalarBaseMult(e.c.NewScalar(new(big.Int).SetBytes(k))))
}

// point panics on coordinates off the curve, like crypto/elliptic does.
func (e *ellipticCurve) point(x, y *big.Int) *group.Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return e.c.Infinity()
	}
	p, err := e.c.NewPoint(x, y)
	if err != nil {
		panic("secp256k1: elliptic operation on an invalid point: " + err.Error())
	}
	return p
}

func (e *ellipticCurve) affine(p *group.Point) (*big.Int, *big.Int) {
	return p.X(), p.Y()
}
