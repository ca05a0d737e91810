package secp256k1

import (
	"github.com/rafaelescrich/secp256k1-keygen/group"
	"github.com/rafaelescrich/secp256k1-keygen/scalar"
)

const windowBits = 4

// Context holds the multiples 0·G … 15·G of a curve's generator and uses
// them for fixed-window base point multiplication.
type Context struct {
	curve        *group.Curve
	precomputedG [1 << windowBits]*group.Point
}

// NewContext precomputes the table for c, or for secp256k1 when c is nil.
func NewContext(c *group.Curve) *Context {
	if c == nil {
		c = group.Secp256k1()
	}
	ctx := &Context{curve: c}

	g := c.Generator()
	ctx.precomputedG[0] = c.Infinity()
	for i := 1; i < len(ctx.precomputedG); i++ {
		ctx.precomputedG[i] = c.Add(ctx.precomputedG[i-1], g)
	}
	return ctx
}

// Curve returns the curve the table was built for.
func (ctx *Context) Curve() *group.Curve {
	return ctx.curve
}

// ScalarBaseMult returns k·G, consuming k four bits at a time from the most
// significant end: four doublings then one table addition per window.
func (ctx *Context) ScalarBaseMult(k *scalar.Scalar) *group.Point {
	c := ctx.curve
	result := c.Infinity()

	windows := (k.BitLen() + windowBits - 1) / windowBits
	for w := windows - 1; w >= 0; w-- {
		for j := 0; j < windowBits; j++ {
			result = c.Double(result)
		}

		var nibble uint
		for j := windowBits - 1; j >= 0; j-- {
			nibble = nibble<<1 | k.Bit(w*windowBits+j)
		}
		if nibble != 0 {
			result = c.Add(result, ctx.precomputedG[nibble])
		}
	}
	return result
}

// ValidatePrecomputedTables recomputes every entry i·G with plain scalar
// multiplication and reports whether the table matches.
func (ctx *Context) ValidatePrecomputedTables() bool {
	for i, p := range ctx.precomputedG {
		if p == nil || !ctx.curve.ScalarBaseMult(scalar.FromInt64(int64(i))).Equal(p) {
			return false
		}
	}
	return true
}
