package group

import "math/big"

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// X returns a copy of the x coordinate, or zero for the point at infinity.
func (p *Point) X() *big.Int {
	if p.infinity {
		return new(big.Int)
	}
	return p.x.BigInt()
}

// Y returns a copy of the y coordinate, or zero for the point at infinity.
func (p *Point) Y() *big.Int {
	if p.infinity {
		return new(big.Int)
	}
	return p.y.BigInt()
}

// IsEven reports whether the y coordinate is even. The point at infinity is
// considered even.
func (p *Point) IsEven() bool {
	if p.infinity {
		return true
	}
	return !p.y.IsOdd()
}

// Equal reports whether p and other are the same point.
func (p *Point) Equal(other *Point) bool {
	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}
