package group

import (
	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/field"
)

// SEC 1 point encoding prefixes.
const (
	PrefixInfinity     byte = 0x00
	PrefixEven         byte = 0x02
	PrefixOdd          byte = 0x03
	PrefixUncompressed byte = 0x04
)

// ErrInvalidEncoding is returned by ParsePoint for input that is not a SEC 1
// point encoding of the right size.
var ErrInvalidEncoding = errors.New("group: invalid point encoding")

// SerializeCompressed returns the parity prefix followed by x. The point at
// infinity encodes as the single byte 0x00.
func (p *Point) SerializeCompressed() []byte {
	if p.infinity {
		return []byte{PrefixInfinity}
	}
	prefix := PrefixEven
	if p.y.IsOdd() {
		prefix = PrefixOdd
	}
	return append([]byte{prefix}, p.x.Bytes()...)
}

// SerializeUncompressed returns 0x04 followed by x and y. The point at
// infinity encodes as the single byte 0x00.
func (p *Point) SerializeUncompressed() []byte {
	if p.infinity {
		return []byte{PrefixInfinity}
	}
	out := append([]byte{PrefixUncompressed}, p.x.Bytes()...)
	return append(out, p.y.Bytes()...)
}

// ParsePoint decodes a compressed, uncompressed or infinity encoding and
// checks that the result lies on c.
func (c *Curve) ParsePoint(b []byte) (*Point, error) {
	size := c.field.ByteLen()
	if len(b) == 0 {
		return nil, errors.Wrap(ErrInvalidEncoding, "empty input")
	}

	switch prefix := b[0]; {
	case prefix == PrefixInfinity && len(b) == 1:
		return c.Infinity(), nil

	case prefix == PrefixUncompressed && len(b) == 1+2*size:
		x, err := c.coordinate(b[1 : 1+size])
		if err != nil {
			return nil, err
		}
		y, err := c.coordinate(b[1+size:])
		if err != nil {
			return nil, err
		}
		if !c.contains(x, y) {
			return nil, errors.Wrapf(ErrCurveViolation, "(%s, %s)", x, y)
		}
		return &Point{x: x, y: y}, nil

	case (prefix == PrefixEven || prefix == PrefixOdd) && len(b) == 1+size:
		x, err := c.coordinate(b[1:])
		if err != nil {
			return nil, err
		}
		return c.decompress(x, prefix == PrefixOdd)

	default:
		return nil, errors.Wrapf(ErrInvalidEncoding, "prefix 0x%02x with %d bytes", prefix, len(b))
	}
}

func (c *Curve) coordinate(b []byte) (*field.Element, error) {
	e, err := c.field.SetBytes(b)
	if err != nil {
		return nil, errors.Wrapf(ErrCurveViolation, "coordinate out of range: %v", err)
	}
	return e, nil
}

func (c *Curve) decompress(x *field.Element, odd bool) (*Point, error) {
	y, ok := c.rhs(x).Sqrt()
	if !ok {
		return nil, errors.Wrapf(ErrCurveViolation, "no point with x = %s", x)
	}
	if y.IsOdd() != odd {
		if y.IsZero() {
			return nil, errors.Wrapf(ErrCurveViolation, "no odd y for x = %s", x)
		}
		y = y.Negate()
	}
	return &Point{x: x, y: y}, nil
}
