package group

// Sub returns p1 - p2.
func (c *Curve) Sub(p1, p2 *Point) *Point {
	return c.Add(p1, c.Negate(p2))
}
