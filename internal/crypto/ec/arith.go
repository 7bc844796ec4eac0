package ec

import (
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
)

// Double returns 2p using the doubling formula for arbitrary a.
func (c *Curve) Double(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}

	// 1. S = 4*X*Y^2
	y2 := c.sqr(p.Y)
	s := c.small(c.mul(p.X, y2), 4)

	// 2. M = 3*X^2 + a*Z^4
	m := c.small(c.sqr(p.X), 3)
	if !c.Domain.A.IsZero() {
		z2 := c.sqr(p.Z)
		m = c.add(m, c.mul(c.Domain.A, c.sqr(z2)))
	}

	// 3. X3 = M^2 - 2*S
	x3 := c.sub(c.sqr(m), c.add(s, s))

	// 4. Y3 = M*(S - X3) - 8*Y^4
	y3 := c.sub(c.mul(m, c.sub(s, x3)), c.small(c.sqr(y2), 8))

	// 5. Z3 = 2*Y*Z
	z3 := c.small(c.mul(p.Y, p.Z), 2)

	if z3.IsZero() {
		return Infinity()
	}
	return Point{X: x3, Y: y3, Z: z3}
}

// Add returns p+q for finite points. When p and q are the same point the
// result is the marker (0, 0, 0) and the caller has to double instead; when
// q = -p the result is the point at infinity.
func (c *Curve) Add(p, q Point) Point {
	// 1. U1 = X1*Z2^2, S1 = Y1*Z2^3
	z2sq := c.sqr(q.Z)
	u1 := c.mul(p.X, z2sq)
	s1 := c.mul(p.Y, c.mul(z2sq, q.Z))

	// 2. U2 = X2*Z1^2, S2 = Y2*Z1^3
	z1sq := c.sqr(p.Z)
	u2 := c.mul(q.X, z1sq)
	s2 := c.mul(q.Y, c.mul(z1sq, p.Z))

	// 3. H = U1 - U2, R = S1 - S2
	h := c.sub(u1, u2)
	r := c.sub(s1, s2)
	if h.IsZero() {
		if r.IsZero() {
			return Point{X: mpi.NewInt(0), Y: mpi.NewInt(0), Z: mpi.NewInt(0)}
		}
		return Infinity()
	}

	// 4. X3 = R^2 - (U1 + U2)*H^2
	h2 := c.sqr(h)
	h3 := c.mul(h2, h)
	x3 := c.sub(c.sqr(r), c.mul(c.add(u1, u2), h2))

	// 5. Y3 = R*(U1*H^2 - X3) - S1*H^3
	y3 := c.sub(c.mul(r, c.sub(c.mul(u1, h2), x3)), c.mul(s1, h3))

	// 6. Z3 = Z1*Z2*H
	z3 := c.mul(c.mul(p.Z, q.Z), h)

	return Point{X: x3, Y: y3, Z: z3}
}

// FullAdd returns p+q for any two points, including the point at infinity
// and p = q.
func (c *Curve) FullAdd(p, q Point) Point {
	switch {
	case p.IsInfinity():
		return q
	case q.IsInfinity():
		return p
	}
	r := c.Add(p, q)
	if r.isDegenerate() {
		return c.Double(p)
	}
	return r
}

// Negate returns -p = (X, p - Y, Z).
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return Point{X: p.X, Y: c.sub(mpi.NewInt(0), p.Y), Z: p.Z}
}

// FullSubtract returns p-q.
func (c *Curve) FullSubtract(p, q Point) Point {
	return c.FullAdd(p, c.Negate(q))
}
