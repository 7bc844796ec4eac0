package ec

import (
	"fmt"

	"github.com/smallyu/go-mpicrypto/internal/crypto/curves"
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// Point is a curve point in Jacobian coordinates.
type Point struct {
	X, Y, Z *mpi.Int
}

// Infinity returns the point at infinity (1, 1, 0).
func Infinity() Point {
	return Point{X: mpi.NewInt(1), Y: mpi.NewInt(1), Z: mpi.NewInt(0)}
}

// NewAffine returns the projective form (x, y, 1) of an affine point.
func NewAffine(x, y *mpi.Int) Point {
	return Point{X: x.Clone(), Y: y.Clone(), Z: mpi.NewInt(1)}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.Z == nil || p.Z.IsZero()
}

// isDegenerate reports whether p is the (0, 0, 0) marker Add returns when
// both operands are the same point.
func (p Point) isDegenerate() bool {
	return p.X.IsZero() && p.Y.IsZero() && p.Z.IsZero()
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X, p.Y, p.Z)
}

// Curve binds point operations to a curve domain.
type Curve struct {
	Domain *curves.Domain
}

// NewCurve returns the point engine for d.
func NewCurve(d *curves.Domain) *Curve {
	return &Curve{Domain: d}
}

// Generator returns the base point G in projective form.
func (c *Curve) Generator() Point {
	return NewAffine(c.Domain.Gx, c.Domain.Gy)
}

// Projectify returns the projective form of the affine point (x, y).
func (c *Curve) Projectify(x, y *mpi.Int) Point {
	return NewAffine(x, y)
}

// Affinify scales p to Z = 1. It fails with ErrInvalidParameter for the point
// at infinity.
func (c *Curve) Affinify(p Point) (Point, error) {
	if p.IsInfinity() {
		return Point{}, cryptoerr.New(cryptoerr.ErrInvalidParameter, "ec: point at infinity has no affine form")
	}
	a, err := new(mpi.Int).InverseMod(p.Z, c.Domain.P)
	if err != nil {
		return Point{}, fmt.Errorf("ec: affinify: %w", err)
	}
	a2 := c.sqr(a)
	x := c.mul(a2, p.X)
	y := c.mul(c.mul(a2, a), p.Y)
	return Point{X: x, Y: y, Z: mpi.NewInt(1)}, nil
}

// Equal reports whether p and q are the same point, comparing
// X1*Z2^2 = X2*Z1^2 and Y1*Z2^3 = Y2*Z1^3.
func (c *Curve) Equal(p, q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	pz2, qz2 := c.sqr(p.Z), c.sqr(q.Z)
	if mpi.Cmp(c.mul(p.X, qz2), c.mul(q.X, pz2)) != 0 {
		return false
	}
	return mpi.Cmp(c.mul(p.Y, c.mul(qz2, q.Z)), c.mul(q.Y, c.mul(pz2, p.Z))) == 0
}

// IsOnCurve reports whether the affine point (x, y) has coordinates in
// [0, p) and satisfies y^2 = x^3 + a*x + b.
func (c *Curve) IsOnCurve(x, y *mpi.Int) bool {
	p := c.Domain.P
	if x.Sign() < 0 || y.Sign() < 0 || mpi.Cmp(x, p) >= 0 || mpi.Cmp(y, p) >= 0 {
		return false
	}
	rhs := c.add(c.mul(c.add(c.sqr(x), c.Domain.A), x), c.Domain.B)
	return mpi.Cmp(c.sqr(y), rhs) == 0
}
