package ec

import (
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
)

// Field helpers. Operands are reduced elements of GF(p); results are new
// reduced elements.

func (c *Curve) mul(x, y *mpi.Int) *mpi.Int {
	return c.Domain.Reduce(new(mpi.Int).Mul(x, y))
}

func (c *Curve) sqr(x *mpi.Int) *mpi.Int {
	return c.mul(x, x)
}

func (c *Curve) add(x, y *mpi.Int) *mpi.Int {
	z := new(mpi.Int).Add(x, y)
	if mpi.Cmp(z, c.Domain.P) >= 0 {
		z.Sub(z, c.Domain.P)
	}
	return z
}

func (c *Curve) sub(x, y *mpi.Int) *mpi.Int {
	z := new(mpi.Int).Sub(x, y)
	if z.Sign() < 0 {
		z.Add(z, c.Domain.P)
	}
	return z
}

// small multiplies x by a small constant.
func (c *Curve) small(x *mpi.Int, k int64) *mpi.Int {
	return c.Domain.Reduce(new(mpi.Int).MulInt(x, k))
}
