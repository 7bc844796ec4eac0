package ec

import (
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
)

// ScalarMult returns d*p using the signed binary method driven by the bits of
// h = 3d: where h and d differ, p is added or subtracted after doubling.
// Negative d multiplies -p by |d|.
func (c *Curve) ScalarMult(d *mpi.Int, p Point) Point {
	if d.Sign() < 0 {
		return c.ScalarMult(new(mpi.Int).Abs(d), c.Negate(p))
	}
	if d.IsZero() || p.IsInfinity() {
		return Infinity()
	}
	if mpi.CmpInt(d, 1) == 0 {
		return p
	}

	h := new(mpi.Int).MulInt(d, 3)
	r := p
	for i := h.BitLen() - 2; i >= 1; i-- {
		r = c.Double(r)
		switch hi, di := h.Bit(i), d.Bit(i); {
		case hi == 1 && di == 0:
			r = c.FullAdd(r, p)
		case hi == 0 && di == 1:
			r = c.FullSubtract(r, p)
		}
	}
	return r
}

// twinThreshold maps a 5-bit window value to the bound used when recoding
// the joint digits in TwinMult.
func twinThreshold(t uint32) uint32 {
	switch {
	case 18 <= t && t < 22:
		return 9
	case 14 <= t && t < 18:
		return 10
	case 22 <= t && t < 24:
		return 11
	case 4 <= t && t < 12:
		return 14
	default:
		return 12
	}
}

// twinDigit returns the signed digit selected by the 6-bit state c given the
// folded window value of the other scalar.
func twinDigit(c, other uint32) int {
	if folded(c) < twinThreshold(other) {
		return 0
	}
	if c&0x20 != 0 {
		return -1
	}
	return 1
}

// folded returns the low five bits of c, complemented when bit 5 is set.
func folded(c uint32) uint32 {
	h := c & 0x1f
	if c&0x20 != 0 {
		h = 31 - h
	}
	return h
}

// TwinMult returns d0*s + d1*t in a single pass of doublings, adding or
// subtracting one of s, t, s+t or s-t per bit. Both scalars must be
// non-negative.
func (c *Curve) TwinMult(d0 *mpi.Int, s Point, d1 *mpi.Int, t Point) Point {
	spt := c.FullAdd(s, t)
	smt := c.FullSubtract(s, t)

	m := max(d0.BitLen(), d1.BitLen())

	// Each state holds six bits of its scalar, starting from the top four.
	state := func(d *mpi.Int) uint32 {
		var v uint32
		for j := 1; j <= 4; j++ {
			v |= uint32(d.Bit(m-j)) << (4 - j)
		}
		return v
	}
	c0, c1 := state(d0), state(d1)

	r := Infinity()
	for k := m; k >= 0; k-- {
		u0 := twinDigit(c0, folded(c1))
		u1 := twinDigit(c1, folded(c0))

		c0 = c0<<1 | uint32(d0.Bit(k-5))
		c1 = c1<<1 | uint32(d1.Bit(k-5))
		if u0 != 0 {
			c0 ^= 0x20
		}
		if u1 != 0 {
			c1 ^= 0x20
		}
		// Only the low six bits carry state.
		c0 &= 0x3f
		c1 &= 0x3f

		r = c.Double(r)
		switch {
		case u0 == -1 && u1 == -1:
			r = c.FullSubtract(r, spt)
		case u0 == -1 && u1 == 0:
			r = c.FullSubtract(r, s)
		case u0 == -1 && u1 == 1:
			r = c.FullSubtract(r, smt)
		case u0 == 0 && u1 == -1:
			r = c.FullSubtract(r, t)
		case u0 == 0 && u1 == 1:
			r = c.FullAdd(r, t)
		case u0 == 1 && u1 == -1:
			r = c.FullAdd(r, smt)
		case u0 == 1 && u1 == 0:
			r = c.FullAdd(r, s)
		case u0 == 1 && u1 == 1:
			r = c.FullAdd(r, spt)
		}
	}
	return r
}
