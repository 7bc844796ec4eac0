package mpi

import (
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// windowSize returns the exponent window width: 1 bit for exponents that fit
// in a single word, 4 bits otherwise.
func windowSize(e *Int) int {
	if e.BitLen() <= wordBits {
		return 1
	}
	return 4
}

// windowExp computes g^e with a left-to-right sliding window over the bits
// of e, using a table of the odd powers g, g^3, ..., g^(2^d - 1).
func windowExp[T any](e *Int, g, one T, mul func(x, y T) T) T {
	d := windowSize(e)

	table := make([]T, 1<<(d-1))
	table[0] = g
	if len(table) > 1 {
		g2 := mul(g, g)
		for j := 1; j < len(table); j++ {
			table[j] = mul(table[j-1], g2)
		}
	}

	acc := one
	for i := e.BitLen() - 1; i >= 0; {
		if e.Bit(i) == 0 {
			acc = mul(acc, acc)
			i--
			continue
		}
		// Longest window e[i..l] of at most d bits ending in a set bit.
		l := max(i-d+1, 0)
		for e.Bit(l) == 0 {
			l++
		}
		var v int
		for j := i; j >= l; j-- {
			acc = mul(acc, acc)
			v = v<<1 | int(e.Bit(j))
		}
		acc = mul(acc, table[v>>1])
		i = l - 1
	}
	return acc
}

// ModExp sets z to base^e mod p and returns z. Odd moduli are handled in the
// Montgomery domain, even moduli with plain modular multiplication; both give
// the same result.
func (z *Int) ModExp(base, e, p *Int) (*Int, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	if e.Sign() < 0 {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "mpi: negative exponent")
	}
	if CmpInt(p, 1) == 0 {
		return z.SetInt64(0), nil
	}

	g := new(Int).modMag(base, p)
	if p.IsOdd() {
		return z.Set(newMontgomery(p).exp(g, e)), nil
	}

	mul := func(x, y *Int) *Int {
		r := new(Int).Mul(x, y)
		return r.modMag(r, p)
	}
	return z.Set(windowExp(e, g, NewInt(1), mul)), nil
}

// montgomery holds the precomputed values for multiplication modulo an odd p
// with R = 2^(32k), k the word length of p.
type montgomery struct {
	p  []uint32
	k  int
	m  uint32 // -p^-1 mod 2^32
	rr []uint32
}

func newMontgomery(p *Int) *montgomery {
	k := p.Len()
	pw := p.Words(k)

	// Newton iteration for p0^-1 mod 2^32. The start value is correct to two
	// bits and every round doubles the precision.
	p0 := pw[0]
	inv := 2 - p0
	for range 4 {
		inv *= 2 - inv*p0
	}

	r2 := new(Int).SetBit(2*k*wordBits, 1)
	r2.modMag(r2, p)

	return &montgomery{p: pw, k: k, m: -inv, rr: r2.Words(k)}
}

// mul returns a*b*R^-1 mod p for a, b < p given as k words.
func (mt *montgomery) mul(a, b []uint32) []uint32 {
	k := mt.k
	t := make([]uint32, 2*k+2)
	for i, w := range b {
		if w != 0 {
			mulAddWord(t[i:], a, w)
		}
	}
	for i := 0; i < k; i++ {
		u := t[i] * mt.m
		mulAddWord(t[i:], mt.p, u)
	}
	r := t[k:]
	if cmpWords(r, mt.p) >= 0 {
		subInPlace(r, mt.p)
	}
	return r[:k]
}

func (mt *montgomery) exp(g, e *Int) *Int {
	one := make([]uint32, mt.k)
	one[0] = 1

	gm := mt.mul(g.Words(mt.k), mt.rr)
	oneM := mt.mul(one, mt.rr)
	acc := windowExp(e, gm, oneM, mt.mul)
	return FromWords(mt.mul(acc, one))
}
