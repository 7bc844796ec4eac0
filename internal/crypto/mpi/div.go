package mpi

import (
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

var errDivisionByZero = cryptoerr.New(cryptoerr.ErrDivisionByZero, "mpi: division by zero")

// shl1 shifts r left by one bit in place, shifting in bit.
func shl1(r []uint32, bit uint32) {
	for i := range r {
		next := r[i] >> (wordBits - 1)
		r[i] = r[i]<<1 | bit
		bit = next
	}
}

// subInPlace sets r to r-b. It requires r >= b.
func subInPlace(r, b []uint32) {
	var borrow uint64
	for i := range r {
		d := uint64(r[i]) - borrow
		if i < len(b) {
			d -= uint64(b[i])
		}
		r[i] = uint32(d)
		borrow = (d >> 32) & 1
	}
}

// divWords performs restoring binary long division of the magnitudes a and
// b. b must be non-zero. When q is nil only the remainder is tracked.
func divWords(a, b []uint32, q []uint32) []uint32 {
	r := make([]uint32, len(b)+1)
	x := Int{words: a}
	for i := x.BitLen() - 1; i >= 0; i-- {
		shl1(r, uint32(x.Bit(i)))
		if cmpWords(r, b) >= 0 {
			subInPlace(r, b)
			if q != nil {
				q[i/wordBits] |= 1 << (uint(i) % wordBits)
			}
		}
	}
	return r
}

// DivMod sets q to a/b truncated toward zero and r to a - q*b, and returns
// the pair. The remainder carries the sign of a.
func DivMod(a, b *Int) (q, r *Int, err error) {
	if b.IsZero() {
		return nil, nil, errDivisionByZero
	}
	aw, bw := a.words[:a.Len()], b.words[:b.Len()]

	qw := make([]uint32, len(aw))
	rw := divWords(aw, bw, qw)

	q = &Int{words: qw, neg: a.neg != b.neg}
	r = &Int{words: rw, neg: a.neg}
	return q.norm(), r.norm(), nil
}

// Div sets z to a/b truncated toward zero and returns z.
func (z *Int) Div(a, b *Int) (*Int, error) {
	q, _, err := DivMod(a, b)
	if err != nil {
		return nil, err
	}
	return z.Set(q), nil
}

func checkModulus(p *Int) error {
	if p.Sign() <= 0 {
		return cryptoerr.New(cryptoerr.ErrInvalidParameter, "mpi: modulus must be positive")
	}
	return nil
}

// Mod sets z to a mod p in [0, p) and returns z. p must be positive.
func (z *Int) Mod(a, p *Int) (*Int, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	z.modMag(a, p)
	return z, nil
}

// modMag is Mod without the modulus check.
func (z *Int) modMag(a, p *Int) *Int {
	neg := a.neg
	pw := p.words[:p.Len()]
	var rw []uint32
	if cmpWords(a.words, pw) < 0 {
		rw = a.Words(a.Len())
	} else {
		rw = divWords(a.words[:a.Len()], pw, nil)
	}
	z.words, z.neg = rw, false
	z.norm()
	if neg && !z.IsZero() {
		z.words, z.neg = subWords(pw, z.words), false
		z.norm()
	}
	return z
}

// AddMod sets z to (x+y) mod p and returns z.
func (z *Int) AddMod(x, y, p *Int) (*Int, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	return z.Add(x, y).modMag(z, p), nil
}

// SubMod sets z to (x-y) mod p and returns z.
func (z *Int) SubMod(x, y, p *Int) (*Int, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	return z.Sub(x, y).modMag(z, p), nil
}

// MulMod sets z to (x*y) mod p and returns z.
func (z *Int) MulMod(x, y, p *Int) (*Int, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	return z.Mul(x, y).modMag(z, p), nil
}

// InverseMod sets z to the inverse of a modulo p and returns z. It fails
// with ErrFailure when gcd(a, p) != 1.
func (z *Int) InverseMod(a, p *Int) (*Int, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	// Extended Euclid over (p, a mod p), tracking only the coefficient of a.
	r0, r1 := p.Clone(), new(Int).modMag(a, p)
	v0, v1 := NewInt(0), NewInt(1)
	for !r1.IsZero() {
		q, r, err := DivMod(r0, r1)
		if err != nil {
			return nil, err
		}
		r0, r1 = r1, r
		v0, v1 = v1, new(Int).Sub(v0, new(Int).Mul(q, v1))
	}
	if CmpInt(r0, 1) != 0 {
		return nil, cryptoerr.New(cryptoerr.ErrFailure, "mpi: value is not invertible")
	}
	return z.modMag(v0, p), nil
}
