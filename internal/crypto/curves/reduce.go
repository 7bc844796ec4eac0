package curves

import (
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
)

// Reduce returns a mod p as a new value in [0, p). The fast variants apply
// to values in [0, p^2), which covers the product of two reduced elements;
// anything else takes the generic path.
func (d *Domain) Reduce(a *mpi.Int) *mpi.Int {
	if a.Sign() >= 0 && a.BitLen() <= 2*d.P.BitLen() {
		switch d.Reduction {
		case Secp384r1Reduction:
			return d.finish(reduceSecp384r1(a))
		case Secp256k1Reduction:
			return d.finish(reduceSecp256k1(a))
		}
	}
	// p is positive for every Domain, so Mod cannot fail.
	r, _ := new(mpi.Int).Mod(a, d.P)
	return r
}

// finish brings a value within a few multiples of p into [0, p).
func (d *Domain) finish(t *mpi.Int) *mpi.Int {
	for mpi.Cmp(t, d.P) >= 0 {
		t.Sub(t, d.P)
	}
	for t.Sign() < 0 {
		t.Add(t, d.P)
	}
	return t
}

// p384 word layouts, least significant word first. -1 marks a zero word.
var p384Terms = struct {
	add [][12]int
	sub [][12]int
}{
	add: [][12]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},           // T
		{-1, -1, -1, -1, 21, 22, 23, -1, -1, -1, -1, -1}, // S1
		{-1, -1, -1, -1, 21, 22, 23, -1, -1, -1, -1, -1}, // S1 again
		{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}, // S2
		{21, 22, 23, 12, 13, 14, 15, 16, 17, 18, 19, 20}, // S3
		{-1, 23, -1, 20, 12, 13, 14, 15, 16, 17, 18, 19}, // S4
		{-1, -1, -1, -1, 20, 21, 22, 23, -1, -1, -1, -1}, // S5
		{20, -1, -1, 21, 22, 23, -1, -1, -1, -1, -1, -1}, // S6
	},
	sub: [][12]int{
		{23, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22}, // D1
		{-1, 20, 21, 22, 23, -1, -1, -1, -1, -1, -1, -1}, // D2
		{-1, -1, -1, 23, 23, -1, -1, -1, -1, -1, -1, -1}, // D3
	},
}

func p384Term(a []uint32, layout [12]int) *mpi.Int {
	var w [12]uint32
	for i, j := range layout {
		if j >= 0 {
			w[i] = a[j]
		}
	}
	return mpi.FromWords(w[:])
}

// reduceSecp384r1 computes T + 2*S1 + S2 + S3 + S4 + S5 + S6 - D1 - D2 - D3,
// which is congruent to a modulo p384 and lies within a few multiples of p.
func reduceSecp384r1(a *mpi.Int) *mpi.Int {
	w := a.Words(24)
	t := new(mpi.Int)
	for _, layout := range p384Terms.add {
		t.Add(t, p384Term(w, layout))
	}
	for _, layout := range p384Terms.sub {
		t.Sub(t, p384Term(w, layout))
	}
	return t
}

// 2^256 mod p for p = 2^256 - 2^32 - 977.
var secp256k1Fold = mpi.NewInt(0x1000003d1)

// reduceSecp256k1 folds a = H*2^256 + L into L + H*0x1000003d1 until the
// value fits in 256 bits.
func reduceSecp256k1(a *mpi.Int) *mpi.Int {
	t := a.Clone()
	for t.BitLen() > 256 {
		w := t.Words(t.Len())
		lo := mpi.FromWords(w[:8])
		hi := mpi.FromWords(w[8:])
		t = lo.Add(lo, hi.Mul(hi, secp256k1Fold))
	}
	return t
}
