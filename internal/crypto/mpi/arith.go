package mpi

// cmpWords compares two magnitudes.
func cmpWords(a, b []uint32) int {
	m, n := len(a), len(b)
	for m > 0 && a[m-1] == 0 {
		m--
	}
	for n > 0 && b[n-1] == 0 {
		n--
	}
	if m != n {
		if m > n {
			return 1
		}
		return -1
	}
	for i := n - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// addWords returns a fresh slice holding a+b.
func addWords(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	r := make([]uint32, len(a)+1)
	var c uint64
	for i := range a {
		s := uint64(a[i]) + c
		if i < len(b) {
			s += uint64(b[i])
		}
		r[i] = uint32(s)
		c = s >> 32
	}
	r[len(a)] = uint32(c)
	return r
}

// subWords returns a fresh slice holding a-b. It requires a >= b.
func subWords(a, b []uint32) []uint32 {
	r := make([]uint32, len(a))
	var borrow uint64
	for i := range a {
		d := uint64(a[i]) - borrow
		if i < len(b) {
			d -= uint64(b[i])
		}
		r[i] = uint32(d)
		borrow = (d >> 32) & 1
	}
	return r
}

// mulAddWord adds a*w to r and propagates the carry through r. r must be
// long enough to absorb the final carry.
func mulAddWord(r, a []uint32, w uint32) {
	var c uint64
	i := 0
	for ; i < len(a); i++ {
		t := uint64(a[i])*uint64(w) + uint64(r[i]) + c
		r[i] = uint32(t)
		c = t >> 32
	}
	for ; c != 0 && i < len(r); i++ {
		t := uint64(r[i]) + c
		r[i] = uint32(t)
		c = t >> 32
	}
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y *Int) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx > sy {
			return 1
		}
		return -1
	}
	c := cmpWords(x.words, y.words)
	if sx < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func CmpAbs(x, y *Int) int {
	return cmpWords(x.words, y.words)
}

// CmpInt compares x with the small integer v.
func CmpInt(x *Int, v int64) int {
	return Cmp(x, NewInt(v))
}

// addSigned sets z to x + (-1)^negY * |y|. Same signs add magnitudes; mixed
// signs subtract the smaller magnitude from the larger one and take the sign
// of the larger operand.
func (z *Int) addSigned(x *Int, y []uint32, negY bool) *Int {
	negX := x.neg
	var w []uint32
	var neg bool
	switch {
	case negX == negY:
		w, neg = addWords(x.words, y), negX
	case cmpWords(x.words, y) >= 0:
		w, neg = subWords(x.words, y), negX
	default:
		w, neg = subWords(y, x.words), negY
	}
	z.words, z.neg = w, neg
	return z.norm()
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.addSigned(x, y.words, y.neg)
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.addSigned(x, y.words, !y.neg)
}

// AddInt sets z to x+v and returns z.
func (z *Int) AddInt(x *Int, v int64) *Int {
	return z.Add(x, NewInt(v))
}

// SubInt sets z to x-v and returns z.
func (z *Int) SubInt(x *Int, v int64) *Int {
	return z.Sub(x, NewInt(v))
}

// Mul sets z to x*y using schoolbook multiplication and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	a, b := x.words[:x.Len()], y.words[:y.Len()]
	if len(a) < len(b) {
		a, b = b, a
	}
	r := make([]uint32, len(a)+len(b))
	for i, w := range b {
		if w != 0 {
			mulAddWord(r[i:], a, w)
		}
	}
	z.words, z.neg = r, x.neg != y.neg
	return z.norm()
}

// MulInt sets z to x*v and returns z.
func (z *Int) MulInt(x *Int, v int64) *Int {
	return z.Mul(x, NewInt(v))
}

// ShiftLeft multiplies |z| by 2^n in place and returns z. Storage grows as
// needed.
func (z *Int) ShiftLeft(n int) *Int {
	m := z.Len()
	if m == 0 || n <= 0 {
		return z
	}
	n1, n2 := n/wordBits, uint(n%wordBits)

	w := make([]uint32, m+n1+1)
	copy(w[n1:], z.words[:m])
	if n2 > 0 {
		for i := len(w) - 1; i > n1; i-- {
			w[i] = w[i]<<n2 | w[i-1]>>(wordBits-n2)
		}
		w[n1] <<= n2
	}
	z.words = w
	return z.norm()
}

// ShiftRight divides |z| by 2^n in place, discarding the remainder, and
// returns z. Shifting past the magnitude yields 0.
func (z *Int) ShiftRight(n int) *Int {
	m := z.Len()
	if m == 0 || n <= 0 {
		return z
	}
	n1, n2 := n/wordBits, uint(n%wordBits)
	if n1 >= m {
		z.words = z.words[:0]
		return z.norm()
	}

	w := z.words[:m]
	copy(w, w[n1:])
	w = w[:m-n1]
	if n2 > 0 {
		for i := 0; i < len(w)-1; i++ {
			w[i] = w[i]>>n2 | w[i+1]<<(wordBits-n2)
		}
		w[len(w)-1] >>= n2
	}
	z.words = w
	return z.norm()
}
