package mpi

import (
	"fmt"
	"strings"
)

const (
	wordBytes = 4
	wordBits  = 32
)

// Int is a signed multi-precision integer. The zero value is 0.
type Int struct {
	neg   bool
	words []uint32
}

// NewInt allocates and returns a new Int set to v.
func NewInt(v int64) *Int {
	return new(Int).SetInt64(v)
}

// FromWords returns an Int whose magnitude is the little-endian word
// sequence w. The words are copied.
func FromWords(w []uint32) *Int {
	z := &Int{words: make([]uint32, len(w))}
	copy(z.words, w)
	return z.norm()
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	z.neg = v < 0
	u := uint64(v)
	if z.neg {
		u = -u
	}
	z.words = append(z.words[:0], uint32(u), uint32(u>>32))
	return z.norm()
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	n := x.Len()
	z.words = append(z.words[:0], x.words[:n]...)
	z.neg = x.neg
	return z.norm()
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int {
	return new(Int).Set(x)
}

// Words returns the n least significant words of |x|, zero padded.
func (x *Int) Words(n int) []uint32 {
	w := make([]uint32, n)
	copy(w, x.words)
	return w
}

// norm clears the sign of zero and drops high zero words.
func (z *Int) norm() *Int {
	n := z.Len()
	z.words = z.words[:n]
	if n == 0 {
		z.neg = false
	}
	return z
}

// grow makes sure z has room for at least n words.
func (z *Int) grow(n int) {
	if len(z.words) >= n {
		return
	}
	w := make([]uint32, n)
	copy(w, z.words)
	z.words = w
}

// Len returns the number of significant words of |x|.
func (x *Int) Len() int {
	i := len(x.words)
	for i > 0 && x.words[i-1] == 0 {
		i--
	}
	return i
}

// ByteLen returns the minimal number of bytes needed to encode |x|.
func (x *Int) ByteLen() int {
	return (x.BitLen() + 7) / 8
}

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x *Int) BitLen() int {
	n := x.Len()
	if n == 0 {
		return 0
	}
	top := x.words[n-1]
	l := (n - 1) * wordBits
	for ; top != 0; top >>= 1 {
		l++
	}
	return l
}

// Bit returns the value of bit i of |x|. Negative or out of range indexes
// read as 0.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	w := i / wordBits
	if w >= len(x.words) {
		return 0
	}
	return uint(x.words[w]>>(uint(i)%wordBits)) & 1
}

// SetBit sets bit i of |z| to b (0 or 1) and returns z. A negative i
// leaves z unchanged.
func (z *Int) SetBit(i int, b uint) *Int {
	if i < 0 {
		return z
	}
	w := i / wordBits
	mask := uint32(1) << (uint(i) % wordBits)
	z.grow(w + 1)
	if b != 0 {
		z.words[w] |= mask
	} else {
		z.words[w] &^= mask
	}
	return z.norm()
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.Len() == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.Len() == 0
}

// IsOdd reports whether x is odd.
func (x *Int) IsOdd() bool {
	return x.Bit(0) == 1
}

// IsEven reports whether x is even.
func (x *Int) IsEven() bool {
	return x.Bit(0) == 0
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = !z.neg
	return z.norm()
}

// Text returns the hexadecimal representation of x with a leading minus
// sign for negative values.
func (x *Int) Text() string {
	n := x.Len()
	if n == 0 {
		return "0"
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%x", x.words[n-1])
	for i := n - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", x.words[i])
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (x *Int) String() string {
	return x.Text()
}
