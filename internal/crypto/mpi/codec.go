package mpi

import (
	"fmt"

	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// ByteOrder selects the byte order of an encoded integer.
type ByteOrder int

const (
	// LittleEndian stores the least significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian stores the most significant byte first.
	BigEndian
)

// SetBytes interprets buf as an unsigned integer in the given byte order,
// sets z to that value and returns z. Zero bytes at the significant end of
// buf are ignored; an empty or all-zero buf yields 0.
func (z *Int) SetBytes(buf []byte, order ByteOrder) *Int {
	n := len(buf)
	if order == BigEndian {
		for n > 0 && buf[len(buf)-n] == 0 {
			n--
		}
		buf = buf[len(buf)-n:]
	} else {
		for n > 0 && buf[n-1] == 0 {
			n--
		}
		buf = buf[:n]
	}

	w := make([]uint32, (n+wordBytes-1)/wordBytes)
	for j := 0; j < n; j++ {
		// j counts bytes from the least significant end.
		var b byte
		if order == BigEndian {
			b = buf[n-1-j]
		} else {
			b = buf[j]
		}
		w[j/wordBytes] |= uint32(b) << (uint(j%wordBytes) * 8)
	}

	z.neg = false
	z.words = w
	return z.norm()
}

// FromBytes returns a new Int decoded from buf, see SetBytes.
func FromBytes(buf []byte, order ByteOrder) *Int {
	return new(Int).SetBytes(buf, order)
}

// FillBytes writes |x| into buf in the given byte order, zero padding the
// insignificant end: big-endian values are right aligned, little-endian
// values left aligned. It fails with ErrInsufficientBuffer when buf is
// shorter than ByteLen.
func (x *Int) FillBytes(buf []byte, order ByteOrder) error {
	n := x.ByteLen()
	if n > len(buf) {
		return cryptoerr.New(cryptoerr.ErrInsufficientBuffer,
			fmt.Sprintf("mpi: value needs %d bytes, buffer has %d", n, len(buf)))
	}

	clear(buf)
	for j := 0; j < n; j++ {
		b := byte(x.words[j/wordBytes] >> (uint(j%wordBytes) * 8))
		if order == BigEndian {
			buf[len(buf)-1-j] = b
		} else {
			buf[j] = b
		}
	}
	return nil
}

// Bytes returns |x| encoded in the given byte order using ByteLen bytes.
func (x *Int) Bytes(order ByteOrder) []byte {
	buf := make([]byte, x.ByteLen())
	// Cannot fail: the buffer is sized from ByteLen.
	_ = x.FillBytes(buf, order)
	return buf
}
