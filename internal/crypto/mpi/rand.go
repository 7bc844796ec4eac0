package mpi

import (
	"fmt"
	"io"

	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// maxRandomAttempts bounds rejection sampling in RandomBelow.
const maxRandomAttempts = 128

// Random returns a value made of bits uniformly random bits read from r.
// The result is below 2^bits; its top bit may be zero.
func Random(r io.Reader, bits int) (*Int, error) {
	if r == nil {
		return nil, cryptoerr.New(cryptoerr.ErrRandomSourceUninitialized, "mpi: no randomness source")
	}
	if bits < 0 {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "mpi: negative bit length")
	}

	n := (bits + wordBits - 1) / wordBits
	buf := make([]byte, n*wordBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("mpi: read random bits: %w", err)
	}
	z := FromBytes(buf, LittleEndian)
	clear(buf)

	if extra := n*wordBits - bits; extra > 0 && n > 0 {
		z.grow(n)
		z.words[n-1] &= ^uint32(0) >> uint(extra)
	}
	return z.norm(), nil
}

// RandomBelow draws a uniformly random value in [1, n) from r by rejection
// sampling. It fails with ErrFailure if no candidate is accepted within a
// bounded number of attempts.
func RandomBelow(r io.Reader, n *Int) (*Int, error) {
	if CmpInt(n, 2) < 0 {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "mpi: upper bound must exceed 1")
	}
	bits := n.BitLen()
	for range maxRandomAttempts {
		k, err := Random(r, bits)
		if err != nil {
			return nil, err
		}
		if !k.IsZero() && Cmp(k, n) < 0 {
			return k, nil
		}
	}
	return nil, cryptoerr.New(cryptoerr.ErrFailure, "mpi: rejection sampling exhausted")
}
