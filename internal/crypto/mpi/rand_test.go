package mpi

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

func TestRandomMasksTopWord(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xff}, 64))
	for _, bits := range []int{1, 7, 32, 33, 100} {
		x, err := Random(src, bits)
		require.NoError(t, err)
		assert.Equal(t, bits, x.BitLen(), "bits=%d", bits)
	}
}

func TestRandomZeroBits(t *testing.T) {
	x, err := Random(bytes.NewReader(nil), 0)
	require.NoError(t, err)
	assert.True(t, x.IsZero())
}

func TestRandomErrors(t *testing.T) {
	_, err := Random(nil, 8)
	assert.True(t, errors.Is(err, cryptoerr.ErrRandomSourceUninitialized))

	_, err = Random(bytes.NewReader([]byte{1, 2}), 64)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestRandomBelow(t *testing.T) {
	n := NewInt(1000)
	// 0 and 0x3ff (0xffff masked to 10 bits) are rejected before 0x100.
	src := bytes.NewReader([]byte{
		0, 0, 0, 0,
		0xff, 0xff, 0, 0,
		0x00, 0x01, 0, 0,
	})
	x, err := RandomBelow(src, n)
	require.NoError(t, err)
	assert.Equal(t, 0, CmpInt(x, 0x100))
}

func TestRandomBelowExhausted(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xff}, 4*maxRandomAttempts))
	_, err := RandomBelow(src, NewInt(1000))
	assert.True(t, errors.Is(err, cryptoerr.ErrFailure))

	_, err = RandomBelow(src, NewInt(1))
	assert.True(t, errors.Is(err, cryptoerr.ErrInvalidParameter))
}
