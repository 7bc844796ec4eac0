package ec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-mpicrypto/internal/crypto/curves"
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

func TestMarshalRoundTrip(t *testing.T) {
	for _, d := range []*curves.Domain{curves.Secp384r1(), curves.Secp256k1()} {
		c := NewCurve(d)
		p := c.ScalarMult(mpi.NewInt(123456789), c.Generator())

		buf, err := c.Marshal(p)
		require.NoError(t, err)
		assert.Len(t, buf, 1+2*d.ByteLen())
		assert.Equal(t, byte(0x04), buf[0])

		back, err := c.Unmarshal(buf)
		require.NoError(t, err, d.Name)
		assert.True(t, c.Equal(p, back), d.Name)
	}
}

func TestMarshalInfinity(t *testing.T) {
	c := NewCurve(curves.Secp384r1())
	_, err := c.Marshal(Infinity())
	assert.True(t, errors.Is(err, cryptoerr.ErrInvalidParameter))
}

func TestUnmarshalRejects(t *testing.T) {
	c := NewCurve(curves.Secp384r1())
	good, err := c.Marshal(c.Generator())
	require.NoError(t, err)

	badTag := append([]byte(nil), good...)
	badTag[0] = 0x02

	offCurve := append([]byte(nil), good...)
	offCurve[len(offCurve)-1] ^= 1

	outOfRange := make([]byte, len(good))
	outOfRange[0] = 0x04
	for i := 1; i < len(outOfRange); i++ {
		outOfRange[i] = 0xff
	}

	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"short", good[:len(good)-1]},
		{"long", append(append([]byte(nil), good...), 0)},
		{"compressed tag", badTag},
		{"off curve", offCurve},
		{"coordinates above p", outOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Unmarshal(tt.in)
			assert.True(t, errors.Is(err, cryptoerr.ErrIllegalParameter), "got %v", err)
		})
	}
}
