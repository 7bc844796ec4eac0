package ec

import (
	"fmt"

	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// uncompressedTag prefixes an uncompressed SEC 1 point encoding.
const uncompressedTag = 0x04

// Marshal encodes p as 0x04 || X || Y with each coordinate padded to the
// byte length of the field.
func (c *Curve) Marshal(p Point) ([]byte, error) {
	a, err := c.Affinify(p)
	if err != nil {
		return nil, err
	}
	n := c.Domain.ByteLen()
	buf := make([]byte, 1+2*n)
	buf[0] = uncompressedTag
	if err := a.X.FillBytes(buf[1:1+n], mpi.BigEndian); err != nil {
		return nil, err
	}
	if err := a.Y.FillBytes(buf[1+n:], mpi.BigEndian); err != nil {
		return nil, err
	}
	return buf, nil
}

// Unmarshal decodes an uncompressed point and checks that it lies on the
// curve. Any other tag, a wrong length or an off-curve point fails with
// ErrIllegalParameter.
func (c *Curve) Unmarshal(data []byte) (Point, error) {
	n := c.Domain.ByteLen()
	if len(data) != 1+2*n {
		return Point{}, cryptoerr.New(cryptoerr.ErrIllegalParameter,
			fmt.Sprintf("ec: encoded point has %d bytes, want %d", len(data), 1+2*n))
	}
	if data[0] != uncompressedTag {
		return Point{}, cryptoerr.New(cryptoerr.ErrIllegalParameter,
			fmt.Sprintf("ec: unsupported point tag 0x%02x", data[0]))
	}

	x := mpi.FromBytes(data[1:1+n], mpi.BigEndian)
	y := mpi.FromBytes(data[1+n:], mpi.BigEndian)
	if !c.IsOnCurve(x, y) {
		return Point{}, cryptoerr.New(cryptoerr.ErrIllegalParameter, "ec: point is not on the curve")
	}
	return NewAffine(x, y), nil
}
