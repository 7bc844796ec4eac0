package ecdsa

import (
	"fmt"

	"github.com/smallyu/go-mpicrypto/internal/crypto/ec"
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// Bytes returns d as a minimal big-endian byte string.
func (priv *PrivateKey) Bytes() []byte {
	return priv.D.Bytes(mpi.BigEndian)
}

// Public returns the public half of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &priv.PublicKey
}

// ParsePrivateKey decodes a big-endian scalar and recomputes its public key.
// Scalars outside [1, q) fail with ErrIllegalParameter.
func ParsePrivateKey(c *ec.Curve, buf []byte) (*PrivateKey, error) {
	d := mpi.FromBytes(buf, mpi.BigEndian)
	if d.IsZero() || mpi.Cmp(d, c.Domain.Q) >= 0 {
		return nil, cryptoerr.New(cryptoerr.ErrIllegalParameter, "ecdsa: private scalar out of range")
	}
	return newPrivateKey(c, d)
}

// Bytes returns the uncompressed encoding of Q.
func (pub *PublicKey) Bytes() ([]byte, error) {
	return pub.Curve.Marshal(pub.Q)
}

// ParsePublicKey decodes an uncompressed point on c.
func ParsePublicKey(c *ec.Curve, buf []byte) (*PublicKey, error) {
	q, err := c.Unmarshal(buf)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: parse public key: %w", err)
	}
	return &PublicKey{Curve: c, Q: q}, nil
}
