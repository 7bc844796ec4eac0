// Package ecdsa implements ECDSA key generation, signing and verification
// over the curves of package curves. Digests are computed by the caller.
package ecdsa

import (
	"errors"
	"fmt"
	"io"

	"github.com/smallyu/go-mpicrypto/internal/crypto/ec"
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// maxSignAttempts bounds the nonce retries when r or s comes out zero.
const maxSignAttempts = 16

var errInvalidSignature = cryptoerr.New(cryptoerr.ErrInvalidSignature, "ecdsa: signature does not verify")

// PublicKey is an affine curve point Q = d*G.
type PublicKey struct {
	Curve *ec.Curve
	Q     ec.Point
}

// PrivateKey holds the secret scalar d in [1, q).
type PrivateKey struct {
	PublicKey
	D *mpi.Int
}

// Signature is an ECDSA (r, s) pair.
type Signature struct {
	R, S *mpi.Int
}

// GenerateKey draws d uniformly from [1, q) and derives Q = d*G.
func GenerateKey(c *ec.Curve, rand io.Reader) (*PrivateKey, error) {
	d, err := mpi.RandomBelow(rand, c.Domain.Q)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: generate private key: %w", err)
	}
	return newPrivateKey(c, d)
}

func newPrivateKey(c *ec.Curve, d *mpi.Int) (*PrivateKey, error) {
	q, err := c.Affinify(c.ScalarMult(d, c.Generator()))
	if err != nil {
		return nil, fmt.Errorf("ecdsa: derive public key: %w", err)
	}
	return &PrivateKey{
		PublicKey: PublicKey{Curve: c, Q: q},
		D:         d,
	}, nil
}

// hashToInt converts a digest to an integer of at most bitlen(q) bits by
// keeping its leftmost bits.
func hashToInt(digest []byte, q *mpi.Int) *mpi.Int {
	n := min(q.BitLen(), 8*len(digest))
	z := mpi.FromBytes(digest[:(n+7)/8], mpi.BigEndian)
	if n%8 != 0 {
		z.ShiftRight(8 - n%8)
	}
	return z
}

// Sign signs digest with priv, drawing nonces from rand.
func Sign(rand io.Reader, priv *PrivateKey, digest []byte) (*Signature, error) {
	c := priv.Curve
	q := c.Domain.Q
	z := hashToInt(digest, q)

	for range maxSignAttempts {
		// 1. Draw the nonce k in [1, q)
		k, err := mpi.RandomBelow(rand, q)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: draw nonce: %w", err)
		}

		// 2. R = k*G, r = Rx mod q
		rp, err := c.Affinify(c.ScalarMult(k, c.Generator()))
		if err != nil {
			return nil, fmt.Errorf("ecdsa: nonce point: %w", err)
		}
		r, err := new(mpi.Int).Mod(rp.X, q)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}

		// 3. s = k^-1 * (z + d*r) mod q
		kinv, err := new(mpi.Int).InverseMod(k, q)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: invert nonce: %w", err)
		}
		s, err := new(mpi.Int).MulMod(priv.D, r, q)
		if err != nil {
			return nil, err
		}
		if _, err = s.AddMod(s, z, q); err != nil {
			return nil, err
		}
		if _, err = s.MulMod(s, kinv, q); err != nil {
			return nil, err
		}
		if s.IsZero() {
			continue
		}
		return &Signature{R: r, S: s}, nil
	}
	return nil, cryptoerr.New(cryptoerr.ErrFailure, "ecdsa: no usable nonce found")
}

// Verify checks sig over digest against pub. It returns an error wrapping
// cryptoerr.ErrInvalidSignature when the signature does not match.
func Verify(pub *PublicKey, digest []byte, sig *Signature) error {
	c := pub.Curve
	q := c.Domain.Q

	if sig == nil || sig.R == nil || sig.S == nil {
		return errInvalidSignature
	}
	// 1. 0 < r < q and 0 < s < q
	for _, v := range []*mpi.Int{sig.R, sig.S} {
		if v.Sign() <= 0 || mpi.Cmp(v, q) >= 0 {
			return errInvalidSignature
		}
	}

	// 2. w = s^-1, u1 = z*w, u2 = r*w
	z := hashToInt(digest, q)
	w, err := new(mpi.Int).InverseMod(sig.S, q)
	if err != nil {
		// q is prime, so this only happens for a corrupted domain.
		return fmt.Errorf("ecdsa: invert s: %w", err)
	}
	u1, err := new(mpi.Int).MulMod(z, w, q)
	if err != nil {
		return err
	}
	u2, err := new(mpi.Int).MulMod(sig.R, w, q)
	if err != nil {
		return err
	}

	// 3. V = u1*G + u2*Q
	v, err := c.Affinify(c.TwinMult(u1, c.Generator(), u2, pub.Q))
	if err != nil {
		if errors.Is(err, cryptoerr.ErrInvalidParameter) {
			return errInvalidSignature
		}
		return err
	}

	// 4. Vx mod q == r
	vx, err := new(mpi.Int).Mod(v.X, q)
	if err != nil {
		return err
	}
	if mpi.Cmp(vx, sig.R) != 0 {
		return errInvalidSignature
	}
	return nil
}
