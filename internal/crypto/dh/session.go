// Package dh implements finite-field Diffie-Hellman over fixed MODP groups.
package dh

import (
	"fmt"
	"io"

	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

const (
	// SessionKeySize is the length of the key taken from the shared secret.
	SessionKeySize = 32

	maxKeyAttempts = 8
)

// Session is one side of an exchange. A Session is owned by a single caller
// and must not be shared between goroutines.
type Session struct {
	group *Group
	x     *mpi.Int // private exponent
	y     *mpi.Int // g^x mod p
	peer  *mpi.Int
}

// NewSession starts an exchange in group g.
func NewSession(g *Group) *Session {
	return &Session{group: g}
}

// Group returns the group of the session.
func (s *Session) Group() *Group {
	return s.group
}

// GenerateKeyPair draws the private exponent x in [1, p) from rand and
// computes y = g^x mod p. Draws whose public value fails the weak value
// check are discarded.
func (s *Session) GenerateKeyPair(rand io.Reader) error {
	if s.group == nil {
		return cryptoerr.New(cryptoerr.ErrDomainParametersUninitialized, "dh: session has no group")
	}
	grp := s.group
	for range maxKeyAttempts {
		x, err := mpi.RandomBelow(rand, grp.P)
		if err != nil {
			return fmt.Errorf("dh: draw private value: %w", err)
		}
		y, err := new(mpi.Int).ModExp(grp.G, x, grp.P)
		if err != nil {
			return fmt.Errorf("dh: public value: %w", err)
		}
		if grp.CheckPublicValue(y) != nil {
			continue
		}
		s.x, s.y = x, y
		return nil
	}
	return cryptoerr.New(cryptoerr.ErrFailure, "dh: no usable private value found")
}

// PublicValue returns y encoded big-endian in exactly ByteLen(p) bytes.
func (s *Session) PublicValue() ([]byte, error) {
	if s.y == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "dh: key pair not generated")
	}
	out := make([]byte, s.group.ByteLen())
	if err := s.y.FillBytes(out, mpi.BigEndian); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPeerPublicValue decodes and validates the peer's big-endian public
// value.
func (s *Session) SetPeerPublicValue(buf []byte) error {
	if s.group == nil {
		return cryptoerr.New(cryptoerr.ErrDomainParametersUninitialized, "dh: session has no group")
	}
	yb := mpi.FromBytes(buf, mpi.BigEndian)
	if err := s.group.CheckPublicValue(yb); err != nil {
		return err
	}
	s.peer = yb
	return nil
}

// SharedSecret returns z = yb^x mod p encoded big-endian in exactly
// ByteLen(p) bytes.
func (s *Session) SharedSecret() ([]byte, error) {
	if s.x == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "dh: key pair not generated")
	}
	if s.peer == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "dh: peer public value not set")
	}
	z, err := new(mpi.Int).ModExp(s.peer, s.x, s.group.P)
	if err != nil {
		return nil, fmt.Errorf("dh: shared secret: %w", err)
	}
	out := make([]byte, s.group.ByteLen())
	if err := z.FillBytes(out, mpi.BigEndian); err != nil {
		return nil, err
	}
	return out, nil
}

// SessionKey returns the leftmost SessionKeySize bytes of the shared secret.
// Groups whose secret is shorter fail with ErrInsufficientBuffer.
func (s *Session) SessionKey() ([]byte, error) {
	z, err := s.SharedSecret()
	if err != nil {
		return nil, err
	}
	if len(z) < SessionKeySize {
		clear(z)
		return nil, cryptoerr.New(cryptoerr.ErrInsufficientBuffer,
			fmt.Sprintf("dh: shared secret has %d bytes, need %d", len(z), SessionKeySize))
	}
	key := make([]byte, SessionKeySize)
	copy(key, z)
	clear(z)
	return key, nil
}
