// Package engine bundles Diffie-Hellman key agreement, ECDSA signatures and
// a random byte source behind a byte-oriented API.
//
// An Engine holds the state of one DH exchange and is meant to be used by a
// single goroutine. Independent engines may run concurrently; they share
// only the immutable curve and group tables and, if configured so, the
// Rand source.
package engine

import (
	_ "crypto/sha256" // register SHA-224/256
	_ "crypto/sha512" // register SHA-384/512
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-mpicrypto/internal/crypto/curves"
	"github.com/smallyu/go-mpicrypto/internal/crypto/dh"
	"github.com/smallyu/go-mpicrypto/internal/crypto/ec"
	"github.com/smallyu/go-mpicrypto/internal/crypto/ecdsa"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

const (
	// SignatureSize is the size of a signature returned by Sign.
	SignatureSize = ecdsa.SignatureSize
	// SessionKeySize is the size of a key returned by SessionKey.
	SessionKeySize = dh.SessionKeySize

	selfTestSize = 221
)

// Engine is the per-owner crypto context.
type Engine struct {
	params Parameters
	log    *logrus.Entry
	curve  *ec.Curve
	group  *dh.Group
	dh     *dh.Session
}

// New builds an engine from params. A nil params uses all defaults.
func New(params *Parameters) (*Engine, error) {
	p, err := params.withDefaults()
	if err != nil {
		return nil, err
	}
	d, err := curves.Lookup(p.Curve)
	if err != nil {
		return nil, err
	}
	grp := dh.LookupGroup(p.DHGroup)
	if grp.Name != p.DHGroup {
		p.Logger.Debugf("unknown DH group %q, using %s", p.DHGroup, grp.Name)
	}

	return &Engine{
		params: p,
		log:    p.Logger,
		curve:  ec.NewCurve(d),
		group:  grp,
	}, nil
}

// Owner returns the owner name the engine was created with.
func (e *Engine) Owner() string {
	return e.params.Owner
}

// RandomBytes returns n bytes from the engine's randomness source.
func (e *Engine) RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, e.fail("random", cryptoerr.New(cryptoerr.ErrInvalidParameter, "negative length"))
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(e.params.Rand, buf); err != nil {
		return nil, e.fail("random", err)
	}
	return buf, nil
}

// Digest hashes data with the configured hash function.
func (e *Engine) Digest(data []byte) []byte {
	h := e.params.Hash.New()
	h.Write(data)
	return h.Sum(nil)
}

// ExportGroup returns the DH modulus and generator, big-endian.
func (e *Engine) ExportGroup() (p, g []byte) {
	return e.group.Export()
}

// StartDiffieHellman generates a fresh DH key pair and returns the public
// value g^x mod p, big-endian in the byte length of p. Any earlier exchange
// state is discarded.
func (e *Engine) StartDiffieHellman() ([]byte, error) {
	s := dh.NewSession(e.group)
	if err := s.GenerateKeyPair(e.params.Rand); err != nil {
		return nil, e.fail("start diffie-hellman", err)
	}
	pub, err := s.PublicValue()
	if err != nil {
		return nil, e.fail("start diffie-hellman", err)
	}
	e.dh = s
	e.log.WithField("group", e.group.Name).Debug("diffie-hellman started")
	return pub, nil
}

// SessionKey validates the peer's public value and derives the 32-byte
// session key from the shared secret.
func (e *Engine) SessionKey(peer []byte) ([]byte, error) {
	if e.dh == nil {
		return nil, e.fail("session key", cryptoerr.New(cryptoerr.ErrInvalidParameter, "diffie-hellman not started"))
	}
	if err := e.dh.SetPeerPublicValue(peer); err != nil {
		return nil, e.fail("session key", err)
	}
	key, err := e.dh.SessionKey()
	if err != nil {
		return nil, e.fail("session key", err)
	}
	e.log.WithField("group", e.group.Name).Debug("diffie-hellman session key derived")
	return key, nil
}

// GenerateECKeys creates an ECDSA key pair and checks it by signing and
// verifying a fixed payload. The private key is a big-endian scalar, the
// public key an uncompressed point.
func (e *Engine) GenerateECKeys() (priv, pub []byte, err error) {
	key, err := ecdsa.GenerateKey(e.curve, e.params.Rand)
	if err != nil {
		return nil, nil, e.fail("generate keys", err)
	}
	priv = key.Bytes()
	pub, err = key.Public().Bytes()
	if err != nil {
		return nil, nil, e.fail("generate keys", err)
	}

	payload := make([]byte, selfTestSize)
	for i := range payload {
		payload[i] = byte(i)
	}
	sig, err := e.Sign(priv, payload)
	if err == nil {
		err = e.Verify(pub, payload, sig)
	}
	if err != nil {
		clear(priv)
		return nil, nil, e.fail("generate keys", fmt.Errorf("self test: %w", err))
	}

	e.log.WithField("curve", e.curve.Domain.Name).Debug("EC key pair generated")
	return priv, pub, nil
}

// Sign hashes data and returns the signature container.
func (e *Engine) Sign(priv, data []byte) ([]byte, error) {
	key, err := ecdsa.ParsePrivateKey(e.curve, priv)
	if err != nil {
		return nil, e.fail("sign", err)
	}
	sig, err := ecdsa.Sign(e.params.Rand, key, e.Digest(data))
	if err != nil {
		return nil, e.fail("sign", err)
	}
	out, err := sig.Marshal()
	if err != nil {
		return nil, e.fail("sign", err)
	}
	e.log.WithField("bytes", len(data)).Debug("data signed")
	return out, nil
}

// Verify checks a signature container over data against an encoded public
// key. A mismatch returns an error wrapping cryptoerr.ErrInvalidSignature.
func (e *Engine) Verify(pub, data, sig []byte) error {
	key, err := ecdsa.ParsePublicKey(e.curve, pub)
	if err != nil {
		return e.fail("verify", err)
	}
	s, err := ecdsa.ParseSignature(sig)
	if err != nil {
		return e.fail("verify", err)
	}
	if err := ecdsa.Verify(key, e.Digest(data), s); err != nil {
		return e.fail("verify", err)
	}
	e.log.WithField("bytes", len(data)).Debug("signature verified")
	return nil
}
