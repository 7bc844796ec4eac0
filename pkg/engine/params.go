package engine

import (
	"crypto"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-mpicrypto/internal/crypto/curves"
	"github.com/smallyu/go-mpicrypto/internal/crypto/dh"
	"github.com/smallyu/go-mpicrypto/internal/crypto/drbg"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// Parameters configures an Engine. Zero fields take the defaults below.
type Parameters struct {
	Owner   string        // Name attached to log entries and errors
	DHGroup string        // DH group name, default "diffie-hellman-group16"
	Curve   string        // ECDSA curve name, default "secp384r1"
	Hash    crypto.Hash   // Message digest for Sign/Verify, default SHA-384
	Rand    io.Reader     // Randomness, default a drbg.Generator seeded from crypto/rand
	Logger  *logrus.Entry // Default logrus.StandardLogger()
}

// Defaults applied to unset Parameters fields.
const (
	// DefaultDHGroup is the 4096-bit MODP group.
	DefaultDHGroup = dh.NameGroup16
	// DefaultCurve is the ECDSA curve.
	DefaultCurve = curves.NameSecp384r1
	// DefaultHash digests messages before Sign and Verify.
	DefaultHash = crypto.SHA384
)

// withDefaults returns a copy of p with every unset field filled in.
func (p *Parameters) withDefaults() (Parameters, error) {
	var out Parameters
	if p != nil {
		out = *p
	}
	if out.DHGroup == "" {
		out.DHGroup = DefaultDHGroup
	}
	if out.Curve == "" {
		out.Curve = DefaultCurve
	}
	if out.Hash == 0 {
		out.Hash = DefaultHash
	}
	if !out.Hash.Available() {
		return Parameters{}, cryptoerr.New(cryptoerr.ErrNotImplemented,
			fmt.Sprintf("engine: hash %v is not linked into the binary", out.Hash))
	}
	if out.Rand == nil {
		g, err := drbg.New(rand.Reader)
		if err != nil {
			return Parameters{}, err
		}
		out.Rand = g
	}
	if out.Logger == nil {
		out.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	out.Logger = out.Logger.WithField("owner", out.Owner)
	return out, nil
}
