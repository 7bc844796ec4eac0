package ecdsa

import (
	stdecdsa "crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-mpicrypto/internal/crypto/curves"
	"github.com/smallyu/go-mpicrypto/internal/crypto/ec"
	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

func toBig(x *mpi.Int) *big.Int {
	return new(big.Int).SetBytes(x.Bytes(mpi.BigEndian))
}

// payload returns the bytes 0, 1, ..., n-1.
func payload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestSignVerify(t *testing.T) {
	for _, d := range []*curves.Domain{curves.Secp384r1(), curves.Secp256k1()} {
		t.Run(d.Name, func(t *testing.T) {
			c := ec.NewCurve(d)
			priv, err := GenerateKey(c, rand.Reader)
			require.NoError(t, err)

			digest := sha512.Sum384([]byte("hello"))
			sig, err := Sign(rand.Reader, priv, digest[:])
			require.NoError(t, err)
			require.NoError(t, Verify(priv.Public(), digest[:], sig))

			other := sha512.Sum384([]byte("hellp"))
			err = Verify(priv.Public(), other[:], sig)
			assert.True(t, errors.Is(err, cryptoerr.ErrInvalidSignature))
		})
	}
}

func TestVerifyRejectsBitFlips(t *testing.T) {
	c := ec.NewCurve(curves.Secp384r1())
	priv, err := GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	msg := payload(8)
	digest := sha512.Sum384(msg)
	sig, err := Sign(rand.Reader, priv, digest[:])
	require.NoError(t, err)

	// 1. Every bit of the message
	for i := 0; i < len(msg)*8; i++ {
		m := append([]byte(nil), msg...)
		m[i/8] ^= 1 << (i % 8)
		d := sha512.Sum384(m)
		if err := Verify(priv.Public(), d[:], sig); !errors.Is(err, cryptoerr.ErrInvalidSignature) {
			t.Fatalf("message bit %d: got %v", i, err)
		}
	}

	// 2. Every 13th bit of r and s
	for _, target := range []**mpi.Int{&sig.R, &sig.S} {
		orig := *target
		for i := 0; i < orig.BitLen(); i += 13 {
			flipped := orig.Clone()
			flipped.SetBit(i, orig.Bit(i)^1)
			*target = flipped
			if err := Verify(priv.Public(), digest[:], sig); !errors.Is(err, cryptoerr.ErrInvalidSignature) {
				t.Fatalf("signature bit %d: got %v", i, err)
			}
		}
		*target = orig
	}
	require.NoError(t, Verify(priv.Public(), digest[:], sig))
}

func TestVerifyRange(t *testing.T) {
	c := ec.NewCurve(curves.Secp384r1())
	priv, err := GenerateKey(c, rand.Reader)
	require.NoError(t, err)
	digest := sha512.Sum384(nil)
	q := c.Domain.Q

	tests := []struct {
		name string
		sig  *Signature
	}{
		{"nil", nil},
		{"r zero", &Signature{R: mpi.NewInt(0), S: mpi.NewInt(1)}},
		{"s zero", &Signature{R: mpi.NewInt(1), S: mpi.NewInt(0)}},
		{"r equals q", &Signature{R: q.Clone(), S: mpi.NewInt(1)}},
		{"s negative", &Signature{R: mpi.NewInt(1), S: mpi.NewInt(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(priv.Public(), digest[:], tt.sig)
			assert.True(t, errors.Is(err, cryptoerr.ErrInvalidSignature))
		})
	}
}

func TestHashToInt(t *testing.T) {
	q := mpi.NewInt(0x3ff) // 10 bits

	z := hashToInt([]byte{0xab, 0xcd, 0xef}, q)
	assert.Equal(t, 0, mpi.CmpInt(z, 0xabcd>>6))

	z = hashToInt([]byte{0x01}, q)
	assert.Equal(t, 0, mpi.CmpInt(z, 1))

	full := curves.Secp384r1().Q
	digest := sha512.Sum512(nil)
	z = hashToInt(digest[:], full)
	assert.Equal(t, 0, mpi.Cmp(z, mpi.FromBytes(digest[:48], mpi.BigEndian)))
}

func TestStdlibVerifiesOurSignatures(t *testing.T) {
	c := ec.NewCurve(curves.Secp384r1())
	priv, err := GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	digest := sha512.Sum384(payload(221))
	sig, err := Sign(rand.Reader, priv, digest[:])
	require.NoError(t, err)

	pub := &stdecdsa.PublicKey{Curve: elliptic.P384(), X: toBig(priv.Q.X), Y: toBig(priv.Q.Y)}
	assert.True(t, stdecdsa.Verify(pub, digest[:], toBig(sig.R), toBig(sig.S)))
}

func TestWeVerifyStdlibSignatures(t *testing.T) {
	key, err := stdecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	digest := sha512.Sum384(payload(100))
	r, s, err := stdecdsa.Sign(rand.Reader, key, digest[:])
	require.NoError(t, err)

	c := ec.NewCurve(curves.Secp384r1())
	encoded := elliptic.Marshal(elliptic.P384(), key.X, key.Y) //nolint:staticcheck // uncompressed point encoding
	pub, err := ParsePublicKey(c, encoded)
	require.NoError(t, err)

	sig := &Signature{R: mpi.FromBytes(r.Bytes(), mpi.BigEndian), S: mpi.FromBytes(s.Bytes(), mpi.BigEndian)}
	assert.NoError(t, Verify(pub, digest[:], sig))
}

func TestDecredVerifiesSecp256k1Signatures(t *testing.T) {
	c := ec.NewCurve(curves.Secp256k1())
	priv, err := GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("secp256k1 interop"))
	sig, err := Sign(rand.Reader, priv, digest[:])
	require.NoError(t, err)

	pubBytes, err := priv.Public().Bytes()
	require.NoError(t, err)
	pub, err := secp256k1.ParsePubKey(pubBytes)
	require.NoError(t, err)

	var r, s secp256k1.ModNScalar
	require.False(t, r.SetByteSlice(sig.R.Bytes(mpi.BigEndian)))
	require.False(t, s.SetByteSlice(sig.S.Bytes(mpi.BigEndian)))
	assert.True(t, decredecdsa.NewSignature(&r, &s).Verify(digest[:], pub))

	// The decred private key derives the same public key.
	dk := secp256k1.PrivKeyFromBytes(priv.Bytes())
	assert.Equal(t, pubBytes, dk.PubKey().SerializeUncompressed())
}

func TestKeyCodecs(t *testing.T) {
	c := ec.NewCurve(curves.Secp384r1())
	priv, err := GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	back, err := ParsePrivateKey(c, priv.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 0, mpi.Cmp(priv.D, back.D))
	assert.True(t, c.Equal(priv.Q, back.Q))

	pubBytes, err := priv.Public().Bytes()
	require.NoError(t, err)
	assert.Len(t, pubBytes, 97)
	pub, err := ParsePublicKey(c, pubBytes)
	require.NoError(t, err)
	assert.True(t, c.Equal(priv.Q, pub.Q))

	_, err = ParsePrivateKey(c, nil)
	assert.True(t, errors.Is(err, cryptoerr.ErrIllegalParameter))
	_, err = ParsePrivateKey(c, c.Domain.Q.Bytes(mpi.BigEndian))
	assert.True(t, errors.Is(err, cryptoerr.ErrIllegalParameter))

	pubBytes[0] = 0x03
	_, err = ParsePublicKey(c, pubBytes)
	assert.True(t, errors.Is(err, cryptoerr.ErrIllegalParameter))
}

func TestGenerateKeyNoRandomness(t *testing.T) {
	c := ec.NewCurve(curves.Secp384r1())
	_, err := GenerateKey(c, nil)
	assert.True(t, errors.Is(err, cryptoerr.ErrRandomSourceUninitialized))
}
