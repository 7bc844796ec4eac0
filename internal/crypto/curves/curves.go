package curves

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// Supported curve names.
const (
	NameSecp384r1 = "secp384r1"
	NameSecp256k1 = "secp256k1"
)

// Reduction selects how field elements are reduced modulo p.
type Reduction int

const (
	// GenericReduction uses mpi division.
	GenericReduction Reduction = iota
	// Secp384r1Reduction uses the NIST word-wise reduction for p384.
	Secp384r1Reduction
	// Secp256k1Reduction folds the high half with 2^256 mod p.
	Secp256k1Reduction
)

// Domain holds the parameters of a short Weierstrass curve
// y^2 = x^3 + a*x + b over GF(p). A Domain is immutable once built and may be
// shared between goroutines; callers must not modify the returned integers.
type Domain struct {
	Name string
	P    *mpi.Int
	A    *mpi.Int
	B    *mpi.Int
	Gx   *mpi.Int
	Gy   *mpi.Int
	Q    *mpi.Int // order of G
	H    uint32   // cofactor

	Reduction Reduction
}

// New builds a domain with generic reduction after checking that p is an
// odd prime candidate larger than 3 and q is positive.
func New(name string, p, a, b, gx, gy, q *mpi.Int, h uint32) (*Domain, error) {
	if mpi.CmpInt(p, 3) <= 0 || p.IsEven() {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "curves: p must be odd and greater than 3")
	}
	if q.Sign() <= 0 {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "curves: order must be positive")
	}
	d := &Domain{
		Name: name,
		P:    p.Clone(),
		Q:    q.Clone(),
		Gx:   gx.Clone(),
		Gy:   gy.Clone(),
		H:    h,
	}
	// a and b are stored reduced so field code can take them as is.
	d.A, _ = new(mpi.Int).Mod(a, p)
	d.B, _ = new(mpi.Int).Mod(b, p)
	return d, nil
}

// ByteLen returns the byte length of a field element.
func (d *Domain) ByteLen() int {
	return d.P.ByteLen()
}

func (d *Domain) String() string {
	return d.Name
}

var (
	secp384r1Domain = mustHexDomain(NameSecp384r1, Secp384r1Reduction,
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff",
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000fffffffc",
		"b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef",
		"aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7",
		"3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f",
		"ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973",
	)
	secp256k1Domain = secp256k1FromDecred()
)

// Secp384r1 returns the NIST P-384 domain.
func Secp384r1() *Domain {
	return secp384r1Domain
}

// Secp256k1 returns the SEC 2 secp256k1 domain.
func Secp256k1() *Domain {
	return secp256k1Domain
}

// Lookup returns the registered domain with the given name.
func Lookup(name string) (*Domain, error) {
	switch name {
	case NameSecp384r1:
		return secp384r1Domain, nil
	case NameSecp256k1:
		return secp256k1Domain, nil
	default:
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, fmt.Sprintf("curves: unknown curve %q", name))
	}
}

func mustHexDomain(name string, red Reduction, p, a, b, gx, gy, q string) *Domain {
	d, err := New(name, hexInt(p), hexInt(a), hexInt(b), hexInt(gx), hexInt(gy), hexInt(q), 1)
	if err != nil {
		panic(err)
	}
	d.Reduction = red
	return d
}

func secp256k1FromDecred() *Domain {
	params := secp256k1.S256().Params()
	d, err := New(NameSecp256k1, bigInt(params.P), mpi.NewInt(0), bigInt(params.B),
		bigInt(params.Gx), bigInt(params.Gy), bigInt(params.N), 1)
	if err != nil {
		panic(err)
	}
	d.Reduction = Secp256k1Reduction
	return d
}

func hexInt(s string) *mpi.Int {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return mpi.FromBytes(b, mpi.BigEndian)
}

func bigInt(b *big.Int) *mpi.Int {
	return mpi.FromBytes(b.Bytes(), mpi.BigEndian)
}
