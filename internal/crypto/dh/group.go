package dh

import (
	"encoding/hex"
	"fmt"

	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// Registered group names.
const (
	NameGroup1  = "diffie-hellman-group1"
	NameGroup14 = "diffie-hellman-group14"
	NameGroup16 = "diffie-hellman-group16"
)

// Group is a MODP group: a safe prime p and a generator g. Groups are
// immutable and may be shared between sessions.
type Group struct {
	Name string
	P    *mpi.Int
	G    *mpi.Int
}

// NewGroup checks and returns a group. p must be odd and larger than 3 and
// 1 < g < p-1.
func NewGroup(name string, p, g *mpi.Int) (*Group, error) {
	if mpi.CmpInt(p, 3) <= 0 || p.IsEven() {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidParameter, "dh: modulus must be odd and greater than 3")
	}
	grp := &Group{Name: name, P: p.Clone(), G: g.Clone()}
	if err := grp.CheckPublicValue(g); err != nil {
		return nil, fmt.Errorf("dh: generator: %w", err)
	}
	return grp, nil
}

func mustGroup(name, prime string) *Group {
	b, err := hex.DecodeString(prime)
	if err != nil {
		panic(err)
	}
	g, err := NewGroup(name, mpi.FromBytes(b, mpi.BigEndian), mpi.NewInt(2))
	if err != nil {
		panic(err)
	}
	return g
}

var (
	group1  = mustGroup(NameGroup1, group1Prime)
	group14 = mustGroup(NameGroup14, group14Prime)
	group16 = mustGroup(NameGroup16, group16Prime)
)

// Group1 returns the 1024-bit group.
func Group1() *Group { return group1 }

// Group14 returns the 2048-bit group.
func Group14() *Group { return group14 }

// Group16 returns the 4096-bit group.
func Group16() *Group { return group16 }

// LookupGroup returns the group registered under name. Unknown names fall
// back to the 4096-bit group.
func LookupGroup(name string) *Group {
	switch name {
	case NameGroup1:
		return group1
	case NameGroup14:
		return group14
	default:
		return group16
	}
}

// Export returns p and g as minimal big-endian byte strings.
func (g *Group) Export() (p, gen []byte) {
	return g.P.Bytes(mpi.BigEndian), g.G.Bytes(mpi.BigEndian)
}

// ByteLen returns the byte length of p.
func (g *Group) ByteLen() int {
	return g.P.ByteLen()
}

// CheckPublicValue rejects the weak values y <= 1 and y >= p-1 with
// ErrIllegalParameter.
func (g *Group) CheckPublicValue(y *mpi.Int) error {
	pm1 := new(mpi.Int).SubInt(g.P, 1)
	if mpi.CmpInt(y, 1) <= 0 || mpi.Cmp(y, pm1) >= 0 {
		return cryptoerr.New(cryptoerr.ErrIllegalParameter, "dh: weak public value")
	}
	return nil
}
