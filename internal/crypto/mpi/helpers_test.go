package mpi

import (
	"math/big"

	"pgregory.net/rapid"
)

func toBig(x *Int) *big.Int {
	b := new(big.Int).SetBytes(x.Bytes(BigEndian))
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

func fromBig(b *big.Int) *Int {
	z := FromBytes(b.Bytes(), BigEndian)
	if b.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

func fromHex(s string) *Int {
	b, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex " + s)
	}
	return fromBig(b)
}

// genInt draws a signed Int of up to maxWords words.
func genInt(maxWords int) *rapid.Generator[*Int] {
	return rapid.Custom(func(t *rapid.T) *Int {
		w := rapid.SliceOfN(rapid.Uint32(), 0, maxWords).Draw(t, "words")
		z := FromWords(w)
		if rapid.Bool().Draw(t, "neg") {
			z.Neg(z)
		}
		return z
	})
}

// genPositive draws an Int in [1, 2^(32*maxWords)).
func genPositive(maxWords int) *rapid.Generator[*Int] {
	return rapid.Custom(func(t *rapid.T) *Int {
		w := rapid.SliceOfN(rapid.Uint32(), 1, maxWords).Draw(t, "words")
		z := FromWords(w)
		if z.IsZero() {
			z.SetInt64(1)
		}
		return z
	})
}
