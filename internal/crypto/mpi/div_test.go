package mpi

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

func TestDivModTruncates(t *testing.T) {
	tests := []struct {
		a, b, q, r int64
	}{
		{17, 5, 3, 2},
		{-17, 5, -3, -2},
		{17, -5, -3, 2},
		{-17, -5, 3, -2},
		{4, 7, 0, 4},
		{0, 7, 0, 0},
	}
	for _, tt := range tests {
		q, r, err := DivMod(NewInt(tt.a), NewInt(tt.b))
		require.NoError(t, err)
		assert.Equal(t, 0, CmpInt(q, tt.q), "%d / %d", tt.a, tt.b)
		assert.Equal(t, 0, CmpInt(r, tt.r), "%d %% %d", tt.a, tt.b)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, _, err := DivMod(NewInt(1), NewInt(0))
	assert.True(t, errors.Is(err, cryptoerr.ErrDivisionByZero))

	_, err = new(Int).Div(NewInt(1), new(Int))
	assert.True(t, errors.Is(err, cryptoerr.ErrDivisionByZero))
}

func TestDivModMatchesBig(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genInt(12).Draw(t, "a")
		b := genInt(6).Draw(t, "b")
		if b.IsZero() {
			b.SetInt64(3)
		}

		q, r, err := DivMod(a, b)
		if err != nil {
			t.Fatalf("DivMod: %v", err)
		}
		wq, wr := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
		if toBig(q).Cmp(wq) != 0 || toBig(r).Cmp(wr) != 0 {
			t.Fatalf("DivMod(%s, %s) = (%s, %s), want (%x, %x)", a, b, q, r, wq, wr)
		}
	})
}

func TestModRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genInt(12).Draw(t, "a")
		p := genPositive(6).Draw(t, "p")

		m, err := new(Int).Mod(a, p)
		if err != nil {
			t.Fatalf("Mod: %v", err)
		}
		if m.Sign() < 0 || Cmp(m, p) >= 0 {
			t.Fatalf("Mod(%s, %s) = %s out of range", a, p, m)
		}
		if toBig(m).Cmp(new(big.Int).Mod(toBig(a), toBig(p))) != 0 {
			t.Fatalf("Mod(%s, %s) = %s disagrees with math/big", a, p, m)
		}
	})
}

func TestModNegativeMultiple(t *testing.T) {
	m, err := new(Int).Mod(NewInt(-21), NewInt(7))
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	m, err = new(Int).Mod(NewInt(-3), NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, 0, CmpInt(m, 4))
}

func TestModRejectsNonPositive(t *testing.T) {
	for _, p := range []int64{0, -7} {
		_, err := new(Int).Mod(NewInt(5), NewInt(p))
		assert.True(t, errors.Is(err, cryptoerr.ErrInvalidParameter), "p=%d", p)
	}
}

func TestModularOps(t *testing.T) {
	p := NewInt(97)
	x, y := NewInt(90), NewInt(20)

	z, err := new(Int).AddMod(x, y, p)
	require.NoError(t, err)
	assert.Equal(t, 0, CmpInt(z, 13))

	z, err = new(Int).SubMod(y, x, p)
	require.NoError(t, err)
	assert.Equal(t, 0, CmpInt(z, 27))

	z, err = new(Int).MulMod(x, y, p)
	require.NoError(t, err)
	assert.Equal(t, 0, CmpInt(z, 1800%97))
}

func TestInverseMod(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPositive(6).Draw(t, "p")
		a := genInt(8).Draw(t, "a")
		if CmpInt(p, 1) == 0 {
			p.SetInt64(2)
		}

		want := new(big.Int).ModInverse(toBig(a), toBig(p))
		inv, err := new(Int).InverseMod(a, p)
		if want == nil {
			if !errors.Is(err, cryptoerr.ErrFailure) {
				t.Fatalf("InverseMod(%s, %s): expected ErrFailure, got %v", a, p, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("InverseMod(%s, %s): %v", a, p, err)
		}
		if toBig(inv).Cmp(want) != 0 {
			t.Fatalf("InverseMod(%s, %s) = %s, want %x", a, p, inv, want)
		}
	})
}

func TestInverseModNoInverse(t *testing.T) {
	_, err := new(Int).InverseMod(NewInt(6), NewInt(9))
	assert.True(t, errors.Is(err, cryptoerr.ErrFailure))

	_, err = new(Int).InverseMod(NewInt(0), NewInt(9))
	assert.True(t, errors.Is(err, cryptoerr.ErrFailure))
}
