// Package drbg provides a hash-chain random byte generator.
//
// The generator keeps a 64-byte SHA-512 state. Each 32-byte output block is
// the first half of the state; the block is then overwritten with fresh seed
// bytes and the state is rehashed, so no output is ever produced twice and
// earlier output cannot be recovered from the current state.
package drbg

import (
	"crypto/sha512"
	"fmt"
	"io"
	mathrand "math/rand/v2"
	"sync"

	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

// BlockSize is the number of bytes produced per chain step.
const BlockSize = 32

// Generator is safe for concurrent use. Every draw advances the chain before
// another draw can observe the state.
type Generator struct {
	mu    sync.Mutex
	seed  io.Reader
	state [sha512.Size]byte
}

var _ io.Reader = (*Generator)(nil)

// New returns a generator whose initial state and per-block refresh bytes
// are read from seed.
func New(seed io.Reader) (*Generator, error) {
	if seed == nil {
		return nil, cryptoerr.New(cryptoerr.ErrRandomSourceUninitialized, "drbg: no seed source")
	}
	g := &Generator{seed: seed}
	if _, err := io.ReadFull(seed, g.state[:]); err != nil {
		return nil, fmt.Errorf("drbg: initial seed: %w", err)
	}
	g.state = sha512.Sum512(g.state[:])
	return g, nil
}

// NewDeterministic returns a generator seeded from a ChaCha8 stream keyed by
// seed. Two generators built from the same seed produce the same output.
func NewDeterministic(seed [32]byte) *Generator {
	g, err := New(mathrand.NewChaCha8(seed))
	if err != nil {
		// ChaCha8 never fails a read.
		panic(err)
	}
	return g
}

// Read fills p with generator output.
func (g *Generator) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for off := 0; off < len(p); off += BlockSize {
		n := copy(p[off:], g.state[:BlockSize])
		if err := g.advance(); err != nil {
			return off + n, err
		}
	}
	return len(p), nil
}

// advance replaces the first half of the state with fresh seed bytes and
// rehashes it.
func (g *Generator) advance() error {
	_, err := io.ReadFull(g.seed, g.state[:BlockSize])
	g.state = sha512.Sum512(g.state[:])
	if err != nil {
		return fmt.Errorf("drbg: refresh seed: %w", err)
	}
	return nil
}
