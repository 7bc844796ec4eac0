// Package mpi implements signed multi-precision integers on 32-bit words.
//
// An Int stores its magnitude as little-endian words. The most significant
// words may be zero; length queries skip them rather than relying on the
// slice length.
//
// Arithmetic methods follow a mutable receiver pattern: z.Add(x, y) sets z to
// x+y and returns z. Every method reads its operands in full before it
// writes the receiver, so the receiver may alias any operand. Methods that can
// fail return an error wrapping one of the kinds in pkg/cryptoerr and leave the
// receiver unspecified on failure.
package mpi
