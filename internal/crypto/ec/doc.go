// Package ec implements point arithmetic on short Weierstrass curves in
// Jacobian projective coordinates, where (X, Y, Z) stands for the affine
// point (X/Z^2, Y/Z^3) and Z = 0 marks the point at infinity.
//
// Points are values: every operation returns a new Point and never modifies
// its arguments, so the same Point may be passed as several operands.
package ec
