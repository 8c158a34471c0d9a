// Package matrix offers dense matrices of Laurent polynomials.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c grid of *laurent.Poly with safe indexers that
//     return sentinel errors instead of panicking.
//   - Elementary row and column operations (swaps, transvections, unit
//     scaling, 2×2 column recombination) that keep a matrix inside its
//     equivalence class over F[z, z^-1].
//   - Det, an exact determinant by Bareiss' fraction-free elimination,
//     MinOrder for the lowest exponent, and Mul for checking identities.
//   - ParseDense, which reads literals like "[[z, z^2], [z^-1, z^3 + 1]]".
//
// See the examples in this package for usage patterns.
package matrix
