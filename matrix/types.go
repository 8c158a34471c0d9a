// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface implemented by Dense.
package matrix

import "github.com/katalvlaran/dedekind/laurent"

// Matrix represents a two-dimensional mutable array of Laurent polynomials
// over a single ring.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Ring returns the polynomial ring every entry belongs to.
	Ring() *laurent.Ring

	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*laurent.Poly, error)

	// Set assigns p at position (i, j).
	// Returns ErrOutOfRange for invalid indices, ErrRingMismatch when p
	// belongs to another ring.
	Set(i, j int, p *laurent.Poly) error

	// Clone returns a deep, independent copy as a *Dense.
	Clone() *Dense
}
