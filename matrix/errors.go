// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped) and tests
// check them via errors.Is. Panics are reserved for programmer errors such as
// mixing coefficient fields inside one polynomial expression.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the call site; callers still match
// with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when literal rows have different lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and elementary operations return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or Det of a non-square matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRingMismatch indicates entries or operands over different polynomial rings.
	ErrRingMismatch = errors.New("matrix: polynomial ring mismatch")

	// ErrSyntax is returned by ParseDense for malformed matrix literals.
	ErrSyntax = errors.New("matrix: syntax error")

)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// denseErrorf wraps err with an operation tag and the offending coordinates.
func denseErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
}
