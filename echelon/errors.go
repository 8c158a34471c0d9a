// SPDX-License-Identifier: MIT
// Package echelon: sentinel error set.

package echelon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMatrix is returned before any reduction when the determinant
	// is zero or has more than one term.
	ErrInvalidMatrix = errors.New("echelon: invalid matrix, must be invertible")

	// ErrNotConverged is returned when the repair loop exceeds the configured
	// number of iterations.
	ErrNotConverged = errors.New("echelon: reduction did not converge")

	// ErrEmptyRow is returned by Bezout for a row without entries.
	ErrEmptyRow = errors.New("echelon: empty row")
)

// echelonErrorf wraps err with an operation tag.
func echelonErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
