// SPDX-License-Identifier: MIT

package echelon

import (
	"github.com/katalvlaran/dedekind/matrix"
)

// IsInvertible reports whether m is invertible over F[z, z^-1], that is,
// whether det(m) is non-zero and equal to its own leading term.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for non-square input.
func IsInvertible(m matrix.Matrix) (bool, error) {
	det, err := matrix.Det(m)
	if err != nil {
		return false, echelonErrorf("IsInvertible", err)
	}
	log.Debugf("determinant: %s", det)

	return !det.IsZero() && det.Equal(det.LeadingTerm()), nil
}
