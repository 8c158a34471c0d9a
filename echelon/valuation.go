// SPDX-License-Identifier: MIT

package echelon

import (
	"github.com/katalvlaran/dedekind/matrix"
)

// MinimalDegree returns the negation of the largest InverseDegree over all
// non-zero entries of m, clamped to 0. A matrix without negative exponents
// yields 0; [[z, z^2], [z^-1, z^3+1]] yields -1.
func MinimalDegree(m matrix.Matrix) int {
	lo, ok := matrix.MinOrder(m)
	if !ok || lo > 0 {
		return 0
	}

	return lo
}

// Regularize returns z^k * m as a new matrix; m is not modified.
func Regularize(m matrix.Matrix, k int) *matrix.Dense {
	out := m.Clone()
	out.ShiftInPlace(k)

	return out
}

// Renormalize clears any negative exponents of w in place and returns the
// updated shift, keeping z^shift * w constant.
func Renormalize(w *matrix.Dense, shift int) int {
	md := MinimalDegree(w)
	if md == 0 {
		return shift
	}
	w.ShiftInPlace(-md)
	log.Debugf("renormalized by z^%d, shift %d -> %d", -md, shift, shift+md)

	return shift + md
}
