// SPDX-License-Identifier: MIT
// Package matrix provides ring operations on any Matrix implementation:
// products, identities, the lowest exponent and the determinant.
//
// Purpose:
//   - Exact arithmetic only; there is no tolerance anywhere in this file.
//   - Operands are never mutated; results are freshly allocated *Dense.
//
// Notes:
//   - F[z, z^-1] is an integral domain, so Bareiss' fraction-free elimination
//     divides exactly at every step and never leaves the ring.

package matrix

import (
	"github.com/katalvlaran/dedekind/laurent"
)

const (
	opMul = "Mul"
	opDet = "Det"
)

// NewIdentity returns the n×n identity matrix over ring.
func NewIdentity(ring *laurent.Ring, n int) (*Dense, error) {
	m, err := NewDense(ring, n, n)
	if err != nil {
		return nil, err
	}
	one := ring.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// MinOrder returns the lowest exponent over all non-zero entries of m and
// whether any non-zero entry exists.
func MinOrder(m Matrix) (int, bool) {
	lo, found := 0, false
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			p, _ := m.At(i, j)
			if p.IsZero() {
				continue
			}
			if !found || p.Order() < lo {
				lo, found = p.Order(), true
			}
		}
	}

	return lo, found
}

// Mul returns the product a × b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows,
// ErrRingMismatch.
// Complexity: O(r*k*c) polynomial multiplications.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	if err := ValidateSameRing(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(a.Ring(), a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.Rows(); i++ {
		for k := 0; k < a.Cols(); k++ {
			x, _ := a.At(i, k)
			if x.IsZero() {
				continue
			}
			for j := 0; j < b.Cols(); j++ {
				y, _ := b.At(k, j)
				out.data[i*out.c+j] = out.data[i*out.c+j].Add(x.Mul(y))
			}
		}
	}

	return out, nil
}

// Det computes the determinant of a square matrix by Bareiss' fraction-free
// elimination.
//
// Implementation:
//   - Stage 1: validate and copy m into a scratch Dense.
//   - Stage 2: for each k, find a non-zero pivot in column k at or below row k
//     (swap rows and flip the sign if needed); a missing pivot means det = 0.
//   - Stage 3: a[i][j] = (a[i][j]*a[k][k] - a[i][k]*a[k][j]) / prev, where the
//     division is exact in F[z, z^-1].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square input.
// Complexity: O(n^3) polynomial operations.
func Det(m Matrix) (*laurent.Poly, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	a := m.Clone()
	n := a.r
	ring := a.ring
	negate := false
	prev := ring.One()

	for k := 0; k < n-1; k++ {
		if a.data[k*n+k].IsZero() {
			p := -1
			for i := k + 1; i < n; i++ {
				if !a.data[i*n+k].IsZero() {
					p = i
					break
				}
			}
			if p < 0 {
				return ring.Zero(), nil
			}
			_ = a.SwapRows(k, p)
			negate = !negate
		}
		pivot := a.data[k*n+k]
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := a.data[i*n+j].Mul(pivot).Sub(a.data[i*n+k].Mul(a.data[k*n+j]))
				q, err := laurent.Quo(num, prev)
				if err != nil {
					return nil, denseErrorf(opDet, i, j, err)
				}
				a.data[i*n+j] = q
			}
			a.data[i*n+k] = ring.Zero()
		}
		prev = pivot
	}

	det := a.data[n*n-1]
	if negate {
		det = det.Neg()
	}

	return det, nil
}
