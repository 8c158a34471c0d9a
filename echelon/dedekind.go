// SPDX-License-Identifier: MIT

package echelon

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
)

// Result is the outcome of Diagonalize.
type Result struct {
	// D is the diagonal form over F[z]; the normal form of the input is
	// z^Shift * D.
	D *matrix.Dense
	// Shift is the accumulated exponent shift (<= 0).
	Shift int
	// Exponents[i] = deg D[i,i] + Shift, non-decreasing.
	Exponents []int
	// Repairs counts the pivot swaps performed by the repair loop.
	Repairs int
}

// String renders the result line, e.g.
//
//	The Dedeking-Weber form is diag(z^-1,z^5)
func (r *Result) String() string {
	return "The Dedeking-Weber form is " + FormatDiagonal(r.D, r.Shift)
}

// Diagonalize computes the Dedekind–Weber form of the square matrix m.
//
// Implementation:
//   - Stage 1: validate shape and exponent range, then gate on IsInvertible
//     (ErrInvalidMatrix).
//   - Stage 2: shift = MinimalDegree(m); work on Regularize(m, -shift).
//   - Stage 3: run the recursive echelon engine from level 0.
//   - Stage 4: optionally scale each pivot to leading coefficient 1.
//
// m is never modified.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// laurent.ErrTooLarge, ErrInvalidMatrix, ErrNotConverged, ctx.Err().
func Diagonalize(ctx context.Context, m matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, echelonErrorf("Diagonalize", err)
	}
	if err := checkBounded(m); err != nil {
		return nil, echelonErrorf("Diagonalize", err)
	}
	ok, err := IsInvertible(m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, echelonErrorf("Diagonalize", ErrInvalidMatrix)
	}

	shift := MinimalDegree(m)
	w := Regularize(m, -shift)
	log.Debugf("regularized by z^%d: %s", -shift, w)

	r := newReducer(ctx, w, o)
	if shift, err = r.echelon(0, shift); err != nil {
		return nil, echelonErrorf("Diagonalize", err)
	}

	if o.MonicDiagonal {
		for i, p := range w.Diagonal() {
			if p.IsZero() || p.LeadingCoeff().IsOne() {
				continue
			}
			if err = w.ScaleRow(i, p.LeadingCoeff().Inv()); err != nil {
				return nil, echelonErrorf("Diagonalize", err)
			}
		}
	}

	res := &Result{D: w, Shift: shift, Exponents: exponents(w, shift), Repairs: r.repairs}
	log.Debugf("done after %d repairs: %s", r.repairs, res)

	return res, nil
}

// checkBounded rejects entries with exponents beyond laurent.MaxExponent.
// Inputs built through Ring.Parse already satisfy it.
func checkBounded(m matrix.Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			p, _ := m.At(i, j)
			if !p.Bounded() {
				return fmt.Errorf("entry (%d,%d) spans z^%d..z^%d: %w", i, j, p.Order(), p.Degree(), laurent.ErrTooLarge)
			}
		}
	}

	return nil
}
