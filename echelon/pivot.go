// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"

	"github.com/katalvlaran/dedekind/laurent"
)

// reducePivotLine collapses row `level` of the trailing block onto its gcd:
// afterwards the row reads [g, 0, ..., 0] and the pivot column equals the
// block times the Bézout weights of that row.
//
// Implementation:
//   - Stage 1: Bezout on the block row. If the pivot weight is zero, swap in
//     the first column with a non-zero weight and recompute.
//   - Stage 2: fold column level+j into the pivot column for j = 1, 2, ...
//     with the same steps Bezout took. For a gcd step with s*g + t*b = g'
//     the pair of columns is right-multiplied by
//
//     [ s  -b/g' ]
//     [ t   g/g' ]
//
//     whose determinant is (s*g + t*b)/g' = 1. A zero entry adds its column
//     to the pivot column (weight 1); a zero running generator does the same
//     and then subtracts the new pivot column back out of column level+j.
//
// Every operation is unimodular, so the block stays equivalent to its input.
func (r *reducer) reducePivotLine(level int) error {
	row := r.w.Row(level)[level:]
	coeffs, gen, err := Bezout(row)
	if err != nil {
		return err
	}
	if gen.IsZero() {
		return fmt.Errorf("reducePivotLine: zero row at level %d: %w", level, ErrInvalidMatrix)
	}
	if coeffs[0].IsZero() {
		for j := 1; j < len(coeffs); j++ {
			if coeffs[j].IsZero() {
				continue
			}
			if err = r.w.SwapCols(level, level+j); err != nil {
				return err
			}
			log.Debugf("level %d: pivot weight is zero, swapped column %d in", level, level+j)
			break
		}
	}

	one := r.w.Ring().One()
	for j := level + 1; j < r.n; j++ {
		gPrev, b := r.at(level, level), r.at(level, j)
		st, err := nextStep(gPrev, b)
		if err != nil {
			return fmt.Errorf("reducePivotLine: level %d column %d: %w", level, j, err)
		}
		switch st.kind {
		case stepSkip:
			err = r.w.AddColMultiple(level, j, one)
		case stepAdopt:
			if err = r.w.AddColMultiple(level, j, one); err == nil {
				err = r.w.AddColMultiple(j, level, one.Neg())
			}
		case stepGCD:
			err = r.foldGCD(level, j, gPrev, b, st)
		}
		if err != nil {
			return err
		}
	}
	log.Debugf("level %d: pivot line reduced, pivot %s", level, r.at(level, level))

	return nil
}

func (r *reducer) foldGCD(level, j int, gPrev, b *laurent.Poly, st foldStep) error {
	bq, err := laurent.Quo(b, st.g)
	if err != nil {
		return err
	}
	gq, err := laurent.Quo(gPrev, st.g)
	if err != nil {
		return err
	}

	return r.w.CombineCols(level, j, st.s, bq.Neg(), st.t, gq)
}
