// SPDX-License-Identifier: MIT
// Package echelon: recursive echelon engine and the degree repair loop.
//
// Contract of echelon(level, shift):
//   - On entry every row above `level` reads [*, ..., d, 0, ..., 0] with zeros
//     right of its diagonal, and the trailing block at `level` has a monomial
//     determinant.
//   - On return the trailing block at `level` is diagonal and its entries are
//     monomials of non-decreasing degree.
//
// Termination:
//   - Each repair iteration replaces the pivot at `level` by one of strictly
//     smaller degree: either gcd(d_i, v) with ord(v) below the old pivot
//     degree, or the next diagonal entry when that one is smaller. Degrees are
//     non-negative, so the loop ends. A global cap and ctx still guard it.

package echelon

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
)

var log = logging.Logger("echelon")

// reducer owns the working matrix for one Diagonalize call.
type reducer struct {
	ctx     context.Context
	w       *matrix.Dense
	n       int
	opts    Options
	repairs int
}

func newReducer(ctx context.Context, w *matrix.Dense, opts Options) *reducer {
	return &reducer{ctx: ctx, w: w, n: w.Rows(), opts: opts}
}

// at reads an in-range entry of the working matrix.
func (r *reducer) at(i, j int) *laurent.Poly {
	p, _ := r.w.At(i, j)

	return p
}

// echelon diagonalizes the trailing block at level and returns the updated
// shift accumulator.
func (r *reducer) echelon(level, shift int) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return shift, err
	}
	if level >= r.n-1 {
		return shift, nil
	}
	if err := r.reducePivotLine(level); err != nil {
		return shift, err
	}
	shift, err := r.echelon(level+1, shift)
	if err != nil {
		return shift, err
	}

	for {
		if err = r.ctx.Err(); err != nil {
			return shift, err
		}
		pick, err := r.correctColumn(level)
		if err != nil {
			return shift, err
		}
		shift = Renormalize(r.w, shift)

		pivot, next := r.at(level, level), r.at(level+1, level+1)
		if pick < 0 && pivot.Degree() <= next.Degree() {
			return shift, nil
		}
		if pick < 0 {
			pick = level + 1
		}
		if r.repairs >= r.opts.MaxRepairs {
			return shift, fmt.Errorf("echelon: level %d after %d repairs: %w", level, r.repairs, ErrNotConverged)
		}
		r.repairs++
		log.Debugf("level %d: repair %d, pivot %s, swapping with %d", level, r.repairs, pivot, pick)

		if err = r.w.SwapRows(level, pick); err != nil {
			return shift, err
		}
		if err = r.w.SwapCols(level, pick); err != nil {
			return shift, err
		}
		if err = r.reducePivotLine(level); err != nil {
			return shift, err
		}
		if shift, err = r.echelon(level+1, shift); err != nil {
			return shift, err
		}
		log.Debugf("level %d: after repair %d: %s", level, r.repairs, r.w)
	}
}

// correctColumn reduces the entries below the pivot at level, which must read
// d = c*z^a with zeros to its right while the trailing block is diagonal.
//
// For every row i below the pivot:
//   - the terms of degree >= a are removed by row_i -= (terms/d) * row_level;
//   - of what remains, the terms of degree >= deg(d_i) are removed against the
//     trailing pivot d_i by col_level -= (terms/d_i) * col_i.
//
// Both operations touch the single entry (i, level) inside the block. The
// returned index is the row whose leftover has the lowest order, or -1 when
// the column is clear.
func (r *reducer) correctColumn(level int) (int, error) {
	d := r.at(level, level)
	if !d.IsMonomial() {
		return -1, fmt.Errorf("echelon: pivot %s at level %d: %w", d, level, ErrInvalidMatrix)
	}
	a := d.Degree()

	pick, best := -1, 0
	for i := level + 1; i < r.n; i++ {
		if _, high := r.at(i, level).Split(a); !high.IsZero() {
			q, err := laurent.Quo(high, d)
			if err != nil {
				return -1, err
			}
			if err = r.w.AddRowMultiple(i, level, q.Neg()); err != nil {
				return -1, err
			}
		}

		di := r.at(i, i)
		if !di.IsMonomial() {
			return -1, fmt.Errorf("echelon: pivot %s at level %d: %w", di, i, ErrInvalidMatrix)
		}
		if _, high := r.at(i, level).Split(di.Degree()); !high.IsZero() {
			x, err := laurent.Quo(high, di)
			if err != nil {
				return -1, err
			}
			if err = r.w.AddColMultiple(level, i, x.Neg()); err != nil {
				return -1, err
			}
		}

		v := r.at(i, level)
		if v.IsZero() {
			continue
		}
		if pick < 0 || v.Order() < best {
			pick, best = i, v.Order()
		}
	}

	return pick, nil
}
