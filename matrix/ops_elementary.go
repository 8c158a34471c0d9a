// SPDX-License-Identifier: MIT
// Package matrix: elementary row and column operations.
//
// Purpose:
//   - In-place unimodular transforms over F[z, z^-1]: swaps, transvections
//     (adding a polynomial multiple of one line to another), scaling by a
//     unit of the coefficient field, and a general 2×2 column recombination.
//   - A whole-matrix shift by z^k, used to regularize negative exponents.
//
// Contract:
//   - Every operation validates its indices first and leaves m untouched on
//     error. Swaps flip the sign of the determinant, transvections preserve
//     it, ScaleRow multiplies it by the unit.

package matrix

import (
	"github.com/katalvlaran/dedekind/field"
	"github.com/katalvlaran/dedekind/laurent"
)

func (m *Dense) checkRow(op string, i int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(op, i, -1, ErrOutOfRange)
	}

	return nil
}

func (m *Dense) checkCol(op string, j int) error {
	if j < 0 || j >= m.c {
		return denseErrorf(op, -1, j, ErrOutOfRange)
	}

	return nil
}

func (m *Dense) checkPoly(op string, p *laurent.Poly) error {
	if p == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if !p.Ring().Equal(m.ring) {
		return matrixErrorf(op, ErrRingMismatch)
	}

	return nil
}

// SwapRows exchanges rows i and j.
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow("SwapRows", i); err != nil {
		return err
	}
	if err := m.checkRow("SwapRows", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}

	return nil
}

// SwapCols exchanges columns i and j.
func (m *Dense) SwapCols(i, j int) error {
	if err := m.checkCol("SwapCols", i); err != nil {
		return err
	}
	if err := m.checkCol("SwapCols", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	for k := 0; k < m.r; k++ {
		m.data[k*m.c+i], m.data[k*m.c+j] = m.data[k*m.c+j], m.data[k*m.c+i]
	}

	return nil
}

// AddRowMultiple performs row[dst] += f * row[src]. dst must differ from src.
func (m *Dense) AddRowMultiple(dst, src int, f *laurent.Poly) error {
	const op = "AddRowMultiple"
	if err := m.checkRow(op, dst); err != nil {
		return err
	}
	if err := m.checkRow(op, src); err != nil {
		return err
	}
	if dst == src {
		return denseErrorf(op, dst, src, ErrDimensionMismatch)
	}
	if err := m.checkPoly(op, f); err != nil {
		return err
	}
	if f.IsZero() {
		return nil
	}
	for k := 0; k < m.c; k++ {
		s := m.data[src*m.c+k]
		if s.IsZero() {
			continue
		}
		m.data[dst*m.c+k] = m.data[dst*m.c+k].Add(f.Mul(s))
	}

	return nil
}

// AddColMultiple performs col[dst] += f * col[src]. dst must differ from src.
func (m *Dense) AddColMultiple(dst, src int, f *laurent.Poly) error {
	const op = "AddColMultiple"
	if err := m.checkCol(op, dst); err != nil {
		return err
	}
	if err := m.checkCol(op, src); err != nil {
		return err
	}
	if dst == src {
		return denseErrorf(op, dst, src, ErrDimensionMismatch)
	}
	if err := m.checkPoly(op, f); err != nil {
		return err
	}
	if f.IsZero() {
		return nil
	}
	for k := 0; k < m.r; k++ {
		s := m.data[k*m.c+src]
		if s.IsZero() {
			continue
		}
		m.data[k*m.c+dst] = m.data[k*m.c+dst].Add(f.Mul(s))
	}

	return nil
}

// ScaleRow multiplies row i by the scalar c.
func (m *Dense) ScaleRow(i int, c field.Element) error {
	if err := m.checkRow("ScaleRow", i); err != nil {
		return err
	}
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k] = m.data[i*m.c+k].Scale(c)
	}

	return nil
}

// CombineCols right-multiplies columns (i, j) by the 2×2 matrix [[a, b], [c, d]]:
//
//	col_i' = a*col_i + c*col_j
//	col_j' = b*col_i + d*col_j
//
// The determinant of m is multiplied by a*d - b*c; callers keep that equal
// to 1 to stay in the same equivalence class.
func (m *Dense) CombineCols(i, j int, a, b, c, d *laurent.Poly) error {
	const op = "CombineCols"
	if err := m.checkCol(op, i); err != nil {
		return err
	}
	if err := m.checkCol(op, j); err != nil {
		return err
	}
	if i == j {
		return denseErrorf(op, i, j, ErrDimensionMismatch)
	}
	for _, p := range []*laurent.Poly{a, b, c, d} {
		if err := m.checkPoly(op, p); err != nil {
			return err
		}
	}
	for k := 0; k < m.r; k++ {
		x, y := m.data[k*m.c+i], m.data[k*m.c+j]
		m.data[k*m.c+i] = a.Mul(x).Add(c.Mul(y))
		m.data[k*m.c+j] = b.Mul(x).Add(d.Mul(y))
	}

	return nil
}

// ShiftInPlace multiplies every entry by z^k.
func (m *Dense) ShiftInPlace(k int) {
	if k == 0 {
		return
	}
	for idx, p := range m.data {
		m.data[idx] = p.Shift(k)
	}
}
