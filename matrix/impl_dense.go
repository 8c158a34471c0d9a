// SPDX-License-Identifier: MIT
// Package matrix: Dense, a row-major polynomial matrix.
//
// Purpose:
//   - Store an r×c grid of *laurent.Poly in one flat slice (index i*c + j).
//   - Provide safe indexers that return sentinels instead of panicking.
//
// Determinism:
//   - Entries are immutable polynomials, so Clone copies pointers only and the
//     copy is still fully independent of the original.

package matrix

import (
	"strings"

	"github.com/katalvlaran/dedekind/laurent"
)

const (
	ctxNewDense = "NewDense"
	ctxFromRows = "NewFromRows"
	ctxAt       = "Dense.At"
	ctxSet      = "Dense.Set"
)

// Dense is a row-major matrix of Laurent polynomials over one ring.
// The zero value is not usable; construct with NewDense or NewFromRows.
type Dense struct {
	ring *laurent.Ring
	r, c int
	data []*laurent.Poly
}

// compile-time check
var _ Matrix = (*Dense)(nil)

// NewDense allocates an r×c matrix filled with the zero polynomial.
//
// Errors: ErrBadShape when r<=0 or c<=0, ErrNilMatrix when ring is nil.
// Complexity: O(r*c).
func NewDense(ring *laurent.Ring, r, c int) (*Dense, error) {
	if ring == nil {
		return nil, matrixErrorf(ctxNewDense, ErrNilMatrix)
	}
	if r <= 0 || c <= 0 {
		return nil, denseErrorf(ctxNewDense, r, c, ErrBadShape)
	}
	zero := ring.Zero()
	data := make([]*laurent.Poly, r*c)
	for k := range data {
		data[k] = zero
	}

	return &Dense{ring: ring, r: r, c: c, data: data}, nil
}

// NewFromRows builds a matrix from a rectangular slice of rows.
// Nil entries are read as zero. Every non-nil entry must belong to ring.
//
// Errors: ErrBadShape for empty or jagged input, ErrRingMismatch for foreign
// entries.
func NewFromRows(ring *laurent.Ring, rows [][]*laurent.Poly) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrBadShape)
	}
	m, err := NewDense(ring, len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, denseErrorf(ctxFromRows, i, len(row), ErrBadShape)
		}
		for j, p := range row {
			if p == nil {
				continue
			}
			if err = m.Set(i, j, p); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Ring returns the polynomial ring of the entries.
func (m *Dense) Ring() *laurent.Ring { return m.ring }

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

func (m *Dense) inBounds(i, j int) bool { return i >= 0 && i < m.r && j >= 0 && j < m.c }

// At returns entry (i, j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (*laurent.Poly, error) {
	if !m.inBounds(i, j) {
		return nil, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set stores p at (i, j). A nil p stores the zero polynomial.
func (m *Dense) Set(i, j int, p *laurent.Poly) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if p == nil {
		p = m.ring.Zero()
	}
	if !p.Ring().Equal(m.ring) {
		return denseErrorf(ctxSet, i, j, ErrRingMismatch)
	}
	m.data[i*m.c+j] = p

	return nil
}

// Clone returns an independent copy.
func (m *Dense) Clone() *Dense {
	data := make([]*laurent.Poly, len(m.data))
	copy(data, m.data)

	return &Dense{ring: m.ring, r: m.r, c: m.c, data: data}
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense) Row(i int) []*laurent.Poly {
	if i < 0 || i >= m.r {
		return nil
	}
	row := make([]*laurent.Poly, m.c)
	copy(row, m.data[i*m.c:(i+1)*m.c])

	return row
}

// Equal reports whether m and o have the same shape and equal entries.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal entry is zero.
func (m *Dense) IsDiagonal() bool {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if i != j && !m.data[i*m.c+j].IsZero() {
				return false
			}
		}
	}

	return true
}

// Diagonal returns the main diagonal entries.
func (m *Dense) Diagonal() []*laurent.Poly {
	n := min(m.r, m.c)
	out := make([]*laurent.Poly, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// String renders the matrix as a nested list literal that ParseDense accepts:
//
//	[[z, z^2], [z^-1, z^3 + 1]]
func (m *Dense) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
