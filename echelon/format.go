// SPDX-License-Identifier: MIT

package echelon

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/dedekind/matrix"
)

// diagonalDegree is the degree of a diagonal entry, or 0 when the entry is
// zero or not a single monomial.
func diagonalDegree(m matrix.Matrix, i int) int {
	p, err := m.At(i, i)
	if err != nil || p.IsZero() || !p.IsMonomial() {
		log.Warnf("diagonal entry %d is not a monomial (%v), reading degree 0", i, p)
		return 0
	}

	return p.Degree()
}

func exponents(m matrix.Matrix, shift int) []int {
	n := min(m.Rows(), m.Cols())
	out := make([]int, n)
	for i := range out {
		out[i] = diagonalDegree(m, i) + shift
	}

	return out
}

// FormatDiagonal renders diag(z^e0,z^e1,...) with e_i = deg m[i,i] + shift,
// using the ring's variable name.
func FormatDiagonal(m matrix.Matrix, shift int) string {
	v := m.Ring().Variable()
	var sb strings.Builder
	sb.WriteString("diag(")
	for i, e := range exponents(m, shift) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(e))
	}
	sb.WriteByte(')')

	return sb.String()
}
