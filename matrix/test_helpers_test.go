// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dedekind/field"
	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
	"github.com/stretchr/testify/require"
)

// qz is the ring Q[z, z^-1] used by most tests.
var qz = laurent.NewRing(field.Rationals(), "z")

// mustParse PARSES a matrix literal over qz or fails the test.
func mustParse(tb testing.TB, s string) *matrix.Dense {
	tb.Helper()
	m, err := matrix.ParseDense(qz, s)
	require.NoError(tb, err)

	return m
}

// mustDet COMPUTES Det or fails the test.
func mustDet(tb testing.TB, m matrix.Matrix) *laurent.Poly {
	tb.Helper()
	d, err := matrix.Det(m)
	require.NoError(tb, err)

	return d
}

// requireEntry ASSERTS that m[i][j] renders as want.
func requireEntry(tb testing.TB, m matrix.Matrix, i, j int, want string) {
	tb.Helper()
	p, err := m.At(i, j)
	require.NoError(tb, err)
	require.Equal(tb, want, p.String(), "entry (%d,%d)", i, j)
}
