// SPDX-License-Identifier: MIT

package echelon_test

import (
	"testing"

	"github.com/katalvlaran/dedekind/field"
	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
	"github.com/stretchr/testify/require"
)

var (
	qz = laurent.NewRing(field.Rationals(), "z")
	gz = laurent.NewRing(field.GaussianRationals(), "z")
)

func mustParse(tb testing.TB, ring *laurent.Ring, s string) *matrix.Dense {
	tb.Helper()
	m, err := matrix.ParseDense(ring, s)
	require.NoError(tb, err)

	return m
}

func polys(tb testing.TB, ring *laurent.Ring, src ...string) []*laurent.Poly {
	tb.Helper()
	out := make([]*laurent.Poly, len(src))
	for i, s := range src {
		p, err := ring.Parse(s)
		require.NoError(tb, err)
		out[i] = p
	}

	return out
}

// dot returns sum(c[i] * row[i]).
func dot(c, row []*laurent.Poly) *laurent.Poly {
	acc := row[0].Ring().Zero()
	for i := range row {
		acc = acc.Add(c[i].Mul(row[i]))
	}

	return acc
}
