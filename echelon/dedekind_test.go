// SPDX-License-Identifier: MIT

package echelon_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dedekind/echelon"
	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
)

// DiagonalizeSuite groups end-to-end tests for Diagonalize.
type DiagonalizeSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *DiagonalizeSuite) SetupTest() {
	s.ctx = context.Background()
}

// requireNormalForm checks the structural properties every result must have:
// D is diagonal with monic monomials, exponents are non-decreasing and sum
// to the degree of det(m).
func (s *DiagonalizeSuite) requireNormalForm(m matrix.Matrix, res *echelon.Result) {
	t := s.T()
	require.True(t, res.D.IsDiagonal(), "D = %s", res.D)
	require.LessOrEqual(t, res.Shift, 0)

	sum := 0
	for i, p := range res.D.Diagonal() {
		require.True(t, p.IsMonomial(), "D[%d] = %s", i, p)
		require.True(t, p.LeadingCoeff().IsOne(), "D[%d] = %s", i, p)
		require.Equal(t, p.Degree()+res.Shift, res.Exponents[i])
		if i > 0 {
			require.LessOrEqual(t, res.Exponents[i-1], res.Exponents[i])
		}
		sum += res.Exponents[i]
	}

	det, err := matrix.Det(m)
	require.NoError(t, err)
	require.Equal(t, det.Degree(), sum, "det = %s", det)
}

func (s *DiagonalizeSuite) diagonalize(ring *laurent.Ring, lit string, opts ...echelon.Option) (*matrix.Dense, *echelon.Result) {
	m := mustParse(s.T(), ring, lit)
	res, err := echelon.Diagonalize(s.ctx, m, opts...)
	require.NoError(s.T(), err)
	s.requireNormalForm(m, res)

	return m, res
}

// TestDriverMatrix: [[z, z^2], [z^-1, z^3+1]] => diag(z^-1,z^5).
func (s *DiagonalizeSuite) TestDriverMatrix() {
	m, res := s.diagonalize(qz, "[[z, z^2], [z^-1, z^3 + 1]]")

	require.Equal(s.T(), -1, res.Shift)
	require.Equal(s.T(), []int{-1, 5}, res.Exponents)
	require.Equal(s.T(), 1, res.Repairs)
	require.Equal(s.T(), "The Dedeking-Weber form is diag(z^-1,z^5)", res.String())
	require.Equal(s.T(), "[[z, z^2], [z^-1, z^3 + 1]]", m.String(), "input must not be modified")
}

// TestDriverMatrix3x3: the 3×3 variant with a high-degree coupling entry.
func (s *DiagonalizeSuite) TestDriverMatrix3x3() {
	_, res := s.diagonalize(qz, "[[z, z^2, 0], [z^-1, z^3 + 1, 5z^27], [0, 0, z]]")

	require.Equal(s.T(), -1, res.Shift)
	require.Equal(s.T(), "The Dedeking-Weber form is diag(z^-1,z^1,z^5)", res.String())
}

// TestReversedDiagonal needs the column-clear branch of the repair loop.
func (s *DiagonalizeSuite) TestReversedDiagonal() {
	_, res := s.diagonalize(qz, "[[z^3, 0, 0], [0, z^2, 0], [0, 0, z]]")

	require.Equal(s.T(), []int{1, 2, 3}, res.Exponents)
	require.Equal(s.T(), 3, res.Repairs)
}

// TestUnimodularDisguise: U·diag(z, z^2, z^4)·V with det U = det V = 1.
func (s *DiagonalizeSuite) TestUnimodularDisguise() {
	u := mustParse(s.T(), qz, "[[1, z + 1, 0], [0, 1, 0], [z, 0, 1]]")
	d := mustParse(s.T(), qz, "[[z, 0, 0], [0, z^2, 0], [0, 0, z^4]]")
	v := mustParse(s.T(), qz, "[[1, 0, 0], [z^2, 1, 0], [3, z, 1]]")
	ud, err := matrix.Mul(u, d)
	require.NoError(s.T(), err)
	m, err := matrix.Mul(ud, v)
	require.NoError(s.T(), err)

	res, err := echelon.Diagonalize(s.ctx, m)
	require.NoError(s.T(), err)
	s.requireNormalForm(m, res)
	require.Equal(s.T(), []int{1, 2, 4}, res.Exponents)

	// z^-3 is a unit of the Laurent ring; it shifts every exponent.
	shifted := echelon.Regularize(m, -3)
	res, err = echelon.Diagonalize(s.ctx, shifted)
	require.NoError(s.T(), err)
	s.requireNormalForm(shifted, res)
	require.Equal(s.T(), "The Dedeking-Weber form is diag(z^-2,z^-1,z^1)", res.String())
}

func (s *DiagonalizeSuite) TestScaledDeterminant() {
	_, res := s.diagonalize(qz, "[[3z^2, 0], [z^7 - 1, z^3]]")
	require.Equal(s.T(), []int{0, 5}, res.Exponents)
}

func (s *DiagonalizeSuite) TestSingleEntry() {
	_, res := s.diagonalize(qz, "[[5z^-3]]")
	require.Equal(s.T(), "The Dedeking-Weber form is diag(z^-3)", res.String())
}

func (s *DiagonalizeSuite) TestAlreadyNormal() {
	_, res := s.diagonalize(qz, "[[1, 0], [0, z^2]]")
	require.Equal(s.T(), []int{0, 2}, res.Exponents)
	require.Zero(s.T(), res.Repairs)
}

func (s *DiagonalizeSuite) TestGaussian() {
	_, res := s.diagonalize(gz, "[[i z, 1], [0, z^-1]]")
	require.Equal(s.T(), "The Dedeking-Weber form is diag(z^-1,z^1)", res.String())
}

func (s *DiagonalizeSuite) TestWithoutMonicNormalization() {
	m := mustParse(s.T(), qz, "[[z, z^2], [z^-1, z^3 + 1]]")
	res, err := echelon.Diagonalize(s.ctx, m, echelon.WithMonicDiagonal(false))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{-1, 5}, res.Exponents)
	for _, p := range res.D.Diagonal() {
		require.True(s.T(), p.IsMonomial(), "%s", p)
	}
}

func (s *DiagonalizeSuite) TestInvalidMatrix() {
	for _, lit := range []string{
		"[[z, 1], [-1, z]]",
		"[[1, 1], [1, 1]]",
		"[[z + 1]]",
	} {
		_, err := echelon.Diagonalize(s.ctx, mustParse(s.T(), qz, lit))
		require.ErrorIs(s.T(), err, echelon.ErrInvalidMatrix, lit)
		require.ErrorContains(s.T(), err, "Diagonalize: ", lit)
	}
}

func (s *DiagonalizeSuite) TestExponentOutOfRange() {
	one := qz.Field().One()
	m, err := matrix.NewFromRows(qz, [][]*laurent.Poly{
		{qz.Monomial(one, laurent.MaxExponent+1), nil},
		{nil, qz.One()},
	})
	require.NoError(s.T(), err)

	_, err = echelon.Diagonalize(s.ctx, m)
	require.ErrorIs(s.T(), err, laurent.ErrTooLarge)

	// The limit itself is accepted.
	require.NoError(s.T(), m.Set(0, 0, qz.Monomial(one, -laurent.MaxExponent)))
	res, err := echelon.Diagonalize(s.ctx, m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{-laurent.MaxExponent, 0}, res.Exponents)
}

func (s *DiagonalizeSuite) TestShapeErrors() {
	wide, err := matrix.NewDense(qz, 2, 3)
	require.NoError(s.T(), err)
	_, err = echelon.Diagonalize(s.ctx, wide)
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)

	_, err = echelon.Diagonalize(s.ctx, nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

func (s *DiagonalizeSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := echelon.Diagonalize(ctx, mustParse(s.T(), qz, "[[z, z^2], [z^-1, z^3 + 1]]"))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func (s *DiagonalizeSuite) TestRepairCap() {
	m := mustParse(s.T(), qz, "[[z^3, 0, 0], [0, z^2, 0], [0, 0, z]]")

	_, err := echelon.Diagonalize(s.ctx, m, echelon.WithMaxRepairs(1))
	require.ErrorIs(s.T(), err, echelon.ErrNotConverged)

	_, err = echelon.Diagonalize(s.ctx, m, echelon.WithMaxRepairs(3))
	require.NoError(s.T(), err)
}

func TestDiagonalizeSuite(t *testing.T) {
	suite.Run(t, new(DiagonalizeSuite))
}

func TestWithMaxRepairs_Panics(t *testing.T) {
	require.PanicsWithValue(t, "echelon: WithMaxRepairs: n must be positive", func() {
		echelon.WithMaxRepairs(0)
	})
}
