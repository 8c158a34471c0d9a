package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dedekind/field"
	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapRowsCols(t *testing.T) {
	m := mustParse(t, "[[1, z], [z^2, 3]]")
	det := mustDet(t, m)

	require.NoError(t, m.SwapRows(0, 1))
	assert.Equal(t, "[[z^2, 3], [1, z]]", m.String())
	assert.True(t, mustDet(t, m).Equal(det.Neg()), "row swap flips the determinant")

	require.NoError(t, m.SwapCols(0, 1))
	assert.Equal(t, "[[3, z^2], [z, 1]]", m.String())
	assert.True(t, mustDet(t, m).Equal(det))

	require.NoError(t, m.SwapRows(1, 1))
	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
}

// TestTransvectionsPreserveDet checks that adding multiples of lines keeps det.
func TestTransvectionsPreserveDet(t *testing.T) {
	m := mustParse(t, "[[z, z^2, 0], [z^-1, z^3 + 1, 5], [0, 0, z]]")
	det := mustDet(t, m)

	require.NoError(t, m.AddRowMultiple(1, 0, qz.MustParse("z^-2 - 4")))
	require.NoError(t, m.AddColMultiple(2, 0, qz.MustParse("3z")))
	require.NoError(t, m.AddColMultiple(0, 1, qz.MustParse("-z^-1")))

	assert.True(t, mustDet(t, m).Equal(det), "got %s want %s", mustDet(t, m), det)
}

func TestAddMultiple_Values(t *testing.T) {
	m := mustParse(t, "[[1, 2], [3, 4]]")

	require.NoError(t, m.AddRowMultiple(1, 0, qz.Int(-3)))
	assert.Equal(t, "[[1, 2], [0, -2]]", m.String())

	require.NoError(t, m.AddColMultiple(1, 0, qz.Int(-2)))
	assert.Equal(t, "[[1, 0], [0, -2]]", m.String())

	require.NoError(t, m.AddRowMultiple(0, 1, qz.Zero()))
	assert.Equal(t, "[[1, 0], [0, -2]]", m.String())
}

func TestAddMultiple_Errors(t *testing.T) {
	m := mustParse(t, "[[1, 2], [3, 4]]")

	require.ErrorIs(t, m.AddRowMultiple(0, 0, qz.One()), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.AddColMultiple(1, 1, qz.One()), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.AddRowMultiple(0, 5, qz.One()), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddColMultiple(0, 1, nil), matrix.ErrNilMatrix)

	gauss := laurent.NewRing(field.GaussianRationals(), "z")
	require.ErrorIs(t, m.AddRowMultiple(0, 1, gauss.One()), matrix.ErrRingMismatch)
	assert.Equal(t, "[[1, 2], [3, 4]]", m.String(), "failed ops leave m untouched")
}

func TestScaleRow(t *testing.T) {
	m := mustParse(t, "[[2z, 4], [1, z]]")
	half := field.Rationals().FromInt(2).Inv()

	require.NoError(t, m.ScaleRow(0, half))
	assert.Equal(t, "[[z, 2], [1, z]]", m.String())

	require.NoError(t, m.ScaleRow(1, field.Rationals().FromInt(-1)))
	assert.Equal(t, "[[z, 2], [-1, -z]]", m.String())

	require.ErrorIs(t, m.ScaleRow(3, half), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.ScaleRow(-1, half), matrix.ErrOutOfRange)
}

// TestCombineCols applies a determinant-one 2×2 block and checks det is kept.
func TestCombineCols(t *testing.T) {
	m := mustParse(t, "[[z, z^2 + 1], [1, z^3]]")
	det := mustDet(t, m)

	// [[s, -b], [t, a]] with s*a + t*b = 1 for a = z, b = z^2 + 1: s = -z, t = 1.
	s, tt := qz.MustParse("-z"), qz.One()
	a, b := qz.MustParse("z"), qz.MustParse("z^2 + 1")
	require.NoError(t, m.CombineCols(0, 1, s, b.Neg(), tt, a))

	requireEntry(t, m, 0, 0, "1")
	requireEntry(t, m, 0, 1, "0")
	assert.True(t, mustDet(t, m).Equal(det))

	require.ErrorIs(t, m.CombineCols(0, 0, s, s, s, s), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.CombineCols(0, 2, s, s, s, s), matrix.ErrOutOfRange)
}

func TestShiftInPlace(t *testing.T) {
	m := mustParse(t, "[[z, z^2], [z^-1, z^3 + 1]]")

	m.ShiftInPlace(-1)
	assert.Equal(t, "[[1, z], [z^-2, z^2 + z^-1]]", m.String())

	m.ShiftInPlace(0)
	assert.Equal(t, "[[1, z], [z^-2, z^2 + z^-1]]", m.String())

	m.ShiftInPlace(2)
	assert.Equal(t, "[[z^2, z^3], [1, z^4 + z]]", m.String())
}
