// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/algeo/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowOps_Elementary(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.MultiplyRow(0, 2))
	CompareExact(t, [][]float64{{2, 4, 6}, {4, 5, 6}}, m)

	require.NoError(t, m.AddRowMultiple(1, 0, -2))
	CompareExact(t, [][]float64{{2, 4, 6}, {0, -3, -6}}, m)

	require.NoError(t, m.SwapRows(0, 1))
	CompareExact(t, [][]float64{{0, -3, -6}, {2, 4, 6}}, m)

	require.NoError(t, m.SwapRows(1, 1))
	CompareExact(t, [][]float64{{0, -3, -6}, {2, 4, 6}}, m)

	require.NoError(t, m.AddToRow(0, 1))
	CompareExact(t, [][]float64{{1, -2, -5}, {2, 4, 6}}, m)

	require.NoError(t, m.ReplaceCol(2, []float64{9, 8}))
	CompareExact(t, [][]float64{{1, -2, 9}, {2, 4, 8}}, m)

	require.NoError(t, m.ScaleInPlace(0.5))
	CompareExact(t, [][]float64{{0.5, -1, 4.5}, {1, 2, 4}}, m)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2}, col)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 4}, row)
}

func TestRowOps_IndexErrors(t *testing.T) {
	m := MustDense(t, 2, 2)

	AssertErrorIs(t, m.MultiplyRow(2, 1), matrix.ErrOutOfRange)
	AssertErrorIs(t, m.AddRowMultiple(0, -1, 1), matrix.ErrOutOfRange)
	AssertErrorIs(t, m.SwapRows(0, 5), matrix.ErrIndexOutOfBounds)
	AssertErrorIs(t, m.AddToRow(-1, 1), matrix.ErrOutOfRange)
	AssertErrorIs(t, m.ReplaceCol(2, []float64{1, 2}), matrix.ErrOutOfRange)
	AssertErrorIs(t, m.ReplaceCol(0, []float64{1}), matrix.ErrDimensionMismatch)

	_, err := m.Col(3)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(3)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowOps_NonFiniteAtomic verifies a rejected mutation leaves the row unchanged.
func TestRowOps_NonFiniteAtomic(t *testing.T) {
	m := MustRows(t, [][]float64{{1, math.MaxFloat64}, {1, 1}})

	AssertErrorIs(t, m.MultiplyRow(0, 10), matrix.ErrNaNInf)
	AssertErrorIs(t, m.AddRowMultiple(0, 0, 1), matrix.ErrNaNInf)
	AssertErrorIs(t, m.ScaleInPlace(4), matrix.ErrNaNInf)
	AssertErrorIs(t, m.ReplaceCol(0, []float64{math.NaN(), 0}), matrix.ErrNaNInf)
	CompareExact(t, [][]float64{{1, math.MaxFloat64}, {1, 1}}, m)
}
