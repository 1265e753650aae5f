package elimination

import (
	"fmt"

	"github.com/katalvlaran/algeo/matrix"
)

const (
	opGauss          = "Gauss"
	opGaussJordan    = "GaussJordan"
	opUpSubstitution = "UpSubstitution"
)

// eliminationErrorf tags err with the package and operation.
func eliminationErrorf(op string, err error) error {
	return fmt.Errorf("elimination: %s: %w", op, err)
}

// Gauss performs forward elimination on a copy of m and returns the
// row-echelon matrix together with the number of row swaps.
//
// Algorithm:
//  1. For each column j in [0, cols-2] while pivotRow < rows:
//  2. Find the first row i ≥ pivotRow with m[i][j] != 0; if none, skip column j.
//  3. Swap row i into pivotRow (counted).
//  4. For every row k below, subtract (m[k][j]/pivot)·R[pivotRow] over columns ≥ j.
//
// The last column is never used as a pivot column, so an augmented system
// [A | b] keeps its constants untouched as pivots.
//
// Errors:
//   - matrix.ErrNilMatrix.
func Gauss(m matrix.Matrix) (*matrix.Dense, int, error) {
	work, err := matrix.ToDense(m)
	if err != nil {
		return nil, 0, eliminationErrorf(opGauss, err)
	}
	rows, cols := work.Rows(), work.Cols()

	var (
		pivotRow, swaps int
		v, pivot        float64
	)
	for j := 0; j < cols-1 && pivotRow < rows; j++ {
		found := -1
		for i := pivotRow; i < rows; i++ {
			if v, err = work.At(i, j); err != nil {
				return nil, 0, eliminationErrorf(opGauss, err)
			}
			if v != matrix.ZeroPivot {
				found = i
				break
			}
		}
		if found < 0 {
			continue
		}
		if found != pivotRow {
			if err = work.SwapRows(found, pivotRow); err != nil {
				return nil, 0, eliminationErrorf(opGauss, err)
			}
			swaps++
		}

		if pivot, err = work.At(pivotRow, j); err != nil {
			return nil, 0, eliminationErrorf(opGauss, err)
		}
		for k := pivotRow + 1; k < rows; k++ {
			if v, err = work.At(k, j); err != nil {
				return nil, 0, eliminationErrorf(opGauss, err)
			}
			if err = subtractTail(work, k, pivotRow, j, v/pivot); err != nil {
				return nil, 0, eliminationErrorf(opGauss, err)
			}
		}
		pivotRow++
	}

	return work, swaps, nil
}

// subtractTail performs R[dst][l] -= factor·R[src][l] for l ≥ from and then
// stores exactly 0 at (dst, from).
func subtractTail(m *matrix.Dense, dst, src, from int, factor float64) error {
	if factor == 0 {
		return nil
	}
	var s, d float64
	var err error
	for l := from; l < m.Cols(); l++ {
		if s, err = m.At(src, l); err != nil {
			return err
		}
		if d, err = m.At(dst, l); err != nil {
			return err
		}
		if err = m.Set(dst, l, d-factor*s); err != nil {
			return err
		}
	}

	return m.Set(dst, from, 0)
}

// UpSubstitution runs back-substitution on a copy of an already
// forward-eliminated matrix. For i from the last row up to 0 it divides
// row i by its diagonal pivot m[i][i] and clears column i in every row above.
// Rows whose diagonal entry is zero, or that have no diagonal entry
// (i ≥ cols), are skipped.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
func UpSubstitution(m matrix.Matrix) (*matrix.Dense, error) {
	work, err := matrix.ToDense(m)
	if err != nil {
		return nil, eliminationErrorf(opUpSubstitution, err)
	}
	rows, cols := work.Rows(), work.Cols()

	var pivot, v float64
	for i := rows - 1; i >= 0; i-- {
		if i >= cols {
			continue
		}
		if pivot, err = work.At(i, i); err != nil {
			return nil, eliminationErrorf(opUpSubstitution, err)
		}
		if pivot == matrix.ZeroPivot {
			continue
		}
		if err = work.MultiplyRow(i, 1/pivot); err != nil {
			return nil, eliminationErrorf(opUpSubstitution, err)
		}
		if err = work.Set(i, i, 1); err != nil {
			return nil, eliminationErrorf(opUpSubstitution, err)
		}
		for j := i - 1; j >= 0; j-- {
			if v, err = work.At(j, i); err != nil {
				return nil, eliminationErrorf(opUpSubstitution, err)
			}
			if v == 0 {
				continue
			}
			if err = work.AddRowMultiple(j, i, -v); err != nil {
				return nil, eliminationErrorf(opUpSubstitution, err)
			}
			if err = work.Set(j, i, 0); err != nil {
				return nil, eliminationErrorf(opUpSubstitution, err)
			}
		}
	}

	return work, nil
}
