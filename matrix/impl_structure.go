// SPDX-License-Identifier: MIT

// Package matrix - structural operations: concatenation, splits, windows.
//
// Purpose:
//   - Build augmented matrices [A | B] for inversion and linear systems.
//   - Split them back (even bisection for [A | I], last-column split for [A | b]).
//   - Extract and place square blocks for divide-and-conquer multiplication.
//
// All functions except Place allocate a fresh *Dense and never alias the
// input buffers. Place is the only in-place writer here and validates that
// the whole block fits before writing a single cell.

package matrix

import "fmt"

// Augment returns the horizontal concatenation [a | b].
//
// Implementation:
//   - Stage 1: validate both non-nil and a.Rows == b.Rows.
//   - Stage 2: allocate rows×(ca+cb) and copy a then b row by row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseLike(a, rows, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err = res.Place(a, 0, 0); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err = res.Place(b, 0, ca); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	return res, nil
}

// Split bisects m column-wise into two halves of equal width.
// It is the inverse of Augment for equally wide operands ([A | I] → A, I).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when Cols() is odd.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Split(m Matrix) (left, right *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	cols := m.Cols()
	if cols%2 != 0 {
		return nil, nil, matrixErrorf(opSplit, fmt.Errorf("odd column count %d: %w", cols, ErrDimensionMismatch))
	}
	half := cols / 2
	if left, err = SubMatrix(m, 0, m.Rows(), 0, half); err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	if right, err = SubMatrix(m, 0, m.Rows(), half, cols); err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}

	return left, right, nil
}

// SplitConstants separates the last column of an augmented system [A | b].
// The coefficient part keeps Cols()-1 columns (one per variable); the
// constants part is a single column.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when Cols() < 2.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func SplitConstants(m Matrix) (coefficients, constants *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opSplitConstants, err)
	}
	cols := m.Cols()
	if cols < 2 {
		return nil, nil, matrixErrorf(opSplitConstants, fmt.Errorf("need at least 2 columns, have %d: %w", cols, ErrDimensionMismatch))
	}
	if coefficients, err = SubMatrix(m, 0, m.Rows(), 0, cols-1); err != nil {
		return nil, nil, matrixErrorf(opSplitConstants, err)
	}
	if constants, err = SubMatrix(m, 0, m.Rows(), cols-1, cols); err != nil {
		return nil, nil, matrixErrorf(opSplitConstants, err)
	}

	return coefficients, constants, nil
}

// SubMatrix copies the half-open window rows [r0, r1) × cols [c0, c1).
//
// Implementation:
//   - Stage 1: validate both ranges lie in bounds and are non-empty.
//   - Stage 2: copy row segments (flat copy on *Dense, At otherwise).
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange (window exceeds bounds); ErrBadShape (empty window).
//
// Complexity:
//   - Time O((r1-r0)*(c1-c0)), Space the same.
func SubMatrix(m Matrix, r0, r1, c0, c1 int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if err := validateRange(r0, r1, m.Rows()); err != nil {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("rows [%d,%d): %w", r0, r1, err))
	}
	if err := validateRange(c0, c1, m.Cols()); err != nil {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("cols [%d,%d): %w", c0, c1, err))
	}

	rows, cols := r1-r0, c1-c0
	res, err := newDenseLike(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		var src int
		for i = 0; i < rows; i++ {
			src = (r0+i)*d.c + c0
			copy(res.data[i*cols:(i+1)*cols], d.data[src:src+cols])
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(r0+i, c0+j); err != nil {
				return nil, matrixErrorf(opSubMatrix, err)
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opSubMatrix, err)
			}
		}
	}

	return res, nil
}

// Place writes src into m with its top-left corner at (r0, c0).
// This is the "join" step of divide-and-conquer: quadrants computed
// separately are assembled back into one matrix.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when the block does not fit (nothing is written).
//
// Complexity:
//   - Time O(src.Rows()*src.Cols()), Space O(1).
func (m *Dense) Place(src Matrix, r0, c0 int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opPlace, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opPlace, err)
	}
	rows, cols := src.Rows(), src.Cols()
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return matrixErrorf(opPlace, fmt.Errorf("block %dx%d at (%d,%d) in %dx%d: %w",
			rows, cols, r0, c0, m.r, m.c, ErrOutOfRange))
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(opPlace, err)
			}
			if m.rejects(v) {
				return matrixErrorf(opPlace, denseErrorf(ctxSet, r0+i, c0+j, ErrNaNInf))
			}
			m.data[(r0+i)*m.c+c0+j] = v
		}
	}

	return nil
}

// DiagonalProduct returns the product of the main-diagonal entries of a
// square matrix. For an upper-triangular matrix this is its determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func DiagonalProduct(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDiagonal, err)
	}

	product := 1.0
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opDiagonal, err)
		}
		product *= v
	}

	return product, nil
}
