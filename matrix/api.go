// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building and comparing matrices.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Exact comparisons (IsIdentity with eps = 0) are used by inversion to decide
//     invertibility; tolerance comparisons (Equal, AllClose) are for callers and tests.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape and numeric policy as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseLike(m, m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ToDense returns m as an owned *Dense copy. Algorithms call it on entry so
// that their in-place row operations never touch caller-owned storage.
//
// Complexity: O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	return SubMatrix(m, 0, m.Rows(), 0, m.Cols())
}

// FromRows builds a *Dense from a rectangular grid of integers or floats.
//
// Implementation:
//   - Stage 1: reject an empty grid, an empty first row and ragged rows (ErrBadShape).
//   - Stage 2: allocate with the resolved numeric policy and copy row by row,
//     converting each entry to float64.
//
// Errors:
//   - ErrBadShape (empty or ragged), ErrNaNInf (non-finite under policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T constraints.Integer | constraints.Float](rows [][]T, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrBadShape))
		}
	}

	o := gatherOptions(opts...)
	res, err := newDenseWithPolicy(len(rows), cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var v float64
	for i, row := range rows {
		for j, x := range row {
			v = float64(x)
			if res.rejects(v) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// ToRows copies m into a freshly allocated [][]float64 grid.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}
	}

	return out, nil
}

// ---------- Comparisons ----------

// IsIdentity reports whether m is square with |m[i,j] - δij| ≤ eps everywhere.
// eps = 0 demands an exact identity. A nil matrix is never an identity.
//
// Complexity: O(n^2), early exit on the first violation.
func IsIdentity(m Matrix, eps float64) bool {
	if ValidateSquareNonNil(m) != nil {
		return false
	}
	n := m.Rows()
	var want float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return false
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(v-want) > eps {
				return false
			}
		}
	}

	return true
}

// Equal reports whether a and b have the same shape and every pair of entries
// differs by at most the resolved epsilon (WithEpsilon, default DefaultEpsilon).
// Shape mismatch or nil operands yield false.
func Equal(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := ewAllClose(a, b, 0, o.eps)

	return err == nil && ok
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
