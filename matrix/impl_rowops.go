// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations (in-place mutators).
//
// Purpose:
//   - Provide the three elementary row operations used by elimination:
//     row scaling, row addition with a factor and row swap.
//   - Provide column replacement (Cramer's rule) and whole-matrix scaling.
//
// Contract:
//   - Mutators exist only on *Dense, never on the Matrix interface. Algorithms
//     clone their input into an owned *Dense and mutate that copy.
//   - Every index is validated before any cell is written.
//   - Under the finite-value policy a mutation that would produce NaN/±Inf is
//     rejected as a whole: the row is left untouched.

package matrix

import "fmt"

const (
	opMultiplyRow    = "MultiplyRow"
	opAddRowMultiple = "AddRowMultiple"
	opSwapRows       = "SwapRows"
	opAddToRow       = "AddToRow"
	opReplaceCol     = "ReplaceCol"
	opScaleInPlace   = "ScaleInPlace"
)

// rowErrorf tags an index failure with the operation and offending row.
func rowErrorf(op string, row int, err error) error {
	return matrixErrorf(op, fmt.Errorf("row %d: %w", row, err))
}

// checkRowWrite verifies that every value of f(j) for j in [0, cols) is
// admissible under the numeric policy, so the caller may then write blindly.
func (m *Dense) checkRowWrite(op string, row int, f func(j int) float64) error {
	if !m.validateNaNInf {
		return nil
	}
	for j := 0; j < m.c; j++ {
		if isNonFinite(f(j)) {
			return matrixErrorf(op, denseErrorf(ctxSet, row, j, ErrNaNInf))
		}
	}

	return nil
}

// MultiplyRow scales row in place: R[row] = factor * R[row].
//
// Errors:
//   - ErrOutOfRange (bad row), ErrNaNInf (result not finite under policy).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) MultiplyRow(row int, factor float64) error {
	if err := m.checkRow(row); err != nil {
		return rowErrorf(opMultiplyRow, row, err)
	}
	base := row * m.c
	if err := m.checkRowWrite(opMultiplyRow, row, func(j int) float64 {
		return m.data[base+j] * factor
	}); err != nil {
		return err
	}
	for j := 0; j < m.c; j++ {
		m.data[base+j] *= factor
	}

	return nil
}

// AddRowMultiple performs R[dst] = R[dst] + factor * R[src] in place.
// dst == src is allowed and yields (1+factor) * R[dst].
//
// Errors:
//   - ErrOutOfRange (bad dst or src), ErrNaNInf (result not finite under policy).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddRowMultiple(dst, src int, factor float64) error {
	if err := m.checkRow(dst); err != nil {
		return rowErrorf(opAddRowMultiple, dst, err)
	}
	if err := m.checkRow(src); err != nil {
		return rowErrorf(opAddRowMultiple, src, err)
	}
	dBase, sBase := dst*m.c, src*m.c
	if err := m.checkRowWrite(opAddRowMultiple, dst, func(j int) float64 {
		return m.data[dBase+j] + factor*m.data[sBase+j]
	}); err != nil {
		return err
	}
	for j := 0; j < m.c; j++ {
		m.data[dBase+j] += factor * m.data[sBase+j]
	}

	return nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow(i); err != nil {
		return rowErrorf(opSwapRows, i, err)
	}
	if err := m.checkRow(j); err != nil {
		return rowErrorf(opSwapRows, j, err)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// AddToRow adds the scalar number to every entry of row.
func (m *Dense) AddToRow(row int, number float64) error {
	if err := m.checkRow(row); err != nil {
		return rowErrorf(opAddToRow, row, err)
	}
	base := row * m.c
	if err := m.checkRowWrite(opAddToRow, row, func(j int) float64 {
		return m.data[base+j] + number
	}); err != nil {
		return err
	}
	for j := 0; j < m.c; j++ {
		m.data[base+j] += number
	}

	return nil
}

// ReplaceCol overwrites column col with values (len(values) must equal Rows()).
//
// Errors:
//   - ErrOutOfRange (bad col), ErrNilMatrix (nil values),
//     ErrDimensionMismatch (length), ErrNaNInf (non-finite value under policy).
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) ReplaceCol(col int, values []float64) error {
	if err := m.checkCol(col); err != nil {
		return matrixErrorf(opReplaceCol, fmt.Errorf("col %d: %w", col, err))
	}
	if err := ValidateVecLen(values, m.r); err != nil {
		return matrixErrorf(opReplaceCol, err)
	}
	for i, v := range values {
		if m.rejects(v) {
			return matrixErrorf(opReplaceCol, denseErrorf(ctxSet, i, col, ErrNaNInf))
		}
	}
	for i, v := range values {
		m.data[i*m.c+col] = v
	}

	return nil
}

// ScaleInPlace multiplies every entry by factor. Unlike Scale it reuses the buffer.
// On ErrNaNInf the matrix is left unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) ScaleInPlace(factor float64) error {
	if m.validateNaNInf {
		for idx, v := range m.data {
			if isNonFinite(v * factor) {
				return matrixErrorf(opScaleInPlace, denseErrorf(ctxSet, idx/m.c, idx%m.c, ErrNaNInf))
			}
		}
	}
	for idx := range m.data {
		m.data[idx] *= factor
	}

	return nil
}

// Col returns a copy of column col.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense) Col(col int) ([]float64, error) {
	if err := m.checkCol(col); err != nil {
		return nil, denseErrorf("Col", 0, col, err)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+col]
	}

	return out, nil
}

// Row returns a copy of row.
//
// Errors:
//   - ErrOutOfRange.
func (m *Dense) Row(row int) ([]float64, error) {
	if err := m.checkRow(row); err != nil {
		return nil, denseErrorf("Row", row, 0, err)
	}
	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}
