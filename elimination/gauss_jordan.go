package elimination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/trace"
)

// GaussJordan reduces a copy of m to reduced row-echelon form and returns it
// with the trace of applied row operations.
//
// Steps recorded (1-based row numbers, numbers at trace precision):
//   - "Swap R{p} <-> R{k} for best pivot" when the best pivot lies below.
//   - "R{p} = R{p} / {pivot}" when the pivot is not already 1.
//   - "R{i} = R{i} - {factor} * R{p}" for each other row with a nonzero entry.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrNaNInf on overflow.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c) plus snapshots.
func GaussJordan(m matrix.Matrix, opts ...trace.Option) (*matrix.Dense, trace.Trace, error) {
	work, err := matrix.ToDense(m)
	if err != nil {
		return nil, nil, eliminationErrorf(opGaussJordan, err)
	}
	rec := trace.NewRecorder(opts...)
	if err = ReduceWith(work, rec); err != nil {
		return nil, nil, err
	}

	return work, rec.Trace(), nil
}

// ReduceWith reduces work to RREF in place, recording into rec (which may be nil).
// It is the building block of GaussJordan for callers that own both the
// working matrix and the recorder.
//
// Algorithm:
//  1. pivotRow = pivotCol = 0; loop while both are in bounds.
//  2. Select the row in [pivotRow, rows) with the largest |work[·][pivotCol]|;
//     ties keep the upper row. Swap it up if it is not pivotRow.
//  3. If the pivot is exactly 0, advance pivotCol only.
//  4. Scale the pivot row by 1/pivot and store exactly 1 in the pivot cell.
//  5. For every other row i with factor = work[i][pivotCol] != 0, subtract
//     factor·R[pivotRow] and store exactly 0 in (i, pivotCol).
//  6. Advance both pivotRow and pivotCol.
func ReduceWith(work *matrix.Dense, rec *trace.Recorder) error {
	if err := matrix.ValidateNotNil(work); err != nil {
		return eliminationErrorf(opGaussJordan, err)
	}
	rows, cols := work.Rows(), work.Cols()

	var (
		pivotRow, pivotCol, best int
		pivot, factor            float64
		before                   *matrix.Dense
		err                      error
	)
	for pivotRow < rows && pivotCol < cols {
		if best, err = MaxAbsRow(work, pivotRow, pivotCol); err != nil {
			return eliminationErrorf(opGaussJordan, err)
		}
		if best != pivotRow {
			before = rec.Capture(work)
			if err = work.SwapRows(pivotRow, best); err != nil {
				return eliminationErrorf(opGaussJordan, err)
			}
			rec.Commit(before, fmt.Sprintf("Swap R%d <-> R%d for best pivot", pivotRow+1, best+1), work)
		}

		if pivot, err = work.At(pivotRow, pivotCol); err != nil {
			return eliminationErrorf(opGaussJordan, err)
		}
		if pivot == matrix.ZeroPivot {
			pivotCol++
			continue
		}

		if pivot != 1 {
			before = rec.Capture(work)
			if err = work.MultiplyRow(pivotRow, 1/pivot); err != nil {
				return eliminationErrorf(opGaussJordan, err)
			}
			if err = work.Set(pivotRow, pivotCol, 1); err != nil {
				return eliminationErrorf(opGaussJordan, err)
			}
			rec.Commit(before, fmt.Sprintf("R%d = R%d / %s", pivotRow+1, pivotRow+1, rec.Num(pivot)), work)
		}

		for i := 0; i < rows; i++ {
			if i == pivotRow {
				continue
			}
			if factor, err = work.At(i, pivotCol); err != nil {
				return eliminationErrorf(opGaussJordan, err)
			}
			if factor == 0 {
				continue
			}
			before = rec.Capture(work)
			if err = work.AddRowMultiple(i, pivotRow, -factor); err != nil {
				return eliminationErrorf(opGaussJordan, err)
			}
			if err = work.Set(i, pivotCol, 0); err != nil {
				return eliminationErrorf(opGaussJordan, err)
			}
			rec.Commit(before, fmt.Sprintf("R%d = R%d - %s * R%d", i+1, i+1, rec.Num(factor), pivotRow+1), work)
		}
		pivotRow++
		pivotCol++
	}

	return nil
}

// MaxAbsRow returns the row in [from, rows) whose entry in col has the
// largest magnitude; the first such row wins ties.
func MaxAbsRow(m *matrix.Dense, from, col int) (int, error) {
	best := from
	bestAbs := -1.0
	for k := from; k < m.Rows(); k++ {
		v, err := m.At(k, col)
		if err != nil {
			return 0, err
		}
		if a := math.Abs(v); a > bestAbs {
			best, bestAbs = k, a
		}
	}

	return best, nil
}
