package linsys

import (
	"fmt"

	"github.com/katalvlaran/algeo/determinant"
	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/trace"
)

const descReplaceColumn = "replace column %d with result column"

// Cramer solves A·x = b by Cramer's rule: x[i] = det(A_i) / det(A), where
// A_i is A with column i replaced by b.
//
// The trace holds every step of det(A), then for each variable the column
// replacement step and only the final step of det(A_i).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (coeffs).
//   - matrix.ErrDimensionMismatch when constants is not an n×1 column.
//   - ErrSingularSystem when det(A) is zero.
func Cramer(coeffs, constants matrix.Matrix, opts ...trace.Option) (map[int]float64, trace.Trace, error) {
	if err := matrix.ValidateSquareNonNil(coeffs); err != nil {
		return nil, nil, linsysErrorf(opCramer, err)
	}
	if err := matrix.ValidateNotNil(constants); err != nil {
		return nil, nil, linsysErrorf(opCramer, err)
	}
	if constants.Rows() != coeffs.Rows() || constants.Cols() != 1 {
		return nil, nil, linsysErrorf(opCramer, fmt.Errorf("constants %dx%d for %dx%d coefficients: %w",
			constants.Rows(), constants.Cols(), coeffs.Rows(), coeffs.Cols(), matrix.ErrDimensionMismatch))
	}
	rec := trace.NewRecorder(opts...)

	mainDet, err := determinant.DeterminantWith(coeffs, rec)
	if err != nil {
		return nil, nil, linsysErrorf(opCramer, err)
	}
	if mainDet == 0 {
		return nil, nil, linsysErrorf(opCramer, ErrSingularSystem)
	}

	values, err := cramerWith(coeffs, constants, mainDet, rec)
	if err != nil {
		return nil, nil, linsysErrorf(opCramer, err)
	}

	return values, rec.Trace(), nil
}

// cramerWith computes the variant determinants against an already known
// nonzero mainDet.
func cramerWith(coeffs, constants matrix.Matrix, mainDet float64, rec *trace.Recorder) (map[int]float64, error) {
	n := coeffs.Rows()
	b := make([]float64, n)
	var err error
	for j := range b {
		if b[j], err = constants.At(j, 0); err != nil {
			return nil, err
		}
	}

	values := make(map[int]float64, n)
	var (
		tmp    *matrix.Dense
		varDet float64
	)
	for i := 0; i < n; i++ {
		if tmp, err = matrix.ToDense(coeffs); err != nil {
			return nil, err
		}
		if err = tmp.ReplaceCol(i, b); err != nil {
			return nil, err
		}
		rec.Record(coeffs, fmt.Sprintf(descReplaceColumn, i+1), tmp)

		sub := rec.Detached()
		if varDet, err = determinant.DeterminantWith(tmp, sub); err != nil {
			return nil, err
		}
		if last, ok := sub.Trace().Last(); ok {
			rec.Append(last)
		}
		values[i] = varDet / mainDet
	}

	return values, nil
}
