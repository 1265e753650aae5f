package linsys

import (
	"fmt"

	"github.com/katalvlaran/algeo/determinant"
	"github.com/katalvlaran/algeo/elimination"
	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/trace"
)

func linsysErrorf(op string, err error) error {
	return fmt.Errorf("linsys: %s: %w", op, err)
}

// Solve classifies and solves the system encoded by the augmented matrix
// aug = [A | b] (the last column holds the constants).
//
// Implementation:
//   - Stage 1: if rows ≠ cols-1, reduce a copy of aug with Gauss-Jordan and
//     classify it as NoSolution or Parametric.
//   - Stage 2: otherwise compute det(A). If it is nonzero, solve with
//     Cramer's rule reusing that determinant.
//   - Stage 3: if det(A) is zero, fall back to Stage 1 on the full matrix.
//
// The trace contains the main determinant steps once, whichever branch runs.
// A single-column aug has no unknowns: any nonzero constant makes it
// NoSolution, otherwise it is a Parametric result with no expressions.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Cramer branch: O(n⁴) (n+1 determinants). Gauss-Jordan branch: O(r·c·min(r,c)).
func Solve(aug matrix.Matrix, opts ...trace.Option) (Result, trace.Trace, error) {
	if err := matrix.ValidateNotNil(aug); err != nil {
		return nil, nil, linsysErrorf(opSolve, err)
	}
	rec := trace.NewRecorder(opts...)

	res, err := solveWith(aug, rec)
	if err != nil {
		return nil, nil, linsysErrorf(opSolve, err)
	}

	return res, rec.Trace(), nil
}

func solveWith(aug matrix.Matrix, rec *trace.Recorder) (Result, error) {
	if aug.Rows() != aug.Cols()-1 {
		return reduceAndClassify(aug, rec)
	}

	coeffs, constants, err := matrix.SplitConstants(aug)
	if err != nil {
		return nil, err
	}
	mainDet, err := determinant.DeterminantWith(coeffs, rec)
	if err != nil {
		return nil, err
	}
	if mainDet == 0 {
		return reduceAndClassify(aug, rec)
	}

	values, err := cramerWith(coeffs, constants, mainDet, rec)
	if err != nil {
		return nil, err
	}

	return Unique{Values: values}, nil
}

// reduceAndClassify runs Gauss-Jordan on a copy of aug and reads the result.
func reduceAndClassify(aug matrix.Matrix, rec *trace.Recorder) (Result, error) {
	work, err := matrix.ToDense(aug)
	if err != nil {
		return nil, err
	}
	if err = elimination.ReduceWith(work, rec); err != nil {
		return nil, err
	}

	none, err := hasNoSolution(work)
	if err != nil {
		return nil, err
	}
	if none {
		return NoSolution{}, nil
	}

	return parametric(work, rec)
}

// hasNoSolution reports whether some row reads 0 = c with c ≠ 0.
func hasNoSolution(m *matrix.Dense) (bool, error) {
	last := m.Cols() - 1
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return false, err
		}
		sum := 0.0
		for _, v := range row[:last] {
			if v < 0 {
				sum -= v
			} else {
				sum += v
			}
		}
		if sum == 0 && row[last] != 0 {
			return true, nil
		}
	}

	return false, nil
}
