package determinant

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algeo/elimination"
	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/trace"
)

// ErrNotInvertible is returned by Inverse when Gauss-Jordan reduction of
// [A | I] does not leave the identity on the left.
var ErrNotInvertible = errors.New("matrix is not invertible")

const (
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// Step descriptions shared with callers that inspect traces.
const (
	DescBegin       = "Begin determinant calculation."
	DescAugment     = "Augment the matrix with the Identity Matrix."
	DescExtract     = "Inverse on the right side of the augmented matrix."
	descZeroPivot   = "Pivot at [%d, %d] is 0. The determinant of the matrix is 0."
	descFinal       = "Determinant = Product of diagonals * (-1)^swaps\nDeterminant = %s * (-1)^%d = %s"
	descSwap        = "Swap R%d <-> R%d"
	descEliminateBy = "R%d = R%d - %s * R%d"
)

func determinantErrorf(op string, err error) error {
	return fmt.Errorf("determinant: %s: %w", op, err)
}

// Determinant returns det(m) and the trace of its computation.
//
// The first step is DescBegin, the last step either explains a zero pivot or
// states the diagonal product, the swap count and the result.
func Determinant(m matrix.Matrix, opts ...trace.Option) (float64, trace.Trace, error) {
	rec := trace.NewRecorder(opts...)
	det, err := DeterminantWith(m, rec)
	if err != nil {
		return 0, nil, err
	}

	return det, rec.Trace(), nil
}

// DeterminantWith computes det(m) on a private copy, recording into rec
// (which may be nil).
func DeterminantWith(m matrix.Matrix, rec *trace.Recorder) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, determinantErrorf(opDeterminant, err)
	}
	work, err := matrix.ToDense(m)
	if err != nil {
		return 0, determinantErrorf(opDeterminant, err)
	}
	n := work.Rows()
	rec.Record(m, DescBegin, work)

	var (
		swaps, best   int
		pivot, factor float64
		before        *matrix.Dense
	)
	for i := 0; i < n; i++ {
		if best, err = elimination.MaxAbsRow(work, i, i); err != nil {
			return 0, determinantErrorf(opDeterminant, err)
		}
		if best != i {
			before = rec.Capture(work)
			if err = work.SwapRows(i, best); err != nil {
				return 0, determinantErrorf(opDeterminant, err)
			}
			swaps++
			rec.Commit(before, fmt.Sprintf(descSwap, i+1, best+1), work)
		}

		if pivot, err = work.At(i, i); err != nil {
			return 0, determinantErrorf(opDeterminant, err)
		}
		if pivot == matrix.ZeroPivot {
			rec.Record(work, fmt.Sprintf(descZeroPivot, i, i), work)
			return 0, nil
		}

		for k := i + 1; k < n; k++ {
			if factor, err = work.At(k, i); err != nil {
				return 0, determinantErrorf(opDeterminant, err)
			}
			factor /= pivot
			if factor == 0 {
				continue
			}
			before = rec.Capture(work)
			if err = work.AddRowMultiple(k, i, -factor); err != nil {
				return 0, determinantErrorf(opDeterminant, err)
			}
			if err = work.Set(k, i, 0); err != nil {
				return 0, determinantErrorf(opDeterminant, err)
			}
			rec.Commit(before, fmt.Sprintf(descEliminateBy, k+1, k+1, rec.Num(factor), i+1), work)
		}
	}

	product, err := matrix.DiagonalProduct(work)
	if err != nil {
		return 0, determinantErrorf(opDeterminant, err)
	}
	det := product
	if swaps%2 == 1 {
		det = -product
	}
	rec.Record(work, fmt.Sprintf(descFinal, rec.Num(product), swaps, rec.Num(det)), work)

	return det, nil
}

// Inverse returns m⁻¹ and the trace: the augmentation step, every
// Gauss-Jordan step, and the extraction step.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotInvertible.
func Inverse(m matrix.Matrix, opts ...trace.Option) (*matrix.Dense, trace.Trace, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, determinantErrorf(opInverse, err)
	}
	rec := trace.NewRecorder(opts...)

	id, err := matrix.IdentityLike(m)
	if err != nil {
		return nil, nil, determinantErrorf(opInverse, err)
	}
	aug, err := matrix.Augment(m, id)
	if err != nil {
		return nil, nil, determinantErrorf(opInverse, err)
	}
	rec.Record(m, DescAugment, aug)

	if err = elimination.ReduceWith(aug, rec); err != nil {
		return nil, nil, determinantErrorf(opInverse, err)
	}

	left, right, err := matrix.Split(aug)
	if err != nil {
		return nil, nil, determinantErrorf(opInverse, err)
	}
	if !matrix.IsIdentity(left, 0) {
		return nil, nil, determinantErrorf(opInverse, ErrNotInvertible)
	}
	rec.Record(aug, DescExtract, right)

	return right, rec.Trace(), nil
}
