package calc

import (
	"github.com/katalvlaran/algeo/converters"
	"github.com/katalvlaran/algeo/linsys"
	"github.com/katalvlaran/algeo/matrix"
)

// DefaultTolerance is the tolerance Verify uses against gonum, applied
// absolutely or relatively to each compared value.
const DefaultTolerance = 1e-9

// Verify recomputes resp with gonum and reports converters.ErrMismatch when
// the two disagree beyond tol. Gauss-Jordan results and non-unique solutions
// have no gonum counterpart and are accepted as is.
func Verify(req Request, resp Response, tol float64) error {
	a, b, err := req.operands()
	if err != nil {
		return calcErrorf("Verify", err)
	}

	switch req.Op {
	case Addition:
		err = converters.CheckSum(a, b, resp.Matrix, tol)
	case Subtraction:
		err = converters.CheckDifference(a, b, resp.Matrix, tol)
	case Multiplication, StrassenMultiplication:
		err = converters.CheckProduct(a, b, resp.Matrix, tol)
	case Determinant:
		if resp.Scalar == nil {
			return calcErrorf("Verify", matrix.ErrNilMatrix)
		}
		err = converters.CheckDeterminant(a, *resp.Scalar, tol)
	case Inverse:
		err = converters.CheckInverse(a, resp.Matrix, tol)
	case SolveSystem:
		u, ok := resp.Solution.(linsys.Unique)
		if !ok {
			return nil
		}
		coeffs, constants, serr := matrix.SplitConstants(a)
		if serr != nil {
			return calcErrorf("Verify", serr)
		}
		err = converters.CheckSolution(coeffs, constants, u.Values, tol)
	}
	if err != nil {
		log.Warnw("verification failed", "name", req.Name, "op", req.Op.String(), "err", err)
		return calcErrorf("Verify", err)
	}

	return nil
}
