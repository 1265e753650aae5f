package calc

import (
	"time"

	"github.com/katalvlaran/algeo/determinant"
	"github.com/katalvlaran/algeo/elimination"
	"github.com/katalvlaran/algeo/linsys"
	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/strassen"
	"github.com/katalvlaran/algeo/trace"
)

// Response is the computed result of a Request. Exactly one of Matrix,
// Scalar and Solution is set, depending on Op.
type Response struct {
	Name     string
	Op       Operation
	Matrix   *matrix.Dense
	Scalar   *float64
	Solution linsys.Result
	Trace    trace.Trace

	precision int
}

// Evaluate parses req and runs its operation.
//
// Errors:
//   - ErrUnknownOperation, ErrMissingOperand.
//   - Parse and numeric errors from matrix, determinant, linsys and strassen,
//     wrapped with the request operation.
func Evaluate(req Request, opts ...Option) (Response, error) {
	o := NewOptions(opts...)
	start := time.Now()

	resp, err := evaluate(req, o)
	if err != nil {
		log.Debugw("evaluate failed", "name", req.Name, "op", req.Op.String(), "err", err)
		return Response{}, calcErrorf("Evaluate "+req.Op.String(), err)
	}
	log.Debugw("evaluated", "name", req.Name, "op", req.Op.String(), "steps", resp.Trace.Len(), "took", time.Since(start))

	return resp, nil
}

func evaluate(req Request, o Options) (Response, error) {
	a, b, err := req.operands()
	if err != nil {
		return Response{}, err
	}
	resp := Response{Name: req.Name, Op: req.Op, precision: o.precision}
	topts := o.traceOptions()

	switch req.Op {
	case Addition:
		resp.Matrix, err = matrix.Add(a, b)
	case Subtraction:
		resp.Matrix, err = matrix.Sub(a, b)
	case Multiplication:
		resp.Matrix, err = strassen.BruteForce(a, b)
	case StrassenMultiplication:
		resp.Matrix, err = strassen.Multiply(a, b, strassen.WithLeafSize(o.leafSize))
	case Determinant:
		var det float64
		if det, resp.Trace, err = determinant.Determinant(a, topts...); err == nil {
			resp.Scalar = &det
		}
	case Inverse:
		resp.Matrix, resp.Trace, err = determinant.Inverse(a, topts...)
	case GaussJordan:
		resp.Matrix, resp.Trace, err = elimination.GaussJordan(a, topts...)
	case SolveSystem:
		resp.Solution, resp.Trace, err = linsys.Solve(a, topts...)
	}
	if err != nil {
		return Response{}, err
	}

	return resp, nil
}
