package linsys

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/algeo/matrix"
)

// NoSolutionText is what Format prints for NoSolution.
const NoSolutionText = "No solution exists."

// Format renders r as one "x{i} = {value}" line per variable in index order
// (1-based names). Unique values use the shortest exact decimal form.
// A nil Result renders as "".
func Format(r Result) string {
	switch v := r.(type) {
	case Unique:
		return formatLines(v.Values, func(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) })
	case Parametric:
		return formatLines(v.Expressions, func(s string) string { return s })
	case NoSolution:
		return NoSolutionText
	default:
		return ""
	}
}

func formatLines[V any](values map[int]V, render func(V) string) string {
	lines := make([]string, 0, len(values))
	for _, i := range slices.Sorted(maps.Keys(values)) {
		lines = append(lines, fmt.Sprintf("x%d = %s", i+1, render(values[i])))
	}

	return strings.Join(lines, "\n")
}

// Residual returns max_i |(A·x)_i - b_i| for a Unique solution's values.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when values lacks a
//     variable or constants is not an A.Rows()×1 column.
func Residual(coeffs, constants matrix.Matrix, values map[int]float64) (float64, error) {
	if err := matrix.ValidateNotNil(coeffs); err != nil {
		return 0, linsysErrorf(opResid, err)
	}
	if err := matrix.ValidateNotNil(constants); err != nil {
		return 0, linsysErrorf(opResid, err)
	}
	if constants.Rows() != coeffs.Rows() || constants.Cols() != 1 {
		return 0, linsysErrorf(opResid, fmt.Errorf("constants %dx%d: %w", constants.Rows(), constants.Cols(), matrix.ErrDimensionMismatch))
	}

	x := make([]float64, coeffs.Cols())
	for i := range x {
		v, ok := values[i]
		if !ok {
			return 0, linsysErrorf(opResid, fmt.Errorf("no value for x%d: %w", i+1, matrix.ErrDimensionMismatch))
		}
		x[i] = v
	}
	y, err := matrix.MatVec(coeffs, x)
	if err != nil {
		return 0, linsysErrorf(opResid, err)
	}

	worst := 0.0
	var b float64
	for i, yi := range y {
		if b, err = constants.At(i, 0); err != nil {
			return 0, linsysErrorf(opResid, err)
		}
		worst = math.Max(worst, math.Abs(yi-b))
	}

	return worst, nil
}
