package linsys

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/trace"
)

// parametric reads the general solution off a consistent RREF matrix.
//
// The pivot of a row is its first variable column holding exactly 1; the
// reduction stores exact ones there. Columns that are no row's pivot are
// free. Numbers are formatted at rec's precision.
func parametric(m *matrix.Dense, rec *trace.Recorder) (Parametric, error) {
	rows, last := m.Rows(), m.Cols()-1

	pivots := make([]int, rows)
	isPivot := make([]bool, last)
	for i := 0; i < rows; i++ {
		pivots[i] = -1
		row, err := m.Row(i)
		if err != nil {
			return Parametric{}, err
		}
		for j, v := range row[:last] {
			if v == 1 {
				pivots[i] = j
				isPivot[j] = true
				break
			}
		}
	}

	exprs := make(map[int]string, last)
	var free []int
	var params []string
	for j := 0; j < last; j++ {
		if isPivot[j] {
			continue
		}
		name := parameterName(len(free))
		free = append(free, j)
		params = append(params, name)
		exprs[j] = name
	}

	for i, pivot := range pivots {
		if pivot < 0 {
			continue
		}
		row, err := m.Row(i)
		if err != nil {
			return Parametric{}, err
		}
		var sb strings.Builder
		sb.WriteString(rec.Num(row[last]))
		for k, col := range free {
			coef := row[col]
			if coef == 0 {
				continue
			}
			sign := "+"
			if -coef < 0 {
				sign = "-"
			}
			fmt.Fprintf(&sb, " %s %s%s", sign, rec.Num(math.Abs(coef)), params[k])
		}
		exprs[pivot] = sb.String()
	}

	return Parametric{Expressions: exprs, Parameters: params}, nil
}

// parameterName returns the name of the idx-th free parameter (0-based).
func parameterName(idx int) string {
	if idx < len(parameterNames) {
		return parameterNames[idx]
	}

	return "p" + strconv.Itoa(idx+1)
}
