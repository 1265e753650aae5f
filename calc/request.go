package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algeo/matrix"
)

// Request is one problem: an operation and its operand grids as text.
type Request struct {
	Name string     `yaml:"name,omitempty"`
	Op   Operation  `yaml:"op"`
	A    [][]string `yaml:"a,flow"`
	B    [][]string `yaml:"b,omitempty,flow"`
}

// ParseGrid converts a text grid into a matrix. Cells are trimmed; blank or
// unparsable cells become 0. "NaN", "Inf" and out-of-range literals such as
// "1e400" parse to non-finite values and are rejected by the matrix with
// matrix.ErrNaNInf.
//
// Errors:
//   - matrix.ErrBadShape for an empty or ragged grid; matrix.ErrNaNInf.
func ParseGrid(cells [][]string) (*matrix.Dense, error) {
	grid := make([][]float64, len(cells))
	for i, row := range cells {
		grid[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				continue
			}
			grid[i][j] = v
		}
	}

	m, err := matrix.FromRows(grid)
	if err != nil {
		return nil, calcErrorf("ParseGrid", err)
	}

	return m, nil
}

// operands parses A, and B for binary operations.
func (r Request) operands() (a, b *matrix.Dense, err error) {
	if !r.Op.valid() {
		return nil, nil, fmt.Errorf("%d: %w", int(r.Op), ErrUnknownOperation)
	}
	if a, err = ParseGrid(r.A); err != nil {
		return nil, nil, fmt.Errorf("a: %w", err)
	}
	if !r.Op.Binary() {
		return a, nil, nil
	}
	if len(r.B) == 0 {
		return nil, nil, ErrMissingOperand
	}
	if b, err = ParseGrid(r.B); err != nil {
		return nil, nil, fmt.Errorf("b: %w", err)
	}

	return a, b, nil
}
