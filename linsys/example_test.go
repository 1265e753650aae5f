package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/algeo/linsys"
	"github.com/katalvlaran/algeo/matrix"
)

func ExampleSolve() {
	aug, _ := matrix.FromRows([][]float64{
		{1, 1, 1, 1},
		{2, 2, 2, 2},
	})
	res, steps, err := linsys.Solve(aug)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Kind(), len(steps))
	fmt.Println(linsys.Format(res))
	// Output:
	// parametric 3
	// x1 = 1.00 - 1.00a - 1.00b
	// x2 = a
	// x3 = b
}
