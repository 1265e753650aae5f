// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/algeo/matrix"
)

// ExampleAugment builds [A | I] and splits it back.
func ExampleAugment() {
	a, _ := matrix.FromRows([][]int{{4, 3}, {6, 3}})
	id, _ := matrix.NewIdentity(2)

	aug, _ := matrix.Augment(a, id)
	fmt.Print(aug)

	_, right, _ := matrix.Split(aug)
	fmt.Println(matrix.IsIdentity(right, 0))

	// Output:
	// [4, 3, 1, 0]
	// [6, 3, 0, 1]
	// true
}

// ExampleDense_AddRowMultiple performs one elimination step in place.
func ExampleDense_AddRowMultiple() {
	m, _ := matrix.FromRows([][]float64{{2, 1}, {4, 5}})

	_ = m.AddRowMultiple(1, 0, -2) // R2 = R2 - 2*R1
	fmt.Print(m)

	// Output:
	// [2, 1]
	// [0, 3]
}
