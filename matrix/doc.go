// Package matrix provides the dense numeric container used by every algorithm
// in algeo, together with its element-wise kernels and elementary row
// operations.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows/Cols/At/Set/Clone) with bounds-checked
//     access that returns ErrOutOfRange instead of panicking.
//   - Dense, a row-major implementation backed by one flat []float64.
//   - Pure kernels that allocate a fresh result: Add, Sub, Mul, Transpose,
//     Scale, MatVec, Augment, Split, SplitConstants, SubMatrix.
//   - In-place mutators on *Dense for elimination algorithms: MultiplyRow,
//     AddRowMultiple, SwapRows, AddToRow, ReplaceCol, ScaleInPlace, Place.
//   - Central validators and a numeric policy (NaN/Inf rejection, epsilon)
//     configured through functional options.
//
// Dimensions never change after construction. Binary operations validate
// shapes up front and fail with ErrDimensionMismatch; nothing returns a
// partially written result.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, 3}, {6, 3}})
//	b, _ := matrix.NewIdentity(2)
//	sum, err := matrix.Add(a, b)
//
// See the example_test.go file in this package for runnable snippets.
package matrix
