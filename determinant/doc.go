// Package determinant computes determinants and inverses of square matrices
// with a step-by-step trace.
//
// Determinant
//
//	Partial-pivoting elimination: for each column the row with the largest
//	|value| at or below the diagonal is swapped up (each swap is recorded and
//	counted), then the entries below the pivot are eliminated. When a pivot
//	is exactly zero after the best swap the determinant is 0 and the run
//	stops with an explanatory step. Otherwise
//
//	    det = (product of diagonal) · (-1)^swaps
//
// Inverse
//
//	Builds [A | I], reduces it with elimination.ReduceWith and checks the left
//	half. If it is not exactly the identity the matrix is singular and
//	ErrNotInvertible is returned; otherwise the right half is the inverse.
//
// Errors:
//   - matrix.ErrNonSquare for non-square input.
//   - matrix.ErrNilMatrix for nil input.
//   - ErrNotInvertible when the reduction does not yield the identity.
//
// Complexity:
//   - Determinant: O(n³) time, O(n²) memory plus snapshots.
//   - Inverse:     O(n³) time, O(n²) memory plus snapshots.
package determinant
