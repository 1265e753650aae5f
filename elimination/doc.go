// Package elimination implements row-reduction over matrix.Matrix values.
//
// What
//
//   - Gauss: forward elimination to row-echelon form with first-nonzero pivot
//     selection. Returns the number of row swaps; records no steps.
//   - GaussJordan: reduction to reduced row-echelon form (RREF) with
//     max-|value| partial pivoting. Every swap, scaling and elimination is
//     recorded as a trace.Step.
//   - UpSubstitution: a standalone back-substitution pass over an already
//     forward-eliminated matrix.
//
// The two pivot policies differ on purpose. Gauss takes the first nonzero
// entry at or below the pivot row; GaussJordan (like the determinant package)
// takes the entry of largest magnitude. They are independent passes and are
// kept distinct.
//
// Exact zeros
//
//	Pivots are compared against exact zero; no tolerance is applied. After a
//	pivot row is scaled, the pivot cell is stored as exactly 1, and every
//	eliminated cell as exactly 0. Floating residue therefore never survives
//	in pivot columns, which makes GaussJordan idempotent.
//
// Ownership
//
//	Inputs are never mutated. Each entry point copies its input into an owned
//	*matrix.Dense before applying row operations. ReduceWith is the in-place
//	variant used by the determinant and linsys packages to share one recorder.
//
// Complexity (r×c input)
//
//   - Time:   O(r·c·min(r,c))
//   - Memory: O(r·c) for the working copy, plus O(r·c) per recorded step.
package elimination
