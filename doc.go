// Package algeo is a step-traced linear-algebra engine: every operation
// returns its result together with the ordered list of row operations that
// produced it, so the computation can be shown to a learner step by step.
//
// What is inside:
//
//	matrix/       - Matrix interface, row-major Dense, arithmetic, augment/split, row mutators
//	trace/        - Step, Trace and the per-call Recorder; YAML encoding of traces
//	elimination/  - Gauss (first nonzero pivot), Gauss-Jordan (largest pivot), up-substitution
//	determinant/  - determinant by partial pivoting; inverse via [A | I]
//	linsys/       - unique / parametric / no-solution classification, Cramer's rule
//	strassen/     - Strassen multiplication with zero padding; brute-force reference
//	converters/   - gonum mat interop and cross-checks
//	calc/         - request dispatcher, rendering, batch evaluation, YAML problem files
//	cmd/algeo     - command-line front end
//
// Quick example:
//
//	aug, _ := matrix.FromRows([][]float64{{1, 1, 3}, {2, -1, 0}})
//	res, steps, _ := linsys.Solve(aug)
//	fmt.Println(linsys.Format(res)) // x1 = 1, x2 = 2
//	for i, s := range steps.All() {
//		fmt.Println(i+1, s.Description)
//	}
//
// The numeric packages are synchronous, never log, and never mutate their
// inputs; they copy before they eliminate.
//
//	go get github.com/katalvlaran/algeo
package algeo
