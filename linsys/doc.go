// Package linsys classifies and solves systems of linear equations given as
// an augmented matrix [A | b].
//
// Solve follows a fixed decision procedure:
//
//	rows ≠ cols-1                 → Gauss-Jordan, then NoSolution or Parametric
//	square, det(A) ≠ 0            → Cramer's rule, Unique
//	square, det(A) = 0            → Gauss-Jordan fallback, then NoSolution or Parametric
//
// A reduced system has no solution when some row has all-zero coefficients
// and a nonzero constant. Otherwise every variable column without a leading 1
// is free and receives a parameter name: a, b, …, p, then p17, p18, …
// Pivot variables are expressed as display strings over those parameters:
//
//	x1 = 1.00 - 1.00a - 1.00b
//
// Every entry point returns a trace.Trace of the steps taken. In the Cramer
// branch the trace holds the main determinant computation followed, per
// variable, by the column replacement and the final step of the variant
// determinant.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//   - matrix.ErrDimensionMismatch from Cramer for mismatched
//     coefficient/constant shapes.
//   - ErrSingularSystem from Cramer when det(A) is zero.
package linsys
