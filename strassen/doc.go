// SPDX-License-Identifier: MIT

// Package strassen multiplies matrices with Strassen's divide-and-conquer
// scheme and offers the classical triple loop for comparison.
//
// Multiply pads both operands with zeros to an m×m square, where m is the
// smallest power of two not below the largest of the four dimensions, splits
// them into quadrants and combines seven recursive products:
//
//	P1 = A11(B12 - B22)        C11 = P5 + P4 - P2 + P6
//	P2 = (A11 + A12)B22        C12 = P1 + P2
//	P3 = (A21 + A22)B11        C21 = P3 + P4
//	P4 = A22(B21 - B11)        C22 = P5 + P1 - P3 - P7
//	P5 = (A11 + A22)(B11 + B22)
//	P6 = (A12 - A22)(B21 + B22)
//	P7 = (A11 - A21)(B11 + B12)
//
// Recursion stops at blocks of size WithLeafSize (default 1, a plain scalar
// product). The padded result is trimmed back to a.Rows()×b.Cols().
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (a.Cols() ≠ b.Rows()).
//
// Complexity:
//   - Time O(m^log2(7)) ≈ O(m^2.81), Space O(m²) per recursion level.
package strassen
