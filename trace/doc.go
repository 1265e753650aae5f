// SPDX-License-Identifier: MIT

// Package trace records the step-by-step history of matrix transformations.
//
// What
//
//   - Step: one transformation, holding a snapshot of the matrix before it,
//     a human-readable description and a snapshot after it.
//   - Trace: the ordered steps of one algorithm run. It is a plain slice with
//     helpers (Len, Last, All) and can be iterated lazily and repeatedly.
//   - Recorder: the accumulator an algorithm creates for the duration of a
//     single call. It deep-copies snapshots, formats numbers with the
//     configured precision and hands out the finished Trace.
//
// Why
//
//   - Every elimination, determinant, inverse and solve call in algeo returns
//     its result together with a Trace so callers can replay and display
//     the intermediate states.
//
// Snapshots
//
//	Before and After are independent copies. Mutating the working matrix
//	after a step was recorded never changes that step.
//
// Options
//
//   - WithPrecision(p): digits after the decimal point in descriptions (default 2).
//   - WithoutSteps(): keep nothing; algorithms produce identical results.
//   - WithOnStep(fn): observe each step as it is recorded.
//
// Encoding
//
//	Step and Trace marshal to YAML (gopkg.in/yaml.v3) as
//	{description, before: [[...]], after: [[...]]}.
package trace
