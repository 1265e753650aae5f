// Package converters provides two-way adapters between matrix.Dense and
// gonum's mat.Dense, plus cross-checks that validate results computed by
// this module against gonum's LAPACK-backed routines.
//
// Use converters to hand matrices to gonum-based code and to verify
// products, inverses, determinants and linear-system solutions.
package converters
