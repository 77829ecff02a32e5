// SPDX-License-Identifier: MIT

// Package matrix offers the numeric containers and kernels used by the
// clustering pipeline.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked accessors and an
//     optional NaN/Inf rejection policy.
//   - Sparse: a compressed-column matrix for term-document data, where zero
//     cells are never materialized.
//   - Kernels: Mul, Transpose, MatVec, NormalizeRowsL2 and a Jacobi Eigen
//     decomposition for symmetric matrices.
//
// Determinism:
//
//	Every kernel walks its operands in a fixed i→j order and never iterates
//	maps, so identical inputs produce bit-identical outputs.
//
// Errors:
//
//	All functions return package sentinels (see errors.go) wrapped with an
//	operation tag; match them with errors.Is.
package matrix
