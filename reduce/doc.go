// SPDX-License-Identifier: MIT

// Package reduce computes the dominant latent directions of a
// term-document matrix.
//
// Reduce factorizes the matrix with a pluggable Factorizer, keeps
// k = min(desired, numerical rank, documents) directions, scales each to
// unit length and fixes its sign so that the component of largest
// magnitude (lowest row on ties) is positive. The result is a Basis whose
// columns are ordered by decreasing importance (singular value for SVD and
// Eigen, ‖u‖·‖v‖ for NMF).
//
// Degenerate input (no rows, no columns, only zeros, desired ≤ 0) yields an
// empty Basis and no error. Numerical failure is reported as
// ErrFactorization.
//
// Factorizers:
//
//	SVD   - thin singular value decomposition (gonum mat.SVD). Default.
//	Eigen - Jacobi eigen-decomposition of A·Aᵀ (matrix.Eigen), σ = √λ.
//	NMF   - Euclidean non-negative matrix factorization with multiplicative
//	        updates and seeded deterministic initialization.
package reduce
