// SPDX-License-Identifier: MIT

// Package vsm builds the vector-space matrices of the clustering pipeline
// from a preprocess.Result:
//
//   - the term-document matrix: one row per vocabulary word (in word-index
//     order), one column per document (in input order), cells weighted by a
//     TermWeighting from the document's raw term frequency;
//   - the phrase matrix: one row per phrase over the same vocabulary
//     columns, each vocabulary word of the phrase weighted from its
//     batch-level frequency, rows scaled to unit length.
//
// The term-document matrix is sparse (matrix.Sparse); the phrase matrix is
// dense (matrix.Dense) because it is scanned row by row against every
// basis vector.
package vsm
