// SPDX-License-Identifier: MIT

package vsm

import "math"

// TermWeighting maps raw counts to a cell weight.
//
//	tf - occurrences of the term (in a document, or in the batch for label rows)
//	df - number of documents containing the term
//	n  - number of documents in the batch
//
// Implementations must return a finite, nonnegative value and hold no
// mutable state.
type TermWeighting interface {
	Weight(tf, df, n int) float64
}

// Names returned by the Name methods below.
const (
	NameTF          = "tf"
	NameLogTfIdf    = "log-tfidf"
	NameLinearTfIdf = "linear-tfidf"
)

// TF weighs a term by its raw frequency.
type TF struct{}

// Weight returns tf.
func (TF) Weight(tf, _, _ int) float64 { return float64(tf) }

// Name returns NameTF.
func (TF) Name() string { return NameTF }

// LogTfIdf weighs a term by tf·ln(n/df). Terms present in every document
// weigh zero.
type LogTfIdf struct{}

// Weight returns tf·ln(n/df), or 0 when df is 0 or not below n.
func (LogTfIdf) Weight(tf, df, n int) float64 {
	if df <= 0 || df >= n {
		return 0
	}

	return float64(tf) * math.Log(float64(n)/float64(df))
}

// Name returns NameLogTfIdf.
func (LogTfIdf) Name() string { return NameLogTfIdf }

// LinearTfIdf weighs a term by tf·(n-df)/n.
type LinearTfIdf struct{}

// Weight returns tf·(n-df)/n, or 0 when n is 0 or df is not below n.
func (LinearTfIdf) Weight(tf, df, n int) float64 {
	if n <= 0 || df >= n {
		return 0
	}

	return float64(tf) * float64(n-df) / float64(n)
}

// Name returns NameLinearTfIdf.
func (LinearTfIdf) Name() string { return NameLinearTfIdf }
