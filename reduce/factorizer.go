// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Factorizer names accepted in configuration.
const (
	NameSVD   = "svd"
	NameEigen = "eigen"
	NameNMF   = "nmf"
)

// Factorization is the raw output of a Factorizer.
type Factorization struct {
	// U holds candidate directions as columns (terms × r), ordered by
	// decreasing Values. Columns need not be unit length or sign-fixed.
	U *mat.Dense
	// Values holds the importance of each column, decreasing, all ≥ 0.
	Values []float64
}

// Factorizer decomposes a terms×documents matrix. k is the number of
// directions the caller will keep; factorizers that compute a full
// decomposition may return more. Implementations hold no mutable state.
type Factorizer interface {
	Factorize(a *mat.Dense, k int) (*Factorization, error)
}

// SVD factorizes with a thin singular value decomposition.
type SVD struct{}

// Name returns NameSVD.
func (SVD) Name() string { return NameSVD }

// Factorize returns the left singular vectors and singular values.
// Errors: ErrFactorization when gonum reports a failed decomposition.
func (SVD) Factorize(a *mat.Dense, _ int) (*Factorization, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, fmt.Errorf("svd: %w", ErrFactorization)
	}
	var u mat.Dense
	svd.UTo(&u)

	return &Factorization{U: &u, Values: svd.Values(nil)}, nil
}
