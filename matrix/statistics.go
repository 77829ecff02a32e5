// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row normalization used to turn weighted label-candidate rows into unit
//     vectors before cosine scoring.
//
// Determinism:
//   - Fixed i→j loop order; no map iteration.

package matrix

import "math"

// NormalizeRowsL2 scales each row to have L2-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Compute per-row L2 norms deterministically.
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 to keep the row unchanged.
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Returns:
//   - Matrix: normalized copy (X itself for zero-size input).
//   - []float64: the original per-row norms.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) are left unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)
	if r == 0 || c == 0 {
		return X, norms, nil
	}

	// Stage 2: per-row L2 norms.
	var i, j int
	var sq, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			sq = ZeroSum
			for _, v = range d.data[i*c : (i+1)*c] {
				sq += v * v
			}
			norms[i] = math.Sqrt(sq)
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			sq = ZeroSum
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
				}
				sq += v * v
			}
			norms[i] = math.Sqrt(sq)
		}
	}

	// Stage 3: scale factors.
	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	// Stage 4: apply.
	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return Y, norms, nil
}

// ewScaleRows returns a copy of X with row i multiplied by scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows()).
func ewScaleRows(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}
	if err := ValidateVecLen(scale, X.Rows()); err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}
	out, err := newDenseZeroOK(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}

	var i, j, base int
	var sf float64
	for i = 0; i < src.r; i++ {
		base = i * src.c
		sf = scale[i]
		for j = 0; j < src.c; j++ {
			out.data[base+j] = src.data[base+j] * sf
		}
	}

	return out, nil
}
