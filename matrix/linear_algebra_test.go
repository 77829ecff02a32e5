// SPDX-License-Identifier: MIT
package matrix_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lingo/matrix"
	"github.com/stretchr/testify/require"
)

func TestMulAndFallback(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := mustDense(t, 2, 2, []float64{58, 64, 139, 154})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireClose(t, want, got, 0)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireClose(t, want, slow, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeMatVec(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6}), at, 0)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigenSymmetric(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3, []float64{
		4, 4, 0,
		4, 4, 0,
		0, 0, 2,
	})
	vals, q, err := matrix.Eigen(a, 1e-12, 100)
	require.NoError(t, err)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	require.InDeltaSlice(t, []float64{0, 2, 8}, sorted, 1e-9)

	// A·q_j == λ_j·q_j and every column is a unit vector.
	for j := 0; j < 3; j++ {
		col := []float64{mustAt(t, q, 0, j), mustAt(t, q, 1, j), mustAt(t, q, 2, j)}
		aq, err := matrix.MatVec(a, col)
		require.NoError(t, err)
		for i := range col {
			require.InDelta(t, vals[j]*col[i], aq[i], 1e-9)
		}
		require.InDelta(t, 1.0, columnNorm(t, q, j), 1e-12)
	}
}

func TestEigenErrors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Eigen(mustDense(t, 2, 2, []float64{1, 2, 3, 4}), 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}), 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// A non-diagonal matrix cannot converge without rotations.
	_, _, err = matrix.Eigen(mustDense(t, 2, 2, []float64{1, 2, 2, 1}), 1e-12, 0)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

func TestNormalizeRowsL2(t *testing.T) {
	t.Parallel()

	x := mustDense(t, 3, 2, []float64{3, 4, 0, 0, 1, 1})
	want := mustDense(t, 3, 2, []float64{0.6, 0.8, 0, 0, 0.7071067811865476, 0.7071067811865476})

	y, norms, err := matrix.NormalizeRowsL2(x)
	require.NoError(t, err)
	requireClose(t, want, y, 1e-12)
	require.InDeltaSlice(t, []float64{5, 0, 1.4142135623730951}, norms, 1e-12)

	ys, _, err := matrix.NormalizeRowsL2(hide{x})
	require.NoError(t, err)
	requireClose(t, y, ys, 0)

	// Input is left untouched.
	require.Equal(t, 3.0, mustAt(t, x, 0, 0))

	_, _, err = matrix.NormalizeRowsL2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
