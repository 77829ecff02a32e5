// SPDX-License-Identifier: MIT
package reduce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lingo/matrix"
	"github.com/katalvlaran/lingo/reduce"
)

const eps = 1e-9

// sparse builds a Sparse matrix from dense row-major data.
func sparse(t *testing.T, rows, cols int, data []float64) *matrix.Sparse {
	t.Helper()
	b, err := matrix.NewSparseBuilder(rows, cols)
	require.NoError(t, err)
	for k, v := range data {
		require.NoError(t, b.Add(k/cols, k%cols, v))
	}
	return b.Build()
}

// labelExample is the term-document matrix of
// "aa bb", "aa bb", "cc", "cc", "aa bb", "aa bb" (rows bb, aa, cc).
func labelExample(t *testing.T) *matrix.Sparse {
	return sparse(t, 3, 6, []float64{
		1, 1, 0, 0, 1, 1,
		1, 1, 0, 0, 1, 1,
		0, 0, 1, 1, 0, 0,
	})
}

func TestReduceSVD(t *testing.T) {
	b, err := reduce.Reduce(labelExample(t), 2, reduce.SVD{}, reduce.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, b.K())
	require.InDeltaSlice(t, []float64{math.Sqrt(8), math.Sqrt(2)}, b.Values, eps)
	require.InDeltaSlice(t, []float64{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}, b.Vector(0), eps)
	require.InDeltaSlice(t, []float64{0, 0, 1}, b.Vector(1), eps)
}

func TestReduceEigenMatchesSVD(t *testing.T) {
	td := labelExample(t)
	want, err := reduce.Reduce(td, 3, reduce.SVD{}, reduce.DefaultOptions())
	require.NoError(t, err)
	got, err := reduce.Reduce(td, 3, reduce.Eigen{}, reduce.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, want.K(), got.K())
	require.InDeltaSlice(t, want.Values, got.Values, eps)
	for j := 0; j < want.K(); j++ {
		require.InDeltaSlice(t, want.Vector(j), got.Vector(j), eps, "vector %d", j)
	}
}

func TestReduceRankCut(t *testing.T) {
	td := sparse(t, 2, 4, []float64{1, 1, 1, 1, 1, 1, 1, 1})
	b, err := reduce.Reduce(td, 3, nil, reduce.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, b.K())
	require.InDeltaSlice(t, []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}, b.Vector(0), eps)
}

func TestReduceDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		td      *matrix.Sparse
		desired int
	}{
		{"no rows", sparse(t, 0, 3, nil), 2},
		{"no columns", sparse(t, 3, 0, nil), 2},
		{"all zero", sparse(t, 2, 2, []float64{0, 0, 0, 0}), 2},
		{"desired zero", labelExample(t), 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b, err := reduce.Reduce(tc.td, tc.desired, reduce.SVD{}, reduce.DefaultOptions())
			require.NoError(t, err)
			require.Zero(t, b.K())
			require.Nil(t, b.Vectors)
		})
	}

	_, err := reduce.Reduce(nil, 1, nil, reduce.DefaultOptions())
	require.ErrorIs(t, err, reduce.ErrNilInput)
}

// negated returns the columns of another factorizer with flipped signs.
type negated struct{ reduce.Factorizer }

func (n negated) Factorize(a *mat.Dense, k int) (*reduce.Factorization, error) {
	f, err := n.Factorizer.Factorize(a, k)
	if err != nil {
		return nil, err
	}
	f.U.Scale(-1, f.U)
	return f, nil
}

func TestReduceSignConvention(t *testing.T) {
	td := labelExample(t)
	plain, err := reduce.Reduce(td, 2, reduce.SVD{}, reduce.DefaultOptions())
	require.NoError(t, err)
	flipped, err := reduce.Reduce(td, 2, negated{reduce.SVD{}}, reduce.DefaultOptions())
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		require.Equal(t, plain.Vector(j), flipped.Vector(j))
		v := flipped.Vector(j)
		require.Greater(t, v[floats.MaxIdx(absAll(v))], 0.0)
	}
}

func absAll(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Abs(x)
	}
	return out
}

func TestReduceEigenNonConvergence(t *testing.T) {
	td := sparse(t, 3, 3, []float64{
		1, 1, 0,
		1, 0, 1,
		0, 1, 1,
	})
	_, err := reduce.Reduce(td, 2, reduce.Eigen{MaxRotations: 1}, reduce.DefaultOptions())
	require.ErrorIs(t, err, reduce.ErrFactorization)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

func TestReduceNMF(t *testing.T) {
	td := sparse(t, 4, 6, []float64{
		2, 1, 0, 0, 0, 1,
		1, 2, 0, 0, 0, 0,
		0, 0, 3, 1, 0, 0,
		0, 0, 1, 2, 1, 0,
	})
	f := reduce.DefaultNMF()
	f.Seed = 7

	first, err := reduce.Reduce(td, 2, f, reduce.DefaultOptions())
	require.NoError(t, err)
	again, err := reduce.Reduce(td, 2, f, reduce.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 2, first.K())
	require.Equal(t, first.Values, again.Values)
	require.GreaterOrEqual(t, first.Values[0], first.Values[1])
	for j := 0; j < first.K(); j++ {
		v := first.Vector(j)
		require.Equal(t, v, again.Vector(j))
		require.InDelta(t, 1.0, floats.Norm(v, 2), eps)
		require.GreaterOrEqual(t, floats.Min(v), 0.0)
	}
}

func TestNMFRejectsNegativeInput(t *testing.T) {
	_, err := reduce.DefaultNMF().Factorize(mat.NewDense(2, 2, []float64{1, -1, 0, 1}), 1)
	require.ErrorIs(t, err, reduce.ErrFactorization)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, reduce.DefaultOptions().Validate())
	require.ErrorIs(t, reduce.Options{RankTolerance: -1}.Validate(), reduce.ErrInvalidOptions)
	require.ErrorIs(t, reduce.Options{RankTolerance: 1}.Validate(), reduce.ErrInvalidOptions)
}

func TestFactorizerNames(t *testing.T) {
	require.Equal(t, reduce.NameSVD, reduce.SVD{}.Name())
	require.Equal(t, reduce.NameEigen, reduce.Eigen{}.Name())
	require.Equal(t, reduce.NameNMF, reduce.NMF{}.Name())
}
