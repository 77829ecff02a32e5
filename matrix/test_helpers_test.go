// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lingo/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the non-*Dense fallback paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c Dense from row-major data or fails the test.
func mustDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose compares two matrices element-wise within tol.
func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, mustAt(t, want, i, j), mustAt(t, got, i, j), tol, "(%d,%d)", i, j)
		}
	}
}

// columnNorm returns the L2 norm of column j.
func columnNorm(t *testing.T, m matrix.Matrix, j int) float64 {
	t.Helper()
	sq := 0.0
	for i := 0; i < m.Rows(); i++ {
		v := mustAt(t, m, i, j)
		sq += v * v
	}

	return math.Sqrt(sq)
}
