// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lingo/matrix"
)

const (
	// DefaultEigenTolerance is the off-diagonal cutoff of the Jacobi
	// iteration, relative to the largest diagonal entry of A·Aᵀ.
	DefaultEigenTolerance = 1e-12
	// eigenRotationsPerCell bounds Jacobi rotations at this many per matrix
	// cell when MaxRotations is zero.
	eigenRotationsPerCell = 64
)

// Eigen factorizes through the eigen-decomposition of A·Aᵀ: the
// eigenvectors are the left singular vectors and σ = √λ.
type Eigen struct {
	// Tolerance is relative to the largest diagonal entry; 0 means
	// DefaultEigenTolerance.
	Tolerance float64
	// MaxRotations caps Jacobi rotations; 0 means 64·n².
	MaxRotations int
}

// Name returns NameEigen.
func (Eigen) Name() string { return NameEigen }

// Factorize runs matrix.Eigen on A·Aᵀ and orders eigenpairs by decreasing
// eigenvalue (lower column on ties).
// Errors: ErrFactorization wrapping matrix.ErrMatrixEigenFailed.
func (e Eigen) Factorize(a *mat.Dense, _ int) (*Factorization, error) {
	r, c := a.Dims()
	src, err := matrix.NewDenseFrom(r, c, rowMajor(a))
	if err != nil {
		return nil, fmt.Errorf("eigen: %w: %w", ErrFactorization, err)
	}
	at, err := matrix.Transpose(src)
	if err != nil {
		return nil, fmt.Errorf("eigen: %w: %w", ErrFactorization, err)
	}
	gram, err := matrix.Mul(src, at)
	if err != nil {
		return nil, fmt.Errorf("eigen: %w: %w", ErrFactorization, err)
	}

	scale := 0.0
	for i := 0; i < r; i++ {
		v, _ := gram.At(i, i)
		scale = math.Max(scale, v)
	}
	tol := e.Tolerance
	if tol <= 0 {
		tol = DefaultEigenTolerance
	}
	tol *= math.Max(scale, 1)
	maxRot := e.MaxRotations
	if maxRot <= 0 {
		maxRot = eigenRotationsPerCell * r * r
	}

	lambda, q, err := matrix.Eigen(gram, tol, maxRot)
	if err != nil {
		return nil, fmt.Errorf("eigen: %w: %w", ErrFactorization, err)
	}

	order := make([]int, r)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return lambda[order[x]] > lambda[order[y]] })

	u := mat.NewDense(r, r, nil)
	values := make([]float64, r)
	for j, from := range order {
		values[j] = math.Sqrt(math.Max(lambda[from], 0))
		for i := 0; i < r; i++ {
			v, _ := q.At(i, from)
			u.Set(i, j, v)
		}
	}

	return &Factorization{U: u, Values: values}, nil
}

// rowMajor copies a into a fresh row-major slice.
func rowMajor(a mat.Matrix) []float64 {
	r, c := a.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, a.At(i, j))
		}
	}

	return out
}
