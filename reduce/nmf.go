// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultNMFMaxIterations caps multiplicative update rounds.
	DefaultNMFMaxIterations = 15
	// DefaultNMFStopThreshold stops iterating once the relative change of
	// the approximation error falls below it.
	DefaultNMFStopThreshold = 1e-6
	// nmfEpsilon keeps update denominators positive.
	nmfEpsilon = 1e-9
)

// NMF factorizes A ≈ U·V with U, V ≥ 0 using the Euclidean multiplicative
// update rules. The same Seed always yields the same factors.
type NMF struct {
	// MaxIterations caps update rounds; 0 means DefaultNMFMaxIterations.
	MaxIterations int
	// StopThreshold is the relative error change that ends iteration early;
	// 0 means DefaultNMFStopThreshold.
	StopThreshold float64
	// Seed initializes U and V.
	Seed int64
}

// DefaultNMF returns an NMF with the documented defaults.
func DefaultNMF() NMF {
	return NMF{MaxIterations: DefaultNMFMaxIterations, StopThreshold: DefaultNMFStopThreshold}
}

// Name returns NameNMF.
func (NMF) Name() string { return NameNMF }

// Factorize computes k non-negative directions ordered by ‖u_j‖·‖v_j‖.
// Errors: ErrFactorization on negative input or non-finite factors.
func (f NMF) Factorize(a *mat.Dense, k int) (*Factorization, error) {
	m, n := a.Dims()
	if k <= 0 || m == 0 || n == 0 {
		return &Factorization{U: mat.NewDense(max(m, 1), 1, nil), Values: nil}, nil
	}
	if mat.Min(a) < 0 {
		return nil, fmt.Errorf("nmf: negative input: %w", ErrFactorization)
	}
	maxIter := f.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultNMFMaxIterations
	}
	stop := f.StopThreshold
	if stop <= 0 {
		stop = DefaultNMFStopThreshold
	}

	// Seeded initialization in (0.1, 1].
	rng := rand.New(rand.NewSource(f.Seed))
	u := mat.NewDense(m, k, nil)
	v := mat.NewDense(k, n, nil)
	fill := func(i, j int, _ float64) float64 { return 0.1 + 0.9*rng.Float64() }
	u.Apply(fill, u)
	v.Apply(fill, v)

	var (
		num, gram, den, approx mat.Dense
		prev                   = math.Inf(1)
	)
	for it := 0; it < maxIter; it++ {
		// V ← V ∘ (UᵀA) / (UᵀU·V)
		num.Mul(u.T(), a)
		gram.Mul(u.T(), u)
		den.Mul(&gram, v)
		v.Apply(func(i, j int, x float64) float64 {
			return x * num.At(i, j) / (den.At(i, j) + nmfEpsilon)
		}, v)

		// U ← U ∘ (A·Vᵀ) / (U·V·Vᵀ)
		num.Reset()
		gram.Reset()
		den.Reset()
		num.Mul(a, v.T())
		gram.Mul(v, v.T())
		den.Mul(u, &gram)
		u.Apply(func(i, j int, x float64) float64 {
			return x * num.At(i, j) / (den.At(i, j) + nmfEpsilon)
		}, u)
		num.Reset()
		gram.Reset()
		den.Reset()

		approx.Mul(u, v)
		approx.Sub(a, &approx)
		e := mat.Norm(&approx, 2)
		approx.Reset()
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("nmf: non-finite error at iteration %d: %w", it, ErrFactorization)
		}
		if !math.IsInf(prev, 1) && prev-e <= stop*math.Max(prev, nmfEpsilon) {
			break
		}
		prev = e
	}

	// Order by importance ‖u_j‖·‖v_j‖, lower column on ties.
	importance := make([]float64, k)
	ucol := make([]float64, m)
	vrow := make([]float64, n)
	for j := 0; j < k; j++ {
		mat.Col(ucol, j, u)
		mat.Row(vrow, j, v)
		importance[j] = floats.Norm(ucol, 2) * floats.Norm(vrow, 2)
	}
	order := make([]int, k)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool { return importance[order[x]] > importance[order[y]] })

	out := mat.NewDense(m, k, nil)
	values := make([]float64, k)
	for j, from := range order {
		mat.Col(ucol, from, u)
		out.SetCol(j, ucol)
		values[j] = importance[from]
	}

	return &Factorization{U: out, Values: values}, nil
}
