// SPDX-License-Identifier: MIT

package reduce

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lingo/matrix"
)

// Sentinel errors.
var (
	// ErrFactorization indicates that the decomposition failed numerically.
	ErrFactorization = errors.New("reduce: factorization failed")
	// ErrNilInput indicates a nil term-document matrix.
	ErrNilInput = errors.New("reduce: nil input")
	// ErrInvalidOptions indicates an Options value outside its range.
	ErrInvalidOptions = errors.New("reduce: invalid options")
)

// DefaultRankTolerance is the relative singular-value cutoff of the
// numerical rank.
const DefaultRankTolerance = 1e-10

// Options tunes Reduce.
type Options struct {
	// RankTolerance counts direction i towards the rank when
	// value_i > RankTolerance·value_0. Must lie in [0, 1).
	RankTolerance float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options { return Options{RankTolerance: DefaultRankTolerance} }

// Validate checks the documented ranges.
func (o Options) Validate() error {
	if o.RankTolerance < 0 || o.RankTolerance >= 1 || math.IsNaN(o.RankTolerance) {
		return fmt.Errorf("RankTolerance=%g must be in [0,1): %w", o.RankTolerance, ErrInvalidOptions)
	}

	return nil
}

// Basis holds k unit-length directions in term space.
type Basis struct {
	// Vectors is terms×k; nil when k is 0.
	Vectors *mat.Dense
	// Values holds the importance of each direction, decreasing.
	Values []float64
}

// K returns the number of directions.
func (b *Basis) K() int { return len(b.Values) }

// Vector returns a copy of direction j.
func (b *Basis) Vector(j int) []float64 { return mat.Col(nil, j, b.Vectors) }

// Reduce factorizes td and returns its k dominant directions.
//
// Implementation:
//   - Stage 1: short-circuit degenerate input to an empty Basis.
//   - Stage 2: densify and factorize with f (SVD when nil).
//   - Stage 3: k = min(desired, rank, documents) using opts.RankTolerance.
//   - Stage 4: copy k columns, scale to unit length, fix signs.
//
// Errors: ErrNilInput, ErrFactorization (wrapping the cause).
func Reduce(td *matrix.Sparse, desired int, f Factorizer, opts Options) (*Basis, error) {
	if td == nil {
		return nil, fmt.Errorf("Reduce: %w", ErrNilInput)
	}
	if f == nil {
		f = SVD{}
	}

	// Stage 1: degenerate input.
	rows, cols := td.Rows(), td.Cols()
	if rows == 0 || cols == 0 || desired <= 0 || td.NNZ() == 0 {
		return &Basis{}, nil
	}

	// Stage 2: factorize.
	dense, err := td.ToDense()
	if err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}
	a := mat.NewDense(rows, cols, dense.Data())
	want := min(desired, rows, cols)
	fac, err := f.Factorize(a, want)
	if err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}

	// Stage 3: numerical rank.
	rank := 0
	if len(fac.Values) > 0 && fac.Values[0] > 0 {
		cut := opts.RankTolerance * fac.Values[0]
		for _, v := range fac.Values {
			if v > cut {
				rank++
			}
		}
	}
	k := min(want, rank)
	if _, uc := fac.U.Dims(); k > uc {
		k = uc
	}
	if k == 0 {
		return &Basis{}, nil
	}

	// Stage 4: unit columns with a fixed sign.
	vecs := mat.NewDense(rows, k, nil)
	col := make([]float64, rows)
	for j := 0; j < k; j++ {
		mat.Col(col, j, fac.U)
		normalize(col)
		fixSign(col)
		vecs.SetCol(j, col)
	}

	return &Basis{Vectors: vecs, Values: append([]float64(nil), fac.Values[:k]...)}, nil
}

// normalize scales v to unit length; a zero vector stays zero.
func normalize(v []float64) {
	n := 0.0
	for _, x := range v {
		n += x * x
	}
	if n == 0 {
		return
	}
	n = math.Sqrt(n)
	for i := range v {
		v[i] /= n
	}
}

// fixSign negates v when its largest-magnitude component (lowest index on
// ties) is negative.
func fixSign(v []float64) {
	best, at := -1.0, -1
	for i, x := range v {
		if a := math.Abs(x); a > best {
			best, at = a, i
		}
	}
	if at < 0 || v[at] >= 0 {
		return
	}
	for i := range v {
		v[i] = -v[i]
	}
}
