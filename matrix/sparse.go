// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed column) for term-document data.
//
// Purpose:
//   - Hold a rows×cols matrix where only non-zero cells are stored.
//   - Column-major layout: a term-document matrix is read one document
//     (column) at a time during cluster assembly.
//   - Immutable after Build; safe for concurrent reads.
//
// Layout:
//   - colPtr has cols+1 entries; column j occupies [colPtr[j], colPtr[j+1]).
//   - rowIdx is strictly increasing inside every column.
//
// Complexity quicksheet:
//   - Build: O(nnz log nnz); At: O(log nnz_col); Column: O(1); ToDense: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opSparseAdd   = "SparseBuilder.Add"
	opSparseAt    = "Sparse.At"
	opSparseCol   = "Sparse.Column"
	opSparseDot   = "Sparse.ColumnDot"
	opSparseDense = "Sparse.ToDense"
)

// Sparse is an immutable compressed-column matrix.
type Sparse struct {
	r, c   int
	colPtr []int     // len c+1
	rowIdx []int     // len nnz, ascending per column
	vals   []float64 // len nnz, never zero
}

// entry is one staged (row, col, value) triplet.
type entry struct {
	row, col int
	v        float64
}

// SparseBuilder accumulates triplets and compresses them on Build.
// Duplicate (row, col) pairs are summed; cells that sum to zero are dropped.
type SparseBuilder struct {
	r, c    int
	entries []entry
}

// NewSparseBuilder returns a builder for a rows×cols matrix. Zero-sized
// shapes are legal (an empty vocabulary yields a 0×n term-document matrix).
func NewSparseBuilder(rows, cols int) (*SparseBuilder, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &SparseBuilder{r: rows, c: cols}, nil
}

// Add stages v at (row, col). Zero values are ignored.
// Errors: ErrOutOfRange, ErrNaNInf.
func (b *SparseBuilder) Add(row, col int, v float64) error {
	if row < 0 || row >= b.r || col < 0 || col >= b.c {
		return fmt.Errorf("%s(%d,%d): %w", opSparseAdd, row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s(%d,%d): %w", opSparseAdd, row, col, ErrNaNInf)
	}
	if v == 0 {
		return nil // zero entries are never materialized
	}
	b.entries = append(b.entries, entry{row: row, col: col, v: v})

	return nil
}

// Build compresses the staged triplets. The builder may be reused afterwards;
// the returned matrix does not share storage with it.
// Complexity: O(nnz log nnz).
func (b *SparseBuilder) Build() *Sparse {
	es := make([]entry, len(b.entries))
	copy(es, b.entries)
	// Column-major, then row; stable so duplicate sums accumulate in insertion order.
	sort.SliceStable(es, func(i, j int) bool {
		if es[i].col != es[j].col {
			return es[i].col < es[j].col
		}
		return es[i].row < es[j].row
	})

	s := &Sparse{
		r:      b.r,
		c:      b.c,
		colPtr: make([]int, b.c+1),
		rowIdx: make([]int, 0, len(es)),
		vals:   make([]float64, 0, len(es)),
	}
	var (
		k   int // cursor into es
		col int // current column being filled
	)
	for col = 0; col < b.c; col++ {
		s.colPtr[col] = len(s.rowIdx)
		for k < len(es) && es[k].col == col {
			row, sum := es[k].row, es[k].v
			k++
			// Merge duplicates of the same cell.
			for k < len(es) && es[k].col == col && es[k].row == row {
				sum += es[k].v
				k++
			}
			if sum != 0 {
				s.rowIdx = append(s.rowIdx, row)
				s.vals = append(s.vals, sum)
			}
		}
	}
	s.colPtr[b.c] = len(s.rowIdx)

	return s
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored (non-zero) cells.
func (s *Sparse) NNZ() int { return len(s.vals) }

// At returns the value at (i, j); absent cells read as 0.
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opSparseAt, i, j, ErrOutOfRange)
	}
	lo, hi := s.colPtr[j], s.colPtr[j+1]
	k := lo + sort.SearchInts(s.rowIdx[lo:hi], i)
	if k < hi && s.rowIdx[k] == i {
		return s.vals[k], nil
	}

	return 0, nil
}

// Column returns the row indices and values stored in column j. The slices
// alias internal storage and must not be modified.
func (s *Sparse) Column(j int) ([]int, []float64, error) {
	if j < 0 || j >= s.c {
		return nil, nil, fmt.Errorf("%s(%d): %w", opSparseCol, j, ErrOutOfRange)
	}
	lo, hi := s.colPtr[j], s.colPtr[j+1]

	return s.rowIdx[lo:hi], s.vals[lo:hi], nil
}

// ColumnDot returns Σ_i A[i,j]·x[i].
// Errors: ErrOutOfRange (bad j), ErrDimensionMismatch (len(x) != Rows()).
func (s *Sparse) ColumnDot(j int, x []float64) (float64, error) {
	if len(x) != s.r {
		return 0, fmt.Errorf("%s: %w", opSparseDot, ErrDimensionMismatch)
	}
	rows, vals, err := s.Column(j)
	if err != nil {
		return 0, err
	}
	acc := 0.0
	for k, i := range rows {
		acc += vals[k] * x[i]
	}

	return acc, nil
}

// ColumnNorm returns the L2 norm of column j (0 for an out-of-range j).
func (s *Sparse) ColumnNorm(j int) float64 {
	if j < 0 || j >= s.c {
		return 0
	}
	sq := 0.0
	for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
		sq += s.vals[k] * s.vals[k]
	}

	return math.Sqrt(sq)
}

// Do visits every stored cell in column-major order.
func (s *Sparse) Do(f func(i, j int, v float64)) {
	for j := 0; j < s.c; j++ {
		for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			f(s.rowIdx[k], j, s.vals[k])
		}
	}
}

// ToDense materializes the matrix; zero-sized shapes are allowed.
// Complexity: O(r*c).
func (s *Sparse) ToDense() (*Dense, error) {
	d, err := newDenseZeroOK(s.r, s.c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSparseDense, err)
	}
	s.Do(func(i, j int, v float64) {
		d.data[i*d.c+j] = v
	})

	return d, nil
}
