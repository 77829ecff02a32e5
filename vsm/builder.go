// SPDX-License-Identifier: MIT

package vsm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lingo/matrix"
	"github.com/katalvlaran/lingo/preprocess"
)

// Sentinel errors.
var (
	// ErrNilInput indicates a nil preprocessing result or matrix.
	ErrNilInput = errors.New("vsm: nil input")
	// ErrNilWeighting indicates a nil TermWeighting.
	ErrNilWeighting = errors.New("vsm: nil term weighting")
	// ErrMismatch indicates that a term-document matrix does not belong to
	// the given preprocessing result.
	ErrMismatch = errors.New("vsm: term-document matrix does not match preprocessing result")
)

// TermDocumentMatrix is the weighted vocabulary × documents matrix.
type TermDocumentMatrix struct {
	// Matrix holds the weights; rows follow RowWords, columns follow input order.
	Matrix *matrix.Sparse
	// RowWords maps a row to its word index.
	RowWords []int
	// WordRows maps a vocabulary word index to its row.
	WordRows map[int]int
}

// Rows returns the vocabulary size.
func (td *TermDocumentMatrix) Rows() int { return td.Matrix.Rows() }

// Documents returns the document count.
func (td *TermDocumentMatrix) Documents() int { return td.Matrix.Cols() }

// BuildTermDocument weighs every vocabulary word of every document.
//
// Implementation:
//   - Stage 1: map vocabulary words to rows in word-index order.
//   - Stage 2: count per-document frequencies and stage non-zero weights.
//   - Stage 3: compress into a matrix.Sparse.
//
// An empty vocabulary yields a 0×N matrix.
// Errors: ErrNilInput, ErrNilWeighting, matrix.ErrNaNInf (bad weighting).
func BuildTermDocument(pre *preprocess.Result, w TermWeighting) (*TermDocumentMatrix, error) {
	if pre == nil {
		return nil, fmt.Errorf("BuildTermDocument: %w", ErrNilInput)
	}
	if w == nil {
		return nil, fmt.Errorf("BuildTermDocument: %w", ErrNilWeighting)
	}

	n := pre.DocumentCount()
	rowWords := append([]int(nil), pre.Vocabulary...)
	wordRows := make(map[int]int, len(rowWords))
	for row, word := range rowWords {
		wordRows[word] = row
	}

	b, err := matrix.NewSparseBuilder(len(rowWords), n)
	if err != nil {
		return nil, fmt.Errorf("BuildTermDocument: %w", err)
	}
	for d := 0; d < n; d++ {
		for word, tf := range pre.TermFrequencies(d) {
			row, ok := wordRows[word]
			if !ok {
				continue // stop word or cut off
			}
			if err = b.Add(row, d, w.Weight(tf, pre.Words[word].DF, n)); err != nil {
				return nil, fmt.Errorf("BuildTermDocument: %w", err)
			}
		}
	}

	return &TermDocumentMatrix{Matrix: b.Build(), RowWords: rowWords, WordRows: wordRows}, nil
}

// PhraseMatrix holds one unit-length row per phrase over the vocabulary.
type PhraseMatrix struct {
	// Matrix is phrases × vocabulary.
	Matrix *matrix.Dense
	// Phrases maps a row to its phrase index.
	Phrases []int
}

// Row returns a copy of the weights of row i.
func (pm *PhraseMatrix) Row(i int) ([]float64, error) { return pm.Matrix.Row(i) }

// BuildPhraseMatrix weighs the vocabulary words of every phrase with the
// word's batch frequency and document frequency, then scales rows to unit
// length. Words outside the vocabulary (stop words, cut-off words) carry no
// weight. Returns nil, nil when there are no phrases or no vocabulary.
//
// Errors: ErrNilInput, ErrNilWeighting, ErrMismatch.
func BuildPhraseMatrix(pre *preprocess.Result, td *TermDocumentMatrix, w TermWeighting) (*PhraseMatrix, error) {
	if pre == nil || td == nil || td.Matrix == nil {
		return nil, fmt.Errorf("BuildPhraseMatrix: %w", ErrNilInput)
	}
	if w == nil {
		return nil, fmt.Errorf("BuildPhraseMatrix: %w", ErrNilWeighting)
	}
	if td.Documents() != pre.DocumentCount() || td.Rows() != len(pre.Vocabulary) {
		return nil, fmt.Errorf("BuildPhraseMatrix: %w", ErrMismatch)
	}
	if len(pre.Phrases) == 0 || td.Rows() == 0 {
		return nil, nil
	}

	n := pre.DocumentCount()
	raw, err := matrix.NewDense(len(pre.Phrases), td.Rows())
	if err != nil {
		return nil, fmt.Errorf("BuildPhraseMatrix: %w", err)
	}
	rows := make([]int, len(pre.Phrases))
	for i, p := range pre.Phrases {
		rows[i] = p.Index
		for _, word := range p.Words {
			col, ok := td.WordRows[word]
			if !ok {
				continue
			}
			wd := pre.Words[word]
			if err = raw.Set(i, col, w.Weight(wd.TF, wd.DF, n)); err != nil {
				return nil, fmt.Errorf("BuildPhraseMatrix: %w", err)
			}
		}
	}

	norm, _, err := matrix.NormalizeRowsL2(raw)
	if err != nil {
		return nil, fmt.Errorf("BuildPhraseMatrix: %w", err)
	}

	return &PhraseMatrix{Matrix: norm.(*matrix.Dense), Phrases: rows}, nil
}
