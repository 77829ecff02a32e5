// SPDX-License-Identifier: MIT

package lingo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lingo/matrix"
)

// candidate is the best still-unused label of one kind for a direction.
type candidate struct {
	index int // vocabulary row or phrase row; -1 when none is left
	score float64
}

// BuildLabels assigns every basis direction its best unused label.
//
// Implementation:
//   - Directions are visited in basis order (decreasing importance).
//   - The best term is the unused vocabulary row with the largest basis
//     component (the cosine between the direction and that term's unit
//     vector); the best phrase is the unused phrase row with the largest
//     dot product with the direction.
//   - The phrase wins when its score is >= the term score.
//   - A winner scoring above MinLabelScore is recorded and removed from
//     further consideration; otherwise the direction gets NoLabel.
//
// Ties within one kind go to the lower index.
func (c *Context) BuildLabels() error {
	if err := c.advance(stageLabels); err != nil {
		return err
	}

	k := c.Basis.K()
	features := make([]int, k)
	scores := make([]float64, k)

	terms := c.TermDocument.RowWords
	termUsed := make([]bool, len(terms))
	var phraseUsed []bool
	if c.PhraseMatrix != nil {
		phraseUsed = make([]bool, c.PhraseMatrix.Matrix.Rows())
	}
	words := len(c.Preprocessed.Words)

	for j := 0; j < k; j++ {
		features[j] = NoLabel
		vec := c.Basis.Vector(j)

		var phraseScores []float64
		if c.PhraseMatrix != nil {
			var err error
			if phraseScores, err = matrix.MatVec(c.PhraseMatrix.Matrix, vec); err != nil {
				return fmt.Errorf("BuildLabels: %w", err)
			}
		}
		term := bestUnused(len(terms), termUsed, func(r int) float64 { return vec[r] })
		phrase := bestUnused(len(phraseScores), phraseUsed, func(p int) float64 { return phraseScores[p] })

		var (
			feature = NoLabel
			score   float64
		)
		switch {
		case phrase.index >= 0 && (term.index < 0 || phrase.score >= term.score):
			feature, score = words+c.PhraseMatrix.Phrases[phrase.index], phrase.score
			if score > c.Params.MinLabelScore {
				phraseUsed[phrase.index] = true
			}
		case term.index >= 0:
			feature, score = terms[term.index], term.score
			if score > c.Params.MinLabelScore {
				termUsed[term.index] = true
			}
		}
		if feature == NoLabel || score <= c.Params.MinLabelScore {
			continue // dropped direction
		}
		features[j], scores[j] = feature, score
	}

	c.ClusterLabelFeatureIndex = features
	c.ClusterLabelScore = scores
	c.done = stageLabels

	return nil
}

// bestUnused returns the unused index with the highest score, lower index on ties.
func bestUnused(n int, used []bool, score func(int) float64) candidate {
	best := candidate{index: -1, score: math.Inf(-1)}
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		if s := score(i); s > best.score {
			best = candidate{index: i, score: s}
		}
	}

	return best
}
