// SPDX-License-Identifier: MIT

package lingo

import (
	"fmt"

	"github.com/katalvlaran/lingo/core"
	"github.com/katalvlaran/lingo/language"
	"github.com/katalvlaran/lingo/preprocess"
	"github.com/katalvlaran/lingo/reduce"
	"github.com/katalvlaran/lingo/vsm"
)

// NoLabel marks a direction that received no label.
const NoLabel = -1

// stage counts completed pipeline stages.
type stage uint8

const (
	stageNew stage = iota
	stagePreprocessed
	stageTermDocument
	stageReduced
	stagePhraseMatrix
	stageLabels
	stageAssembled
)

var stageNames = [...]string{
	stagePreprocessed: "Preprocess",
	stageTermDocument: "BuildTermDocument",
	stageReduced:      "Reduce",
	stagePhraseMatrix: "BuildPhraseMatrix",
	stageLabels:       "BuildLabels",
	stageAssembled:    "AssembleClusters",
}

// Context carries one request through the pipeline. Each stage fills its
// own fields exactly once; earlier fields are never modified.
type Context struct {
	// Documents is the input batch.
	Documents []core.Document
	// Params is the parameter set of this request.
	Params Params

	// Preprocessed is written by Preprocess.
	Preprocessed *preprocess.Result
	// TermDocument is written by BuildTermDocument.
	TermDocument *vsm.TermDocumentMatrix
	// Basis is written by Reduce.
	Basis *reduce.Basis
	// PhraseMatrix is written by BuildPhraseMatrix; nil without phrases.
	PhraseMatrix *vsm.PhraseMatrix
	// ClusterLabelFeatureIndex and ClusterLabelScore are written by
	// BuildLabels; both have one entry per basis direction.
	ClusterLabelFeatureIndex []int
	ClusterLabelScore        []float64
	// Clusters is written by AssembleClusters.
	Clusters []core.Cluster

	done stage
}

// NewContext returns a Context for docs. The document slice is copied.
func NewContext(docs []core.Document, params Params) *Context {
	return &Context{
		Documents: append([]core.Document(nil), docs...),
		Params:    params,
	}
}

// advance checks that next directly follows the completed stage.
func (c *Context) advance(next stage) error {
	if c.done+1 != next {
		return fmt.Errorf("%s after %d completed stages: %w", stageNames[next], c.done, ErrStageOrder)
	}

	return nil
}

// Preprocess builds words, sentences and phrases from one token stream per
// document. Errors: ErrStageOrder, ErrInputMismatch.
func (c *Context) Preprocess(streams [][]core.Token, lookup language.Lookup) error {
	if err := c.advance(stagePreprocessed); err != nil {
		return err
	}
	if len(streams) != len(c.Documents) {
		return fmt.Errorf("%d documents, %d streams: %w", len(c.Documents), len(streams), ErrInputMismatch)
	}
	pre, err := preprocess.Run(c.Documents, streams, lookup, c.Params.Preprocessing)
	if err != nil {
		return fmt.Errorf("Preprocess: %w", err)
	}
	c.Preprocessed = pre
	c.done = stagePreprocessed

	return nil
}

// BuildTermDocument weighs the vocabulary against every document.
func (c *Context) BuildTermDocument() error {
	if err := c.advance(stageTermDocument); err != nil {
		return err
	}
	td, err := vsm.BuildTermDocument(c.Preprocessed, c.Params.weighting())
	if err != nil {
		return fmt.Errorf("BuildTermDocument: %w", err)
	}
	c.TermDocument = td
	c.done = stageTermDocument

	return nil
}

// Reduce computes the basis directions.
// Errors: ErrStageOrder, ErrClusteringFailed wrapping reduce.ErrFactorization.
func (c *Context) Reduce() error {
	if err := c.advance(stageReduced); err != nil {
		return err
	}
	basis, err := reduce.Reduce(c.TermDocument.Matrix, c.Params.DesiredClusterCount, c.Params.factorizer(), c.Params.Reducer)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClusteringFailed, err)
	}
	c.Basis = basis
	c.done = stageReduced

	return nil
}

// BuildPhraseMatrix builds unit phrase vectors over the vocabulary.
// PhraseMatrix stays nil when there are no phrases.
func (c *Context) BuildPhraseMatrix() error {
	if err := c.advance(stagePhraseMatrix); err != nil {
		return err
	}
	pm, err := vsm.BuildPhraseMatrix(c.Preprocessed, c.TermDocument, c.Params.weighting())
	if err != nil {
		return fmt.Errorf("BuildPhraseMatrix: %w", err)
	}
	c.PhraseMatrix = pm
	c.done = stagePhraseMatrix

	return nil
}
