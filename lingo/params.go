// SPDX-License-Identifier: MIT

package lingo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lingo/preprocess"
	"github.com/katalvlaran/lingo/reduce"
	"github.com/katalvlaran/lingo/vsm"
)

// Sentinel errors.
var (
	// ErrClusteringFailed reports a numerical failure; it wraps the cause.
	ErrClusteringFailed = errors.New("lingo: clustering failed")
	// ErrInputMismatch reports documents and token streams of different length.
	ErrInputMismatch = errors.New("lingo: documents and token streams differ in length")
	// ErrStageOrder reports a stage called before its predecessor or twice.
	ErrStageOrder = errors.New("lingo: stage called out of order")
	// ErrInvalidParams reports a Params value outside its documented range.
	ErrInvalidParams = errors.New("lingo: invalid parameters")
)

const (
	// DefaultDesiredClusterCount is the default upper bound of labeled clusters.
	DefaultDesiredClusterCount = 30
	// DefaultMinLabelScore drops a direction whose best label scores at or below it.
	DefaultMinLabelScore = 0.05
	// DefaultMinMembershipScore is the cosine a document must exceed to join a cluster.
	DefaultMinMembershipScore = 0.15
	// DefaultOtherTopics emits the "Other Topics" cluster.
	DefaultOtherTopics = true
)

// Params is the resolved, typed parameter set of one clustering request.
type Params struct {
	// DesiredClusterCount bounds the number of labeled clusters.
	DesiredClusterCount int
	// MinLabelScore is the label similarity a direction must exceed.
	MinLabelScore float64
	// MinMembershipScore is the cosine a document must exceed.
	MinMembershipScore float64
	// OtherTopics emits the catch-all cluster for non-empty batches.
	OtherTopics bool

	Preprocessing preprocess.Options
	Reducer       reduce.Options

	// TermWeighting weighs both matrices; nil means vsm.LogTfIdf.
	TermWeighting vsm.TermWeighting
	// Factorizer computes directions; nil means reduce.SVD.
	Factorizer reduce.Factorizer
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		DesiredClusterCount: DefaultDesiredClusterCount,
		MinLabelScore:       DefaultMinLabelScore,
		MinMembershipScore:  DefaultMinMembershipScore,
		OtherTopics:         DefaultOtherTopics,
		Preprocessing:       preprocess.DefaultOptions(),
		Reducer:             reduce.DefaultOptions(),
		TermWeighting:       vsm.LogTfIdf{},
		Factorizer:          reduce.SVD{},
	}
}

// Validate checks every documented range.
// Errors: ErrInvalidParams wrapping the first violation.
func (p Params) Validate() error {
	switch {
	case p.DesiredClusterCount < 1:
		return fmt.Errorf("%w: DesiredClusterCount=%d must be >= 1", ErrInvalidParams, p.DesiredClusterCount)
	case p.MinLabelScore < 0 || p.MinLabelScore > 1:
		return fmt.Errorf("%w: MinLabelScore=%g must be in [0,1]", ErrInvalidParams, p.MinLabelScore)
	case p.MinMembershipScore < 0 || p.MinMembershipScore > 1:
		return fmt.Errorf("%w: MinMembershipScore=%g must be in [0,1]", ErrInvalidParams, p.MinMembershipScore)
	}
	if err := p.Preprocessing.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if err := p.Reducer.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return nil
}

func (p Params) weighting() vsm.TermWeighting {
	if p.TermWeighting == nil {
		return vsm.LogTfIdf{}
	}

	return p.TermWeighting
}

func (p Params) factorizer() reduce.Factorizer {
	if p.Factorizer == nil {
		return reduce.SVD{}
	}

	return p.Factorizer
}
