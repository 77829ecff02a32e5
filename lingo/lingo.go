// SPDX-License-Identifier: MIT

package lingo

import (
	"fmt"

	"github.com/katalvlaran/lingo/core"
	"github.com/katalvlaran/lingo/language"
)

// Result is the outcome of one Cluster call.
type Result struct {
	// Clusters holds labeled clusters in basis order, then "Other Topics".
	Clusters []core.Cluster
	// ClusterLabelFeatureIndex has one entry per basis direction.
	ClusterLabelFeatureIndex []int
	// Context exposes every intermediate artifact.
	Context *Context
}

// Cluster runs the whole pipeline on a fresh Context.
//
// streams[i] is the token stream of docs[i]; lookup resolves the language of
// each document (nil means an empty language.Registry with Generic fallback).
//
// Errors: ErrInvalidParams, ErrInputMismatch, ErrClusteringFailed.
func Cluster(docs []core.Document, streams [][]core.Token, lookup language.Lookup, params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(docs) != len(streams) {
		return nil, fmt.Errorf("%d documents, %d streams: %w", len(docs), len(streams), ErrInputMismatch)
	}

	c := NewContext(docs, params)
	steps := []func() error{
		func() error { return c.Preprocess(streams, lookup) },
		c.BuildTermDocument,
		c.Reduce,
		c.BuildPhraseMatrix,
		c.BuildLabels,
		c.AssembleClusters,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	return &Result{
		Clusters:                 c.Clusters,
		ClusterLabelFeatureIndex: c.ClusterLabelFeatureIndex,
		Context:                  c,
	}, nil
}
