// SPDX-License-Identifier: MIT

// Package config binds lingo.Params to attribute maps and YAML.
//
// Recognized keys (all optional; absent keys keep lingo.DefaultParams):
//
//	desiredClusterCount: 30
//	minLabelScore: 0.05
//	minMembershipScore: 0.15
//	otherTopics: true
//	preprocessing: {minWordDf: 1, maxWordDfRatio: 1, minPhraseDf: 2, maxPhraseLength: 8}
//	reducer: {rankTolerance: 1e-10}
//	termWeighting: {"@type": log-tfidf}          # tf | log-tfidf | linear-tfidf
//	factorization: {"@type": nmf, seed: 7}       # svd | eigen | nmf
//
// Unknown keys are rejected with attrs.ErrUnknownKey.
package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lingo/attrs"
	"github.com/katalvlaran/lingo/lingo"
	"github.com/katalvlaran/lingo/reduce"
	"github.com/katalvlaran/lingo/vsm"
)

// ErrUnsupported reports a weighting or factorizer with no configuration name.
var ErrUnsupported = errors.New("config: strategy has no configuration name")

// Load reads YAML from r and overlays it on lingo.DefaultParams.
// An empty document yields the defaults.
// Errors: YAML syntax errors, attrs errors, lingo.ErrInvalidParams.
func Load(r io.Reader) (lingo.Params, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return lingo.Params{}, fmt.Errorf("config: read: %w", err)
	}
	var m map[string]any
	if err = yaml.Unmarshal(data, &m); err != nil {
		return lingo.Params{}, fmt.Errorf("config: parse: %w", err)
	}

	return Decode(m)
}

// Decode overlays m on lingo.DefaultParams and validates the result.
func Decode(m map[string]any) (lingo.Params, error) {
	p := lingo.DefaultParams()
	s, err := attrsFor(&p)
	if err != nil {
		return lingo.Params{}, err
	}
	if err = attrs.Decode(s, m); err != nil {
		return lingo.Params{}, fmt.Errorf("config: %w", err)
	}
	out := s.resolve()
	if err = out.Validate(); err != nil {
		return lingo.Params{}, fmt.Errorf("config: %w", err)
	}

	return out, nil
}

// ToMap renders p as an attribute map.
// Errors: ErrUnsupported for custom weightings or factorizers.
func ToMap(p lingo.Params) (map[string]any, error) {
	s, err := attrsFor(&p)
	if err != nil {
		return nil, err
	}

	return attrs.ToMap(s), nil
}

// Dump renders p as YAML that Load reads back to an equal Params.
func Dump(p lingo.Params) ([]byte, error) {
	m, err := ToMap(p)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return out, nil
}

func attrsFor(p *lingo.Params) (*paramsAttrs, error) {
	s := &paramsAttrs{
		p:             p,
		preprocessing: preprocessingAttrs{&p.Preprocessing},
		reducer:       reducerAttrs{&p.Reducer},
	}

	switch w := p.TermWeighting.(type) {
	case nil, vsm.LogTfIdf:
		s.weighting = &logTfIdfAttrs{}
	case vsm.TF:
		s.weighting = &tfAttrs{}
	case vsm.LinearTfIdf:
		s.weighting = &linearTfIdfAttrs{}
	default:
		return nil, fmt.Errorf("%w: term weighting %T", ErrUnsupported, w)
	}

	switch f := p.Factorizer.(type) {
	case nil, reduce.SVD:
		s.factorization = &svdAttrs{}
	case reduce.Eigen:
		s.factorization = &eigenAttrs{Eigen: f}
	case reduce.NMF:
		s.factorization = &nmfAttrs{NMF: f, seed: int(f.Seed)}
	default:
		return nil, fmt.Errorf("%w: factorizer %T", ErrUnsupported, f)
	}

	return s, nil
}
