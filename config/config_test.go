// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lingo/attrs"
	"github.com/katalvlaran/lingo/config"
	"github.com/katalvlaran/lingo/lingo"
	"github.com/katalvlaran/lingo/reduce"
	"github.com/katalvlaran/lingo/vsm"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyGivesDefaults(t *testing.T) {
	p, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, lingo.DefaultParams(), p)
}

func TestLoad(t *testing.T) {
	const doc = `
desiredClusterCount: 12
minLabelScore: 0.1
otherTopics: false
preprocessing:
  minWordDf: 2
  maxPhraseLength: 4
reducer:
  rankTolerance: 1e-8
termWeighting:
  "@type": tf
factorization:
  "@type": nmf
  maxIterations: 40
  seed: 7
`
	p, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, 12, p.DesiredClusterCount)
	require.Equal(t, 0.1, p.MinLabelScore)
	require.Equal(t, lingo.DefaultMinMembershipScore, p.MinMembershipScore)
	require.False(t, p.OtherTopics)
	require.Equal(t, 2, p.Preprocessing.MinWordDF)
	require.Equal(t, 4, p.Preprocessing.MaxPhraseLength)
	require.Equal(t, 2, p.Preprocessing.MinPhraseDF)
	require.Equal(t, 1e-8, p.Reducer.RankTolerance)
	require.Equal(t, vsm.TF{}, p.TermWeighting)
	require.Equal(t, reduce.NMF{MaxIterations: 40, StopThreshold: reduce.DefaultNMFStopThreshold, Seed: 7}, p.Factorizer)
}

func TestLoadShorthandType(t *testing.T) {
	p, err := config.Load(strings.NewReader("termWeighting: linear-tfidf\nfactorization: eigen\n"))
	require.NoError(t, err)
	require.Equal(t, vsm.LinearTfIdf{}, p.TermWeighting)
	require.Equal(t, reduce.Eigen{}, p.Factorizer)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown top-level key", "desiredClusters: 3", attrs.ErrUnknownKey},
		{"unknown nested key", "preprocessing: {minDf: 3}", attrs.ErrUnknownKey},
		{"svd takes no attributes", "factorization: {\"@type\": svd, seed: 1}", attrs.ErrUnknownKey},
		{"fractional count", "desiredClusterCount: 2.5", attrs.ErrType},
		{"string count", "desiredClusterCount: many", attrs.ErrType},
		{"zero count", "desiredClusterCount: 0", attrs.ErrConstraint},
		{"score above one", "minMembershipScore: 1.5", attrs.ErrConstraint},
		{"unknown weighting", "termWeighting: bm25", attrs.ErrUnknownType},
		{"rank tolerance one", "reducer: {rankTolerance: 1}", attrs.ErrConstraint},
		{"zero df ratio", "preprocessing: {maxWordDfRatio: 0}", attrs.ErrConstraint},
		{"nan df ratio", "preprocessing: {maxWordDfRatio: .nan}", attrs.ErrConstraint},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Load(strings.NewReader("desiredClusterCount: [1"))
	require.Error(t, err)

	_, err = config.Load(strings.NewReader("preprocessing: {maxWordDfRatio: 0}"))
	require.ErrorContains(t, err, "preprocessing.maxWordDfRatio")
	require.NotErrorIs(t, err, lingo.ErrInvalidParams)
}

func TestIntegralFloatAccepted(t *testing.T) {
	p, err := config.Decode(map[string]any{"desiredClusterCount": 5.0})
	require.NoError(t, err)
	require.Equal(t, 5, p.DesiredClusterCount)
}

func TestDumpLoad(t *testing.T) {
	p := lingo.DefaultParams()
	p.DesiredClusterCount = 9
	p.TermWeighting = vsm.LinearTfIdf{}
	p.Factorizer = reduce.NMF{MaxIterations: 20, StopThreshold: 1e-4, Seed: 3}

	out, err := config.Dump(p)
	require.NoError(t, err)
	require.Contains(t, string(out), "desiredClusterCount: 9")

	back, err := config.Load(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, p, back)
}

func TestToMapDefaults(t *testing.T) {
	m, err := config.ToMap(lingo.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, map[string]any{"@type": "log-tfidf"}, m["termWeighting"])
	require.Equal(t, map[string]any{"@type": "svd"}, m["factorization"])
	require.Equal(t, lingo.DefaultDesiredClusterCount, m["desiredClusterCount"])
}

type customWeighting struct{}

func (customWeighting) Weight(tf, _, _ int) float64 { return float64(tf) }

func TestDumpUnsupported(t *testing.T) {
	p := lingo.DefaultParams()
	p.TermWeighting = customWeighting{}
	_, err := config.Dump(p)
	require.ErrorIs(t, err, config.ErrUnsupported)
}

func TestRegistries(t *testing.T) {
	require.Equal(t, []string{"linear-tfidf", "log-tfidf", "tf"}, config.Weightings.Names())
	require.Equal(t, []string{"eigen", "nmf", "svd"}, config.Factorizations.Names())
}
