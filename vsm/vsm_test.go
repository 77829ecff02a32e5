// SPDX-License-Identifier: MIT
package vsm_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/lingo/core"
	"github.com/katalvlaran/lingo/language"
	"github.com/katalvlaran/lingo/preprocess"
	"github.com/katalvlaran/lingo/tokenizer"
	"github.com/katalvlaran/lingo/vsm"
	"github.com/stretchr/testify/require"
)

const tol = 0.01

func preprocessTexts(t *testing.T, lookup language.Lookup, texts ...string) *preprocess.Result {
	t.Helper()
	docs := make([]core.Document, len(texts))
	streams := make([][]core.Token, len(texts))
	for i, txt := range texts {
		docs[i] = core.MustDocument(strconv.Itoa(i), "", core.Field{Name: core.FieldSnippet, Value: txt})
		streams[i] = tokenizer.Tokenize(txt)
	}
	pre, err := preprocess.Run(docs, streams, lookup, preprocess.DefaultOptions())
	require.NoError(t, err)
	return pre
}

func phraseMatrix(t *testing.T, lookup language.Lookup, texts ...string) *vsm.PhraseMatrix {
	t.Helper()
	pre := preprocessTexts(t, lookup, texts...)
	td, err := vsm.BuildTermDocument(pre, vsm.TF{})
	require.NoError(t, err)
	pm, err := vsm.BuildPhraseMatrix(pre, td, vsm.TF{})
	require.NoError(t, err)
	return pm
}

func requireRows(t *testing.T, want [][]float64, pm *vsm.PhraseMatrix) {
	t.Helper()
	require.NotNil(t, pm)
	require.Equal(t, len(want), pm.Matrix.Rows())
	for i, w := range want {
		row, err := pm.Row(i)
		require.NoError(t, err)
		require.InDeltaSlice(t, w, row, tol, "row %d", i)
	}
}

func TestWeightings(t *testing.T) {
	require.Equal(t, 3.0, vsm.TF{}.Weight(3, 1, 10))
	require.InDelta(t, 2*math.Log(5), vsm.LogTfIdf{}.Weight(2, 2, 10), 1e-12)
	require.Zero(t, vsm.LogTfIdf{}.Weight(2, 10, 10))
	require.Zero(t, vsm.LogTfIdf{}.Weight(2, 0, 10))
	require.InDelta(t, 1.6, vsm.LinearTfIdf{}.Weight(2, 2, 10), 1e-12)
	require.Zero(t, vsm.LinearTfIdf{}.Weight(2, 0, 0))

	require.Equal(t, vsm.NameTF, vsm.TF{}.Name())
	require.Equal(t, vsm.NameLogTfIdf, vsm.LogTfIdf{}.Name())
	require.Equal(t, vsm.NameLinearTfIdf, vsm.LinearTfIdf{}.Name())
}

func TestTermDocumentMatrix(t *testing.T) {
	pre := preprocessTexts(t, nil, "aa bb aa", "bb", "cc")
	td, err := vsm.BuildTermDocument(pre, vsm.TF{})
	require.NoError(t, err)

	// Words: bb (df 2), then aa, cc (df 1, stem desc: cc, aa).
	require.Equal(t, []int{0, 1, 2}, td.RowWords)
	require.Equal(t, 3, td.Rows())
	require.Equal(t, 3, td.Documents())

	d, err := td.Matrix.ToDense()
	require.NoError(t, err)
	require.Equal(t, []float64{
		1, 1, 0, // bb
		0, 0, 1, // cc
		2, 0, 0, // aa
	}, d.Data())
}

func TestTermDocumentMatrixSkipsStopWords(t *testing.T) {
	lookup := language.NewRegistry(language.WithFallback(language.Resources{StopWords: language.NewStopSet("stop")}))
	pre := preprocessTexts(t, lookup, "aa stop", "stop")
	td, err := vsm.BuildTermDocument(pre, vsm.TF{})
	require.NoError(t, err)
	require.Equal(t, 1, td.Rows())
	_, ok := td.WordRows[0] // "stop" has the highest df
	require.False(t, ok)
}

func TestTermDocumentMatrixEmptyVocabulary(t *testing.T) {
	pre := preprocessTexts(t, nil, "", "")
	td, err := vsm.BuildTermDocument(pre, vsm.LogTfIdf{})
	require.NoError(t, err)
	require.Zero(t, td.Rows())
	require.Equal(t, 2, td.Documents())

	pm, err := vsm.BuildPhraseMatrix(pre, td, vsm.TF{})
	require.NoError(t, err)
	require.Nil(t, pm)
}

func TestBuilderErrors(t *testing.T) {
	_, err := vsm.BuildTermDocument(nil, vsm.TF{})
	require.ErrorIs(t, err, vsm.ErrNilInput)

	pre := preprocessTexts(t, nil, "aa")
	_, err = vsm.BuildTermDocument(pre, nil)
	require.ErrorIs(t, err, vsm.ErrNilWeighting)

	td, err := vsm.BuildTermDocument(pre, vsm.TF{})
	require.NoError(t, err)
	other := preprocessTexts(t, nil, "aa", "bb")
	_, err = vsm.BuildPhraseMatrix(other, td, vsm.TF{})
	require.ErrorIs(t, err, vsm.ErrMismatch)
	_, err = vsm.BuildPhraseMatrix(pre, nil, vsm.TF{})
	require.ErrorIs(t, err, vsm.ErrNilInput)
}

func TestPhraseMatrixEmpty(t *testing.T) {
	require.Nil(t, phraseMatrix(t, nil))
}

func TestPhraseMatrixNoPhrases(t *testing.T) {
	require.Nil(t, phraseMatrix(t, nil, "aa . bb", "bb . cc", "aa . cc . cc"))
}

func TestPhraseMatrixSinglePhraseNoSingleWords(t *testing.T) {
	pm := phraseMatrix(t, nil, "aa bb cc", "aa bb cc", "aa bb cc")
	requireRows(t, [][]float64{{0.577, 0.577, 0.577}}, pm)
	require.Equal(t, []int{0}, pm.Phrases)
}

func TestPhraseMatrixTwoPhrasesNoSingleWords(t *testing.T) {
	pm := phraseMatrix(t, nil, "ee ff", "aa bb cc", "ee ff", "aa bb cc", "ee ff", "aa bb cc")
	requireRows(t, [][]float64{
		{0.707, 0.707, 0, 0, 0},
		{0, 0, 0.577, 0.577, 0.577},
	}, pm)
}

func TestPhraseMatrixSinglePhraseSingleWords(t *testing.T) {
	pm := phraseMatrix(t, nil, "aa bb cc", "aa bb cc", "aa bb cc", "ff . gg . ff . gg")
	requireRows(t, [][]float64{{0.577, 0.577, 0.577, 0, 0}}, pm)
}

func TestPhraseMatrixSinglePhraseWithStopWord(t *testing.T) {
	lookup := language.NewRegistry(language.WithFallback(language.Resources{StopWords: language.NewStopSet("stop")}))
	pm := phraseMatrix(t, lookup, "aa stop cc", "aa stop cc", "aa stop cc")
	requireRows(t, [][]float64{{0.707, 0.707}}, pm)
}
