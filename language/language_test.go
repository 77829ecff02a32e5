// SPDX-License-Identifier: MIT
package language_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/lingo/language"
	"github.com/stretchr/testify/require"
)

func TestSnowballStemmer(t *testing.T) {
	st, err := language.NewSnowballStemmer("en")
	require.NoError(t, err)
	require.Equal(t, "run", st.Stem("running"))
	require.Equal(t, "cluster", st.Stem("clusters"))

	_, err = language.NewSnowballStemmer("xx")
	require.ErrorIs(t, err, language.ErrUnsupportedStemmer)
}

func TestStopSet(t *testing.T) {
	s := language.NewStopSet("The", " of ", "")
	require.Equal(t, 2, s.Len())
	require.True(t, s.IsStopWord("the"))
	require.True(t, s.IsStopWord("OF"))
	require.False(t, s.IsStopWord("data"))

	u := language.Union(s, language.NewStopSet("stop"))
	require.True(t, u.IsStopWord("stop"))
	require.True(t, u.IsStopWord("the"))
	require.False(t, u.IsStopWord("go"))

	require.True(t, language.EnglishStopWords{}.IsStopWord("The"))
	require.False(t, language.EnglishStopWords{}.IsStopWord("clustering"))
}

func TestReadStopList(t *testing.T) {
	s, err := language.ReadStopList(strings.NewReader("terms:\n  - foo\n  - Bar\n"))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	require.True(t, s.IsStopWord("bar"))

	_, err = language.ReadStopList(strings.NewReader("terms: [unclosed"))
	require.Error(t, err)

	_, err = language.LoadStopList("/nonexistent/stop.yaml")
	require.Error(t, err)
}

func TestRegistryFallback(t *testing.T) {
	r := language.DefaultRegistry(
		language.WithExtraStopWords("fr", language.NewStopSet("le")),
		language.WithExtraStopWords("zz", language.NewStopSet("ignored")),
	)
	require.Equal(t, language.SupportedStemmers(), r.Tags())

	en := r.Resources("EN-us")
	require.Equal(t, "en", en.Tag)
	require.True(t, en.StopWords.IsStopWord("and"))
	require.Equal(t, "run", en.Stemmer.Stem("running"))

	fr := r.Resources("fr")
	require.True(t, fr.StopWords.IsStopWord("le"))

	unknown := r.Resources("tlh")
	require.Equal(t, "running", unknown.Stemmer.Stem("running"))
	require.False(t, unknown.StopWords.IsStopWord("and"))

	empty := language.NewRegistry()
	require.Empty(t, empty.Tags())
	require.Equal(t, "", empty.Resources("en").Tag)
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := language.DefaultRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				res := r.Resources("en")
				_ = res.Stemmer.Stem("clustering")
				_ = res.StopWords.IsStopWord("the")
			}
		}()
	}
	wg.Wait()
}

func TestCustomResources(t *testing.T) {
	r := language.NewRegistry(
		language.WithResources("xx", language.Resources{Stemmer: language.StemmerFunc(strings.ToUpper)}),
		language.WithFallback(language.Resources{Stemmer: language.NoopStemmer{}, StopWords: language.NewStopSet("stop")}),
	)
	xx := r.Resources("xx")
	require.Equal(t, "ABC", xx.Stemmer.Stem("abc"))
	require.False(t, xx.StopWords.IsStopWord("stop"))
	require.True(t, r.Resources("yy").StopWords.IsStopWord("stop"))
}
