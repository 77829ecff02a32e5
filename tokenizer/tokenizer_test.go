// SPDX-License-Identifier: MIT
package tokenizer_test

import (
	"testing"

	"github.com/katalvlaran/lingo/core"
	"github.com/katalvlaran/lingo/tokenizer"
	"github.com/stretchr/testify/require"
)

func kinds(toks []core.Token) []core.TokenKind {
	out := make([]core.TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func texts(toks []core.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		kinds []core.TokenKind
		texts []string
	}{
		{
			name:  "sentence boundary",
			in:    "aa . aa",
			kinds: []core.TokenKind{core.Word, core.SentenceEnd, core.Word},
			texts: []string{"aa", ".", "aa"},
		},
		{
			name:  "collapsed terminators",
			in:    "really?! yes...",
			kinds: []core.TokenKind{core.Word, core.SentenceEnd, core.Word, core.SentenceEnd},
			texts: []string{"really", "?!", "yes", "..."},
		},
		{
			name:  "acronyms",
			in:    "NASA and the U.S. agency",
			kinds: []core.TokenKind{core.Acronym, core.Word, core.Word, core.Acronym, core.Word},
			texts: []string{"NASA", "and", "the", "U.S.", "agency"},
		},
		{
			name:  "hyphen and apostrophe",
			in:    "state-of-the-art don't -x",
			kinds: []core.TokenKind{core.Word, core.Word, core.Punctuation, core.Word},
			texts: []string{"state-of-the-art", "don't", "-", "x"},
		},
		{
			name:  "url and email",
			in:    "see https://example.org/a?b=1, or mail john.doe@example.org",
			kinds: []core.TokenKind{core.Word, core.URL, core.Word, core.Word, core.Email},
			texts: []string{"see", "https://example.org/a?b=1", "or", "mail", "john.doe@example.org"},
		},
		{
			name:  "punctuation",
			in:    "data (mining)",
			kinds: []core.TokenKind{core.Word, core.Punctuation, core.Word, core.Punctuation},
			texts: []string{"data", "(", "mining", ")"},
		},
		{
			name: "empty",
			in:   "   ",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := tokenizer.Tokenize(tc.in)
			if len(tc.kinds) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.kinds, kinds(got))
			require.Equal(t, tc.texts, texts(got))
		})
	}
}

func TestDocumentSeparatesFields(t *testing.T) {
	doc := core.MustDocument("d", "en",
		core.Field{Name: core.FieldTitle, Value: "aa bb"},
		core.Field{Name: core.FieldSnippet, Value: "cc dd."},
		core.Field{Name: core.FieldURL, Value: "http://x.org"},
	)

	got := tokenizer.Document(doc)
	require.Equal(t, []string{"aa", "bb", "", "cc", "dd", "."}, texts(got))
	require.Equal(t, core.SentenceEnd, got[2].Kind)

	got = tokenizer.Document(doc, core.FieldURL, "missing", core.FieldTitle)
	require.Equal(t, []core.TokenKind{core.URL, core.SentenceEnd, core.Word, core.Word}, kinds(got))
}
