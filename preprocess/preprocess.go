// SPDX-License-Identifier: MIT

package preprocess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lingo/core"
	"github.com/katalvlaran/lingo/language"
)

// occurrence is one word-like token: its provisional word id and surface text.
type occurrence struct {
	id      int
	surface string
}

// wordStats accumulates counts for one normalized form.
type wordStats struct {
	stem    string
	images  imageCounter
	df, tf  int
	stop    bool
	lastDoc int
}

// Run preprocesses a batch. streams[i] is the token stream of docs[i];
// lookup resolves each document's language (nil means Generic for all).
//
// Implementation:
//   - Stage 1: normalize word-like tokens, split sentences, count TF/DF.
//   - Stage 2: order words (DF desc, stem desc) and remap ids to indices.
//   - Stage 3: select the vocabulary by document-frequency cutoff.
//   - Stage 4: extract, filter and order phrases.
//
// Errors: ErrInputMismatch. Degenerate input (no documents, no words)
// yields an empty Result.
//
// Complexity: O(T·L) for T word tokens and MaxPhraseLength L, plus sorting.
func Run(docs []core.Document, streams [][]core.Token, lookup language.Lookup, opts Options) (*Result, error) {
	if len(docs) != len(streams) {
		return nil, fmt.Errorf("%d documents, %d streams: %w", len(docs), len(streams), ErrInputMismatch)
	}
	if lookup == nil {
		lookup = language.NewRegistry()
	}

	// Stage 1: normalize and count under provisional ids.
	var (
		stats  []*wordStats
		byStem = make(map[string]int)
		raw    = make([][][]occurrence, len(docs))
	)
	for d, toks := range streams {
		res := lookup.Resources(docs[d].Language)
		stemmer, stops := res.Stemmer, res.StopWords
		if stemmer == nil {
			stemmer = language.Generic.Stemmer
		}
		if stops == nil {
			stops = language.Generic.StopWords
		}

		var sent []occurrence
		for _, tok := range toks {
			if tok.Kind == core.SentenceEnd {
				if len(sent) > 0 {
					raw[d] = append(raw[d], sent)
					sent = nil
				}
				continue
			}
			if !tok.Kind.IsWordLike() || tok.Text == "" {
				continue
			}
			lower := strings.ToLower(tok.Text)
			stem := stemmer.Stem(lower)
			if stem == "" {
				stem = lower
			}
			id, ok := byStem[stem]
			if !ok {
				id = len(stats)
				byStem[stem] = id
				stats = append(stats, &wordStats{stem: stem, images: imageCounter{}, lastDoc: -1})
			}
			ws := stats[id]
			ws.tf++
			ws.images[tok.Text]++
			if ws.lastDoc != d {
				ws.df++
				ws.lastDoc = d
			}
			if stops.IsStopWord(tok.Text) || stops.IsStopWord(lower) {
				ws.stop = true
			}
			sent = append(sent, occurrence{id: id, surface: tok.Text})
		}
		if len(sent) > 0 {
			raw[d] = append(raw[d], sent)
		}
	}

	// Stage 2: deterministic word order.
	order := make([]int, len(stats))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		sa, sb := stats[order[a]], stats[order[b]]
		if sa.df != sb.df {
			return sa.df > sb.df
		}
		return sa.stem > sb.stem
	})
	remap := make([]int, len(stats))
	words := make([]Word, len(stats))
	for idx, id := range order {
		remap[id] = idx
		ws := stats[id]
		words[idx] = Word{
			Index: idx,
			Stem:  ws.stem,
			Image: ws.images.best(),
			DF:    ws.df,
			TF:    ws.tf,
			Stop:  ws.stop,
		}
	}

	// Stage 3: vocabulary.
	maxDF := opts.MaxWordDFRatio * float64(len(docs))
	var vocab []int
	for i := range words {
		w := &words[i]
		if !w.Stop && w.DF >= opts.MinWordDF && float64(w.DF) <= maxDF {
			w.InVocabulary = true
			vocab = append(vocab, i)
		}
	}

	sentences := make([][][]int, len(docs))
	surfaces := make([][][]string, len(docs))
	for d, sents := range raw {
		for _, sent := range sents {
			seq := make([]int, len(sent))
			surf := make([]string, len(sent))
			for k, o := range sent {
				seq[k] = remap[o.id]
				surf[k] = o.surface
			}
			sentences[d] = append(sentences[d], seq)
			surfaces[d] = append(surfaces[d], surf)
		}
	}

	// Stage 4: phrases.
	phrases := extractPhrases(sentences, surfaces, words, opts)

	return &Result{
		Words:      words,
		Phrases:    phrases,
		Sentences:  sentences,
		Vocabulary: vocab,
	}, nil
}
