// SPDX-License-Identifier: MIT

package preprocess

import (
	"sort"
	"strconv"
	"strings"
)

// phraseStats accumulates counts for one word-index sequence.
type phraseStats struct {
	words    []int
	df, tf   int
	lastDoc  int
	images   imageCounter
	absorbed bool
}

// phraseKey encodes a word-index sequence as a map key.
func phraseKey(seq []int) string {
	buf := make([]byte, 0, len(seq)*4)
	for i, w := range seq {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(w), 10)
	}

	return string(buf)
}

// extractPhrases collects recurring runs, keeps the complete ones and orders
// them (DF desc, word sequence asc).
func extractPhrases(sentences [][][]int, surfaces [][][]string, words []Word, opts Options) []Phrase {
	if opts.MaxPhraseLength < 2 {
		return nil
	}

	// P.1: count every admissible run.
	cands := make(map[string]*phraseStats)
	var (
		d, s, n, start, end int
		seq                 []int
	)
	for d = range sentences {
		for s = range sentences[d] {
			seq = sentences[d][s]
			for start = 0; start < len(seq); start++ {
				if words[seq[start]].Stop {
					continue // phrases never start with a stop word
				}
				for n = 2; n <= opts.MaxPhraseLength && start+n <= len(seq); n++ {
					end = start + n
					if words[seq[end-1]].Stop {
						continue // nor end with one
					}
					key := phraseKey(seq[start:end])
					ps, ok := cands[key]
					if !ok {
						ps = &phraseStats{
							words:   append([]int(nil), seq[start:end]...),
							lastDoc: -1,
							images:  imageCounter{},
						}
						cands[key] = ps
					}
					ps.tf++
					if ps.lastDoc != d {
						ps.df++
						ps.lastDoc = d
					}
					ps.images[strings.Join(surfaces[d][s][start:end], " ")]++
				}
			}
		}
	}

	// P.2: document-frequency threshold.
	for key, ps := range cands {
		if ps.df < opts.MinPhraseDF {
			delete(cands, key)
		}
	}

	// P.3: a sub-run with the same total frequency as a longer survivor
	// never occurs on its own.
	for _, q := range cands {
		for n = 2; n < len(q.words); n++ {
			for start = 0; start+n <= len(q.words); start++ {
				if p, ok := cands[phraseKey(q.words[start:start+n])]; ok && p.tf == q.tf {
					p.absorbed = true
				}
			}
		}
	}

	// P.4: keep complete phrases that carry at least one vocabulary word.
	out := make([]Phrase, 0, len(cands))
	for _, ps := range cands {
		if ps.absorbed || !hasVocabularyWord(ps.words, words) {
			continue
		}
		out = append(out, Phrase{Words: ps.words, DF: ps.df, TF: ps.tf, Image: ps.images.best()})
	}

	// P.5: deterministic order.
	sort.Slice(out, func(a, b int) bool {
		if out[a].DF != out[b].DF {
			return out[a].DF > out[b].DF
		}
		return lessSeq(out[a].Words, out[b].Words)
	})
	for i := range out {
		out[i].Index = i
	}

	return out
}

func hasVocabularyWord(seq []int, words []Word) bool {
	for _, w := range seq {
		if words[w].InVocabulary {
			return true
		}
	}

	return false
}

// lessSeq orders word-index sequences lexicographically; a proper prefix
// sorts first.
func lessSeq(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
