// SPDX-License-Identifier: MIT

package preprocess

import "strings"

// Word is one normalized word of the batch.
type Word struct {
	// Index is the position in Result.Words.
	Index int
	// Stem is the normalized form identifying the word.
	Stem string
	// Image is the most frequent surface form (ties → smallest).
	Image string
	// DF is the number of distinct documents containing the word.
	DF int
	// TF is the total number of occurrences across the batch.
	TF int
	// Stop reports whether any occurrence was a stop word.
	Stop bool
	// InVocabulary reports whether the word passed the document-frequency
	// cutoff and is not a stop word.
	InVocabulary bool
}

// Phrase is a recurring multi-word label candidate.
type Phrase struct {
	// Index is the position in Result.Phrases.
	Index int
	// Words is the word-index sequence.
	Words []int
	// DF is the number of distinct documents containing the phrase.
	DF int
	// TF is the total number of occurrences across the batch.
	TF int
	// Image is the most frequent surface form (ties → smallest).
	Image string
}

// Result is the output of Run. It is read-only once returned.
type Result struct {
	// Words is the word table in index order.
	Words []Word
	// Phrases is the phrase table in index order.
	Phrases []Phrase
	// Sentences holds, per document in input order, its sentences as
	// word-index sequences. Stop words and cut-off words are included.
	Sentences [][][]int
	// Vocabulary lists the indices of vocabulary words, ascending.
	Vocabulary []int
}

// DocumentCount returns the number of input documents.
func (r *Result) DocumentCount() int { return len(r.Sentences) }

// FeatureCount returns len(Words)+len(Phrases), the size of the combined
// word/phrase feature space.
func (r *Result) FeatureCount() int { return len(r.Words) + len(r.Phrases) }

// FeatureLabel returns the label text of feature f: a word image for
// f < len(Words), a phrase image otherwise. Out-of-range features yield "".
func (r *Result) FeatureLabel(f int) string {
	switch {
	case f < 0:
		return ""
	case f < len(r.Words):
		return r.Words[f].Image
	case f < r.FeatureCount():
		return r.Phrases[f-len(r.Words)].Image
	}

	return ""
}

// TermFrequencies returns, for document d, the occurrence count of each
// word index present in it.
func (r *Result) TermFrequencies(d int) map[int]int {
	tf := make(map[int]int)
	for _, sent := range r.Sentences[d] {
		for _, w := range sent {
			tf[w]++
		}
	}

	return tf
}

// String returns the phrase image.
func (p Phrase) String() string { return p.Image }

// imageCounter picks the most frequent surface form, ties → smallest.
type imageCounter map[string]int

func (c imageCounter) best() string {
	var (
		best  string
		count = -1
	)
	for img, n := range c {
		if n > count || (n == count && strings.Compare(img, best) < 0) {
			best, count = img, n
		}
	}

	return best
}
