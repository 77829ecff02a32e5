// SPDX-License-Identifier: MIT

// Package preprocess turns per-document token streams into the statistics
// the clustering pipeline works on: the word table, per-document sentence
// sequences of word indices and the set of recurring phrases.
//
// Normalization:
//
//	Only word-like tokens (core.Word, core.Acronym, core.Person) become
//	words. Each is lower-cased and stemmed with the stemmer of its
//	document's language; the normalized form (stem) identifies the word.
//	core.SentenceEnd closes the current sentence. Every other token kind is
//	dropped without breaking the sentence.
//
// Word order:
//
//	Words are indexed by descending document frequency, ties broken by
//	normalized form in descending byte order. Indices never change
//	afterwards, which pins the row order of every downstream matrix.
//
// Vocabulary:
//
//	A word enters the vocabulary when it is not a stop word and its
//	document frequency lies in [MinWordDF, MaxWordDFRatio·N]. Excluded words
//	stay in the sentence sequences and may sit inside phrases.
//
// Phrases:
//
//	A phrase is a run of 2..MaxPhraseLength words inside one sentence that
//	neither starts nor ends with a stop word and occurs in at least
//	MinPhraseDF documents. A phrase that only ever occurs as part of one
//	longer surviving phrase (same total frequency) is dropped in favour of
//	it. Phrases without any vocabulary word are dropped. Phrases are indexed
//	by descending document frequency, ties broken by their word-index
//	sequence in ascending lexicographic order.
//
// Preprocessing is a pure function of its inputs; it performs no I/O and
// spawns no goroutines.
package preprocess
