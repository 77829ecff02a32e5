// SPDX-License-Identifier: MIT

package language

import (
	"errors"
	"fmt"

	"github.com/kljensen/snowball"
)

// ErrUnsupportedStemmer indicates that no Snowball stemmer exists for the
// requested language.
var ErrUnsupportedStemmer = errors.New("language: unsupported stemmer")

// Stemmer reduces a lower-cased word to its normalized form.
// Implementations must be safe for concurrent use.
type Stemmer interface {
	Stem(word string) string
}

// StemmerFunc adapts a plain function to Stemmer.
type StemmerFunc func(string) string

// Stem calls f(word).
func (f StemmerFunc) Stem(word string) string { return f(word) }

// NoopStemmer returns every word unchanged.
type NoopStemmer struct{}

// Stem returns word.
func (NoopStemmer) Stem(word string) string { return word }

// snowballNames maps ISO tags to Snowball algorithm names.
var snowballNames = map[string]string{
	"en": "english",
	"fr": "french",
	"es": "spanish",
	"ru": "russian",
	"sv": "swedish",
	"no": "norwegian",
}

// snowballStemmer stems with one Snowball algorithm.
type snowballStemmer struct {
	algorithm string
}

// NewSnowballStemmer returns the Snowball stemmer for an ISO tag.
// Errors: ErrUnsupportedStemmer.
func NewSnowballStemmer(tag string) (Stemmer, error) {
	name, ok := snowballNames[tag]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tag, ErrUnsupportedStemmer)
	}

	return snowballStemmer{algorithm: name}, nil
}

// Stem returns the Snowball stem. Stop words are stemmed too so that stop
// detection and normalization never disagree on a form. Words the library
// rejects are returned unchanged.
func (s snowballStemmer) Stem(word string) string {
	stem, err := snowball.Stem(word, s.algorithm, true)
	if err != nil || stem == "" {
		return word
	}

	return stem
}
