// SPDX-License-Identifier: MIT

package preprocess

import (
	"errors"
	"fmt"
)

// ErrInputMismatch indicates that the document and token-stream slices
// differ in length.
var ErrInputMismatch = errors.New("preprocess: documents and token streams differ in length")

// ErrInvalidOptions indicates an Options value outside its documented range.
var ErrInvalidOptions = errors.New("preprocess: invalid options")

const (
	// DefaultMinWordDF keeps every word seen at least once.
	DefaultMinWordDF = 1
	// DefaultMaxWordDFRatio keeps words present in every document.
	DefaultMaxWordDFRatio = 1.0
	// DefaultMinPhraseDF requires a phrase to recur in two documents.
	DefaultMinPhraseDF = 2
	// DefaultMaxPhraseLength caps phrase length in words.
	DefaultMaxPhraseLength = 8
)

// Options controls vocabulary and phrase selection.
type Options struct {
	// MinWordDF is the smallest document frequency of a vocabulary word.
	MinWordDF int
	// MaxWordDFRatio is the largest document frequency of a vocabulary
	// word, as a fraction of the document count (inclusive).
	MaxWordDFRatio float64
	// MinPhraseDF is the smallest document frequency of a phrase.
	MinPhraseDF int
	// MaxPhraseLength is the longest phrase in words; values below 2
	// disable phrase extraction.
	MaxPhraseLength int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinWordDF:       DefaultMinWordDF,
		MaxWordDFRatio:  DefaultMaxWordDFRatio,
		MinPhraseDF:     DefaultMinPhraseDF,
		MaxPhraseLength: DefaultMaxPhraseLength,
	}
}

// Validate checks the documented ranges.
// Errors: ErrInvalidOptions.
func (o Options) Validate() error {
	switch {
	case o.MinWordDF < 1:
		return fmt.Errorf("MinWordDF=%d must be >= 1: %w", o.MinWordDF, ErrInvalidOptions)
	case o.MaxWordDFRatio <= 0 || o.MaxWordDFRatio > 1:
		return fmt.Errorf("MaxWordDFRatio=%g must be in (0,1]: %w", o.MaxWordDFRatio, ErrInvalidOptions)
	case o.MinPhraseDF < 1:
		return fmt.Errorf("MinPhraseDF=%d must be >= 1: %w", o.MinPhraseDF, ErrInvalidOptions)
	case o.MaxPhraseLength < 0:
		return fmt.Errorf("MaxPhraseLength=%d must be >= 0: %w", o.MaxPhraseLength, ErrInvalidOptions)
	}

	return nil
}
