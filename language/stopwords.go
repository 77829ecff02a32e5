// SPDX-License-Identifier: MIT

package language

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball/english"
	"gopkg.in/yaml.v3"
)

// StopWords reports whether a word carries no topical meaning.
// Implementations must be safe for concurrent use.
type StopWords interface {
	IsStopWord(word string) bool
}

// StopSet is an immutable set of lower-cased stop words.
type StopSet struct {
	words map[string]struct{}
}

// NewStopSet builds a set from the given words; entries are lower-cased and
// trimmed, blanks are skipped.
func NewStopSet(words ...string) StopSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}

	return StopSet{words: m}
}

// IsStopWord reports membership of the lower-cased word.
func (s StopSet) IsStopWord(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of stop words in the set.
func (s StopSet) Len() int { return len(s.words) }

// Union returns a stop-word predicate matching any of the given sets.
func Union(sets ...StopWords) StopWords { return unionStopWords(sets) }

type unionStopWords []StopWords

func (u unionStopWords) IsStopWord(word string) bool {
	for _, s := range u {
		if s.IsStopWord(word) {
			return true
		}
	}

	return false
}

// EnglishStopWords uses the Snowball English stop-word list.
type EnglishStopWords struct{}

// IsStopWord reports whether word is on the Snowball English list.
func (EnglishStopWords) IsStopWord(word string) bool {
	return english.IsStopWord(strings.ToLower(word))
}

// stopListFile is the YAML layout of a stop-word file.
type stopListFile struct {
	Terms []string `yaml:"terms"`
}

// ReadStopList parses a YAML stop-word list.
func ReadStopList(r io.Reader) (StopSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return StopSet{}, fmt.Errorf("read stop list: %w", err)
	}
	var sl stopListFile
	if err = yaml.Unmarshal(data, &sl); err != nil {
		return StopSet{}, fmt.Errorf("parse stop list: %w", err)
	}

	return NewStopSet(sl.Terms...), nil
}

// LoadStopList reads a YAML stop-word list from path.
func LoadStopList(path string) (StopSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return StopSet{}, fmt.Errorf("open stop list: %w", err)
	}
	defer f.Close()

	return ReadStopList(f)
}
