// SPDX-License-Identifier: MIT

package language

import (
	"sort"
	"strings"
)

// Resources bundles the language-specific collaborators of preprocessing.
type Resources struct {
	// Tag is the ISO code the resources were registered under ("" for Generic).
	Tag       string
	Stemmer   Stemmer
	StopWords StopWords
}

// Generic is the fallback for unknown languages: no stemming, no stop words.
var Generic = Resources{Stemmer: NoopStemmer{}, StopWords: NewStopSet()}

// Lookup resolves a document's language tag to its resources. It never
// fails; unknown tags resolve to Generic.
type Lookup interface {
	Resources(tag string) Resources
}

// Registry is an immutable Lookup keyed by lower-cased ISO tag.
type Registry struct {
	byTag    map[string]Resources
	fallback Resources
}

// RegistryOption configures a Registry before it is sealed.
type RegistryOption func(*Registry)

// WithResources registers resources under tag, replacing an earlier entry.
func WithResources(tag string, res Resources) RegistryOption {
	return func(r *Registry) {
		tag = normalizeTag(tag)
		res.Tag = tag
		if res.Stemmer == nil {
			res.Stemmer = NoopStemmer{}
		}
		if res.StopWords == nil {
			res.StopWords = NewStopSet()
		}
		r.byTag[tag] = res
	}
}

// WithExtraStopWords adds words to the stop set of an already registered
// tag. Options apply in order, so it must follow the matching WithResources.
// Unknown tags are ignored.
func WithExtraStopWords(tag string, extra StopWords) RegistryOption {
	return func(r *Registry) {
		tag = normalizeTag(tag)
		res, ok := r.byTag[tag]
		if !ok {
			return
		}
		res.StopWords = Union(res.StopWords, extra)
		r.byTag[tag] = res
	}
}

// WithFallback replaces Generic as the resources for unknown tags.
func WithFallback(res Resources) RegistryOption {
	return func(r *Registry) { r.fallback = res }
}

// NewRegistry returns a sealed registry. With no options it knows nothing
// and resolves every tag to Generic.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{byTag: make(map[string]Resources), fallback: Generic}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// DefaultRegistry registers Snowball stemmers for every supported tag and
// the Snowball English stop words for "en". Other languages get an empty
// stop set unless extended with WithExtraStopWords.
func DefaultRegistry(opts ...RegistryOption) *Registry {
	base := make([]RegistryOption, 0, len(snowballNames)+len(opts))
	for _, tag := range SupportedStemmers() {
		st, _ := NewSnowballStemmer(tag) // tag comes from the supported table
		res := Resources{Stemmer: st}
		if tag == "en" {
			res.StopWords = EnglishStopWords{}
		}
		base = append(base, WithResources(tag, res))
	}

	return NewRegistry(append(base, opts...)...)
}

// Resources returns the resources for tag, or the fallback.
// Tags are matched case-insensitively on their primary subtag ("en-US" → "en").
func (r *Registry) Resources(tag string) Resources {
	if res, ok := r.byTag[normalizeTag(tag)]; ok {
		return res
	}

	return r.fallback
}

// Tags lists the registered tags in ascending order.
func (r *Registry) Tags() []string {
	out := make([]string, 0, len(r.byTag))
	for t := range r.byTag {
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}

// SupportedStemmers lists the ISO tags with a Snowball stemmer, ascending.
func SupportedStemmers() []string {
	out := make([]string, 0, len(snowballNames))
	for t := range snowballNames {
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}

func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}

	return tag
}
