// SPDX-License-Identifier: MIT

package service

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lingo/core"
)

// Document is one input item of a Request.
type Document struct {
	// ID is optional; anonymous documents get a name-based UUID.
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
	URL      string `json:"url,omitempty"`
	Language string `json:"language,omitempty"`
	// Fields holds further text fields, clustered after title and snippet
	// in name order.
	Fields map[string]string `json:"fields,omitempty"`
}

// fieldNames returns the extra field names of d, sorted.
func (d Document) fieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for name := range d.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// textFields lists the fields tokenized for d.
func (d Document) textFields() []string {
	out := []string{core.FieldTitle, core.FieldSnippet}
	for _, name := range d.fieldNames() {
		if name != core.FieldTitle && name != core.FieldSnippet && name != core.FieldURL {
			out = append(out, name)
		}
	}

	return out
}

// Request is one clustering job.
type Request struct {
	// Language is the default language of documents without their own tag.
	Language  string     `json:"language,omitempty"`
	Documents []Document `json:"documents"`
	// Parameters overlay lingo.DefaultParams; see package config for keys.
	Parameters map[string]any `json:"parameters,omitempty"`
}

// ClusterDocument is one member of a Cluster.
type ClusterDocument struct {
	ID    string  `json:"id"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Cluster is one output group.
type Cluster struct {
	Label       string            `json:"label"`
	Phrase      bool              `json:"phrase,omitempty"`
	Score       float64           `json:"score"`
	OtherTopics bool              `json:"otherTopics,omitempty"`
	Documents   []ClusterDocument `json:"documents"`
}

// Response is the outcome of one Request.
type Response struct {
	Clusters []Cluster     `json:"clusters"`
	Took     time.Duration `json:"took"`
}

// documentSpace namespaces generated document ids.
var documentSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/lingo/document"))

// documentID returns d.ID, or a UUID derived from its URL (or its text
// fields when the URL is empty).
func documentID(d Document) string {
	if d.ID != "" {
		return d.ID
	}
	name := d.URL
	if name == "" {
		parts := []string{d.Title, d.Snippet}
		for _, f := range d.fieldNames() {
			parts = append(parts, f, d.Fields[f])
		}
		name = strings.Join(parts, "\x00")
	}

	return uuid.NewSHA1(documentSpace, []byte(name)).String()
}

// toCore converts d, defaulting its language to lang.
func toCore(d Document, lang string) (core.Document, error) {
	if d.Language != "" {
		lang = d.Language
	}
	var fields []core.Field
	if d.Title != "" {
		fields = append(fields, core.Field{Name: core.FieldTitle, Value: d.Title})
	}
	if d.Snippet != "" {
		fields = append(fields, core.Field{Name: core.FieldSnippet, Value: d.Snippet})
	}
	if d.URL != "" {
		fields = append(fields, core.Field{Name: core.FieldURL, Value: d.URL})
	}
	for _, name := range d.fieldNames() {
		fields = append(fields, core.Field{Name: name, Value: d.Fields[name]})
	}

	return core.NewDocument(documentID(d), lang, fields...)
}

func fromCore(clusters []core.Cluster) []Cluster {
	out := make([]Cluster, len(clusters))
	for i, c := range clusters {
		docs := make([]ClusterDocument, len(c.Documents))
		for j, d := range c.Documents {
			docs[j] = ClusterDocument{ID: d.ID, Index: d.Index, Score: d.Score}
		}
		out[i] = Cluster{
			Label:       c.Label,
			Phrase:      c.Phrase,
			Score:       c.Score,
			OtherTopics: c.OtherTopics,
			Documents:   docs,
		}
	}

	return out
}
