// SPDX-License-Identifier: MIT

package core

import "sort"

// OtherTopicsLabel is the label of the synthetic cluster holding documents
// that matched no labeled direction.
const OtherTopicsLabel = "Other Topics"

// ClusterDocument is one member of a cluster.
type ClusterDocument struct {
	// ID is the document identifier as supplied on input.
	ID string
	// Index is the document position in the input batch.
	Index int
	// Score is the membership score (cosine similarity); zero for Other Topics.
	Score float64
}

// Cluster is one labeled group of documents.
type Cluster struct {
	// Label is the human-readable label text.
	Label string
	// Phrase reports whether the label is a multi-word phrase.
	Phrase bool
	// Feature is the label's position in the combined word/phrase feature
	// space, or -1 for Other Topics.
	Feature int
	// Score is the label's similarity to its direction.
	Score float64
	// Documents are the members, best score first.
	Documents []ClusterDocument
	// Subclusters is reserved for hierarchical output; the flat algorithm
	// leaves it empty.
	Subclusters []Cluster
	// OtherTopics marks the synthetic catch-all cluster.
	OtherTopics bool
}

// Size returns the number of distinct documents in the cluster and all of its
// subclusters.
func (c *Cluster) Size() int {
	return len(c.AllDocuments())
}

// AllDocuments returns the distinct input indices of every document in the
// cluster tree, ascending.
func (c *Cluster) AllDocuments() []int {
	seen := make(map[int]struct{})
	var walk func(*Cluster)
	walk = func(n *Cluster) {
		for _, d := range n.Documents {
			seen[d.Index] = struct{}{}
		}
		for i := range n.Subclusters {
			walk(&n.Subclusters[i])
		}
	}
	walk(c)

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy of the cluster tree.
func (c *Cluster) Clone() Cluster {
	out := *c
	out.Documents = append([]ClusterDocument(nil), c.Documents...)
	if c.Subclusters != nil {
		out.Subclusters = make([]Cluster, len(c.Subclusters))
		for i := range c.Subclusters {
			out.Subclusters[i] = c.Subclusters[i].Clone()
		}
	}

	return out
}
