// SPDX-License-Identifier: MIT

package lingo

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lingo/core"
)

// AssembleClusters scores every document against every labeled direction
// and builds the final cluster list.
//
// Implementation:
//   - Stage 1: cosine(document column, direction) for labeled directions;
//     the best one wins (earlier direction on ties) when it exceeds
//     MinMembershipScore.
//   - Stage 2: one cluster per labeled direction in basis order, members by
//     descending score then input order; empty clusters are dropped.
//   - Stage 3: unassigned documents, in input order, form "Other Topics"
//     when enabled and the batch is not empty.
func (c *Context) AssembleClusters() error {
	if err := c.advance(stageAssembled); err != nil {
		return err
	}

	td := c.TermDocument
	n := len(c.Documents)
	var labeled []int
	for j, f := range c.ClusterLabelFeatureIndex {
		if f != NoLabel {
			labeled = append(labeled, j)
		}
	}
	vectors := make([][]float64, len(labeled))
	for i, j := range labeled {
		vectors[i] = c.Basis.Vector(j)
	}

	// Stage 1: assignment.
	members := make([][]core.ClusterDocument, len(labeled))
	var unassigned []core.ClusterDocument
	for d := 0; d < n; d++ {
		best, bestScore := -1, 0.0
		if norm := td.Matrix.ColumnNorm(d); norm > 0 {
			for i, vec := range vectors {
				dot, err := td.Matrix.ColumnDot(d, vec)
				if err != nil {
					return fmt.Errorf("AssembleClusters: %w", err)
				}
				if s := dot / norm; best < 0 || s > bestScore {
					best, bestScore = i, s
				}
			}
		}
		doc := core.ClusterDocument{ID: c.Documents[d].ID, Index: d}
		if best >= 0 && bestScore > c.Params.MinMembershipScore {
			doc.Score = bestScore
			members[best] = append(members[best], doc)
			continue
		}
		unassigned = append(unassigned, doc)
	}

	// Stage 2: labeled clusters.
	pre := c.Preprocessed
	clusters := make([]core.Cluster, 0, len(labeled)+1)
	for i, j := range labeled {
		if len(members[i]) == 0 {
			continue
		}
		docs := members[i]
		sort.SliceStable(docs, func(a, b int) bool { return docs[a].Score > docs[b].Score })
		f := c.ClusterLabelFeatureIndex[j]
		clusters = append(clusters, core.Cluster{
			Label:     pre.FeatureLabel(f),
			Phrase:    f >= len(pre.Words),
			Feature:   f,
			Score:     c.ClusterLabelScore[j],
			Documents: docs,
		})
	}

	// Stage 3: Other Topics.
	if c.Params.OtherTopics && n > 0 {
		clusters = append(clusters, core.Cluster{
			Label:       core.OtherTopicsLabel,
			Feature:     NoLabel,
			Documents:   unassigned,
			OtherTopics: true,
		})
	}

	c.Clusters = clusters
	c.done = stageAssembled

	return nil
}
