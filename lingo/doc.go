// SPDX-License-Identifier: MIT

// Package lingo clusters short text documents and names each cluster with a
// recurring phrase or a single term.
//
// The pipeline runs five stages on one Context per request:
//
//  1. Preprocess          - words, sentences and phrases (package preprocess).
//  2. BuildTermDocument   - weighted vocabulary × documents matrix (package vsm).
//  3. Reduce              - k dominant directions of that matrix (package reduce).
//  4. BuildPhraseMatrix,
//     BuildLabels         - unit phrase vectors, then one unique label per
//     direction, chosen greedily in direction order.
//  5. AssembleClusters    - documents go to their best labeled direction when
//     the cosine exceeds MinMembershipScore; the rest go
//     to "Other Topics".
//
// Each stage writes its own Context fields once; calling a stage out of
// order returns ErrStageOrder. Cluster runs all stages in order.
//
// Feature space:
//
//	ClusterLabelFeatureIndex identifies the chosen label of every direction
//	in the combined feature space: f < len(Words) is word f, otherwise
//	phrase f-len(Words). Dropped directions hold NoLabel.
//
// Determinism:
//
//	Identical documents and Params give identical clusters, labels and
//	order on every run. Ties are resolved by lower index throughout.
//
// Concurrency:
//
//	A Context is owned by one goroutine. Params values, weightings,
//	factorizers and language.Registry are read-only and may be shared.
//	The package performs no I/O and does not log.
package lingo
