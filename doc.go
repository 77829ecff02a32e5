// SPDX-License-Identifier: MIT

// Package lingo groups short text documents, typically search-result
// snippets, into topics and names every topic with a readable phrase.
//
// Labels come first: the term-document matrix is reduced to a few dominant
// directions, every direction is named by the closest recurring phrase or
// term, and only then are documents assigned to the named directions.
//
// Packages:
//
//	core/        - Document, Token and Cluster value types
//	tokenizer/   - lexer from document fields to token streams
//	language/    - snowball stemmers, stop-word sets, language registry
//	preprocess/  - words, sentences, phrases and the vocabulary
//	matrix/      - dense/sparse matrices, Jacobi eigen-solver, row norms
//	vsm/         - term weightings, term-document and phrase matrices
//	reduce/      - SVD, eigen and NMF factorizations into a unit basis
//	lingo/       - the staged clustering pipeline and its entry point
//	attrs/       - schema-driven attribute maps with "@type" resolution
//	config/      - YAML and map binding of lingo.Params
//	service/     - concurrent request runner, logging, JSON/msgpack output
//	cmd/lingo/   - command-line front end
//
// Quick example:
//
//	docs := []core.Document{core.MustDocument("1", "en", core.Field{Name: core.FieldSnippet, Value: "data mining software"})}
//	streams := [][]core.Token{tokenizer.Document(docs[0])}
//	res, err := lingo.Cluster(docs, streams, language.DefaultRegistry(), lingo.DefaultParams())
//
// Or from the shell:
//
//	lingo cluster --input request.json --config params.yaml
package lingo
