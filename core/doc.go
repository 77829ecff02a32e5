// SPDX-License-Identifier: MIT

// Package core defines the value types shared by every stage of the
// clustering pipeline: input documents, lexical tokens and output clusters.
//
// The types are plain data with no locking. A Document is immutable once
// built (NewDocument copies its fields), a token stream is produced once per
// document by the tokenizer, and Cluster trees are built once by the
// assembler and then handed to the caller.
//
// Documents:
//
//   - Document keeps an ordered field list (title, snippet, url, ...) and an
//     optional language tag used to pick stemmer and stop-word resources.
//   - Field lookup is by exact name; the first match wins.
//
// Tokens:
//
//   - TokenKind tags what the lexer recognized. Only word-like kinds (Word,
//     Acronym, Person) feed the vocabulary; SentenceEnd delimits phrases;
//     every other kind is skipped.
//
// Clusters:
//
//   - Cluster carries a label, the feature it came from, a score, ordered
//     member documents and optional subclusters.
//   - The synthetic "Other Topics" cluster has OtherTopics set and no feature.
//
// Errors:
//
//	ErrEmptyFieldName - a field was declared with an empty name.
//	ErrDuplicateField - a field name was declared twice on one document.
package core
