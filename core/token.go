// SPDX-License-Identifier: MIT

package core

// TokenKind tags a lexical token.
type TokenKind uint8

// Token kinds recognized by the tokenizer.
const (
	Noise TokenKind = iota
	Word
	Acronym
	Person
	Email
	URL
	SentenceEnd
	Punctuation
)

var tokenKindNames = [...]string{
	Noise:       "noise",
	Word:        "word",
	Acronym:     "acronym",
	Person:      "person",
	Email:       "email",
	URL:         "url",
	SentenceEnd: "sentence-end",
	Punctuation: "punctuation",
}

// String returns a lower-case name for the kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}

	return "unknown"
}

// IsWordLike reports whether tokens of this kind feed the vocabulary.
func (k TokenKind) IsWordLike() bool {
	return k == Word || k == Acronym || k == Person
}

// Token is one lexical unit with its surface text.
type Token struct {
	Kind TokenKind
	Text string
}
