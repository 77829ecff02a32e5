// SPDX-License-Identifier: MIT

// Package tokenizer splits raw document text into tagged core.Token values.
//
// The lexer is intentionally small: it recognizes words (letters and digits
// with inner hyphens or apostrophes), acronyms (all-caps words or dotted
// forms such as "U.S."), e-mail addresses, URLs, sentence terminators and
// punctuation. Whitespace is dropped; any other rune becomes Noise.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/lingo/core"
)

// DefaultFields are tokenized when Document is called without field names.
var DefaultFields = []string{core.FieldTitle, core.FieldSnippet}

// Document tokenizes the named fields of doc in order, inserting a
// SentenceEnd between fields so phrases never span them. With no names,
// DefaultFields are used. Missing fields are skipped.
func Document(doc core.Document, fields ...string) []core.Token {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	var out []core.Token
	for _, name := range fields {
		v, ok := doc.Field(name)
		if !ok {
			continue
		}
		toks := Tokenize(v)
		if len(toks) == 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Kind != core.SentenceEnd {
			out = append(out, core.Token{Kind: core.SentenceEnd})
		}
		out = append(out, toks...)
	}

	return out
}

// Tokenize scans text into tokens.
func Tokenize(text string) []core.Token {
	var (
		out []core.Token
		i   int
	)
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			i += size

		case hasURLPrefix(text[i:]):
			end := i + spanUntilSpace(text[i:])
			out = append(out, core.Token{Kind: core.URL, Text: strings.TrimRight(text[i:end], ".,;:!?)")})
			i = end

		case isWordRune(r):
			if m := spanEmail(text[i:]); m > 0 {
				out = append(out, core.Token{Kind: core.Email, Text: text[i : i+m]})
				i += m
				break
			}
			n := spanWord(text[i:])
			if m := spanDottedAcronym(text[i:]); m > 0 {
				out = append(out, core.Token{Kind: core.Acronym, Text: text[i : i+m]})
				i += m
				break
			}
			word := text[i : i+n]
			out = append(out, core.Token{Kind: classify(word), Text: word})
			i += n

		case r == '.' || r == '!' || r == '?':
			// Collapse runs like "?!" or "..." into one boundary.
			j := i + size
			for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?') {
				j++
			}
			if len(out) == 0 || out[len(out)-1].Kind != core.SentenceEnd {
				out = append(out, core.Token{Kind: core.SentenceEnd, Text: text[i:j]})
			}
			i = j

		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			out = append(out, core.Token{Kind: core.Punctuation, Text: string(r)})
			i += size

		default:
			out = append(out, core.Token{Kind: core.Noise, Text: string(r)})
			i += size
		}
	}

	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// spanWord returns the byte length of the word at the start of s. Hyphens
// and apostrophes are kept when surrounded by word runes.
func spanWord(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isWordRune(r) {
			i += size
			continue
		}
		if (r == '-' || r == '\'' || r == '’') && i > 0 {
			next, nsize := utf8.DecodeRuneInString(s[i+size:])
			if nsize > 0 && isWordRune(next) {
				i += size
				continue
			}
		}
		break
	}

	return i
}

// spanEmail returns the length of a local@domain.tld address at the start of
// s, or 0.
func spanEmail(s string) int {
	at := spanWordDots(s)
	if at == 0 || at >= len(s) || s[at] != '@' {
		return 0
	}
	dom := spanWordDots(s[at+1:])
	if dom == 0 || !strings.Contains(s[at+1:at+1+dom], ".") {
		return 0
	}

	return at + 1 + dom
}

// spanWordDots spans word runes, '.', '_' and '-', not ending on a dot.
func spanWordDots(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) && r != '.' && r != '_' && r != '-' {
			break
		}
		i += size
	}
	for i > 0 && s[i-1] == '.' {
		i--
	}

	return i
}

// spanDottedAcronym matches single capital letters each followed by a dot,
// at least two of them ("U.S.", "E.U."), and returns the byte length or 0.
func spanDottedAcronym(s string) int {
	i, count := 0, 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsUpper(r) || i+size >= len(s) || s[i+size] != '.' {
			break
		}
		i += size + 1
		count++
	}
	if count < 2 {
		return 0
	}

	return i
}

func classify(word string) core.TokenKind {
	letters, upper := 0, 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters >= 2 && upper == letters {
		return core.Acronym
	}

	return core.Word
}

func hasURLPrefix(s string) bool {
	l := strings.ToLower(s[:min(len(s), 8)])
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") || strings.HasPrefix(l, "www.")
}

func spanUntilSpace(s string) int {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return i
	}

	return len(s)
}
