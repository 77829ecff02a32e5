// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for document construction.
var (
	// ErrEmptyFieldName indicates that a Field was declared with an empty name.
	ErrEmptyFieldName = errors.New("core: field name is empty")

	// ErrDuplicateField indicates that the same field name occurs twice on one document.
	ErrDuplicateField = errors.New("core: duplicate field")
)

// Common field names.
const (
	FieldTitle   = "title"
	FieldSnippet = "snippet"
	FieldURL     = "url"
)

// Field is one named text attribute of a Document.
type Field struct {
	Name  string
	Value string
}

// Document is one input item: an identifier, its ordered fields and an
// optional language tag (ISO code such as "en"; empty means unknown).
type Document struct {
	// ID identifies the document in output clusters. May be empty on input;
	// the service layer assigns deterministic ids to anonymous documents.
	ID string

	// Language selects stemmer and stop words. Unknown tags fall back to
	// the generic language.
	Language string

	fields []Field
}

// NewDocument builds a Document from the given fields, preserving their order.
// The slice is copied.
//
// Errors: ErrEmptyFieldName, ErrDuplicateField.
func NewDocument(id, lang string, fields ...Field) (Document, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return Document{}, fmt.Errorf("document %q: %w", id, ErrEmptyFieldName)
		}
		if _, dup := seen[f.Name]; dup {
			return Document{}, fmt.Errorf("document %q field %q: %w", id, f.Name, ErrDuplicateField)
		}
		seen[f.Name] = struct{}{}
	}
	cp := make([]Field, len(fields))
	copy(cp, fields)

	return Document{ID: id, Language: lang, fields: cp}, nil
}

// MustDocument is like NewDocument but panics on error. Intended for
// literals in tests and examples.
func MustDocument(id, lang string, fields ...Field) Document {
	d, err := NewDocument(id, lang, fields...)
	if err != nil {
		panic(err)
	}

	return d
}

// Field returns the value of the named field and whether it exists.
func (d Document) Field(name string) (string, bool) {
	for _, f := range d.fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return "", false
}

// Fields returns a copy of the ordered field list.
func (d Document) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)

	return out
}

// Text joins the values of the named fields with a single space, skipping
// missing or blank ones. With no names, every field is used in order.
func (d Document) Text(names ...string) string {
	var parts []string
	if len(names) == 0 {
		for _, f := range d.fields {
			if strings.TrimSpace(f.Value) != "" {
				parts = append(parts, f.Value)
			}
		}
		return strings.Join(parts, " ")
	}
	for _, n := range names {
		if v, ok := d.Field(n); ok && strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, " ")
}
