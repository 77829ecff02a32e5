// SPDX-License-Identifier: MIT

// Package language supplies the per-language resources the preprocessing
// stage needs: a stemmer and a stop-word set.
//
// A Registry maps ISO language tags ("en", "fr", ...) to Resources. It is
// built once with NewRegistry and is read-only afterwards, so a single
// Registry may serve any number of concurrent clustering requests. Lookups
// of unknown or empty tags return Generic: a no-op stemmer and an empty
// stop-word set.
//
// Stemming uses the Snowball algorithms from github.com/kljensen/snowball.
// English stop words come from the same module; additional lists can be
// loaded from YAML files of the form
//
//	terms:
//	  - foo
//	  - bar
package language
