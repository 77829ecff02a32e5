// SPDX-License-Identifier: MIT

package attrs

import (
	"errors"
	"fmt"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrUnknownKey reports a map key no field consumed.
	ErrUnknownKey = errors.New("attrs: unknown key")
	// ErrType reports a value of the wrong kind for its field.
	ErrType = errors.New("attrs: type mismatch")
	// ErrConstraint reports a value outside its field's constraints.
	ErrConstraint = errors.New("attrs: constraint violated")
	// ErrUnknownType reports an "@type" name missing from the registry.
	ErrUnknownType = errors.New("attrs: unknown type")
)

// keyErrorf prefixes err with the dotted key path.
func keyErrorf(path string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", path, err, fmt.Sprintf(format, args...))
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
