// SPDX-License-Identifier: MIT

package attrs

import (
	"sort"
	"strings"
)

// Decode consumes m into obj. Keys absent from m leave their fields
// untouched. Decoding stops at the first error, so obj may be partially
// updated on failure.
// Errors: ErrUnknownKey, ErrType, ErrConstraint, ErrUnknownType.
func Decode(obj Configurable, m map[string]any) error {
	return decode("", obj, m)
}

// ToMap renders obj as a map. Object fields become nested maps; values
// from a Registry carry their "@type".
func ToMap(obj Configurable) map[string]any {
	return toMap(obj)
}

func decode(path string, obj Configurable, m map[string]any) error {
	rest := clone(m)
	for _, f := range obj.Fields() {
		v, ok := rest[f.Key]
		if !ok {
			continue
		}
		delete(rest, f.Key)
		if err := f.decode(join(path, f.Key), v); err != nil {
			return err
		}
	}
	if len(rest) > 0 {
		keys := make([]string, 0, len(rest))
		for k := range rest {
			keys = append(keys, join(path, k))
		}
		sort.Strings(keys)
		return keyErrorf(strings.Join(keys, ", "), ErrUnknownKey, "no such attribute")
	}

	return nil
}

func toMap(obj Configurable) map[string]any {
	fields := obj.Fields()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.encode()
	}

	return m
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
