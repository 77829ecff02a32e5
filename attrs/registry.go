// SPDX-License-Identifier: MIT

package attrs

import (
	"fmt"
	"sort"
	"strings"
)

// TypeKey names the entry that selects a registered type.
const TypeKey = "@type"

// Registry is a closed set of type names and constructors. Register during
// setup; afterwards a Registry is read-only and safe for concurrent use.
type Registry struct {
	ctors map[string]func() Typed
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]func() Typed)}
}

// Register adds a constructor under name and returns r for chaining.
// Panics on an empty name, a nil constructor or a duplicate name.
func (r *Registry) Register(name string, ctor func() Typed) *Registry {
	if strings.TrimSpace(name) == "" {
		panic("attrs.Register: empty name")
	}
	if ctor == nil {
		panic("attrs.Register: nil constructor")
	}
	if _, dup := r.ctors[name]; dup {
		panic(fmt.Sprintf("attrs.Register: duplicate name %q", name))
	}
	r.ctors[name] = ctor

	return r
}

// New returns a fresh instance of the named type.
// Errors: ErrUnknownType.
func (r *Registry) New(name string) (Typed, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownType, name, strings.Join(r.Names(), ", "))
	}

	return ctor(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for n := range r.ctors {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
