// SPDX-License-Identifier: MIT

package attrs

import (
	"fmt"
	"math"
	"slices"
)

// Configurable is any value with an explicit field list. Fields must return
// fields bound to the receiver, so it is normally implemented on a pointer.
type Configurable interface {
	Fields() []Field
}

// Typed is a Configurable that can be named in a Registry.
type Typed interface {
	Configurable
	TypeName() string
}

// Kind enumerates field kinds.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindObject
)

var kindNames = [...]string{"int", "float", "bool", "string", "object"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Field binds one map key to one typed variable.
type Field struct {
	Key  string
	Kind Kind

	decode func(path string, v any) error
	encode func() any
}

// Check validates a decoded value; a non-nil error becomes ErrConstraint.
type Check[T any] func(T) error

type number interface{ ~int | ~float64 }

// Min rejects values below lo.
func Min[T number](lo T) Check[T] {
	return func(v T) error {
		if v < lo {
			return fmt.Errorf("%v < %v", v, lo)
		}
		return nil
	}
}

// Max rejects values above hi.
func Max[T number](hi T) Check[T] {
	return func(v T) error {
		if v > hi {
			return fmt.Errorf("%v > %v", v, hi)
		}
		return nil
	}
}

// Above rejects values at or below lo, and NaN.
func Above[T number](lo T) Check[T] {
	return func(v T) error {
		if !(v > lo) {
			return fmt.Errorf("%v <= %v", v, lo)
		}
		return nil
	}
}

// Below rejects values at or above hi, and NaN.
func Below[T number](hi T) Check[T] {
	return func(v T) error {
		if !(v < hi) {
			return fmt.Errorf("%v >= %v", v, hi)
		}
		return nil
	}
}

// OneOf rejects strings outside allowed.
func OneOf(allowed ...string) Check[string] {
	return func(v string) error {
		if !slices.Contains(allowed, v) {
			return fmt.Errorf("%q not in %v", v, allowed)
		}
		return nil
	}
}

func runChecks[T any](path string, v T, checks []Check[T]) error {
	for _, c := range checks {
		if err := c(v); err != nil {
			return keyErrorf(path, ErrConstraint, "%v", err)
		}
	}

	return nil
}

// Int binds key to *p.
func Int(key string, p *int, checks ...Check[int]) Field {
	return Field{
		Key:  key,
		Kind: KindInt,
		decode: func(path string, v any) error {
			n, err := toInt(path, v)
			if err != nil {
				return err
			}
			if err = runChecks(path, n, checks); err != nil {
				return err
			}
			*p = n
			return nil
		},
		encode: func() any { return *p },
	}
}

// Float binds key to *p.
func Float(key string, p *float64, checks ...Check[float64]) Field {
	return Field{
		Key:  key,
		Kind: KindFloat,
		decode: func(path string, v any) error {
			f, err := toFloat(path, v)
			if err != nil {
				return err
			}
			if err = runChecks(path, f, checks); err != nil {
				return err
			}
			*p = f
			return nil
		},
		encode: func() any { return *p },
	}
}

// Bool binds key to *p.
func Bool(key string, p *bool) Field {
	return Field{
		Key:  key,
		Kind: KindBool,
		decode: func(path string, v any) error {
			b, ok := v.(bool)
			if !ok {
				return keyErrorf(path, ErrType, "want bool, got %T", v)
			}
			*p = b
			return nil
		},
		encode: func() any { return *p },
	}
}

// String binds key to *p.
func String(key string, p *string, checks ...Check[string]) Field {
	return Field{
		Key:  key,
		Kind: KindString,
		decode: func(path string, v any) error {
			s, ok := v.(string)
			if !ok {
				return keyErrorf(path, ErrType, "want string, got %T", v)
			}
			if err := runChecks(path, s, checks); err != nil {
				return err
			}
			*p = s
			return nil
		},
		encode: func() any { return *p },
	}
}

// Object binds key to a nested value.
//
// With a nil reg the nested map is decoded into the current *p, which must
// be non-nil. With a registry an "@type" entry (or a bare string value)
// replaces *p with a fresh instance of that type before decoding; without
// it the current value is updated in place. Instances of the wrong type
// fail with ErrUnknownType.
func Object[T Configurable](key string, p *T, reg *Registry) Field {
	return Field{
		Key:  key,
		Kind: KindObject,
		decode: func(path string, v any) error {
			if name, ok := v.(string); ok && reg != nil {
				v = map[string]any{TypeKey: name}
			}
			m, ok := v.(map[string]any)
			if !ok {
				return keyErrorf(path, ErrType, "want map, got %T", v)
			}
			m = clone(m)
			target := *p
			if raw, has := m[TypeKey]; has && reg != nil {
				delete(m, TypeKey)
				name, ok := raw.(string)
				if !ok {
					return keyErrorf(join(path, TypeKey), ErrType, "want string, got %T", raw)
				}
				obj, err := reg.New(name)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if target, ok = obj.(T); !ok {
					return keyErrorf(path, ErrUnknownType, "%q does not fit this key", name)
				}
			}
			if any(target) == nil {
				return keyErrorf(path, ErrType, "no value to decode into")
			}
			if err := decode(path, target, m); err != nil {
				return err
			}
			*p = target
			return nil
		},
		encode: func() any {
			if any(*p) == nil {
				return nil
			}
			m := toMap(*p)
			if t, ok := any(*p).(Typed); ok && reg != nil {
				m[TypeKey] = t.TypeName()
			}
			return m
		},
	}
}

func toInt(path string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			break
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			break
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, keyErrorf(path, ErrType, "want integer, got %v", n)
		}
		if n < math.MinInt || n >= math.MaxInt {
			break
		}
		return int(n), nil
	default:
		return 0, keyErrorf(path, ErrType, "want integer, got %T", v)
	}

	return 0, keyErrorf(path, ErrType, "%v out of int range", v)
}

func toFloat(path string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, keyErrorf(path, ErrType, "want number, got %T", v)
	}
}
