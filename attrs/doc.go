// SPDX-License-Identifier: MIT

// Package attrs moves typed configuration values to and from map form
// without reflection.
//
// Every configurable type lists its fields explicitly:
//
//	func (o *options) Fields() []attrs.Field {
//		return []attrs.Field{
//			attrs.Int("maxIterations", &o.MaxIterations, attrs.Min(1)),
//			attrs.Float("stopThreshold", &o.StopThreshold, attrs.Min(0.0)),
//		}
//	}
//
// Decode consumes a map[string]any (as produced by a YAML or JSON decoder)
// into such a value and rejects any key no field claims. ToMap is the
// inverse. Object fields resolve polymorphic values through a closed
// Registry keyed by the "@type" entry.
//
// Coercion:
//
//	Int fields accept any integer and integral floats within int range;
//	fractional values fail with ErrType. Float fields accept any number.
//	Bool and String fields accept only their own kind.
package attrs
