// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for construction kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no environment lookups; the
//     effective dtype of a construction is decided by its call site alone.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package tensor

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDType is the element interpretation used when a construction
	// call does not request one explicitly.
	DefaultDType = Float64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDTypeInvalid = "tensor: WithDType: unknown dtype"
)

// ---------- Public option type (functional) ----------

// Option mutates internal construction options. Safe to apply repeatedly;
// last-writer-wins. Constructors MUST panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective construction configuration after applying
// Option setters. Unexported fields prevent external mutation; public entry
// points accept ...Option and resolve them via gatherOptions.
type Options struct {
	dtype DType // DefaultDType
}

// DType returns the resolved element interpretation.
func (o Options) DType() DType { return o.dtype }

// WithDType selects the element interpretation of the constructed tensor.
// Panics with a stable message on an unknown dtype (programmer error).
// Complexity: O(1).
func WithDType(dt DType) Option {
	if dt != Float64 && dt != Int64 && dt != Bool {
		panic(panicDTypeInvalid)
	}

	return func(o *Options) { o.dtype = dt }
}

// ---------- Option Resolution ----------

// NewOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts. Complexity: O(k).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// The canonical internal entry for every construction kernel.
func gatherOptions(user ...Option) Options {
	o := Options{dtype: DefaultDType}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
