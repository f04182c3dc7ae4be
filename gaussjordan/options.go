// Package gaussjordan: functional configuration of the elimination engine.
// This file defines:
//   - Option (functional options over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves defaults + setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package gaussjordan

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for every comparison against zero:
	// degenerate pivots, skipped eliminations and the all-zero row test.
	// Changing it changes how near-singular systems are classified.
	DefaultEpsilon = 1e-10

	// DefaultSnapshots records a full-matrix snapshot after every pivot column.
	DefaultSnapshots = true

	// DefaultHeader records the introductory lines and the initial matrix.
	DefaultHeader = true
)

const panicEpsilonInvalid = "gaussjordan: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	eps       float64 // >= 0; DefaultEpsilon
	snapshots bool    // DefaultSnapshots
	header    bool    // DefaultHeader
}

// WithEpsilon sets the zero tolerance used throughout elimination and classification.
//
// Behavior highlights:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//   - eps == 0 means exact comparisons.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithSnapshots records a matrix snapshot after each processed column (default).
func WithSnapshots() Option {
	return func(o *options) { o.snapshots = true }
}

// WithNoSnapshots keeps only the row-operation entries in the trace.
func WithNoSnapshots() Option {
	return func(o *options) { o.snapshots = false }
}

// WithHeader records the introductory lines and the initial matrix (default).
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

// WithNoHeader starts the trace at the first row operation.
func WithNoHeader() Option {
	return func(o *options) { o.header = false }
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() options {
	return options{
		eps:       DefaultEpsilon,
		snapshots: DefaultSnapshots,
		header:    DefaultHeader,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// nil entries are ignored.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
