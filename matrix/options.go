// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction, the
// edge-list adjacency builder and numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy is orthogonal to build policy:
//   - validateNaNInf controls whether Set()/Apply() reject NaN/±Inf.
//   - graph-kernel transforms (package measure) allocate with the policy OFF,
//     because non-finite values there are a documented outcome, not a fault.
//   - Adjacency build policy mirrors graph semantics: undirected graphs mirror
//     [u,v] into [v,u]; loops and parallel edges are controlled explicitly.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true
)

// Build policy for NewAdjacencyFromEdges.
const (
	// DefaultDirected controls whether edges are treated as directed.
	// false ⇒ undirected (mirror [u,v] into [v,u], except loops).
	DefaultDirected = false

	// DefaultWeighted controls whether actual edge weights are preserved.
	// false ⇒ binary adjacency with unit entries.
	DefaultWeighted = true

	// DefaultAllowMulti sums parallel edges into one cell when true; when false
	// the policy is first-edge-wins.
	DefaultAllowMulti = false

	// DefaultAllowLoops includes self-loops when true.
	DefaultAllowLoops = false
)

// unitWeight is written for present edges in unweighted mode (and for
// zero-weight edges in weighted mode, which edge lists use for "unspecified").
const unitWeight = 1.0

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// adjacency build policy
	directed   bool // DefaultDirected
	weighted   bool // DefaultWeighted
	allowMulti bool // DefaultAllowMulti
	allowLoops bool // DefaultAllowLoops
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Affects only newly created matrices; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
//
// Notes:
//   - The transform layer relies on this to let ln(0) = -Inf and 1/0 = +Inf
//     flow through unchanged.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDirected treats each edge as one-way (no mirroring).
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected mirrors each edge into both triangles (default).
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithWeighted keeps edge weights in adjacency cells (default).
func WithWeighted() Option {
	return func(o *Options) { o.weighted = true }
}

// WithUnweighted writes unitWeight for every present edge.
func WithUnweighted() Option {
	return func(o *Options) { o.weighted = false }
}

// WithAllowMulti sums parallel edges into a single adjacency cell.
func WithAllowMulti() Option {
	return func(o *Options) { o.allowMulti = true }
}

// WithDisallowMulti keeps only the first of parallel edges (default).
func WithDisallowMulti() Option {
	return func(o *Options) { o.allowMulti = false }
}

// WithAllowLoops keeps self-loops on the diagonal.
func WithAllowLoops() Option {
	return func(o *Options) { o.allowLoops = true }
}

// WithDisallowLoops drops self-loops (default).
func WithDisallowLoops() Option {
	return func(o *Options) { o.allowLoops = false }
}

// NewMatrixOptions resolves user options on top of the documented defaults.
// Exposed so callers (and tests) can inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports the resolved numeric policy.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Directed reports the resolved directedness of the adjacency builder.
func (o Options) Directed() bool { return o.directed }

// gatherOptions applies user setters in order over the defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,

		directed:   DefaultDirected,
		weighted:   DefaultWeighted,
		allowMulti: DefaultAllowMulti,
		allowLoops: DefaultAllowLoops,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
