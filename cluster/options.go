// SPDX-License-Identifier: MIT

package cluster

import "math"

// Defaults for k-means.
const (
	// DefaultSeed seeds the k-means RNG; the fixed value makes runs reproducible.
	DefaultSeed int64 = 0

	// DefaultMaxIter bounds the Lloyd iterations of one restart.
	DefaultMaxIter = 300

	// DefaultNInit is the number of k-means++ restarts; the lowest inertia wins.
	DefaultNInit = 10

	// DefaultTolerance is the relative centroid-shift threshold for convergence,
	// scaled by the mean per-feature variance of the data.
	DefaultTolerance = 1e-4
)

const (
	panicMaxIterInvalid   = "cluster: WithMaxIter: maxIter must be > 0"
	panicNInitInvalid     = "cluster: WithNInit: nInit must be > 0"
	panicToleranceInvalid = "cluster: WithTolerance: tol must be finite, non-negative"
)

// Option mutates k-means Options. Constructors panic on nonsensical values.
type Option func(*Options)

// Options holds the effective k-means configuration.
type Options struct {
	seed    int64
	maxIter int
	nInit   int
	tol     float64
}

// WithSeed sets the RNG seed for k-means++ seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithMaxIter sets the per-restart Lloyd iteration cap.
func WithMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// WithNInit sets the number of independent restarts.
func WithNInit(nInit int) Option {
	if nInit <= 0 {
		panic(panicNInitInvalid)
	}

	return func(o *Options) { o.nInit = nInit }
}

// WithTolerance sets the relative convergence tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// Seed reports the resolved seed.
func (o Options) Seed() int64 { return o.seed }

// MaxIter reports the resolved iteration cap.
func (o Options) MaxIter() int { return o.maxIter }

// NInit reports the resolved number of restarts.
func (o Options) NInit() int { return o.nInit }

// Tolerance reports the resolved convergence tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// NewOptions resolves user options on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		seed:    DefaultSeed,
		maxIter: DefaultMaxIter,
		nInit:   DefaultNInit,
		tol:     DefaultTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
