package stats

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count.
var ErrInvalidArgument = errors.New("stats: invalid argument")

// confidence95 is the two-sided 95% quantile of the standard normal.
const confidence95 = 1.96

// Source is a uniform integer source: IntN returns a value in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// SourceFactory returns the Source for a given trial index. Every call must
// return a Source that is not shared with any other trial.
type SourceFactory func(trial int) Source

// Options configures a Run.
type Options struct {
	// Workers is the maximum number of trials run in parallel.
	Workers int
	// Seed feeds the default per-trial PCG streams. Ignored when Source is set.
	Seed uint64
	// Source overrides the default per-trial streams.
	Source SourceFactory
	// Backwash is passed to every percolation grid.
	Backwash bool
	// Logger receives run summaries at Debug level.
	Logger logrus.FieldLogger
	// Registerer, when non-nil, receives the trial metrics.
	Registerer prometheus.Registerer
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options for a sequential, seed-0 run that logs to
// the logrus standard logger and exports no metrics.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Seed:     0,
		Backwash: true,
		Logger:   logrus.StandardLogger(),
	}
}

// WithWorkers sets the number of parallel trial workers. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("stats: WithWorkers(k < 1)")
	}
	return func(o *Options) {
		o.Workers = k
	}
}

// WithSeed sets the seed of the default per-trial streams.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSource injects the per-trial random source. Panics on nil.
func WithSource(f SourceFactory) Option {
	if f == nil {
		panic("stats: WithSource(nil)")
	}
	return func(o *Options) {
		o.Source = f
	}
}

// WithBackwash selects the IsFull strategy of the underlying grids.
// Thresholds do not depend on it; only Percolates is consulted.
func WithBackwash(enabled bool) Option {
	return func(o *Options) {
		o.Backwash = enabled
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRegisterer exports trial metrics to reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = reg
	}
}

// PercolationStats holds the per-trial thresholds of a finished Run and
// their summary statistics.
type PercolationStats struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
}
