package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/percolation"
)

var tracer = otel.Tracer("github.com/katalvlaran/percolate/stats")

// trialResult is the outcome of a single trial.
type trialResult struct {
	threshold float64
	draws     int
}

// New runs trials independent experiments on n×n grids; see Run.
func New(n, trials int, opts ...Option) (*PercolationStats, error) {
	return Run(context.Background(), n, trials, opts...)
}

// Run performs trials independent experiments on fresh n×n grids. Each
// trial opens random sites (row, col) = (IntN(n)+1, IntN(n)+1) until the grid
// percolates and records NumberOfOpenSites()/n². Thresholds are stored by
// trial index, so the result does not depend on worker scheduling.
//
// Returns ErrInvalidArgument if n <= 0 or trials <= 0, ctx.Err() if the
// context is cancelled first, and a wrapped percolation.ErrOutOfRange if an
// injected Source leaves [0, n).
// Complexity: O(trials · n² · α(n²)) time, O(workers · n² + trials) memory.
func Run(ctx context.Context, n, trials int, opts ...Option) (ps *PercolationStats, err error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n = %d and trials = %d must be positive", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sources := o.Source
	if sources == nil {
		sources = seededSources(o.Seed)
	}

	ctx, span := tracer.Start(ctx, "stats.Run", trace.WithAttributes(
		attribute.Int("percolation.n", n),
		attribute.Int("percolation.trials", trials),
		attribute.Int("percolation.workers", o.Workers),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	m, err := newMetrics(o.Registerer)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	thresholds := make([]float64, trials)
	draws := make([]int, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < trials && gctx.Err() == nil; i++ {
		g.Go(func() error {
			res, err := runTrial(gctx, n, sources(i), percolation.WithBackwash(o.Backwash))
			if err != nil {
				return fmt.Errorf("stats: trial %d: %w", i, err)
			}
			thresholds[i] = res.threshold
			draws[i] = res.draws
			m.observe(res)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	ps = summarize(n, thresholds)
	span.SetAttributes(attribute.Float64("percolation.mean", ps.mean))

	o.Logger.WithFields(logrus.Fields{
		"n":       n,
		"trials":  trials,
		"workers": o.Workers,
		"draws":   floats.Sum(intsToFloats(draws)),
		"mean":    ps.mean,
		"stddev":  ps.stddev,
		"elapsed": time.Since(start).String(),
	}).Debug("percolation trials finished")

	return ps, nil
}

// runTrial opens random sites on a fresh grid until it percolates.
// The context is polled once per n draws so that a degenerate Source can
// still be cancelled.
func runTrial(ctx context.Context, n int, src Source, opts ...percolation.Option) (trialResult, error) {
	p, err := percolation.New(n, opts...)
	if err != nil {
		return trialResult{}, err
	}

	var res trialResult
	for !p.Percolates() {
		if res.draws%n == 0 {
			if err := ctx.Err(); err != nil {
				return trialResult{}, err
			}
		}
		if err := p.Open(src.IntN(n)+1, src.IntN(n)+1); err != nil {
			return trialResult{}, err
		}
		res.draws++
	}
	res.threshold = float64(p.NumberOfOpenSites()) / float64(n*n)

	return res, nil
}

// summarize computes the sample mean and the sample (n-1) standard
// deviation. A single trial has no spread, so its deviation is 0.
func summarize(n int, thresholds []float64) *PercolationStats {
	ps := &PercolationStats{
		n:          n,
		thresholds: thresholds,
		mean:       stat.Mean(thresholds, nil),
	}
	if len(thresholds) > 1 {
		ps.stddev = stat.StdDev(thresholds, nil)
	}

	return ps
}

func intsToFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// N returns the grid dimension used by every trial.
func (ps *PercolationStats) N() int { return ps.n }

// Trials returns the number of trials.
func (ps *PercolationStats) Trials() int { return len(ps.thresholds) }

// Thresholds returns a copy of the per-trial open-site fractions, in trial order.
func (ps *PercolationStats) Thresholds() []float64 {
	return append([]float64(nil), ps.thresholds...)
}

// Mean returns the sample mean of the percolation threshold.
func (ps *PercolationStats) Mean() float64 { return ps.mean }

// Stddev returns the sample standard deviation of the percolation threshold.
func (ps *PercolationStats) Stddev() float64 { return ps.stddev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (ps *PercolationStats) ConfidenceLo() float64 {
	return ps.mean - ps.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (ps *PercolationStats) ConfidenceHi() float64 {
	return ps.mean + ps.halfWidth()
}

func (ps *PercolationStats) halfWidth() float64 {
	return confidence95 * ps.stddev / math.Sqrt(float64(len(ps.thresholds)))
}
