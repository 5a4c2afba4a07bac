// Package stats estimates the percolation threshold by Monte Carlo simulation.
//
// What:
//
//   - Run performs T independent trials on fresh n×n percolation grids. Each
//     trial opens uniformly random sites until the grid percolates and records
//     the fraction of open sites at that moment.
//   - PercolationStats reports the sample mean, the sample standard deviation
//     and the 95% confidence interval mean ± 1.96·stddev/√T.
//
// Randomness:
//
//   - The driver never owns a global random source. Each trial draws from its
//     own Source produced by a SourceFactory; WithSource injects one, otherwise
//     a PCG stream is derived from WithSeed and the trial index.
//   - Because streams are per trial, results for a given seed are identical
//     regardless of the number of workers.
//
// Concurrency:
//
//   - Trials share no mutable state, so WithWorkers(k) runs up to k trials in
//     parallel through an errgroup. Each trial owns its grid and its Source.
//   - Cancelling the context stops dispatching trials; Run returns ctx.Err().
//
// Observability:
//
//   - WithLogger attaches a logrus.FieldLogger; run summaries are logged at Debug.
//   - WithRegisterer registers trial counters and threshold histograms.
//   - Run opens an OpenTelemetry span named "stats.Run".
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0 or trials <= 0.
//   - percolation.ErrOutOfRange (wrapped): an injected Source produced a value
//     outside [0, n).
package stats
