package stats

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the collectors fed by finished trials. A nil *metrics
// records nothing.
type metrics struct {
	trials    prometheus.Counter
	threshold prometheus.Histogram
	draws     prometheus.Histogram
}

// newMetrics registers the trial collectors on reg, reusing collectors that
// an earlier Run already registered there. reg == nil disables metrics.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	trials, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "percolation_trials_total",
		Help: "Number of completed percolation trials.",
	}))
	if err != nil {
		return nil, err
	}
	threshold, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "percolation_threshold",
		Help:    "Fraction of open sites at which a trial first percolated.",
		Buckets: prometheus.LinearBuckets(0.05, 0.05, 20),
	}))
	if err != nil {
		return nil, err
	}
	draws, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "percolation_trial_draws",
		Help:    "Random site draws per trial, repeats included.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}))
	if err != nil {
		return nil, err
	}

	return &metrics{trials: trials, threshold: threshold, draws: draws}, nil
}

func (m *metrics) observe(r trialResult) {
	if m == nil {
		return
	}
	m.trials.Inc()
	m.threshold.Observe(r.threshold)
	m.draws.Observe(float64(r.draws))
}

// register adds c to reg, or returns the collector already registered
// under the same descriptor.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("stats: register metrics: %w", err)
	}

	return c, nil
}
