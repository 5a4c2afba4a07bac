package stats_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/stats"
)

// scripted replays a fixed sequence of values, cycling when exhausted.
type scripted struct {
	values []int
	pos    int
}

func (s *scripted) IntN(int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// script returns a factory that hands each trial its own replay of values.
func script(values ...int) stats.SourceFactory {
	return func(int) stats.Source {
		return &scripted{values: values}
	}
}

// TestRun_InvalidArguments verifies non-positive n and trials are rejected.
func TestRun_InvalidArguments(t *testing.T) {
	cases := []struct {
		name      string
		n, trials int
	}{
		{"ZeroN", 0, 10},
		{"NegativeN", -1, 10},
		{"ZeroTrials", 5, 0},
		{"NegativeTrials", 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := stats.New(tc.n, tc.trials)
			assert.ErrorIs(t, err, stats.ErrInvalidArgument)
			assert.Nil(t, ps)
		})
	}
}

// TestRun_SingleSite covers the degenerate n=1 grid: every trial opens the
// only site and percolates at fraction 1.
func TestRun_SingleSite(t *testing.T) {
	for _, trials := range []int{1, 2, 30} {
		ps, err := stats.New(1, trials, stats.WithSeed(9))
		require.NoError(t, err)
		assert.Equal(t, 1.0, ps.Mean())
		assert.Equal(t, 0.0, ps.Stddev())
		assert.Equal(t, 1.0, ps.ConfidenceLo())
		assert.Equal(t, 1.0, ps.ConfidenceHi())
		assert.Equal(t, trials, ps.Trials())
		assert.Equal(t, 1, ps.N())
	}
}

// TestRun_InjectedSource drives a 2×2 grid through (1,1) then (2,1):
// the left column percolates after 2 of 4 sites.
func TestRun_InjectedSource(t *testing.T) {
	ps, err := stats.New(2, 5, stats.WithSource(script(0, 0, 1, 0)))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5}, ps.Thresholds())
	assert.Equal(t, 0.5, ps.Mean())
	assert.Equal(t, 0.0, ps.Stddev())
}

// TestRun_RepeatedDrawsDoNotCount verifies a repeated site does not inflate
// the open count: (1,1),(1,1),(2,1) still percolates at 2 of 4.
func TestRun_RepeatedDrawsDoNotCount(t *testing.T) {
	ps, err := stats.New(2, 1, stats.WithSource(script(0, 0, 0, 0, 1, 0)))
	require.NoError(t, err)
	assert.Equal(t, 0.5, ps.Mean())
}

// TestRun_ConfidenceInterval checks the interval formula against the
// returned thresholds.
func TestRun_ConfidenceInterval(t *testing.T) {
	const trials = 40
	ps, err := stats.New(10, trials, stats.WithSeed(123))
	require.NoError(t, err)

	xs := ps.Thresholds()
	require.Len(t, xs, trials)

	var sum float64
	for _, x := range xs {
		require.Greater(t, x, 0.0)
		require.LessOrEqual(t, x, 1.0)
		sum += x
	}
	mean := sum / trials
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	stddev := math.Sqrt(ss / (trials - 1))

	assert.InDelta(t, mean, ps.Mean(), 1e-12)
	assert.InDelta(t, stddev, ps.Stddev(), 1e-12)
	half := 1.96 * stddev / math.Sqrt(trials)
	assert.InDelta(t, mean-half, ps.ConfidenceLo(), 1e-12)
	assert.InDelta(t, mean+half, ps.ConfidenceHi(), 1e-12)
	assert.Less(t, ps.ConfidenceLo(), ps.ConfidenceHi())
}

// TestRun_ThresholdEstimate checks the estimate lands near p* ≈ 0.593.
func TestRun_ThresholdEstimate(t *testing.T) {
	ps, err := stats.New(50, 100, stats.WithSeed(2024), stats.WithWorkers(4))
	require.NoError(t, err)
	assert.InDelta(t, 0.593, ps.Mean(), 0.03)
	assert.Less(t, ps.Stddev(), 0.1)
}

// TestRun_WorkersDeterminism verifies that the same seed yields the same
// thresholds regardless of parallelism.
func TestRun_WorkersDeterminism(t *testing.T) {
	seq, err := stats.New(15, 24, stats.WithSeed(77))
	require.NoError(t, err)
	par, err := stats.New(15, 24, stats.WithSeed(77), stats.WithWorkers(6))
	require.NoError(t, err)
	assert.Equal(t, seq.Thresholds(), par.Thresholds())

	other, err := stats.New(15, 24, stats.WithSeed(78))
	require.NoError(t, err)
	assert.NotEqual(t, seq.Thresholds(), other.Thresholds())
}

// TestRun_BackwashIndependent verifies the IsFull strategy does not change
// the thresholds.
func TestRun_BackwashIndependent(t *testing.T) {
	a, err := stats.New(12, 10, stats.WithSeed(5), stats.WithBackwash(true))
	require.NoError(t, err)
	b, err := stats.New(12, 10, stats.WithSeed(5), stats.WithBackwash(false))
	require.NoError(t, err)
	assert.Equal(t, a.Thresholds(), b.Thresholds())
}

// TestRun_SourceOutOfRange verifies a faulty Source surfaces ErrOutOfRange.
func TestRun_SourceOutOfRange(t *testing.T) {
	_, err := stats.New(3, 2, stats.WithSource(script(3)))
	assert.ErrorIs(t, err, percolation.ErrOutOfRange)
}

// TestRun_Cancelled verifies a cancelled context aborts the run, including
// a trial stuck on a Source that never reaches the bottom row.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := stats.Run(ctx, 5, 3)
	assert.ErrorIs(t, err, context.Canceled)

	// Always drawing (1,1) never percolates a 4×4 grid.
	ctx, cancel = context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = stats.Run(ctx, 4, 1, stats.WithSource(script(0)))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestRun_Logs verifies the run summary reaches the injected logger.
func TestRun_Logs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := stats.New(4, 3, stats.WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "percolation trials finished", entry.Message)
	assert.Equal(t, 4, entry.Data["n"])
	assert.Equal(t, 3, entry.Data["trials"])
}

// TestOptions_Panics verifies option constructors reject meaningless values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { stats.WithWorkers(0) })
	assert.Panics(t, func() { stats.WithSource(nil) })
	assert.Panics(t, func() { stats.WithLogger(nil) })
}
