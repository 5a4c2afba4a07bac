package stats

import "math/rand/v2"

// defaultSeed replaces a zero seed so the default streams stay reproducible.
const defaultSeed uint64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer, so neighbouring trial indices yield
// uncorrelated streams.
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// seededSources returns a SourceFactory producing one PCG stream per trial.
// seed == 0 uses defaultSeed.
func seededSources(seed uint64) SourceFactory {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(trial int) Source {
		s := deriveSeed(seed, uint64(trial))
		return rand.New(rand.NewPCG(s, deriveSeed(s, 1)))
	}
}
