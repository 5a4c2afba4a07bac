// Package percolate estimates the site-percolation threshold of square grids
// by Monte Carlo simulation, built on an incremental union-find.
//
// What is in here?
//
//	A small, dependency-light toolkit that brings together:
//		• unionfind   flat-array weighted quick-union with path compression
//		• percolation n×n grid with Open/IsOpen/IsFull/Percolates queries,
//		              two virtual sites, optional backwash-free IsFull
//		• stats       parallel Monte Carlo driver: mean, stddev, 95% CI
//		• cmd/percolation-stats, the command-line entry point (n T)
//
// How does it work?
//
//   - Sites open one at a time; each Open performs at most six unions, so the
//     question "does the grid percolate?" costs one Find comparison instead of
//     a full connectivity recomputation.
//   - A trial opens uniformly random sites until the grid percolates; the open
//     fraction at that moment is one sample of the threshold p* ≈ 0.5927.
//
// Quick ASCII example (3×3, '~' full, '#' blocked):
//
//	~ # #
//	~ ~ #
//	# ~ #
//
// percolates through (1,1) → (2,1) → (2,2) → (3,2).
//
//	go run ./cmd/percolation-stats 200 100
package percolate
