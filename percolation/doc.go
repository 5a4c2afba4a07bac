// Package percolation models site percolation on an n×n grid with
// incrementally maintained connectivity.
//
// What:
//
//   - Percolation owns an n×n grid of sites, all blocked at construction.
//   - Open(row, col) opens a site and links it to its open N/E/S/W neighbours.
//   - IsFull reports whether an open site is connected to the top row.
//   - Percolates reports whether open sites connect the top row to the bottom row.
//
// Why:
//
//   - Percolation is the canonical model for porous materials, conductivity of
//     random composites and fluid flow; its threshold p* ≈ 0.5927 is only known
//     by simulation.
//   - Monte Carlo estimation opens Θ(n²) sites per trial, so each query must be
//     near-constant time rather than a full connectivity recomputation.
//
// Model:
//
//   - Rows and columns are 1-indexed in the public API. Site (row, col) maps to
//     the flat id (row-1)·n + (col-1) in [0, n²).
//   - Two virtual sites live at the tail of the same id space: top = n² and
//     bottom = n²+1. Every open top-row site is unioned with top, every open
//     bottom-row site with bottom, so Percolates is one Find comparison.
//   - Sites are only ever opened; the open set and the Percolates answer are
//     monotonic.
//
// Backwash:
//
//   - With a single union-find holding both virtual sites, once the grid
//     percolates every open site attached to the bottom row shares the top
//     representative, so IsFull may report sites that have no physical path
//     to the top row. DefaultOptions keeps this behaviour (Backwash = true).
//   - WithBackwash(false) adds a second union-find of n²+1 ids that only knows
//     the virtual top; IsFull is answered from it and never backwashes.
//     Percolates and NumberOfOpenSites are identical in both modes.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              O(α(n²)) amortized (at most six unions).
//   - IsOpen:            O(1).
//   - IsFull/Percolates: O(α(n²)) amortized.
//   - NumberOfOpenSites: O(1).
//   - Clusters:          O(n²) BFS recomputation, for diagnostics and tests.
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0 at construction.
//   - ErrOutOfRange: row or col outside [1, n]. The grid stays valid and unchanged.
package percolation
