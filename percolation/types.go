package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidArgument indicates a non-positive grid size.
	ErrInvalidArgument = errors.New("percolation: invalid argument")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site out of range")
)

// Options contains tunable parameters for a Percolation grid.
type Options struct {
	// Backwash selects the single-structure strategy in which IsFull may
	// report bottom-connected sites as full once the grid percolates.
	Backwash bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with Backwash=true.
func DefaultOptions() Options {
	return Options{
		Backwash: true,
	}
}

// WithBackwash chooses between the single union-find (true) and the
// backwash-free dual union-find (false) strategy for IsFull.
func WithBackwash(enabled bool) Option {
	return func(o *Options) {
		o.Backwash = enabled
	}
}

// Percolation is an n×n grid of sites with live connectivity queries.
// open is row-major over site ids [0, n²). uf spans n²+2 ids with the two
// virtual sites at top and bottom. full spans n²+1 ids (virtual top only)
// and is nil when Options.Backwash is set.
type Percolation struct {
	n       int
	open    []bool
	numOpen int
	uf      *unionfind.UnionFind
	full    *unionfind.UnionFind
	top     int
	bottom  int
}
