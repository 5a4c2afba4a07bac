package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// New creates an n×n grid with every site blocked. The union-find spans
// n²+2 ids; the last two are the virtual top and bottom sites. No unions
// are performed, so every site starts disconnected from everything.
// Returns ErrInvalidArgument if n <= 0.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n = %d, must be positive", ErrInvalidArgument, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sites := n * n
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: New(%d): %w", n, err)
	}
	p := &Percolation{
		n:      n,
		open:   make([]bool, sites),
		uf:     uf,
		top:    sites,
		bottom: sites + 1,
	}
	if !o.Backwash {
		// The second structure never sees the virtual bottom.
		if p.full, err = unionfind.New(sites + 1); err != nil {
			return nil, fmt.Errorf("percolation: New(%d): %w", n, err)
		}
	}

	return p, nil
}

// Open opens site (row, col) if it is not open already and links it to
// each open orthogonal neighbour, to the virtual top when row == 1 and to
// the virtual bottom when row == n. Re-opening an open site is a no-op.
// Returns ErrOutOfRange if the site is off the grid; nothing is mutated then.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	site := p.index(row, col)
	if p.open[site] {
		return nil
	}
	p.open[site] = true
	p.numOpen++

	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !p.InBounds(r, c) {
			continue
		}
		if nb := p.index(r, c); p.open[nb] {
			if err := p.link(site, nb); err != nil {
				return err
			}
		}
	}
	if row == 1 {
		if err := p.link(site, p.top); err != nil {
			return err
		}
	}
	if row == p.n {
		// Only the primary structure knows the virtual bottom.
		if err := p.uf.Union(site, p.bottom); err != nil {
			return fmt.Errorf("percolation: Open(%d,%d): %w", row, col, err)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfRange if the site is off the grid.
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the
// virtual top. With Backwash enabled (the default) a site may report full
// through the virtual bottom once the grid percolates; see the package doc.
// Returns ErrOutOfRange if the site is off the grid.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	site := p.index(row, col)
	if !p.open[site] {
		return false, nil
	}

	uf := p.uf
	if p.full != nil {
		uf = p.full
	}
	full, err := uf.Connected(site, p.top)
	if err != nil {
		return false, fmt.Errorf("percolation: IsFull(%d,%d): %w", row, col, err)
	}

	return full, nil
}

// NumberOfOpenSites returns the number of open sites.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.numOpen
}

// Percolates reports whether the virtual top and bottom share a component,
// i.e. some path of open sites spans the top row to the bottom row.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Percolates() bool {
	// top and bottom are valid by construction.
	ok, _ := p.uf.Connected(p.top, p.bottom)

	return ok
}

// link unions a and b in every structure that tracks them.
func (p *Percolation) link(a, b int) error {
	if err := p.uf.Union(a, b); err != nil {
		return fmt.Errorf("percolation: link(%d,%d): %w", a, b, err)
	}
	if p.full != nil {
		if err := p.full.Union(a, b); err != nil {
			return fmt.Errorf("percolation: link(%d,%d): %w", a, b, err)
		}
	}

	return nil
}
