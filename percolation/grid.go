package percolation

import "fmt"

// neighborOffsets lists the orthogonal (row, col) steps: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Size returns the grid dimension n.
func (p *Percolation) Size() int {
	return p.n
}

// InBounds reports whether the 1-indexed (row, col) lies on the grid.
// Complexity: O(1).
func (p *Percolation) InBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

// Coordinate converts a site id back to its 1-indexed (row, col).
// ids outside [0, n²) yield (0, 0).
func (p *Percolation) Coordinate(id int) (row, col int) {
	if id < 0 || id >= p.n*p.n {
		return 0, 0
	}

	return id/p.n + 1, id%p.n + 1
}

// index maps a validated 1-indexed (row, col) to its site id.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + (col - 1)
}

// validate checks bounds before any state is read or written.
func (p *Percolation) validate(row, col int) error {
	if !p.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) not in [1,%d]×[1,%d]", ErrOutOfRange, row, col, p.n, p.n)
	}

	return nil
}
