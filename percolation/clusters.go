package percolation

import "strings"

// Clusters recomputes, from scratch, the contiguous regions of open sites
// under 4-connectivity. Each cluster is a slice of site ids in BFS order;
// clusters appear in row-major order of their first site. Virtual sites
// play no part, so two top-row sites are only clustered together when a
// physical path joins them.
//
// Use Coordinate to convert ids back to (row, col).
//
// Time:   O(n²).
// Memory: O(n²) for visited flags and output.
func (p *Percolation) Clusters() [][]int {
	seen := make([]bool, len(p.open))
	var clusters [][]int

	for start, isOpen := range p.open {
		if !isOpen || seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true

		for qi := 0; qi < len(queue); qi++ {
			row, col := p.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				r, c := row+d[0], col+d[1]
				if !p.InBounds(r, c) {
					continue
				}
				v := p.index(r, c)
				if p.open[v] && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		clusters = append(clusters, queue)
	}

	return clusters
}

// String renders the grid one row per line: '#' blocked, '.' open, '~' full.
func (p *Percolation) String() string {
	var sb strings.Builder
	sb.Grow(p.n * (p.n + 1))
	for row := 1; row <= p.n; row++ {
		if row > 1 {
			sb.WriteByte('\n')
		}
		for col := 1; col <= p.n; col++ {
			switch full, _ := p.IsFull(row, col); {
			case full:
				sb.WriteByte('~')
			case p.open[p.index(row, col)]:
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
	}

	return sb.String()
}
