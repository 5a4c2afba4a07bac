package unionfind

import "fmt"

// New returns a UnionFind over count singleton components, each element
// being its own representative. count == 0 yields an empty, valid universe.
// Returns ErrInvalidArgument if count < 0.
// Complexity: O(count) time and memory.
func New(count int) (*UnionFind, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d must be non-negative", ErrInvalidArgument, count)
	}
	uf := &UnionFind{
		parent: make([]int, count),
		size:   make([]int, count),
		count:  count,
	}
	for i := 0; i < count; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len reports the size of the universe (fixed at construction).
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count reports the current number of components.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the canonical representative of the component containing p.
// Two elements are connected iff Find returns the same value for both.
// Returns ErrOutOfRange if p is outside [0, Len()).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return -1, err
	}

	return uf.root(p), nil
}

// Union merges the components containing p and q. It is a no-op when both
// are already in the same component. Both ids are validated before any
// mutation, so a failed call leaves the partition untouched.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(p, q int) error {
	if err := uf.validate(p); err != nil {
		return err
	}
	if err := uf.validate(q); err != nil {
		return err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return nil
	}
	// Attach the smaller tree under the larger root.
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return nil
}

// Connected reports whether p and q belong to the same component.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// SizeOf returns the number of elements in the component containing p.
func (uf *UnionFind) SizeOf(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}

// root walks to the representative of p, halving the path on the way.
// p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: id %d not in [0,%d)", ErrOutOfRange, p, len(uf.parent))
	}

	return nil
}
