package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidArgument indicates a negative universe size.
	ErrInvalidArgument = errors.New("unionfind: invalid argument")
	// ErrOutOfRange indicates an element id outside [0, count).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// UnionFind is a weighted quick-union structure with path compression.
// parent[i] is the parent of i (roots point to themselves), size[r] is the
// number of elements in the tree rooted at r and is only meaningful for roots.
// count is the current number of components.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
