// Package unionfind provides a flat-array disjoint-set (union-find) structure
// over a fixed universe of integer ids [0, count).
//
// What:
//
//   - UnionFind keeps a partition of the universe into components.
//   - Union merges two components; Find returns a canonical representative.
//   - Components only ever merge: there is no removal, split or renumbering.
//
// Why:
//
//   - Dynamic connectivity: answer "are p and q connected?" while edges arrive
//     one at a time, without recomputing components from scratch.
//   - Percolation models, Kruskal MST, image labelling, network reachability.
//
// Algorithm:
//
//   - Weighted quick-union: the root of the smaller tree is attached under the
//     root of the larger one (union by size), keeping trees O(log n) deep.
//   - Path halving on Find: every visited node is re-pointed to its grandparent,
//     a single array write per step.
//   - Together the amortized cost per operation is O(α(n)), effectively constant.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory (two int slices).
//   - Find:      O(α(n)) amortized.
//   - Union:     O(α(n)) amortized.
//   - Count/Len: O(1).
//
// Errors:
//
//   - ErrInvalidArgument: negative universe size passed to New.
//   - ErrOutOfRange: an id outside [0, count) passed to Find/Union/Connected/SizeOf.
//
// A UnionFind is not safe for concurrent mutation; give each goroutine its own.
package unionfind
