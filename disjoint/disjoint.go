/*
Package disjoint implements a union-find forest over the elements 0…n-1.

Sets are joined by rank and paths are halved on every Find, which keeps
operations effectively constant in time.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package disjoint

import (
	"fmt"

	"github.com/npillmayer/aggtree"
)

// Forest is a disjoint-set forest. Initially every element is its own set.
type Forest struct {
	parent []int
	rank   []int
}

// New creates a forest of n singleton sets.
func New(n int) *Forest {
	n = max(n, 0)
	f := &Forest{parent: make([]int, n), rank: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
		f.rank[i] = 1
	}
	return f
}

// Len returns the number of elements.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Find returns the representative of the set containing i. Find shortens the
// path from i to its representative as a side effect.
func (f *Forest) Find(i int) (int, error) {
	if err := aggtree.CheckIndex(i, 0, len(f.parent)-1); err != nil {
		return 0, fmt.Errorf("disjoint: find: %w", err)
	}
	for i != f.parent[i] {
		f.parent[i] = f.parent[f.parent[i]] // halve the path
		i = f.parent[i]
	}
	return i, nil
}

// Join merges the sets containing u and v. It reports whether u and v have
// already been in the same set.
func (f *Forest) Join(u, v int) (bool, error) {
	pu, err := f.Find(u)
	if err != nil {
		return false, err
	}
	pv, err := f.Find(v)
	if err != nil {
		return false, err
	}
	if pu == pv {
		return true, nil
	}
	if f.rank[pu] < f.rank[pv] {
		pu, pv = pv, pu
	}
	f.parent[pv] = pu
	if f.rank[pu] == f.rank[pv] {
		f.rank[pu]++
	}
	return false, nil
}

// Same reports whether u and v are in the same set.
func (f *Forest) Same(u, v int) (bool, error) {
	pu, err := f.Find(u)
	if err != nil {
		return false, err
	}
	pv, err := f.Find(v)
	if err != nil {
		return false, err
	}
	return pu == pv, nil
}
