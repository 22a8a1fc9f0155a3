/*
Package hld implements heavy-light decomposition of a rooted tree.

Every inner node of the tree selects the child with the largest subtree as its
heavy child. Heavy edges form chains, and positions are assigned in DFS order
with the heavy child visited first, so that every chain occupies a contiguous
range of positions. A path between two nodes then crosses O(log n) chains,
and HeavyLight.Path yields one span of positions per chain.

Storing a value per node at position Pos(node) in a segtree.Tree or
lazyseg.Tree makes path aggregates and path updates a matter of a few range
operations:

	for span := range hl.Path(u, v) {
	    l, r := span.HalfOpen()
	    x, _ := tree.Query(l, r)
	    ...
	}

Spans of one path are disjoint, but do not come in path order. Combining
their aggregates is only meaningful for commutative operations.

Both traversals run on explicit stacks; deep trees will not exhaust the
goroutine stack.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hld

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}
