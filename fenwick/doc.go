/*
Package fenwick implements a binary-indexed tree (Fenwick tree) over an
aggtree.Operation.

A Fenwick tree supports point updates and prefix queries, both in O(log n),
using n+1 slots of storage. Positions are 1-based: the tree for n elements
covers positions 1…n, and Query(k) aggregates positions 1…k.

Compared to a segment tree, a Fenwick tree cannot answer arbitrary ranges
without an inverse operation, but it is smaller and faster for prefix-style
questions, e.g. weighted random selection (see Tree.Search).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fenwick

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}
