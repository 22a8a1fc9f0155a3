/*
Package segtree implements an iterative segment tree over an aggtree.Operation.

The tree for n elements is stored in a flat slice of 2n values: leaves live at
[n, 2n), internal node i at [1, n) aggregates its children 2i and 2i+1. No
rounding up to a power of two takes place; for other sizes some internal
nodes aggregate leaves of different depths, but these nodes never show up in
the canonical decomposition of a range, so queries stay correct.

Point updates re-combine all ancestors of a leaf. Range queries walk two
pointers from both ends of a half-open range [l, r) towards the root, folding
the left pointer's nodes onto the right of the left result and the right
pointer's nodes onto the left of the right result. This keeps the order of the
sequence intact for non-commutative operations.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
