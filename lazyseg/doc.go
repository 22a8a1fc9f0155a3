/*
Package lazyseg implements a segment tree with lazy propagation over an
aggtree.LazyOperation.

The layout is the one of package segtree: a flat slice of 2n values with the
leaves at [n, 2n). In addition, every internal node carries a pending update.
A pending update at node i has already been applied to the value of i, but
not yet to the values of its children. Range updates touch only the O(log n)
nodes of the canonical decomposition of the range and leave pending updates
there.

Before a range is read or updated, pending updates on the paths from the root
to both boundary leaves are pushed down (“propagate”). After an update, the
ancestors of both boundary leaves are re-combined from their children, with a
still pending update re-applied on top (“update”). Neither step uses
recursion: both walk the index arithmetic of the flat tree (2i, 2i+1, i>>1).

Pending updates are merged with aggtree.LazyOperation.Compose, where the
pending update comes first and the newly arriving one second. Updates need not
commute.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lazyseg

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
