/*
Package treeprint renders the internal layout of flat segment trees for
debugging.

Input is an aggtree.Snapshot, as produced by segtree.Tree.Snapshot and
lazyseg.Tree.Snapshot. Three renderers are available:

	Dot      Graphviz DOT, one graph node per tree node
	Console  one tree level per line, pending updates highlighted in color
	HTML     a table with one row per tree level

Remember that for sizes other than powers of two, the levels of a flat tree
mix inner nodes and leaves, and some inner nodes aggregate leaves of different
depths. Renderers print the tree as it is stored; they do not try to beautify
it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treeprint

import (
	"fmt"

	"github.com/npillmayer/aggtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}

func checkSnapshot(snap aggtree.Snapshot) error {
	if snap.Leaves < 0 || len(snap.Labels) != 2*snap.Leaves {
		return fmt.Errorf("%w: snapshot with %d leaves has %d labels", aggtree.ErrIllegalArguments,
			snap.Leaves, len(snap.Labels))
	}
	if snap.Pending != nil && len(snap.Pending) != len(snap.Labels) {
		return fmt.Errorf("%w: snapshot has %d pending labels for %d nodes", aggtree.ErrIllegalArguments,
			len(snap.Pending), len(snap.Labels))
	}
	return nil
}

func pending(snap aggtree.Snapshot, i int) string {
	if snap.Pending == nil {
		return ""
	}
	return snap.Pending[i]
}

// levels returns the node ranges [from, to) of every level of the flat tree.
func levels(snap aggtree.Snapshot) [][2]int {
	var lv [][2]int
	for from := 1; from < 2*snap.Leaves; from <<= 1 {
		lv = append(lv, [2]int{from, min(from<<1, 2*snap.Leaves)})
	}
	return lv
}
