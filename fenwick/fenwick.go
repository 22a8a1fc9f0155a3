package fenwick

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/aggtree"
)

// Tree is a Fenwick tree over n positions 1…n.
//
// Node i holds the aggregate of the positions (i - lowbit(i), i]. Modify
// applies an update to every node responsible for a position, so the
// operation's Apply has to distribute over Combine (as additive updates do).
// Point assignment is not expressible with a Fenwick tree; use package segtree
// for it.
type Tree[V, U any] struct {
	op  aggtree.Operation[V, U]
	val []V
	n   int
}

// New creates a tree for n positions, all set to op.Identity().
func New[V, U any](op aggtree.Operation[V, U], n int) (*Tree[V, U], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: operation is required", aggtree.ErrInvalidConfig)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", aggtree.ErrInvalidConfig, n)
	}
	val := make([]V, n+1)
	id := op.Identity()
	for i := range val {
		val[i] = id
	}
	tracer().Debugf("fenwick: new tree with %d positions", n)
	return &Tree[V, U]{op: op, val: val, n: n}, nil
}

// Len returns the number of positions.
func (t *Tree[V, U]) Len() int {
	return t.n
}

// Modify applies update u at position i, 1 ≤ i ≤ Len().
func (t *Tree[V, U]) Modify(i int, u U) error {
	if err := aggtree.CheckIndex(i, 1, t.n); err != nil {
		tracer().Errorf("fenwick: modify: %v", err)
		return err
	}
	for i <= t.n {
		t.val[i] = t.op.Apply(t.val[i], u)
		i = (i | (i - 1)) + 1 // add lowest set bit
	}
	return nil
}

// Query returns the aggregate of positions 1…count, 0 ≤ count ≤ Len().
// Query(0) is the identity.
func (t *Tree[V, U]) Query(count int) (V, error) {
	if err := aggtree.CheckIndex(count, 0, t.n); err != nil {
		tracer().Errorf("fenwick: query: %v", err)
		var zero V
		return zero, err
	}
	result := t.op.Identity()
	for count > 0 {
		// nodes are visited right to left, each one prepended
		result = t.op.Combine(t.val[count], result)
		count &= count - 1
	}
	return result, nil
}

// Search returns the largest count for which pred(Query(count)) is true.
//
// pred has to be monotone over prefixes: true for Query(0) and, once false
// for some prefix, false for every longer one. Search is the Fenwick
// counterpart of a lower-bound search and runs in O(log n). For weighted
// selection with non-negative weights, position Search(s < target)+1 is the
// first one where the running sum reaches target.
func (t *Tree[V, U]) Search(pred func(V) bool) int {
	if pred == nil {
		return 0
	}
	step := 1
	for step<<1 <= t.n {
		step <<= 1
	}
	pos, acc := 0, t.op.Identity()
	for ; step > 0; step >>= 1 {
		next := pos + step
		if next > t.n {
			continue
		}
		// val[next] covers (pos, next], as pos is a multiple of 2*step
		cand := t.op.Combine(acc, t.val[next])
		if pred(cand) {
			pos, acc = next, cand
		}
	}
	return pos
}
