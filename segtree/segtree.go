package segtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/aggtree"
)

// Tree is a segment tree over n positions 0…n-1.
type Tree[V, U any] struct {
	op  aggtree.Operation[V, U]
	val []V // flat tree, leaves at [n, 2n)
	n   int
}

// New creates a tree for n positions. Leaves are initialized from values,
// which is consumed left-to-right and may be nil. If values yields fewer than
// n elements, the remaining leaves are set to op.Identity(); surplus elements
// are ignored.
func New[V, U any](op aggtree.Operation[V, U], n int, values iter.Seq[V]) (*Tree[V, U], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: operation is required", aggtree.ErrInvalidConfig)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", aggtree.ErrInvalidConfig, n)
	}
	t := &Tree[V, U]{op: op, val: make([]V, 2*n), n: n}
	id := op.Identity()
	for i := range t.val {
		t.val[i] = id
	}
	leaf := n
	if values != nil {
		for v := range values {
			if leaf == 2*n {
				break
			}
			t.val[leaf] = v
			leaf++
		}
	}
	for i := n - 1; i > 0; i-- {
		t.val[i] = op.Combine(t.val[i<<1], t.val[i<<1|1])
	}
	tracer().Debugf("segtree: new tree with %d positions, %d initialized", n, leaf-n)
	return t, nil
}

// FromSlice creates a tree with len(values) positions, initialized to values.
func FromSlice[V, U any](op aggtree.Operation[V, U], values []V) (*Tree[V, U], error) {
	return New(op, len(values), slices.Values(values))
}

// Len returns the number of positions.
func (t *Tree[V, U]) Len() int {
	return t.n
}

// Modify applies update u to position i, 0 ≤ i < Len().
func (t *Tree[V, U]) Modify(i int, u U) error {
	if err := aggtree.CheckIndex(i, 0, t.n-1); err != nil {
		tracer().Errorf("segtree: modify: %v", err)
		return err
	}
	i += t.n
	t.val[i] = t.op.Apply(t.val[i], u)
	for i > 1 {
		i >>= 1
		t.val[i] = t.op.Combine(t.val[i<<1], t.val[i<<1|1])
	}
	return nil
}

// Query returns the aggregate of the half-open range [l, r),
// 0 ≤ l ≤ r ≤ Len(). An empty range yields the identity.
func (t *Tree[V, U]) Query(l, r int) (V, error) {
	if err := aggtree.CheckRange(l, r, t.n); err != nil {
		tracer().Errorf("segtree: query: %v", err)
		var zero V
		return zero, err
	}
	left, right := t.op.Identity(), t.op.Identity()
	for l, r = l+t.n, r+t.n; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			left = t.op.Combine(left, t.val[l])
			l++
		}
		if r&1 == 1 {
			r--
			right = t.op.Combine(t.val[r], right)
		}
	}
	return t.op.Combine(left, right), nil
}

// At returns the value at position i.
func (t *Tree[V, U]) At(i int) (V, error) {
	if err := aggtree.CheckIndex(i, 0, t.n-1); err != nil {
		var zero V
		return zero, err
	}
	return t.val[t.n+i], nil
}

// Values returns a copy of all positions' values.
func (t *Tree[V, U]) Values() []V {
	return slices.Clone(t.val[t.n:])
}

// Check validates that every internal node equals the combination of its
// children. eq decides equality of values.
//
// Check is meant for tests and debugging; it runs in O(n).
func (t *Tree[V, U]) Check(eq func(a, b V) bool) error {
	if eq == nil {
		return fmt.Errorf("%w: equality is required", aggtree.ErrIllegalArguments)
	}
	assert(len(t.val) == 2*t.n, "segtree: storage does not match size")
	for i := t.n - 1; i > 0; i-- {
		if !eq(t.val[i], t.op.Combine(t.val[i<<1], t.val[i<<1|1])) {
			return fmt.Errorf("%w: node %d differs from its children", aggtree.ErrInconsistentTree, i)
		}
	}
	return nil
}

// Snapshot copies the tree layout into a printable form, see package treeprint.
func (t *Tree[V, U]) Snapshot(format func(V) string) aggtree.Snapshot {
	if format == nil {
		format = func(v V) string { return fmt.Sprint(v) }
	}
	snap := aggtree.Snapshot{
		Leaves:  t.n,
		Labels:  make([]string, len(t.val)),
		Pending: make([]string, len(t.val)),
	}
	for i := 1; i < len(t.val); i++ {
		snap.Labels[i] = format(t.val[i])
	}
	return snap
}
