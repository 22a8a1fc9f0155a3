package lazyseg

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/npillmayer/aggtree"
)

// Tree is a segment tree with range updates over n positions 0…n-1.
//
// Queries push pending updates down the paths to the range boundaries, so
// both Query and Modify mutate the tree.
type Tree[V, U any] struct {
	op   aggtree.LazyOperation[V, U]
	val  []V // flat tree, leaves at [n, 2n)
	lazy []U // pending update per internal node, index 0 unused
	n    int
	h    int // bit length of n
}

// New creates a tree for n positions. Leaves are initialized from values,
// which is consumed left-to-right and may be nil. Missing elements are set to
// op.Identity(), surplus elements are ignored.
func New[V, U any](op aggtree.LazyOperation[V, U], n int, values iter.Seq[V]) (*Tree[V, U], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: operation is required", aggtree.ErrInvalidConfig)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", aggtree.ErrInvalidConfig, n)
	}
	t := &Tree[V, U]{
		op:   op,
		val:  make([]V, 2*n),
		lazy: make([]U, n),
		n:    n,
		h:    bits.Len(uint(n)),
	}
	id, noop := op.Identity(), op.IdentityUpdate()
	for i := range t.val {
		t.val[i] = id
	}
	for i := range t.lazy {
		t.lazy[i] = noop
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
	tracer().Debugf("lazyseg: new tree with %d positions, height %d", n, t.h)
	return t, nil
}

// FromSlice creates a tree with len(values) positions, initialized to values.
func FromSlice[V, U any](op aggtree.LazyOperation[V, U], values []V) (*Tree[V, U], error) {
	return New(op, len(values), slices.Values(values))
}

// Len returns the number of positions.
func (t *Tree[V, U]) Len() int {
	return t.n
}

// apply applies u to node i, which covers length positions.
func (t *Tree[V, U]) apply(i, length int, u U) {
	t.val[i] = t.op.Apply(t.val[i], u, length)
	if i < t.n {
		t.lazy[i] = t.op.Compose(t.lazy[i], u)
	}
}

// propagate pushes pending updates down the path from the root to node i.
func (t *Tree[V, U]) propagate(i int) {
	// Only nodes of canonical decompositions carry updates, and they cover
	// 2^(shift-1) leaves per child even for n not a power of two.
	for shift := t.h; shift > 0; shift-- {
		p := i >> shift
		if p == 0 || t.op.IsIdentityUpdate(t.lazy[p]) {
			continue
		}
		length := 1 << (shift - 1)
		t.apply(p<<1, length, t.lazy[p])
		t.apply(p<<1|1, length, t.lazy[p])
		t.lazy[p] = t.op.IdentityUpdate()
	}
}

// update re-combines all ancestors of node i, keeping their pending updates.
func (t *Tree[V, U]) update(i int) {
	for length := 2; i > 1; length <<= 1 {
		i >>= 1
		t.val[i] = t.op.Combine(t.val[i<<1], t.val[i<<1|1])
		if !t.op.IsIdentityUpdate(t.lazy[i]) {
			t.val[i] = t.op.Apply(t.val[i], t.lazy[i], length)
		}
	}
}

// Modify applies update u to every position of the half-open range [l, r),
// 0 ≤ l ≤ r ≤ Len(). An empty range leaves the tree untouched.
func (t *Tree[V, U]) Modify(l, r int, u U) error {
	if err := aggtree.CheckRange(l, r, t.n); err != nil {
		tracer().Errorf("lazyseg: modify: %v", err)
		return err
	}
	if l == r {
		return nil
	}
	l0, r0 := l+t.n, r-1+t.n
	t.propagate(l0)
	t.propagate(r0)
	length := 1
	for l, r = l+t.n, r+t.n; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			t.apply(l, length, u)
			l++
		}
		if r&1 == 1 {
			r--
			t.apply(r, length, u)
		}
		length <<= 1
	}
	t.update(l0)
	t.update(r0)
	return nil
}

// Query returns the aggregate of the half-open range [l, r),
// 0 ≤ l ≤ r ≤ Len(). An empty range yields the identity.
func (t *Tree[V, U]) Query(l, r int) (V, error) {
	if err := aggtree.CheckRange(l, r, t.n); err != nil {
		tracer().Errorf("lazyseg: query: %v", err)
		var zero V
		return zero, err
	}
	if l == r {
		return t.op.Identity(), nil
	}
	t.propagate(l + t.n)
	t.propagate(r - 1 + t.n)
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
	t.propagate(i + t.n)
	return t.val[i+t.n], nil
}

// Values returns a copy of all positions' values. Pending updates are pushed
// down to the leaves first.
func (t *Tree[V, U]) Values() []V {
	for i := t.n; i < 2*t.n; i++ {
		t.propagate(i)
	}
	return slices.Clone(t.val[t.n:])
}

// lengths returns the number of positions covered by each node.
func (t *Tree[V, U]) lengths() []int {
	ln := make([]int, 2*t.n)
	for i := t.n; i < 2*t.n; i++ {
		ln[i] = 1
	}
	for i := t.n - 1; i > 0; i-- {
		ln[i] = ln[i<<1] + ln[i<<1|1]
	}
	return ln
}

// Check validates that every internal node equals the combination of its
// children, with a pending update of the node applied on top. eq decides
// equality of values.
//
// Check is meant for tests and debugging; it runs in O(n) and does not
// modify the tree.
func (t *Tree[V, U]) Check(eq func(a, b V) bool) error {
	if eq == nil {
		return fmt.Errorf("%w: equality is required", aggtree.ErrIllegalArguments)
	}
	assert(len(t.val) == 2*t.n && len(t.lazy) == t.n, "lazyseg: storage does not match size")
	ln := t.lengths()
	for i := t.n - 1; i > 0; i-- {
		v := t.op.Combine(t.val[i<<1], t.val[i<<1|1])
		if !t.op.IsIdentityUpdate(t.lazy[i]) {
			v = t.op.Apply(v, t.lazy[i], ln[i])
		}
		if !eq(t.val[i], v) {
			return fmt.Errorf("%w: node %d differs from its children", aggtree.ErrInconsistentTree, i)
		}
	}
	return nil
}

// Snapshot copies the tree layout into a printable form, see package
// treeprint. Pending updates are formatted with fmt.Sprint.
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
		if i < t.n && !t.op.IsIdentityUpdate(t.lazy[i]) {
			snap.Pending[i] = fmt.Sprint(t.lazy[i])
		}
	}
	return snap
}
