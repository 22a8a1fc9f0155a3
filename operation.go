package aggtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Monoid defines how values are aggregated.
//
// For values s, t, u, Combine has to be associative:
//
//	Combine(Combine(s, t), u) == Combine(s, Combine(t, u))
//
// and Identity has to be the neutral element:
//
//	Combine(Identity(), s) == s == Combine(s, Identity())
//
// Combine need not be commutative. Trees will always pass the aggregate of
// the left sub-range as the first argument.
type Monoid[V any] interface {
	Identity() V
	Combine(left, right V) V
}

// Operation is the contract for trees with point updates (fenwick, segtree).
//
// Apply returns v modified by update u.
type Operation[V, U any] interface {
	Monoid[V]
	Apply(v V, u U) V
}

// LazyOperation is the contract for trees with range updates (lazyseg).
//
// Apply returns v modified by update u, where v is the aggregate of n
// elements. n allows updates like “add 3 to every element” to be reflected in
// aggregates like sums.
//
// Compose merges update next into an update pending, which has not yet been
// pushed down the tree. The result has to mean “first pending, then next”:
//
//	Apply(Apply(v, pending, n), next, n) == Apply(v, Compose(pending, next), n)
//
// Lazy propagation depends on this law. For non-commuting updates (assignment,
// affine maps), getting the order wrong silently corrupts results.
//
// IsIdentityUpdate reports whether u leaves every value unchanged; trees use
// it to skip propagation.
type LazyOperation[V, U any] interface {
	Monoid[V]
	Apply(v V, u U, n int) V
	Compose(pending, next U) U
	IdentityUpdate() U
	IsIdentityUpdate(u U) bool
}

// Fold combines values left-to-right, starting with the identity.
func Fold[V any](m Monoid[V], values ...V) V {
	acc := m.Identity()
	for _, v := range values {
		acc = m.Combine(acc, v)
	}
	return acc
}
