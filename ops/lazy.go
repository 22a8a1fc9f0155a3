package ops

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// RangeAddSum aggregates sums, range updates add to every value.
type RangeAddSum[T Number] struct{}

func (RangeAddSum[T]) Identity() T               { return 0 }
func (RangeAddSum[T]) Combine(left, right T) T   { return left + right }
func (RangeAddSum[T]) Apply(v, u T, n int) T     { return v + u*T(n) }
func (RangeAddSum[T]) Compose(pending, next T) T { return pending + next }
func (RangeAddSum[T]) IdentityUpdate() T         { return 0 }
func (RangeAddSum[T]) IsIdentityUpdate(u T) bool { return u == 0 }

// RangeAddMin aggregates minima, range updates add to every value. Inf is the
// identity; it is never shifted by an update.
type RangeAddMin[T Number] struct {
	Inf T
}

func (m RangeAddMin[T]) Identity() T           { return m.Inf }
func (RangeAddMin[T]) Combine(left, right T) T { return min(left, right) }

func (m RangeAddMin[T]) Apply(v, u T, _ int) T {
	if v == m.Inf {
		return v
	}
	return v + u
}

func (RangeAddMin[T]) Compose(pending, next T) T { return pending + next }
func (RangeAddMin[T]) IdentityUpdate() T         { return 0 }
func (RangeAddMin[T]) IsIdentityUpdate(u T) bool { return u == 0 }

// Assign is an update setting every value of a range to V. The zero Assign
// leaves values unchanged.
type Assign[T Number] struct {
	Set bool
	V   T
}

// AssignTo returns an update setting values to v.
func AssignTo[T Number](v T) Assign[T] {
	return Assign[T]{Set: true, V: v}
}

// RangeAssignSum aggregates sums, range updates assign to every value.
// Assignments do not commute: a later one overrides an earlier one.
type RangeAssignSum[T Number] struct{}

func (RangeAssignSum[T]) Identity() T             { return 0 }
func (RangeAssignSum[T]) Combine(left, right T) T { return left + right }

func (RangeAssignSum[T]) Apply(v T, u Assign[T], n int) T {
	if !u.Set {
		return v
	}
	return u.V * T(n)
}

func (RangeAssignSum[T]) Compose(pending, next Assign[T]) Assign[T] {
	if next.Set {
		return next
	}
	return pending
}

func (RangeAssignSum[T]) IdentityUpdate() Assign[T]         { return Assign[T]{} }
func (RangeAssignSum[T]) IsIdentityUpdate(u Assign[T]) bool { return !u.Set }

// RangeAffineSum aggregates sums, range updates map every value x to
// Mul·x + Add. Updates do not commute.
type RangeAffineSum[T Number] struct{}

func (RangeAffineSum[T]) Identity() T             { return 0 }
func (RangeAffineSum[T]) Combine(left, right T) T { return left + right }

func (RangeAffineSum[T]) Apply(v T, u Affine[T], n int) T {
	return u.Mul*v + u.Add*T(n)
}

func (RangeAffineSum[T]) Compose(pending, next Affine[T]) Affine[T] {
	return pending.Then(next)
}

func (RangeAffineSum[T]) IdentityUpdate() Affine[T] { return IdentityMap[T]() }

func (RangeAffineSum[T]) IsIdentityUpdate(u Affine[T]) bool {
	return u.Mul == 1 && u.Add == 0
}
