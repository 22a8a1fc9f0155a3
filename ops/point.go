package ops

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// SumAdd aggregates sums, updates add to a value.
type SumAdd[T Number] struct{}

func (SumAdd[T]) Identity() T             { return 0 }
func (SumAdd[T]) Combine(left, right T) T { return left + right }
func (SumAdd[T]) Apply(v, u T) T          { return v + u }

// SumSet aggregates sums, updates replace a value.
type SumSet[T Number] struct{}

func (SumSet[T]) Identity() T             { return 0 }
func (SumSet[T]) Combine(left, right T) T { return left + right }
func (SumSet[T]) Apply(_, u T) T          { return u }

// MinSet aggregates minima, updates replace a value. Inf is the identity and
// has to be at least as large as every value occurring.
type MinSet[T constraints.Ordered] struct {
	Inf T
}

func (m MinSet[T]) Identity() T           { return m.Inf }
func (MinSet[T]) Combine(left, right T) T { return min(left, right) }
func (MinSet[T]) Apply(_, u T) T          { return u }

// MaxSet aggregates maxima, updates replace a value. NegInf is the identity.
type MaxSet[T constraints.Ordered] struct {
	NegInf T
}

func (m MaxSet[T]) Identity() T           { return m.NegInf }
func (MaxSet[T]) Combine(left, right T) T { return max(left, right) }
func (MaxSet[T]) Apply(_, u T) T          { return u }

// DecimalSum aggregates sums of arbitrary-precision decimals, updates add to
// a value. Use it for monetary amounts, where float rounding is unacceptable.
type DecimalSum struct{}

func (DecimalSum) Identity() decimal.Decimal { return decimal.Zero }

func (DecimalSum) Combine(left, right decimal.Decimal) decimal.Decimal {
	return left.Add(right)
}

func (DecimalSum) Apply(v, u decimal.Decimal) decimal.Decimal {
	return v.Add(u)
}

// Affine is the map x ↦ Mul·x + Add.
type Affine[T Number] struct {
	Mul, Add T
}

// IdentityMap returns x ↦ x.
func IdentityMap[T Number]() Affine[T] {
	return Affine[T]{Mul: 1}
}

// Eval applies the map to x.
func (a Affine[T]) Eval(x T) T {
	return a.Mul*x + a.Add
}

// Then returns the map “first a, then b”.
func (a Affine[T]) Then(b Affine[T]) Affine[T] {
	return Affine[T]{Mul: a.Mul * b.Mul, Add: a.Add*b.Mul + b.Add}
}

// AffineChain aggregates sequences of affine maps into their composition,
// leftmost map first. Combine is not commutative. Updates replace a map.
type AffineChain[T Number] struct{}

func (AffineChain[T]) Identity() Affine[T]                     { return IdentityMap[T]() }
func (AffineChain[T]) Combine(left, right Affine[T]) Affine[T] { return left.Then(right) }
func (AffineChain[T]) Apply(_, u Affine[T]) Affine[T]          { return u }
