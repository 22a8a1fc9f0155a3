/*
Package ops provides ready-made operation contracts for the trees of module
aggtree.

Point operations (for fenwick and segtree) implement aggtree.Operation:

	SumAdd[T]      sums, point update adds
	SumSet[T]      sums, point update assigns
	MinSet[T]      minimum, point update assigns
	MaxSet[T]      maximum, point update assigns
	DecimalSum     sums of decimal.Decimal, point update adds
	AffineChain[T] composition of affine maps, point update assigns

Lazy operations (for lazyseg) implement aggtree.LazyOperation:

	RangeAddSum[T]    sums, range update adds
	RangeAddMin[T]    minimum, range update adds
	RangeAssignSum[T] sums, range update assigns
	RangeAffineSum[T] sums, range update x ↦ Mul·x + Add

All types are stateless or carry a sentinel (Inf, NegInf) only; they are
intended to be passed by value.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ops

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types the presets operate on.
type Number interface {
	constraints.Integer | constraints.Float
}
