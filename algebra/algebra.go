/*
Package algebra holds helpers for computing in a monoid, as used by the
trees of module aggtree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package algebra

import (
	"math/bits"

	"github.com/npillmayer/aggtree"
)

// Power returns a combined with itself n times, i.e. a·a·…·a, by repeated
// squaring. Power(m, a, 0) is m.Identity().
//
// Only associativity is required of m; a commutes with itself.
func Power[V any](m aggtree.Monoid[V], a V, n uint64) V {
	acc, mult := m.Identity(), a
	for n > 0 {
		if n&1 == 1 {
			acc = m.Combine(acc, mult)
		}
		n >>= 1
		if n > 0 {
			mult = m.Combine(mult, mult)
		}
	}
	return acc
}

// ModMul is the multiplicative monoid of integers modulo Mod, Mod > 0.
// Products are computed in 128 bits and never overflow.
type ModMul struct {
	Mod uint64
}

// Identity is 1 (or 0 for Mod == 1).
func (m ModMul) Identity() uint64 {
	return 1 % m.Mod
}

// Combine returns left·right mod Mod.
func (m ModMul) Combine(left, right uint64) uint64 {
	hi, lo := bits.Mul64(left, right)
	return bits.Rem64(hi, lo, m.Mod)
}
