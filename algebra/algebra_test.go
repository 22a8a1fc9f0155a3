package algebra

import (
	"strings"
	"testing"

	"github.com/npillmayer/aggtree/ops"
	"github.com/stretchr/testify/assert"
)

func TestModularPower(t *testing.T) {
	assert.Equal(t, uint64(844428231), Power[uint64](ModMul{Mod: 1_000_000_009}, 2, 63))
	assert.Equal(t, uint64(1), Power[uint64](ModMul{Mod: 1_000_000_009}, 12345, 0))
	assert.Equal(t, uint64(0), Power[uint64](ModMul{Mod: 1}, 7, 3))
}

func TestModMulDoesNotOverflow(t *testing.T) {
	const p = 18446744073709551557 // largest 64-bit prime
	m := ModMul{Mod: p}
	// (p-1)² ≡ 1 (mod p)
	assert.Equal(t, uint64(1), m.Combine(p-1, p-1))
	// Fermat: a^(p-1) ≡ 1 (mod p)
	assert.Equal(t, uint64(1), Power[uint64](m, 3, p-1))
}

type concat struct{}

func (concat) Identity() string                  { return "" }
func (concat) Combine(left, right string) string { return left + right }

func TestPowerOverOtherMonoids(t *testing.T) {
	assert.Equal(t, strings.Repeat("ab", 13), Power[string](concat{}, "ab", 13))
	assert.Equal(t, 5*1000, Power[int](ops.SumAdd[int]{}, 5, 1000))
	// x ↦ 2x+1, applied ten times to 0, is 2¹⁰-1
	f := Power[ops.Affine[int]](ops.AffineChain[int]{}, ops.Affine[int]{Mul: 2, Add: 1}, 10)
	assert.Equal(t, 1023, f.Eval(0))
}
