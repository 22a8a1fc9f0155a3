package disjoint

import (
	"errors"
	"testing"

	"github.com/npillmayer/aggtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	f := New(5)
	steps := []struct {
		u, v   int
		joined bool
		parent []int
		rank   []int
	}{
		{1, 3, false, []int{0, 1, 2, 1, 4}, []int{1, 2, 1, 1, 1}},
		{2, 4, false, []int{0, 1, 2, 1, 2}, []int{1, 2, 2, 1, 1}},
		{0, 3, false, []int{1, 1, 2, 1, 2}, []int{1, 2, 2, 1, 1}},
		{0, 1, true, []int{1, 1, 2, 1, 2}, []int{1, 2, 2, 1, 1}},
		{1, 4, false, []int{1, 1, 1, 1, 2}, []int{1, 3, 2, 1, 1}},
	}
	for _, s := range steps {
		joined, err := f.Join(s.u, s.v)
		require.NoError(t, err)
		assert.Equal(t, s.joined, joined, "Join(%d,%d)", s.u, s.v)
		assert.Equal(t, s.parent, f.parent, "parents after Join(%d,%d)", s.u, s.v)
		assert.Equal(t, s.rank, f.rank, "ranks after Join(%d,%d)", s.u, s.v)
	}
}

func TestFind(t *testing.T) {
	f := New(5)
	find := func(i int) int {
		r, err := f.Find(i)
		require.NoError(t, err)
		return r
	}
	assert.Equal(t, 4, find(4))
	f.Join(0, 1)
	assert.Equal(t, 0, find(1))
	f.Join(3, 2)
	assert.Equal(t, 3, find(2))
	f.Join(0, 2)
	assert.Equal(t, 0, find(3))
}

func TestPathHalving(t *testing.T) {
	f := New(4)
	// a chain 3 → 2 → 1 → 0, as Join would never build it
	f.parent = []int{0, 0, 1, 2}
	r, err := f.Find(3)
	require.NoError(t, err)
	assert.Equal(t, 0, r)
	assert.Equal(t, []int{0, 0, 1, 1}, f.parent)
}

func TestSame(t *testing.T) {
	f := New(6)
	f.Join(0, 1)
	f.Join(2, 3)
	f.Join(1, 3)
	same, err := f.Same(0, 2)
	require.NoError(t, err)
	assert.True(t, same)
	same, _ = f.Same(0, 5)
	assert.False(t, same)
	assert.Equal(t, 6, f.Len())
}

func TestOutOfRange(t *testing.T) {
	f := New(3)
	_, err := f.Find(3)
	assert.True(t, errors.Is(err, aggtree.ErrIndexOutOfRange))
	_, err = f.Join(0, -1)
	assert.True(t, errors.Is(err, aggtree.ErrIndexOutOfRange))
	_, err = f.Same(7, 0)
	assert.True(t, errors.Is(err, aggtree.ErrIndexOutOfRange))
	assert.Equal(t, 0, New(-2).Len())
}
