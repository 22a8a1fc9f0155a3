package aggtree

import "fmt"

// CheckIndex returns an error wrapping ErrIndexOutOfRange if i is not in
// [lo, hi].
func CheckIndex(i, lo, hi int) error {
	if i < lo || i > hi {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrIndexOutOfRange, i, lo, hi)
	}
	return nil
}

// CheckRange validates a half-open range [l, r) for a sequence of length n.
func CheckRange(l, r, n int) error {
	if l > r {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, l, r)
	}
	if l < 0 || r > n {
		return fmt.Errorf("%w: [%d, %d) exceeds [0, %d)", ErrIndexOutOfRange, l, r, n)
	}
	return nil
}

// Snapshot is a printable copy of a flat tree layout, as used by segtree and
// lazyseg. Node i has children 2i and 2i+1; leaves are [Leaves, 2*Leaves).
// Index 0 is unused.
type Snapshot struct {
	Leaves  int
	Labels  []string // label of node i, len(Labels) == 2*Leaves
	Pending []string // pending update of internal node i, "" if none
}

// IsLeaf reports whether node i is a leaf.
func (s Snapshot) IsLeaf(i int) bool {
	return i >= s.Leaves
}

// Depth returns the number of levels of the flat tree.
func (s Snapshot) Depth() int {
	d := 0
	for k := 1; k < 2*s.Leaves; k <<= 1 {
		d++
	}
	return d
}
