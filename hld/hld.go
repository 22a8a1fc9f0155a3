package hld

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/aggtree"
	"github.com/npillmayer/aggtree/graph"
)

// Span is an inclusive range [From, To] of positions.
type Span struct {
	From, To int
}

// HalfOpen returns the span as a half-open range [l, r), as expected by
// the trees of module aggtree.
func (s Span) HalfOpen() (int, int) {
	return s.From, s.To + 1
}

// HeavyLight is the heavy-light decomposition of a tree.
//
// Nodes not reachable from the root have depth 0 and position, parent and
// head -1.
type HeavyLight struct {
	parent []int // parent of the root is the root
	depth  []int // depth of the root is 1
	heavy  []int // heavy child, or the node itself for leaves
	head   []int // topmost node of the chain
	pos    []int
}

// New decomposes the tree g rooted at root. Edges may be given in the
// parent-to-child direction only or in both directions. If g contains a cycle
// reachable from root, New returns an error.
func New[T any](root int, g graph.Graph[T]) (*HeavyLight, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is required", aggtree.ErrIllegalArguments)
	}
	n := g.NodeCount()
	if err := aggtree.CheckIndex(root, 0, n-1); err != nil {
		return nil, fmt.Errorf("hld: root: %w", err)
	}
	hl := &HeavyLight{
		parent: make([]int, n),
		depth:  make([]int, n),
		heavy:  make([]int, n),
		head:   make([]int, n),
		pos:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		hl.parent[i], hl.heavy[i], hl.head[i], hl.pos[i] = -1, i, -1, -1
	}
	if err := fillChains(hl, root, g); err != nil {
		tracer().Errorf("hld: %v", err)
		return nil, err
	}
	fillHeads(hl, root, g)
	return hl, nil
}

// fillChains computes parents, depths and heavy children by a post-order
// traversal.
func fillChains[T any](hl *HeavyLight, root int, g graph.Graph[T]) error {
	n := g.NodeCount()
	size := make([]int, n)     // subtree size, 0 until the node is expanded
	heaviest := make([]int, n) // size of the heavy child's subtree
	hl.depth[root], hl.parent[root] = 1, root
	stack := make([]int, 0, n)
	stack = append(stack, root)
	for len(stack) > 0 {
		now := stack[len(stack)-1]
		parent := hl.parent[now]
		if size[now] == 0 { // first visit: expand children
			size[now] = 1
			for next := range g.Neighbors(now) {
				if next == parent {
					continue
				}
				if hl.depth[next] != 0 {
					return fmt.Errorf("%w: not a tree, node %d reached twice", aggtree.ErrIllegalArguments, next)
				}
				hl.depth[next] = hl.depth[now] + 1
				hl.parent[next] = now
				stack = append(stack, next)
			}
			continue
		}
		if now != parent {
			size[parent] += size[now]
			if heaviest[parent] < size[now] {
				heaviest[parent] = size[now]
				hl.heavy[parent] = now
			}
		}
		stack = stack[:len(stack)-1]
	}
	tracer().Debugf("hld: tree of %d nodes below root %d", size[root], root)
	return nil
}

// fillHeads assigns positions in pre-order, heavy child first.
func fillHeads[T any](hl *HeavyLight, root int, g graph.Graph[T]) {
	type visit struct{ node, head int }
	pos := 0
	stack := []visit{{root, root}}
	for len(stack) > 0 {
		now := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		hl.head[now.node] = now.head
		hl.pos[now.node] = pos
		pos++
		heavy, parent := hl.heavy[now.node], hl.parent[now.node]
		for next := range g.Neighbors(now.node) {
			if next != parent && next != heavy {
				stack = append(stack, visit{next, next}) // light child starts a chain
			}
		}
		if heavy != now.node {
			stack = append(stack, visit{heavy, now.head}) // popped next
		}
	}
}

// Len returns the number of nodes.
func (hl *HeavyLight) Len() int {
	return len(hl.pos)
}

// Pos returns the position of node u.
func (hl *HeavyLight) Pos(u int) int { return hl.pos[u] }

// Head returns the topmost node of the chain containing u.
func (hl *HeavyLight) Head(u int) int { return hl.head[u] }

// Parent returns the parent of u. The root is its own parent.
func (hl *HeavyLight) Parent(u int) int { return hl.parent[u] }

// Depth returns the depth of u, counting the root as 1.
func (hl *HeavyLight) Depth(u int) int { return hl.depth[u] }

func (hl *HeavyLight) checkNode(u int) error {
	if err := aggtree.CheckIndex(u, 0, len(hl.pos)-1); err != nil {
		return err
	}
	if hl.pos[u] < 0 {
		return fmt.Errorf("%w: node %d is not reachable from the root", aggtree.ErrIllegalArguments, u)
	}
	return nil
}

// LCA returns the lowest common ancestor of u and v.
func (hl *HeavyLight) LCA(u, v int) (int, error) {
	if err := hl.checkNode(u); err != nil {
		return -1, err
	}
	if err := hl.checkNode(v); err != nil {
		return -1, err
	}
	for hl.head[u] != hl.head[v] {
		if hl.depth[hl.head[u]] > hl.depth[hl.head[v]] {
			u = hl.parent[hl.head[u]]
		} else {
			v = hl.parent[hl.head[v]]
		}
	}
	if hl.depth[u] > hl.depth[v] {
		return v, nil
	}
	return u, nil
}

// Path returns the spans of positions covering the nodes of the path from u
// to v, both included. The spans start at the chain with the deepest head.
func (hl *HeavyLight) Path(u, v int) (iter.Seq[Span], error) {
	if err := hl.checkNode(u); err != nil {
		return nil, err
	}
	if err := hl.checkNode(v); err != nil {
		return nil, err
	}
	return func(yield func(Span) bool) {
		u, v := u, v
		for hl.head[u] != hl.head[v] {
			if hl.depth[hl.head[u]] > hl.depth[hl.head[v]] {
				u, v = v, u
			}
			if !yield(Span{hl.pos[hl.head[v]], hl.pos[v]}) {
				return
			}
			v = hl.parent[hl.head[v]]
		}
		if hl.depth[u] > hl.depth[v] {
			u, v = v, u
		}
		yield(Span{hl.pos[u], hl.pos[v]})
	}, nil
}
