package graph

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/aggtree"
)

// Graph is a read-only view of a directed graph with edge data of type T.
//
// Neighbors of a node outside of [0, NodeCount()) is an empty sequence.
type Graph[T any] interface {
	NodeCount() int
	EdgeCount() int
	Neighbors(node int) iter.Seq2[int, T]
}

func checkEdge(from, to, n int) error {
	if err := aggtree.CheckIndex(from, 0, n-1); err != nil {
		tracer().Errorf("graph: connect: source %v", err)
		return fmt.Errorf("source node: %w", err)
	}
	if err := aggtree.CheckIndex(to, 0, n-1); err != nil {
		tracer().Errorf("graph: connect: target %v", err)
		return fmt.Errorf("target node: %w", err)
	}
	return nil
}

// --- Adjacency -------------------------------------------------------------

type edge[T any] struct {
	to   int
	data T
}

// Adjacency is a graph stored as one edge list per node.
type Adjacency[T any] struct {
	list  [][]edge[T]
	edges int
}

var _ Graph[struct{}] = (*Adjacency[struct{}])(nil)

// NewAdjacency creates a graph with n nodes and no edges.
func NewAdjacency[T any](n int) *Adjacency[T] {
	return &Adjacency[T]{list: make([][]edge[T], max(n, 0))}
}

// Connect adds an edge from → to, carrying data. Self-loops and parallel
// edges are allowed.
func (g *Adjacency[T]) Connect(from, to int, data T) error {
	if err := checkEdge(from, to, len(g.list)); err != nil {
		return err
	}
	g.list[from] = append(g.list[from], edge[T]{to: to, data: data})
	g.edges++
	return nil
}

// Neighbors yields the targets and data of the edges leaving node, in the
// order they have been connected.
func (g *Adjacency[T]) Neighbors(node int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if node < 0 || node >= len(g.list) {
			return
		}
		for _, e := range g.list[node] {
			if !yield(e.to, e.data) {
				return
			}
		}
	}
}

// NodeCount returns the number of nodes.
func (g *Adjacency[T]) NodeCount() int {
	return len(g.list)
}

// EdgeCount returns the number of edges.
func (g *Adjacency[T]) EdgeCount() int {
	return g.edges
}

// --- Linked ----------------------------------------------------------------

const none = -1

type link[T any] struct {
	prev int // previous edge leaving the same node, or none
	to   int
	data T
}

// Linked is a graph stored as a single edge slice, where every edge links to
// the edge previously added for the same source node.
type Linked[T any] struct {
	head  []int // latest edge per node, or none
	edges []link[T]
}

var _ Graph[struct{}] = (*Linked[struct{}])(nil)

// NewLinked creates a graph with n nodes and capacity for e edges.
func NewLinked[T any](n, e int) *Linked[T] {
	head := make([]int, max(n, 0))
	for i := range head {
		head[i] = none
	}
	return &Linked[T]{head: head, edges: make([]link[T], 0, max(e, 0))}
}

// Connect adds an edge from → to, carrying data. Self-loops and parallel
// edges are allowed.
func (g *Linked[T]) Connect(from, to int, data T) error {
	if err := checkEdge(from, to, len(g.head)); err != nil {
		return err
	}
	g.edges = append(g.edges, link[T]{prev: g.head[from], to: to, data: data})
	g.head[from] = len(g.edges) - 1
	return nil
}

// Neighbors yields the targets and data of the edges leaving node, newest
// first.
func (g *Linked[T]) Neighbors(node int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if node < 0 || node >= len(g.head) {
			return
		}
		for e := g.head[node]; e != none; e = g.edges[e].prev {
			if !yield(g.edges[e].to, g.edges[e].data) {
				return
			}
		}
	}
}

// NodeCount returns the number of nodes.
func (g *Linked[T]) NodeCount() int {
	return len(g.head)
}

// EdgeCount returns the number of edges.
func (g *Linked[T]) EdgeCount() int {
	return len(g.edges)
}
