/*
Package aggtree offers array-backed range-aggregate trees for fixed-size sequences.

Aggregate Trees

Many questions about a sequence of values are questions about contiguous
ranges of it: what is the sum of positions 3 to 17, what is the minimum in the
second half, how many flags are set before position 40. Recomputing such an
aggregate for every query costs O(n). The trees in the sub-packages of aggtree
keep partial aggregates of sub-ranges, so that updates and queries both run in
O(log n).

All trees are generic over an operation contract. A caller describes the
algebra once, in a small type implementing Monoid, Operation or LazyOperation,
and every tree will use it without further traversal code:

	fenwick   – prefix aggregates, point updates (Operation)
	segtree   – range aggregates, point updates (Operation)
	lazyseg   – range aggregates, range updates (LazyOperation)

Package ops holds ready-made contracts for the frequent cases (sums, minima,
assignments, affine maps).

The trees are laid out in flat slices; nodes are addressed by index, with the
children of node i living at 2i and 2i+1. Combine-operations are not required
to be commutative: every tree folds partial aggregates in left-to-right order of
the underlying sequence.

Concurrency

None of the trees is safe for concurrent use. Every modification mutates the
backing slices in place, and the lazy segment tree mutates even on queries.
Clients sharing a tree between goroutines have to guard it with a lock.

Collaborators

Some helpers live alongside the trees, as they are frequently used
together with them: package graph (adjacency containers), package hld
(heavy-light decomposition, which maps tree paths onto index ranges suitable
for segtree and lazyseg), package disjoint (union-find), package algebra
(exponentiation in a monoid) and package strmatch (Z-function and KMP).
Package treeprint renders the internal layout of a tree for debugging.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package aggtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// AggError is an error type for the aggtree module.
type AggError string

func (e AggError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is flagged whenever a position lies outside of the
// sequence a tree has been created for.
const ErrIndexOutOfRange = AggError("index out of range")

// ErrInvalidRange is flagged for ranges [l, r) with l > r.
const ErrInvalidRange = AggError("invalid range")

// ErrInvalidConfig is flagged by constructors if the operation contract is
// missing or the size is negative.
const ErrInvalidConfig = AggError("invalid configuration")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = AggError("illegal arguments")

// ErrInconsistentTree is flagged by invariant checks if a node's value does
// not match the values of its children.
const ErrInconsistentTree = AggError("inconsistent tree")
