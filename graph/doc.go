/*
Package graph provides two containers for directed graphs with edge data,
sized for a fixed number of nodes 0…n-1.

Adjacency keeps one slice of outgoing edges per node and yields neighbors in
insertion order. Linked keeps all edges in a single slice, chained per node
(sometimes called “forward star”); it yields neighbors newest first and
allocates one slice for all edges.

Both satisfy interface Graph, which is all package hld needs. Undirected
graphs are modelled by connecting both directions.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package graph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}
