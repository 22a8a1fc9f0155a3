/*
Package strmatch implements linear-time string matching primitives: the
Z-function, the prefix function and a Knuth-Morris-Pratt matcher.

All of them are generic over the element type, so they work on bytes, runes
or any other comparable symbols. For Unicode text, ZGraphemes and
IndexGraphemes operate on user-perceived characters (grapheme clusters), as
segmented by package github.com/npillmayer/uax/grapheme. A pattern "e" will
then not match the first part of an "é" written as e + U+0301.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package strmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}
