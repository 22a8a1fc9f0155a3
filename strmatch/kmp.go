package strmatch

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Matcher finds occurrences of a pattern in a stream of symbols, one symbol at
// a time. Its state is the length of the longest prefix of the pattern which
// is a suffix of the input seen so far.
type Matcher[T comparable] struct {
	pattern []T
	pi      []int
	state   int
}

// NewMatcher creates a matcher for pattern. The pattern is copied.
func NewMatcher[T comparable](pattern []T) *Matcher[T] {
	p := make([]T, len(pattern))
	copy(p, pattern)
	return &Matcher[T]{pattern: p, pi: PrefixFunction(p)}
}

// Reset forgets all input seen so far.
func (m *Matcher[T]) Reset() {
	m.state = 0
}

// Step consumes c and reports whether an occurrence of the pattern ends at c.
// An empty pattern never matches.
func (m *Matcher[T]) Step(c T) bool {
	if len(m.pattern) == 0 {
		return false
	}
	if m.state == len(m.pattern) {
		m.state = m.pi[m.state-1]
	}
	for m.state > 0 && c != m.pattern[m.state] {
		m.state = m.pi[m.state-1]
	}
	if c == m.pattern[m.state] {
		m.state++
	}
	return m.state == len(m.pattern)
}

// FindAll returns the start positions of all, possibly overlapping,
// occurrences of the pattern in text. It resets the matcher first.
func (m *Matcher[T]) FindAll(text []T) []int {
	m.Reset()
	var starts []int
	for i, c := range text {
		if m.Step(c) {
			starts = append(starts, i+1-len(m.pattern))
		}
	}
	tracer().Debugf("strmatch: %d occurrences in %d symbols", len(starts), len(text))
	return starts
}
