package strmatch

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

var setupClasses sync.Once

// Graphemes splits s into grapheme clusters.
func Graphemes(s string) []string {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	clusters := make([]string, gstr.Len())
	for i := range clusters {
		clusters[i] = gstr.Nth(i)
	}
	return clusters
}

// ZGraphemes is Z over the grapheme clusters of s.
func ZGraphemes(s string) []int {
	return Z(Graphemes(s))
}

// IndexGraphemes returns the cluster positions of all occurrences of pattern
// in text. Both are segmented into grapheme clusters first, so matches never
// split a user-perceived character.
func IndexGraphemes(text, pattern string) []int {
	return NewMatcher(Graphemes(pattern)).FindAll(Graphemes(text))
}
