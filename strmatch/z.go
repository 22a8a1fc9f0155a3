package strmatch

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Z returns the Z-array of s: z[i] is the length of the longest common prefix
// of s and s[i:]. z[0] is 0 by convention; for empty s the result is empty.
func Z[T comparable](s []T) []int {
	z := make([]int, len(s))
	l, r := 0, 0 // s[l:r] is the rightmost match with a prefix found so far
	for i := 1; i < len(s); i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < len(s) && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}

// PrefixFunction returns pi for s: pi[i] is the length of the longest proper
// prefix of s[:i+1] which is also a suffix of it.
func PrefixFunction[T comparable](s []T) []int {
	pi := make([]int, len(s))
	for i := 1; i < len(s); i++ {
		k := pi[i-1]
		for k > 0 && s[i] != s[k] {
			k = pi[k-1]
		}
		if s[i] == s[k] {
			k++
		}
		pi[i] = k
	}
	return pi
}
