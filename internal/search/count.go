package search

import "math"

// CountOccurrences returns how many distinct position lists spell needle
// as a subsequence of haystack. It bounds len(Deletions(haystack, needle))
// from above. The count saturates at math.MaxUint64.
func CountOccurrences(haystack, needle string) uint64 {
	// ways[j] = occurrences of needle[:j] in the haystack prefix seen so far.
	ways := make([]uint64, len(needle)+1)
	ways[0] = 1

	for i := 0; i < len(haystack); i++ {
		for j := len(needle); j > 0; j-- {
			if haystack[i] == needle[j-1] {
				ways[j] = saturatingAdd(ways[j], ways[j-1])
			}
		}
	}
	return ways[len(needle)]
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
