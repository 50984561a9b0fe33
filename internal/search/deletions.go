// Package search enumerates subsequence deletions over symbol strings.
//
// Deletions(H, N) returns every distinct string obtained by removing one
// occurrence of N as a subsequence of H. Reduce chains that operation
// left-to-right across a list of messages.
//
// The number of occurrences grows combinatorially with message length and
// with repetition in the alphabet, so result sets can become very large.
// Nothing here truncates them; callers that need a bound should impose a
// deadline on the surrounding work instead.
package search

import "strings"

// Deletions returns the set of distinct strings obtainable by deleting one
// subsequence occurrence of needle from haystack.
//
// An occurrence is a strictly increasing list of haystack positions whose
// characters spell needle. The empty string is never part of the result,
// so Deletions(h, h) is empty.
func Deletions(haystack, needle string) Set {
	d := &deletion{
		haystack: haystack,
		needle:   needle,
		cuts:     make([]int, 0, len(needle)),
		results:  make(Set),
	}
	d.scan(0, 0)
	return d.results
}

// deletion holds the state of a single Deletions call. It is never shared
// between calls or goroutines.
type deletion struct {
	haystack string
	needle   string

	// cuts are the haystack positions matched so far, in increasing order.
	cuts    []int
	results Set
}

// scan explores every occurrence of needle[npos:] in haystack[hpos:].
func (d *deletion) scan(hpos, npos int) {
	restHaystack := len(d.haystack) - hpos
	restNeedle := len(d.needle) - npos

	if restNeedle == 0 {
		d.emit(len(d.haystack))
		return
	}

	// No room to skip anything: the suffixes must match exactly and the
	// whole remaining haystack is consumed.
	if restNeedle >= restHaystack {
		if d.haystack[hpos:] == d.needle[npos:] {
			d.emit(hpos)
		}
		return
	}

	c := d.needle[npos]
	for i := hpos; len(d.haystack)-(i+1) >= restNeedle-1; i++ {
		if d.haystack[i] != c {
			continue
		}
		d.cuts = append(d.cuts, i)
		d.scan(i+1, npos+1)
		d.cuts = d.cuts[:len(d.cuts)-1]
	}
}

// emit materializes haystack[:end] without the cut positions.
func (d *deletion) emit(end int) {
	var b strings.Builder
	b.Grow(len(d.haystack) - len(d.needle))

	prev := 0
	for _, cut := range d.cuts {
		b.WriteString(d.haystack[prev:cut])
		prev = cut + 1
	}
	if end > prev {
		b.WriteString(d.haystack[prev:end])
	}

	if b.Len() == 0 {
		return
	}
	d.results.Add(b.String())
}
