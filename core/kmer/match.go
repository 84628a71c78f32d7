// core/kmer/match.go
package kmer

import (
	"strings"

	"kmotif/core/neighbor"
)

// windows returns how many length-w windows fit in a text of length n.
func windows(n, w int) int {
	if w <= 0 || n < w {
		return 0
	}
	return n - w + 1
}

// FindMatches reports every offset where text holds a member of the
// d-neighborhood of pattern, in ascending order.
func FindMatches(pattern, text string, d int, a neighbor.Alphabet) ([]int, error) {
	hood, err := neighbor.Neighborhood(pattern, d, a)
	if err != nil {
		return nil, err
	}
	k := len(pattern)
	nw := windows(len(text), k)
	if nw == 0 {
		return nil, nil
	}
	out := make([]int, 0, 8)
	for i := 0; i < nw; i++ {
		if hood.Contains(text[i : i+k]) {
			out = append(out, i)
		}
	}
	return out, nil
}

// FindExact reports every (possibly overlapping) exact occurrence of pattern.
func FindExact(pattern, text string) []int {
	pl := len(pattern)
	if pl == 0 || len(text) < pl {
		return nil
	}
	out := make([]int, 0, 8)
	for i := 0; ; {
		j := strings.Index(text[i:], pattern)
		if j < 0 {
			break
		}
		pos := i + j
		out = append(out, pos)
		i = pos + 1
		if i > len(text)-pl {
			break
		}
	}
	return out
}

// Composition lists every k-mer window of text, sorted, duplicates kept.
func Composition(text string, k int) []string {
	nw := windows(len(text), k)
	out := make([]string, nw)
	for i := 0; i < nw; i++ {
		out[i] = text[i : i+k]
	}
	sortStrings(out)
	return out
}
