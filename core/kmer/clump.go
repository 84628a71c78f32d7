// core/kmer/clump.go
package kmer

import (
	"errors"
	"fmt"

	"bitbucket.org/creachadair/stringset"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Index maps each k-mer to its start offsets in scan (ascending) order.
type Index map[string][]int

// Locate slides a length-k window across text and records every offset.
func Locate(text string, k int) Index {
	ix := make(Index)
	nw := windows(len(text), k)
	for i := 0; i < nw; i++ {
		key := text[i : i+k]
		ix[key] = append(ix[key], i)
	}
	return ix
}

// Clumps returns the k-mers with t consecutive occurrences that all fit in
// a text window of length l, i.e. p[i+t-1]-p[i] <= l-k. Sorted.
func (ix Index) Clumps(l, t, k int) ([]string, error) {
	if t < 1 {
		return nil, fmt.Errorf("clumps: t=%d: %w", t, ErrInvalidParameter)
	}
	if k < 1 {
		return nil, fmt.Errorf("clumps: k=%d: %w", k, ErrInvalidParameter)
	}
	span := l - k
	found := stringset.New()
	for key, locs := range ix {
		if len(locs) < t {
			continue
		}
		for i := 0; i+t-1 < len(locs); i++ {
			if locs[i+t-1]-locs[i] <= span {
				found.Add(key)
				break
			}
		}
	}
	return found.Elements(), nil
}

// FindClumps indexes text and reports its (l, t) clumps of k-mers.
func FindClumps(text string, k, l, t int) ([]string, error) {
	return Locate(text, k).Clumps(l, t, k)
}
