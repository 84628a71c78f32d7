// core/kmer/count.go
package kmer

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"kmotif/core/combin"
	"kmotif/core/dna"
	"kmotif/core/neighbor"
)

/* ----------------------------- count table ------------------------------ */

// Counts maps a k-mer to its occurrence count. Iteration order is undefined;
// exported views (Keys, Frequent) are sorted.
type Counts map[string]int

// Merge adds every count of other into c.
func (c Counts) Merge(other Counts) {
	for k, v := range other {
		c[k] += v
	}
}

// Max returns the largest count, false for an empty table.
func (c Counts) Max() (int, bool) {
	best, ok := 0, false
	for _, v := range c {
		if !ok || v > best {
			best, ok = v, true
		}
	}
	return best, ok
}

// Frequent returns the keys holding the maximum count, sorted.
func (c Counts) Frequent() []string {
	var (
		res  []string
		high int
	)
	for k, v := range c {
		switch {
		case v > high:
			high = v
			res = append(res[:0], k)
		case v == high && v > 0:
			res = append(res, k)
		}
	}
	sortStrings(res)
	return res
}

// Keys returns all keys, sorted.
func (c Counts) Keys() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sortStrings(out)
	return out
}

/* ------------------------------ counting -------------------------------- */

// Count tallies exact k-mer occurrences.
func Count(text string, k int) Counts {
	c := make(Counts)
	countRange(c, text, k, 0, windows(len(text), k))
	return c
}

func countRange(c Counts, text string, k, lo, hi int) {
	for i := lo; i < hi; i++ {
		c[text[i:i+k]]++
	}
}

// CountMismatch adds one to every distinct member of each window's
// d-neighborhood.
func CountMismatch(text string, k, d int, a neighbor.Alphabet) (Counts, error) {
	if err := checkArity(k, d); err != nil {
		return nil, err
	}
	c := make(Counts)
	if err := countMismatchRange(context.Background(), c, text, k, d, a, 0, windows(len(text), k)); err != nil {
		return nil, err
	}
	return c, nil
}

func countMismatchRange(ctx context.Context, c Counts, text string, k, d int, a neighbor.Alphabet, lo, hi int) error {
	if d == 0 {
		countRange(c, text, k, lo, hi)
		return nil
	}
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		hood, err := neighbor.Neighborhood(text[i:i+k], d, a)
		if err != nil {
			return err
		}
		for v := range hood {
			c[v]++
		}
	}
	return nil
}

// checkArity rejects budgets the combinator cannot enumerate, independent of
// whether any window fits the text.
func checkArity(k, d int) error {
	if d == 0 {
		return nil
	}
	if _, err := combin.NewCombinations(k, d); err != nil {
		return fmt.Errorf("k=%d d=%d: %w", k, d, err)
	}
	return nil
}

// CountMismatchRC folds counts from text and its reverse complement.
func CountMismatchRC(text string, k, d int, a neighbor.Alphabet) (Counts, error) {
	fwd, err := CountMismatch(text, k, d, a)
	if err != nil {
		return nil, err
	}
	rev, err := CountMismatch(dna.ReverseComplement(text), k, d, a)
	if err != nil {
		return nil, err
	}
	fwd.Merge(rev)
	return fwd, nil
}

// CountParallel splits the window offsets of text into contiguous ranges,
// counts each range into its own table and merges the tables. workers <= 0
// uses all CPUs. The result equals CountMismatch.
func CountParallel(ctx context.Context, text string, k, d int, a neighbor.Alphabet, workers int) (Counts, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if err := checkArity(k, d); err != nil {
		return nil, err
	}
	parts := Partition(windows(len(text), k), workers)
	tables := make([]Counts, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range parts {
		i, r := i, r
		g.Go(func() error {
			t := make(Counts)
			if err := countMismatchRange(gctx, t, text, k, d, a, r.Lo, r.Hi); err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(Counts)
	for _, t := range tables {
		out.Merge(t)
	}
	return out, nil
}

// Range is a half-open span of window offsets.
type Range struct{ Lo, Hi int }

// Partition splits [0,n) into at most parts contiguous, near-equal ranges.
func Partition(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	out := make([]Range, 0, parts)
	step, rem := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + step
		if i < rem {
			hi++
		}
		out = append(out, Range{Lo: lo, Hi: hi})
		lo = hi
	}
	return out
}

func sortStrings(s []string) { sort.Strings(s) }
