// internal/app/commands.go
package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kmotif/core/dna"
	"kmotif/core/kmer"
	"kmotif/internal/input"
	"kmotif/internal/log"
	"kmotif/pkg/api"
)

/* ------------------------------- helpers -------------------------------- */

// problem reads an --input file and checks that it holds the n lines of layout.
func problem(path string, n int, layout string) ([]string, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, ioErr(err)
	}
	if err := input.Need(lines, n, layout); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// required fails unless every named flag was set on cmd.
func required(cmd *cobra.Command, names ...string) error {
	var missing []string
	for _, n := range names {
		if !cmd.Flags().Changed(n) {
			missing = append(missing, "--"+n)
		}
	}
	if len(missing) > 0 {
		return usageErr(fmt.Errorf("%s: missing %v (or use --input)", cmd.CommandPath(), missing))
	}
	return nil
}

func positiveK(k int) error {
	if k < 1 {
		return fmt.Errorf("k=%d must be at least 1: %w", k, kmer.ErrInvalidParameter)
	}
	return nil
}

// tally counts d-neighborhood hits, optionally folding in the reverse
// complement strand. One thread runs the serial counters.
func (r *runner) tally(ctx context.Context, text string, k, d int, rc bool) (kmer.Counts, error) {
	a := r.cfg.Alpha()
	log.Debugf("counting %d windows: k=%d d=%d revcomp=%t threads=%d", max(len(text)-k+1, 0), k, d, rc, r.cfg.Threads)
	if r.cfg.Threads == 1 {
		if rc {
			return kmer.CountMismatchRC(text, k, d, a)
		}
		return kmer.CountMismatch(text, k, d, a)
	}
	c, err := kmer.CountParallel(ctx, text, k, d, a, r.cfg.Threads)
	if err != nil || !rc {
		return c, err
	}
	rev, err := kmer.CountParallel(ctx, dna.ReverseComplement(text), k, d, a, r.cfg.Threads)
	if err != nil {
		return nil, err
	}
	c.Merge(rev)
	return c, nil
}

/* ------------------------------ matching -------------------------------- */

func (r *runner) matchCmd() *cobra.Command {
	var (
		path, pattern, text string
		d                   int
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Offsets where text is within d substitutions of a pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path != "" {
				lines, err := problem(path, 3, "pattern / text / d")
				if err != nil {
					return err
				}
				v, err := input.Ints(lines[2], 1)
				if err != nil {
					return err
				}
				pattern, text, d = lines[0], lines[1], v[0]
			} else if err := required(cmd, "pattern", "text"); err != nil {
				return err
			}
			r.warnSymbols("text", text)
			offs, err := kmer.FindMatches(pattern, text, d, r.cfg.Alpha())
			if err != nil {
				return err
			}
			return r.emit(api.MatchesV1{Pattern: pattern, Mismatches: d, Offsets: offs}, len(offs) == 0)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&path, "input", "i", "", "problem `file`: pattern / text / d")
	fl.StringVar(&pattern, "pattern", "", "pattern to match")
	fl.StringVar(&text, "text", "", "text to scan")
	fl.IntVarP(&d, "mismatches", "d", 0, "substitution budget")
	cmd.MarkFlagsMutuallyExclusive("input", "pattern")
	cmd.MarkFlagsMutuallyExclusive("input", "text")
	cmd.MarkFlagsMutuallyExclusive("input", "mismatches")
	return cmd
}

func (r *runner) searchCmd() *cobra.Command {
	var path, pattern, text string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Offsets of exact, possibly overlapping, pattern occurrences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path != "" {
				lines, err := problem(path, 2, "pattern / genome")
				if err != nil {
					return err
				}
				pattern, text = lines[0], lines[1]
			} else if err := required(cmd, "pattern", "text"); err != nil {
				return err
			}
			offs := kmer.FindExact(pattern, text)
			return r.emit(api.MatchesV1{Pattern: pattern, Offsets: offs}, len(offs) == 0)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&path, "input", "i", "", "problem `file`: pattern / genome")
	fl.StringVar(&pattern, "pattern", "", "pattern to find")
	fl.StringVar(&text, "text", "", "text to scan")
	cmd.MarkFlagsMutuallyExclusive("input", "pattern")
	cmd.MarkFlagsMutuallyExclusive("input", "text")
	return cmd
}

/* ------------------------------ counting -------------------------------- */

// countArgs are shared by count and frequent.
type countArgs struct {
	path, text string
	k, d       int
	revcomp    bool
}

func (c *countArgs) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&c.path, "input", "i", "", "problem `file`: text / k [d]")
	fl.StringVar(&c.text, "text", "", "text to count")
	fl.IntVarP(&c.k, "kmer", "k", 0, "k-mer length")
	fl.IntVarP(&c.d, "mismatches", "d", 0, "substitution budget")
	fl.BoolVar(&c.revcomp, "revcomp", false, "also count reverse-complement neighbors")
	cmd.MarkFlagsMutuallyExclusive("input", "text")
	cmd.MarkFlagsMutuallyExclusive("input", "kmer")
	cmd.MarkFlagsMutuallyExclusive("input", "mismatches")
}

func (c *countArgs) resolve(cmd *cobra.Command) error {
	if c.path != "" {
		lines, err := problem(c.path, 2, "text / k [d]")
		if err != nil {
			return err
		}
		v, err := input.IntsRange(lines[1], 1, 2)
		if err != nil {
			return err
		}
		c.text, c.k, c.d = lines[0], v[0], 0
		if len(v) == 2 {
			c.d = v[1]
		}
	} else if err := required(cmd, "text", "kmer"); err != nil {
		return err
	}
	return positiveK(c.k)
}

func (r *runner) countCmd() *cobra.Command {
	var a countArgs
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Mismatch-tolerant count of every k-mer in the neighborhood of the text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.resolve(cmd); err != nil {
				return err
			}
			r.warnSymbols("text", a.text)
			counts, err := r.tally(cmd.Context(), a.text, a.k, a.d, a.revcomp)
			if err != nil {
				return err
			}
			keys := counts.Keys()
			rows := make([]api.KmerCountV1, len(keys))
			for i, k := range keys {
				rows[i] = api.KmerCountV1{Kmer: k, Count: counts[k]}
			}
			return r.emit(api.CountsV1{K: a.k, Mismatches: a.d, RevComp: a.revcomp, Counts: rows}, len(rows) == 0)
		},
	}
	a.bind(cmd)
	return cmd
}

func (r *runner) frequentCmd() *cobra.Command {
	var a countArgs
	cmd := &cobra.Command{
		Use:   "frequent",
		Short: "Most frequent k-mers with up to d mismatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.resolve(cmd); err != nil {
				return err
			}
			r.warnSymbols("text", a.text)
			counts, err := r.tally(cmd.Context(), a.text, a.k, a.d, a.revcomp)
			if err != nil {
				return err
			}
			best := counts.Frequent()
			high, _ := counts.Max()
			out := api.FrequentV1{K: a.k, Mismatches: a.d, RevComp: a.revcomp, Count: high, Kmers: best}
			return r.emit(out, len(best) == 0)
		},
	}
	a.bind(cmd)
	return cmd
}

/* ----------------------------- clumps etc. ------------------------------ */

func (r *runner) clumpsCmd() *cobra.Command {
	var (
		path, text string
		k, l, t    int
	)
	cmd := &cobra.Command{
		Use:   "clumps",
		Short: "k-mers occurring at least t times within some window of length l",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path != "" {
				lines, err := problem(path, 2, "genome / k l t")
				if err != nil {
					return err
				}
				v, err := input.Ints(lines[1], 3)
				if err != nil {
					return err
				}
				text, k, l, t = lines[0], v[0], v[1], v[2]
			} else if err := required(cmd, "text", "kmer", "window", "min-occurrences"); err != nil {
				return err
			}
			found, err := kmer.FindClumps(text, k, l, t)
			if err != nil {
				return err
			}
			return r.emit(api.ClumpsV1{K: k, Window: l, Min: t, Kmers: found}, len(found) == 0)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&path, "input", "i", "", "problem `file`: genome / k l t")
	fl.StringVar(&text, "text", "", "genome to scan")
	fl.IntVarP(&k, "kmer", "k", 0, "k-mer length")
	fl.IntVarP(&l, "window", "l", 0, "window length")
	fl.IntVarP(&t, "min-occurrences", "t", 0, "minimum occurrences within a window")
	for _, name := range []string{"text", "kmer", "window", "min-occurrences"} {
		cmd.MarkFlagsMutuallyExclusive("input", name)
	}
	return cmd
}

func (r *runner) compositionCmd() *cobra.Command {
	var (
		path, text string
		k          int
	)
	cmd := &cobra.Command{
		Use:   "composition",
		Short: "Every k-mer window of the text, sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path != "" {
				lines, err := problem(path, 2, "k / text")
				if err != nil {
					return err
				}
				v, err := input.Ints(lines[0], 1)
				if err != nil {
					return err
				}
				k, text = v[0], lines[1]
			} else if err := required(cmd, "text", "kmer"); err != nil {
				return err
			}
			if err := positiveK(k); err != nil {
				return err
			}
			kmers := kmer.Composition(text, k)
			return r.emit(api.KmersV1{K: k, Kmers: kmers}, len(kmers) == 0)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&path, "input", "i", "", "problem `file`: k / text")
	fl.StringVar(&text, "text", "", "text to decompose")
	fl.IntVarP(&k, "kmer", "k", 0, "k-mer length")
	cmd.MarkFlagsMutuallyExclusive("input", "text")
	cmd.MarkFlagsMutuallyExclusive("input", "kmer")
	return cmd
}
