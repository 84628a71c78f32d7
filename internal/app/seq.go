// internal/app/seq.go
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kmotif/core/dna"
	"kmotif/core/fasta"
	"kmotif/internal/input"
	"kmotif/internal/log"
	"kmotif/internal/version"
	"kmotif/pkg/api"
)

// sequenceOf returns the positional sequence or the lines of --input joined.
func sequenceOf(cmd *cobra.Command, path string, args []string) (string, error) {
	switch {
	case path != "" && len(args) > 0:
		return "", usageErr(fmt.Errorf("%s: give a sequence or --input, not both", cmd.CommandPath()))
	case path != "":
		lines, err := input.ReadLines(path)
		if err != nil {
			return "", ioErr(err)
		}
		return strings.Join(lines, ""), nil
	case len(args) == 1:
		return args[0], nil
	}
	return "", usageErr(fmt.Errorf("%s: missing sequence (or use --input)", cmd.CommandPath()))
}

// seqCmd builds a one-sequence-in, one-result-out command.
func (r *runner) seqCmd(use, short string, fn func(seq string) (any, error)) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   use + " [SEQUENCE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := sequenceOf(cmd, path, args)
			if err != nil {
				return err
			}
			out, err := fn(seq)
			if err != nil {
				return err
			}
			return r.emit(out, false)
		},
	}
	cmd.Flags().StringVarP(&path, "input", "i", "", "read the sequence from `file`")
	return cmd
}

func (r *runner) revcompCmd() *cobra.Command {
	return r.seqCmd("revcomp", "Reverse complement of a DNA sequence", func(seq string) (any, error) {
		if !dna.IsACGT(seq) {
			log.Warnf("revcomp: non-ACGT symbols complemented by IUPAC rules")
		}
		return api.SequenceV1{Op: "revcomp", Seq: dna.ReverseComplement(seq)}, nil
	})
}

func (r *runner) transcribeCmd() *cobra.Command {
	return r.seqCmd("transcribe", "Transcribe DNA into RNA (T to U)", func(seq string) (any, error) {
		return api.SequenceV1{Op: "transcribe", Seq: dna.Transcribe(seq)}, nil
	})
}

func (r *runner) nucleotidesCmd() *cobra.Command {
	return r.seqCmd("nucleotides", "Count A, C, G and T", func(seq string) (any, error) {
		t := dna.CountNucleotides(seq)
		if t.Other > 0 {
			log.Warnf("nucleotides: %d symbol(s) other than ACGT ignored", t.Other)
		}
		return api.TallyV1{A: t.A, C: t.C, G: t.G, T: t.T, Other: t.Other}, nil
	})
}

func (r *runner) gcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gc FASTA",
		Short: "Record with the highest GC content (\"-\" reads stdin, gzip accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := fasta.ReadFile(cmd.Context(), args[0])
			if err != nil {
				if cmd.Context().Err() != nil {
					return cmd.Context().Err()
				}
				return ioErr(err)
			}
			var (
				best  api.GCV1
				found bool
			)
			for _, rec := range recs {
				gc, err := dna.GCContent(rec.Seq)
				if errors.Is(err, dna.ErrEmpty) {
					log.Warnf("gc: %s: empty record skipped", rec.ID)
					continue
				}
				if err != nil {
					return fmt.Errorf("%s: %w", rec.ID, err)
				}
				if !found || gc > best.Percent {
					best, found = api.GCV1{ID: rec.ID, Percent: gc}, true
				}
			}
			if !found {
				return fmt.Errorf("%s: no records: %w", args[0], dna.ErrEmpty)
			}
			log.Debugf("gc: scored %d record(s)", len(recs))
			return r.emit(best, false)
		},
	}
}

func (r *runner) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := fmt.Fprintf(r.stdout, "kmotif version %s\n", version.Version); err != nil {
				return ioErr(err)
			}
			return nil
		},
	}
}
