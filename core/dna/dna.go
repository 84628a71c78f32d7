// core/dna/dna.go
package dna

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidBase = errors.New("invalid base")
	ErrEmpty       = errors.New("empty sequence")
)

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
}

func comp(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

/* ---------------------------- transforms -------------------------------- */

func Reverse(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = seq[n-1-i]
	}
	return string(out)
}

// Complement maps each base to its pair; unknown symbols become 'N'.
func Complement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = comp(seq[i])
	}
	return string(out)
}

func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = comp(seq[n-1-i])
	}
	return string(out)
}

// Transcribe converts DNA to RNA (T -> U).
func Transcribe(seq string) string { return strings.ReplaceAll(seq, "T", "U") }

// IsACGT reports whether seq only holds unambiguous bases.
func IsACGT(seq string) bool {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

/* ----------------------------- tallies ---------------------------------- */

// Tally counts each nucleotide; Other collects everything outside ACGT.
type Tally struct {
	A, C, G, T int
	Other      int
}

func (t Tally) String() string { return fmt.Sprintf("%d %d %d %d", t.A, t.C, t.G, t.T) }

func CountNucleotides(seq string) Tally {
	var t Tally
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A':
			t.A++
		case 'C':
			t.C++
		case 'G':
			t.G++
		case 'T':
			t.T++
		default:
			t.Other++
		}
	}
	return t
}

// GCContent returns the G+C percentage of seq.
func GCContent(seq string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmpty
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'C', 'G':
			gc++
		case 'A', 'T':
		default:
			return 0, fmt.Errorf("gc content: %q at %d: %w", seq[i], i, ErrInvalidBase)
		}
	}
	return 100 * float64(gc) / float64(len(seq)), nil
}
