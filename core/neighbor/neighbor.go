// core/neighbor/neighbor.go
package neighbor

import (
	"errors"
	"fmt"

	"bitbucket.org/creachadair/stringset"

	"kmotif/core/combin"
)

var (
	ErrLengthMismatch = errors.New("length mismatch")
	ErrBadAlphabet    = errors.New("bad alphabet")
)

/* ------------------------------ alphabet -------------------------------- */

// Alphabet is the ordered symbol set used for substitutions. Digit i of a
// product tuple selects Symbols[i].
type Alphabet struct {
	Symbols []byte
}

// DNA is the nucleotide alphabet in A,C,G,T order.
var DNA = Alphabet{Symbols: []byte("ACGT")}

// NewAlphabet rejects empty or repeated symbol lists.
func NewAlphabet(symbols string) (Alphabet, error) {
	if symbols == "" {
		return Alphabet{}, fmt.Errorf("empty alphabet: %w", ErrBadAlphabet)
	}
	var seen [256]bool
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if seen[c] {
			return Alphabet{}, fmt.Errorf("repeated symbol %q in %q: %w", c, symbols, ErrBadAlphabet)
		}
		seen[c] = true
	}
	return Alphabet{Symbols: []byte(symbols)}, nil
}

func (a Alphabet) Len() int       { return len(a.Symbols) }
func (a Alphabet) String() string { return string(a.Symbols) }

/* ----------------------------- generator -------------------------------- */

// Generator streams raw candidate variants of a k-mer: every index
// combination of size d paired with every digit tuple of size d. Candidates
// may repeat, and a digit may pick the symbol already present, so a
// candidate can be closer than d to the source.
type Generator struct {
	src    []byte
	d      int
	alpha  Alphabet
	combos *combin.Combinations
	combo  []int
	prod   *combin.Product
	buf    []byte
}

func NewGenerator(kmer string, d int, a Alphabet) (*Generator, error) {
	if a.Len() == 0 {
		return nil, fmt.Errorf("empty alphabet: %w", ErrBadAlphabet)
	}
	combos, err := combin.NewCombinations(len(kmer), d)
	if err != nil {
		return nil, err
	}
	return &Generator{
		src:    []byte(kmer),
		d:      d,
		alpha:  a,
		combos: combos,
		buf:    make([]byte, len(kmer)),
	}, nil
}

// Next returns the next candidate, or false when the cartesian product is
// exhausted.
func (g *Generator) Next() (string, bool) {
	for {
		if g.prod != nil {
			if digits, ok := g.prod.Next(); ok {
				copy(g.buf, g.src)
				for i, pos := range g.combo {
					g.buf[pos] = g.alpha.Symbols[digits[i]]
				}
				return string(g.buf), true
			}
		}
		combo, ok := g.combos.Next()
		if !ok {
			return "", false
		}
		g.combo = combo
		// validated in NewGenerator; n and d are non-negative here
		g.prod, _ = combin.NewProduct(g.alpha.Len(), g.d)
	}
}

/* ---------------------------- neighborhood ------------------------------ */

// Neighborhood returns every sequence within Hamming distance d of kmer.
// d == 0 yields {kmer}; d >= len(kmer) is rejected by the combinator.
func Neighborhood(kmer string, d int, a Alphabet) (stringset.Set, error) {
	if d == 0 {
		return stringset.New(kmer), nil
	}
	g, err := NewGenerator(kmer, d, a)
	if err != nil {
		return nil, fmt.Errorf("neighborhood of %q: %w", kmer, err)
	}
	out := stringset.New()
	for v, ok := g.Next(); ok; v, ok = g.Next() {
		out.Add(v)
	}
	return out, nil
}

// Distance is the Hamming distance of two equal-length sequences.
func Distance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("hamming %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n, nil
}
