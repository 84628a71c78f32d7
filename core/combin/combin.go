// core/combin/combin.go
package combin

import (
	"errors"
	"fmt"
)

// ErrInvalidArity is returned when a generator cannot be built for (n, d).
var ErrInvalidArity = errors.New("invalid arity")

/* ------------------------- index combinations --------------------------- */

// Combinations enumerates strictly increasing d-length index sequences over
// {0..n-1} in lexicographic order. An instance is single-use.
type Combinations struct {
	n, d    int
	vals    []int
	started bool
	done    bool
}

// NewCombinations requires 0 <= d < n.
func NewCombinations(n, d int) (*Combinations, error) {
	if d < 0 || d >= n {
		return nil, fmt.Errorf("combinations(%d, %d): %w", n, d, ErrInvalidArity)
	}
	return &Combinations{n: n, d: d}, nil
}

// Next returns the next combination, or false once exhausted.
// The returned slice is owned by the caller.
func (c *Combinations) Next() ([]int, bool) {
	if c.done {
		return nil, false
	}
	if !c.started {
		c.started = true
		c.vals = make([]int, c.d)
		for i := range c.vals {
			c.vals[i] = i
		}
		return clone(c.vals), true
	}

	// rightmost position that still has room for the increasing tail
	pos := c.d - 1
	for ; pos >= 0; pos-- {
		if c.vals[pos]+(c.d-pos) < c.n {
			break
		}
	}
	if pos < 0 {
		c.done = true
		return nil, false
	}
	c.vals[pos]++
	for j := pos + 1; j < c.d; j++ {
		c.vals[j] = c.vals[j-1] + 1
	}
	return clone(c.vals), true
}

/* ---------------------------- digit product ----------------------------- */

// Product enumerates all d-length digit tuples over {0..n-1} in odometer
// order (rightmost digit fastest). An instance is single-use.
type Product struct {
	n, d    int
	vals    []int
	started bool
	done    bool
}

// NewProduct requires n >= 0 and d >= 0.
func NewProduct(n, d int) (*Product, error) {
	if n < 0 || d < 0 {
		return nil, fmt.Errorf("product(%d, %d): %w", n, d, ErrInvalidArity)
	}
	return &Product{n: n, d: d}, nil
}

// Next returns the next tuple, or false once exhausted.
func (p *Product) Next() ([]int, bool) {
	if p.done {
		return nil, false
	}
	if !p.started {
		p.started = true
		if p.n == 0 && p.d > 0 {
			p.done = true
			return nil, false
		}
		p.vals = make([]int, p.d)
		return clone(p.vals), true
	}

	pos := p.d - 1
	for ; pos >= 0; pos-- {
		if p.vals[pos] < p.n-1 {
			break
		}
		p.vals[pos] = 0
	}
	if pos < 0 {
		p.done = true
		return nil, false
	}
	p.vals[pos]++
	return clone(p.vals), true
}

/* ------------------------------ helpers --------------------------------- */

// Binomial returns C(n, k); 0 when k is out of range.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}

func clone(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	return out
}
