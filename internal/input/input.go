// internal/input/input.go
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed input")

// ReadLines returns the trimmed, non-blank lines of path ("-" is stdin).
func ReadLines(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}
	return Lines(r)
}

// Lines returns the trimmed, non-blank lines of r.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	var out []string
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ints parses exactly n whitespace-separated non-negative integers.
func Ints(line string, n int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("want %d integers, got %q: %w", n, line, ErrMalformed)
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("bad integer %q: %w", f, ErrMalformed)
		}
		out[i] = v
	}
	return out, nil
}

// IntsRange parses between lo and hi whitespace-separated non-negative
// integers, for layouts whose trailing values are optional.
func IntsRange(line string, lo, hi int) ([]int, error) {
	n := len(strings.Fields(line))
	if n < lo || n > hi {
		return nil, fmt.Errorf("want %d to %d integers, got %q: %w", lo, hi, line, ErrMalformed)
	}
	return Ints(line, n)
}

// Need checks that at least n lines are present.
func Need(lines []string, n int, layout string) error {
	if len(lines) < n {
		return fmt.Errorf("expected %d lines (%s), got %d: %w", n, layout, len(lines), ErrMalformed)
	}
	return nil
}
