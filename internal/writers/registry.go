// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"
)

// Writers maps an output format to its handler. Handlers register from
// init() blocks in text.go and json.go.
var Writers = map[string]func(w io.Writer, payload any) error{}

// Register installs fn for format (last wins).
func Register(format string, fn func(io.Writer, any) error) { Writers[format] = fn }

// Write dispatches payload to the writer registered for format.
func Write(format string, w io.Writer, payload any) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for f := range Writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
