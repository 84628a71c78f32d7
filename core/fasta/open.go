// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// gzipFile closes the gzip stream and the file underneath it.
type gzipFile struct {
	*gzip.Reader
	f io.Closer
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.f.Close(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

type readCloser struct {
	io.Reader
	io.Closer
}

// openReader opens path ("-" is stdin). Gzip is detected by the 1F 8B magic
// number or a .gz suffix, so compressed stdin works too.
func openReader(path string) (io.ReadCloser, error) {
	var f io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f = fh
	}
	br := bufio.NewReader(f)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &gzipFile{Reader: gr, f: f}, nil
	}
	return readCloser{Reader: br, Closer: f}, nil
}
