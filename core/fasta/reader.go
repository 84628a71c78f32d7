// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// Stream parses FASTA from r and emits each record in file order.
// Cancellation via ctx is honored between lines. Return a non-nil error from
// emit to stop early.
func Stream(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id    string
		inRec bool
		seq   = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seq)})
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			inRec = true
			seq = seq[:0]
			continue
		}
		if !inRec {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Read collects every record from r.
func Read(ctx context.Context, r io.Reader) ([]Record, error) {
	var out []Record
	err := Stream(ctx, r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile opens path (gzip and "-" for stdin supported) and reads it fully.
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// ToMap returns the id -> sequence mapping; later duplicates win.
func ToMap(recs []Record) map[string]string {
	m := make(map[string]string, len(recs))
	for _, r := range recs {
		m[r.ID] = r.Seq
	}
	return m
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
