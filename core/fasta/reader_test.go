package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const plain = `>Rosalind_6404 first record
CCTGCGGAAGATCGGCACTAGAATAGCCAGAACCGTTTCTCTGAGGCTTCCGGCCTTCCC
TCCCACTAATAATTCTGAGG

>Rosalind_5959
CCATCGGTAGCGCATCCTTAGTCCAATTAAGTCCCTATCCAGGCGCTCCGCCGAAGGTCT
ATATCCATTTGTCAGCAGACACGC
>Rosalind_0808
CCACCCTCGTGGTATGGCTAGGCATTCAGGAACCGGAGAACGCTTCAGACCAGCCCGGAC
TGGGAACCTGCGGGCAGTAGGTGGAAT
`

func writeFile(t *testing.T, name, data string, gz bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var w io.Writer = fh
	var gw *gzip.Writer
	if gz {
		gw = gzip.NewWriter(fh)
		w = gw
	}
	if _, err := io.WriteString(w, data); err != nil {
		t.Fatalf("write: %v", err)
	}
	if gw != nil {
		if err := gw.Close(); err != nil {
			t.Fatalf("close gzip: %v", err)
		}
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	recs, err := Read(context.Background(), strings.NewReader(plain))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	if diff := cmp.Diff([]string{"Rosalind_6404", "Rosalind_5959", "Rosalind_0808"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	m := ToMap(recs)
	want := "CCTGCGGAAGATCGGCACTAGAATAGCCAGAACCGTTTCTCTGAGGCTTCCGGCCTTCCCTCCCACTAATAATTCTGAGG"
	if m["Rosalind_6404"] != want {
		t.Errorf("Rosalind_6404 = %q, want %q", m["Rosalind_6404"], want)
	}
}

func TestReadFilePlainAndGzip(t *testing.T) {
	for _, tc := range []struct {
		name string
		gz   bool
	}{{"in.fa", false}, {"in.fa.gz", true}, {"noext", true}} {
		path := writeFile(t, tc.name, plain, tc.gz)
		recs, err := ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(recs) != 3 {
			t.Errorf("%s: %d records, want 3", tc.name, len(recs))
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.fa"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestEmptyRecordKept(t *testing.T) {
	recs, err := Read(context.Background(), strings.NewReader(">a\n>b\nAC\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{{ID: "a"}, {ID: "b", Seq: "AC"}}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestDataBeforeHeader(t *testing.T) {
	if _, err := Read(context.Background(), strings.NewReader("ACGT\n>a\nAC\n")); err == nil {
		t.Error("expected error for sequence before header")
	}
}

func TestStreamCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := Stream(ctx, strings.NewReader(plain), func(Record) error { n++; return nil })
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Errorf("Stream on cancelled ctx: err=%v records=%d", err, n)
	}
}

func TestStreamStopsOnEmitError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Stream(context.Background(), strings.NewReader(plain), func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Errorf("err=%v records=%d, want stop after 1", err, n)
	}
}
