package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	data := "ACGTTGCATGTCGCATGATGCATGAGAGCT\n\n  4 1  \n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"ACGTTGCATGTCGCATGATGCATGAGAGCT", "4 1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestInts(t *testing.T) {
	got, err := Ints("5 75 4", 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{5, 75, 4}, got); diff != "" {
		t.Errorf("Ints mismatch (-want +got):\n%s", diff)
	}
	for _, bad := range []string{"5 75", "5 x 4", "5 -1 4", "1 2 3 4"} {
		if _, err := Ints(bad, 3); !errors.Is(err, ErrMalformed) {
			t.Errorf("Ints(%q) err = %v, want ErrMalformed", bad, err)
		}
	}
}

func TestIntsRange(t *testing.T) {
	for line, want := range map[string][]int{"4": {4}, "4 1": {4, 1}} {
		got, err := IntsRange(line, 1, 2)
		if err != nil {
			t.Fatalf("IntsRange(%q): %v", line, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("IntsRange(%q) mismatch (-want +got):\n%s", line, diff)
		}
	}
	for _, bad := range []string{"", "4 1 2", "4 x"} {
		if _, err := IntsRange(bad, 1, 2); !errors.Is(err, ErrMalformed) {
			t.Errorf("IntsRange(%q) err = %v, want ErrMalformed", bad, err)
		}
	}
}

func TestNeed(t *testing.T) {
	lines, _ := Lines(strings.NewReader("ACGT\n"))
	if err := Need(lines, 2, "text / k d"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Need err = %v", err)
	}
	if err := Need(lines, 1, "text"); err != nil {
		t.Errorf("Need: %v", err)
	}
}
