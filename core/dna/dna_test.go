package dna

import (
	"errors"
	"testing"
)

func TestTransforms(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"reverse", Reverse, "ATTCGA", "AGCTTA"},
		{"complement", Complement, "AGCTTA", "TCGAAT"},
		{"revcomp", ReverseComplement, "AAAACCCGGT", "ACCGGGTTTT"},
		{"revcomp ambiguous", ReverseComplement, "RYSWKMBDHVN", "NBDHVKMWSRY"},
		{"complement unknown", Complement, "AXT", "TNA"},
		{"transcribe", Transcribe, "GATGGAACTTGACTACGTAAATT", "GAUGGAACUUGACUACGUAAAUU"},
		{"empty", ReverseComplement, "", ""},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.in); got != tc.want {
			t.Errorf("%s(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestRevCompRoundTrip(t *testing.T) {
	s := "ACGTTGCATGTCGCATGATGCATGAGAGCT"
	if got := ReverseComplement(ReverseComplement(s)); got != s {
		t.Errorf("round trip = %q", got)
	}
}

func TestCountNucleotides(t *testing.T) {
	got := CountNucleotides("AGCTTTTCATTCTGACTGCAACGGGCAATATGTCTCTGTGTGGATTAAAAAAAGAGTGTCTGATAGCAGC")
	want := Tally{A: 20, C: 12, G: 17, T: 21}
	if got != want {
		t.Errorf("CountNucleotides = %+v, want %+v", got, want)
	}
	if got.String() != "20 12 17 21" {
		t.Errorf("Tally.String() = %q", got.String())
	}
	if o := CountNucleotides("ANNC").Other; o != 2 {
		t.Errorf("Other = %d, want 2", o)
	}
}

func TestGCContent(t *testing.T) {
	got, err := GCContent("AGCTATAG")
	if err != nil || got != 37.5 {
		t.Errorf("GCContent(AGCTATAG) = %v, %v; want 37.5", got, err)
	}
	if _, err := GCContent("ACNT"); !errors.Is(err, ErrInvalidBase) {
		t.Errorf("GCContent(ACNT) err = %v", err)
	}
	if _, err := GCContent(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("GCContent(\"\") err = %v", err)
	}
}

func TestIsACGT(t *testing.T) {
	if !IsACGT("ACGT") || IsACGT("ACGN") || !IsACGT("") {
		t.Error("IsACGT misclassified input")
	}
}
