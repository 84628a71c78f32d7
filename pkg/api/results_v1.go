// pkg/api/results_v1.go
package api

// Stable JSON schemas (v1). Keep fields, names, and types stable. Add new
// fields only with ",omitempty".

// MatchesV1 reports offsets of a pattern in a text.
type MatchesV1 struct {
	Pattern    string `json:"pattern"`
	Mismatches int    `json:"mismatches"`
	Offsets    []int  `json:"offsets"`
}

// KmerCountV1 is one row of a count table.
type KmerCountV1 struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// CountsV1 is a full count table sorted by k-mer.
type CountsV1 struct {
	K          int           `json:"k"`
	Mismatches int           `json:"mismatches"`
	RevComp    bool          `json:"revcomp,omitempty"`
	Counts     []KmerCountV1 `json:"counts"`
}

// FrequentV1 lists the k-mers holding the maximum count.
type FrequentV1 struct {
	K          int      `json:"k"`
	Mismatches int      `json:"mismatches"`
	RevComp    bool     `json:"revcomp,omitempty"`
	Count      int      `json:"count"`
	Kmers      []string `json:"kmers"`
}

// ClumpsV1 lists the (L, t)-clump k-mers.
type ClumpsV1 struct {
	K      int      `json:"k"`
	Window int      `json:"window"`
	Min    int      `json:"min_occurrences"`
	Kmers  []string `json:"kmers"`
}

// KmersV1 is a plain ordered list of k-mers (composition).
type KmersV1 struct {
	K     int      `json:"k"`
	Kmers []string `json:"kmers"`
}

// SequenceV1 carries a transformed sequence.
type SequenceV1 struct {
	Op  string `json:"op"`
	Seq string `json:"seq"`
}

// TallyV1 is a nucleotide tally.
type TallyV1 struct {
	A     int `json:"A"`
	C     int `json:"C"`
	G     int `json:"G"`
	T     int `json:"T"`
	Other int `json:"other,omitempty"`
}

// GCV1 reports the record with the highest GC content.
type GCV1 struct {
	ID      string  `json:"id"`
	Percent float64 `json:"gc_percent"`
}
