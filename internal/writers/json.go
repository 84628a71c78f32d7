// internal/writers/json.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"kmotif/pkg/api"
)

func init() { Register("json", writeJSON) }

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSON(w io.Writer, payload any) error {
	switch v := payload.(type) {
	case api.MatchesV1:
		if v.Offsets == nil {
			v.Offsets = []int{}
		}
		return EncodePretty(w, v)
	case api.CountsV1:
		if v.Counts == nil {
			v.Counts = []api.KmerCountV1{}
		}
		return EncodePretty(w, v)
	case api.FrequentV1:
		v.Kmers = nonNil(v.Kmers)
		return EncodePretty(w, v)
	case api.ClumpsV1:
		v.Kmers = nonNil(v.Kmers)
		return EncodePretty(w, v)
	case api.KmersV1:
		v.Kmers = nonNil(v.Kmers)
		return EncodePretty(w, v)
	case api.SequenceV1, api.TallyV1, api.GCV1:
		return EncodePretty(w, v)
	default:
		return fmt.Errorf("json: unsupported payload %T", payload)
	}
}

// nonNil keeps empty lists as [] rather than null on the wire.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
