// internal/writers/text.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kmotif/pkg/api"
)

func init() { Register("text", writeText) }

// writeText renders results the way the classic exercise answers expect:
// space-joined lists, one k-mer per line for compositions, TSV for tables.
func writeText(w io.Writer, payload any) error {
	bw := bufio.NewWriter(w)
	switch v := payload.(type) {
	case api.MatchesV1:
		ss := make([]string, len(v.Offsets))
		for i, o := range v.Offsets {
			ss[i] = strconv.Itoa(o)
		}
		fmt.Fprintln(bw, strings.Join(ss, " "))
	case api.CountsV1:
		for _, c := range v.Counts {
			fmt.Fprintf(bw, "%s\t%d\n", c.Kmer, c.Count)
		}
	case api.FrequentV1:
		fmt.Fprintln(bw, strings.Join(v.Kmers, " "))
	case api.ClumpsV1:
		fmt.Fprintln(bw, strings.Join(v.Kmers, " "))
	case api.KmersV1:
		for _, k := range v.Kmers {
			fmt.Fprintln(bw, k)
		}
	case api.SequenceV1:
		fmt.Fprintln(bw, v.Seq)
	case api.TallyV1:
		fmt.Fprintf(bw, "%d %d %d %d\n", v.A, v.C, v.G, v.T)
	case api.GCV1:
		fmt.Fprintf(bw, "%s\n%.6f\n", v.ID, v.Percent)
	default:
		return fmt.Errorf("text: unsupported payload %T", payload)
	}
	return bw.Flush()
}
