package seqio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/highroad/align"
)

// WriteResult prints the aligned row, the aligned column and the score,
// one per line.
func WriteResult(w io.Writer, res align.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%s\n%d\n", res.Row, res.Col, res.Score); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteStats prints the column summary of an alignment on one line.
func WriteStats(w io.Writer, st align.Stats) error {
	_, err := fmt.Fprintf(w, "length=%d matches=%d mismatches=%d gaps=%d blanks=%d identity=%.2f%%\n",
		st.Length, st.Matches, st.Mismatches, st.Gaps, st.Blanks, 100*st.Identity())
	return err
}
