package campaign

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteSummary renders the human-readable end-of-batch report: totals,
// then one line per failed number with its error detail.
func WriteSummary(w io.Writer, total int, result BatchResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Summary Report ---")
	fmt.Fprintf(w, "Total numbers processed: %d\n", total)
	fmt.Fprintf(w, "Successfully initiated calls: %d\n", len(result.Successes))
	fmt.Fprintf(w, "Failed calls: %d\n", len(result.Failures))

	if len(result.Failures) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Failed Numbers:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range result.Failures {
		fmt.Fprintf(tw, "  %s\t%s\n", f.PhoneNumber, f.ErrorDetail)
	}
	_ = tw.Flush()
}
