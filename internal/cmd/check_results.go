package cmd

import (
	"fmt"

	"github.com/kenryanlabso/check-email/internal/format"
	"github.com/kenryanlabso/check-email/internal/outfmt"
)

// maxEmailColumn caps the EMAIL column so a pathological input cannot
// push the other columns off screen.
const maxEmailColumn = 60

// printCheckTable prints one row per checked address. Input strings are
// sanitized because they are untrusted and end up in a column layout.
func printCheckTable(reports []checkReport) {
	w := outfmt.NewTabWriter()
	fmt.Fprintln(w, "EMAIL\tSTATUS\tDETAIL")
	for _, r := range reports {
		status := "valid"
		if !r.Valid {
			status = "invalid"
		}
		email := format.Truncate(outfmt.Sanitize(r.Email), maxEmailColumn)
		fmt.Fprintf(w, "%s\t%s\t%s\n", email, status, outfmt.Sanitize(r.Error))
	}
	_ = w.Flush()
}

// printBatchSummary prints the outcome of a batch validation run.
//
// Example output:
//
//	Checked 5, all valid
//	Checked 5, 2 invalid
func printBatchSummary(checked, invalid int) {
	if invalid == 0 {
		fmt.Printf("Checked %d, all valid\n", checked)
		return
	}
	fmt.Printf("Checked %d, %d invalid\n", checked, invalid)
}
