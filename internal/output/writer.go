// Package output serializes generation results: the queries text file and
// the optional per-query metadata CSV used for audit and reproduction.
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dusk-indust/sqgen/internal/query"
)

// WriteQueries writes one query per entry to path. Grouped-mode entries
// get a "-- <mainColumn>: <label> --" header line; every query is followed
// by a blank line so files stay diffable when queries get long. Labels
// that failed are appended as comment lines, keeping the file a complete
// record of the run.
func WriteQueries(path string, res *query.Result, mainColumn string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write queries: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, q := range res.Queries {
		if mainColumn != "" {
			fmt.Fprintf(w, "-- %s: %s --\n", mainColumn, q.Label)
		}
		fmt.Fprintf(w, "%s\n\n", q.Query)
	}

	if len(res.Failures) > 0 {
		fmt.Fprintf(w, "-- %d label(s) skipped --\n", len(res.Failures))
		for _, fl := range res.Failures {
			fmt.Fprintf(w, "-- %s: %s: %v --\n", mainColumn, fl.Label, fl.Err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write queries: %w", err)
	}
	return f.Close()
}
