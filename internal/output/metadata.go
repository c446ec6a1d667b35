package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dusk-indust/sqgen/internal/query"
)

// metadataHeader is the per-query metadata CSV schema. The recorded
// settings (group_logic, inter_operator, main_column) are sufficient to
// regenerate every query from the same input file.
var metadataHeader = []string{
	"query_id", "label", "main_column", "inter_operator",
	"group_logic", "group_count", "term_count", "query_string",
}

// WriteMetadata writes one CSV row per generated query, plus a row with
// status "skipped" for each failed label.
func WriteMetadata(path string, res *query.Result, plan query.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	w := csv.NewWriter(f)
	logic := FormatGroupLogic(plan)
	inter := plan.Inter.String()

	if err := w.Write(metadataHeader); err != nil {
		f.Close()
		return fmt.Errorf("write metadata: %w", err)
	}

	id := 0
	for _, q := range res.Queries {
		id++
		row := []string{
			strconv.Itoa(id), q.Label, plan.MainColumn, inter,
			logic, strconv.Itoa(q.GroupCount), strconv.Itoa(q.TermCount), q.Query,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write metadata: %w", err)
		}
	}
	for _, fl := range res.Failures {
		id++
		row := []string{
			strconv.Itoa(id), fl.Label, plan.MainColumn, inter,
			logic, "0", "0", "skipped: " + fl.Err.Error(),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write metadata: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write metadata: %w", err)
	}
	return f.Close()
}

// FormatGroupLogic renders a plan's per-group settings as
// "name:quote/operator;..." in column order, the form recorded in metadata
// and audit rows.
func FormatGroupLogic(plan query.Plan) string {
	parts := make([]string, 0, len(plan.Columns))
	for _, col := range plan.Columns {
		s := plan.Config[col]
		parts = append(parts, col+":"+s.Quote.String()+"/"+s.Intra.String())
	}
	return strings.Join(parts, ";")
}

// ParseGroupLogic inverts FormatGroupLogic: it rebuilds the column order
// and per-group settings from a recorded group_logic string.
func ParseGroupLogic(s string) ([]string, query.Config, error) {
	if s == "" {
		return nil, nil, fmt.Errorf("empty group logic")
	}

	var columns []string
	cfg := query.Config{}
	for _, part := range strings.Split(s, ";") {
		name, rules, ok := strings.Cut(part, ":")
		if !ok {
			return nil, nil, fmt.Errorf("malformed group logic entry %q", part)
		}
		quoteStr, opStr, ok := strings.Cut(rules, "/")
		if !ok {
			return nil, nil, fmt.Errorf("malformed group logic entry %q", part)
		}

		quote, err := query.ParseQuoteMode(quoteStr)
		if err != nil {
			return nil, nil, err
		}
		op, err := query.ParseOperator(opStr)
		if err != nil {
			return nil, nil, err
		}

		columns = append(columns, name)
		cfg[name] = query.Settings{Quote: quote, Intra: op}
	}
	return columns, cfg, nil
}
