// Package table loads a delimited text file into a column-oriented,
// immutable in-memory table and answers the term queries the generator
// needs. Delimiter and text encoding are detected from the file itself;
// UTF-8 (with or without BOM) and Windows-1252 are supported.
package table

import "strings"

// Table is a parsed input file: an ordered header plus raw rows. Cells are
// stored as read; trimming and empty-cell filtering happen in the value
// accessors so row/column alignment is never disturbed.
type Table struct {
	columns []string
	rows    [][]string
	index   map[string]int
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether name is a header of this table.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RowCount returns the number of data rows (header excluded).
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Values returns the distinct non-empty trimmed cells of a column in
// first-seen order. Unknown columns yield nil.
func (t *Table) Values(column string) []string {
	return t.collect(column, nil)
}

// RestrictedValues is Values limited to rows where mainColumn holds
// mainValue (after trimming). This is the grouped-mode row subset: the
// union of a column's terms across every row sharing the main value.
func (t *Table) RestrictedValues(column, mainColumn, mainValue string) []string {
	mi, ok := t.index[mainColumn]
	if !ok {
		return nil
	}
	return t.collect(column, func(row []string) bool {
		return mi < len(row) && strings.TrimSpace(row[mi]) == mainValue
	})
}

func (t *Table) collect(column string, keep func([]string) bool) []string {
	ci, ok := t.index[column]
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, row := range t.rows {
		if ci >= len(row) {
			continue
		}
		if keep != nil && !keep(row) {
			continue
		}
		v := strings.TrimSpace(row[ci])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
