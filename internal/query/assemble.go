package query

import "strings"

// Assemble joins group expressions into one query string. Groups are built
// in the order given (source-table column order); groups with no terms are
// skipped rather than failing, because a grouped-mode row subset may leave
// any column empty. The inter operator joins expressions with the same
// left-fold rule BuildGroup uses for NOT.
//
// Returns ErrEmptyQuery when no group has terms: an empty query string is
// never emitted.
func Assemble(groups []Group, inter Operator) (string, error) {
	exprs := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g.Terms) == 0 {
			continue
		}
		expr, err := BuildGroup(g)
		if err != nil {
			return "", err
		}
		exprs = append(exprs, expr)
	}

	if len(exprs) == 0 {
		return "", ErrEmptyQuery
	}
	return strings.Join(exprs, " "+inter.String()+" "), nil
}
