package query

import "strings"

// FormatTerm renders one raw term under the given quote mode. The term is
// trimmed first; a term that is empty after trimming is a ValidationError
// because empty cells are filtered out at the table layer.
func FormatTerm(term string, mode QuoteMode) (string, error) {
	t := strings.TrimSpace(term)
	if t == "" {
		return "", &ValidationError{Reason: "empty term"}
	}
	if mode == QuoteDouble {
		return `"` + t + `"`, nil
	}
	return t, nil
}
