package query

import (
	"errors"
	"strings"
)

// BuildGroup renders a group's terms as a single boolean expression.
//
// A single-term group yields the bare formatted term. A multi-term group
// joins the formatted terms with the intra operator and wraps the whole
// expression in one pair of parentheses. NOT joins exactly like AND and OR:
// the infix join IS the binary left-fold, so [a, b, c] becomes
// "(a NOT b NOT c)" with every term after the first negated relative to the
// accumulated expression. Term order is never changed; NOT is not
// commutative.
func BuildGroup(g Group) (string, error) {
	if len(g.Terms) == 0 {
		return "", &ValidationError{Group: g.Name, Reason: "group has no terms"}
	}

	formatted := make([]string, 0, len(g.Terms))
	for _, term := range g.Terms {
		ft, err := FormatTerm(term, g.Quote)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Group = g.Name
			}
			return "", err
		}
		formatted = append(formatted, ft)
	}

	if len(formatted) == 1 {
		return formatted[0], nil
	}
	return "(" + strings.Join(formatted, " "+g.Intra.String()+" ") + ")", nil
}
