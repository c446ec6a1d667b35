package query

import (
	"fmt"
	"strings"
)

// QuoteMode controls how individual terms are rendered.
type QuoteMode int

const (
	// QuoteNone passes the trimmed term through unchanged.
	QuoteNone QuoteMode = iota

	// QuoteDouble wraps the trimmed term in double quotes. Embedded quotes
	// are not escaped; search engines treat the payload literally.
	QuoteDouble
)

func (q QuoteMode) String() string {
	switch q {
	case QuoteNone:
		return "none"
	case QuoteDouble:
		return "double_quote"
	default:
		return "unknown"
	}
}

// ParseQuoteMode converts a config value into a QuoteMode. Accepted values
// are "none" and "double_quote", case-insensitive.
func ParseQuoteMode(s string) (QuoteMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return QuoteNone, nil
	case "double_quote":
		return QuoteDouble, nil
	default:
		return QuoteNone, fmt.Errorf("unknown quote mode %q (want none or double_quote)", s)
	}
}

// Operator is a boolean connective used both inside a group (intra) and
// between group expressions (inter).
type Operator int

const (
	OpAnd Operator = iota
	OpOr
	OpNot
)

func (o Operator) String() string {
	switch o {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpNot:
		return "NOT"
	default:
		return "unknown"
	}
}

// ParseOperator converts a config value into an Operator, case-insensitive.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AND":
		return OpAnd, nil
	case "OR":
		return OpOr, nil
	case "NOT":
		return OpNot, nil
	default:
		return OpAnd, fmt.Errorf("unknown operator %q (want AND, OR, or NOT)", s)
	}
}

// Group is one named column of search terms together with its rendering
// rules. Terms are distinct, non-empty, and kept in first-seen input order;
// a group with no terms is skipped during assembly.
type Group struct {
	Name  string
	Terms []string
	Quote QuoteMode
	Intra Operator
}

// Settings holds the per-group rendering rules supplied once per run.
type Settings struct {
	Quote QuoteMode
	Intra Operator
}

// Config maps group names to their settings. Every column that takes part
// in assembly must have an entry.
type Config map[string]Settings

// Plan describes one generation run.
type Plan struct {
	// Columns lists the active groups in source-table column order. This
	// order is the assembly order for every emitted query.
	Columns []string

	// Inter joins group expressions into the final query.
	Inter Operator

	// MainColumn selects grouped mode: one query per distinct value of this
	// column. Empty selects combined mode.
	MainColumn string

	// Config supplies settings for every column in Columns.
	Config Config
}

// GeneratedQuery is one finished query string. Label is the main-column
// value in grouped mode and empty in combined mode. GroupCount and
// TermCount record how many groups and terms went into the query.
type GeneratedQuery struct {
	Label      string
	Query      string
	GroupCount int
	TermCount  int
}

// LabelFailure records a grouped-mode label whose query could not be
// assembled. Failures never abort the run; they are reported alongside the
// successful queries.
type LabelFailure struct {
	Label string
	Err   error
}

// Result is the outcome of one generation run.
type Result struct {
	Queries  []GeneratedQuery
	Failures []LabelFailure
}
