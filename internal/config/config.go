// Package config loads the optional sqgen.yml run configuration and
// resolves it, together with command-line overrides, into an executable
// query plan. All validation happens here, before any assembly begins.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/sqgen/internal/query"
)

// Error is a configuration problem: a setting that cannot be parsed, a
// group entry for a column the table does not have, or a main column that
// does not exist. Always fatal at startup.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "configuration: " + e.Reason
}

// GroupSetting is the per-column block of sqgen.yml.
type GroupSetting struct {
	// Quote is "none" or "double_quote".
	Quote string `yaml:"quote,omitempty"`

	// Operator joins the column's terms: AND, OR, or NOT.
	Operator string `yaml:"operator,omitempty"`
}

// File is the on-disk sqgen.yml shape.
type File struct {
	// Groups overrides settings for individual columns by name.
	Groups map[string]GroupSetting `yaml:"groups,omitempty"`

	// Defaults applies to every column without a Groups entry.
	Defaults GroupSetting `yaml:"defaults,omitempty"`

	// InterOperator joins group expressions: AND, OR, or NOT.
	InterOperator string `yaml:"interOperator,omitempty"`

	// MainColumn selects grouped mode. Empty selects combined mode.
	MainColumn string `yaml:"mainColumn,omitempty"`
}

// Overrides carries command-line values that take precedence over the
// file. Empty string means "not set".
type Overrides struct {
	MainColumn    string
	InterOperator string
	Quote         string
	IntraOperator string
}

// Load reads sqgen.yml or sqgen.yaml from dir. Returns a zero-value File
// (not an error) if neither exists.
func Load(dir string) (*File, error) {
	for _, name := range []string{"sqgen.yml", "sqgen.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parse(path, data)
	}
	return &File{}, nil
}

// LoadPath reads an explicitly named configuration file. Unlike Load, a
// missing file is an error.
func LoadPath(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Reason: err.Error()}
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &Error{Reason: fmt.Sprintf("parse %s: %v", path, err)}
	}
	return &f, nil
}

// Resolve builds the query plan for the given table columns. Precedence
// per setting: command-line override, then the file's per-group entry,
// then the file's defaults, then the built-in defaults (no quoting, OR
// inside groups, AND between groups, combined mode).
func (f *File) Resolve(columns []string, ov Overrides) (query.Plan, error) {
	var zero query.Plan

	known := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		known[col] = struct{}{}
	}
	for name := range f.Groups {
		if _, ok := known[name]; !ok {
			return zero, &Error{Reason: fmt.Sprintf("groups entry %q is not a table column", name)}
		}
	}

	defQuote, defIntra, err := f.resolveDefaults(ov)
	if err != nil {
		return zero, err
	}

	cfg := make(query.Config, len(columns))
	for _, col := range columns {
		settings := query.Settings{Quote: defQuote, Intra: defIntra}

		if gs, ok := f.Groups[col]; ok {
			if gs.Quote != "" {
				settings.Quote, err = query.ParseQuoteMode(gs.Quote)
				if err != nil {
					return zero, &Error{Reason: fmt.Sprintf("group %q: %v", col, err)}
				}
			}
			if gs.Operator != "" {
				settings.Intra, err = query.ParseOperator(gs.Operator)
				if err != nil {
					return zero, &Error{Reason: fmt.Sprintf("group %q: %v", col, err)}
				}
			}
		}
		cfg[col] = settings
	}

	inter := query.OpAnd
	if s := firstSet(ov.InterOperator, f.InterOperator); s != "" {
		inter, err = query.ParseOperator(s)
		if err != nil {
			return zero, &Error{Reason: fmt.Sprintf("inter operator: %v", err)}
		}
	}

	main := firstSet(ov.MainColumn, f.MainColumn)
	if main != "" {
		if _, ok := known[main]; !ok {
			return zero, &Error{Reason: fmt.Sprintf("main column %q is not a table column", main)}
		}
	}

	return query.Plan{
		Columns:    columns,
		Inter:      inter,
		MainColumn: main,
		Config:     cfg,
	}, nil
}

func (f *File) resolveDefaults(ov Overrides) (query.QuoteMode, query.Operator, error) {
	quote := query.QuoteNone
	if s := firstSet(ov.Quote, f.Defaults.Quote); s != "" {
		q, err := query.ParseQuoteMode(s)
		if err != nil {
			return 0, 0, &Error{Reason: fmt.Sprintf("default quote: %v", err)}
		}
		quote = q
	}

	intra := query.OpOr
	if s := firstSet(ov.IntraOperator, f.Defaults.Operator); s != "" {
		op, err := query.ParseOperator(s)
		if err != nil {
			return 0, 0, &Error{Reason: fmt.Sprintf("default operator: %v", err)}
		}
		intra = op
	}

	return quote, intra, nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
