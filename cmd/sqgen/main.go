package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dusk-indust/sqgen/internal/audit"
	"github.com/dusk-indust/sqgen/internal/config"
	"github.com/dusk-indust/sqgen/internal/logging"
	"github.com/dusk-indust/sqgen/internal/mcptools"
	"github.com/dusk-indust/sqgen/internal/output"
	"github.com/dusk-indust/sqgen/internal/query"
	"github.com/dusk-indust/sqgen/internal/table"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Input      string
	Output     string
	Metadata   string
	Summary    string
	SummaryDB  string
	Config     string
	MainColumn string
	Inter      string
	Quote      string
	Intra      string
	Verbose    bool
	ServeMCP   bool
	Version    bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("sqgen", flag.ContinueOnError)
	fs.StringVar(&flags.Input, "input", "", "path to the input terms CSV")
	fs.StringVar(&flags.Output, "output", "queries.txt", "file to save generated queries")
	fs.StringVar(&flags.Metadata, "metadata", "", "optional path for the per-query metadata CSV")
	fs.StringVar(&flags.Summary, "summary", "", "optional path for the append-only run summary CSV")
	fs.StringVar(&flags.SummaryDB, "summary-db", "", "optional path for the run summary SQLite database")
	fs.StringVar(&flags.Config, "config", "", "path to sqgen.yml (default: next to the input file)")
	fs.StringVar(&flags.MainColumn, "main-column", "", "column to generate one query per value for")
	fs.StringVar(&flags.Inter, "inter", "", "operator joining groups: AND, OR, or NOT")
	fs.StringVar(&flags.Quote, "quote", "", "default term quoting: none or double_quote")
	fs.StringVar(&flags.Intra, "intra", "", "default operator joining terms inside a group")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server exposing the query tools")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	ctx := context.Background()

	if flags.ServeMCP {
		return mcptools.RunStdio(ctx, mcptools.NewServer())
	}

	if flags.Input == "" {
		return errors.New("missing required -input")
	}

	log := logging.New(flags.Verbose, os.Stderr)

	tbl, err := table.Read(flags.Input)
	if err != nil {
		return err
	}
	log.Debug().Int("columns", len(tbl.Columns())).Int("rows", tbl.RowCount()).
		Str("input", flags.Input).Msg("table loaded")

	var cfg *config.File
	if flags.Config != "" {
		cfg, err = config.LoadPath(flags.Config)
	} else {
		cfg, err = config.Load(filepath.Dir(flags.Input))
	}
	if err != nil {
		return err
	}

	plan, err := cfg.Resolve(tbl.Columns(), config.Overrides{
		MainColumn:    flags.MainColumn,
		InterOperator: flags.Inter,
		Quote:         flags.Quote,
		IntraOperator: flags.Intra,
	})
	if err != nil {
		return err
	}

	gen, err := query.NewGenerator(tbl, plan)
	if err != nil {
		return err
	}
	res, err := gen.Run(ctx)
	if err != nil {
		// Fatal: no output file is written on a failed run.
		return err
	}

	if err := output.WriteQueries(flags.Output, res, plan.MainColumn); err != nil {
		return err
	}
	if flags.Metadata != "" {
		if err := output.WriteMetadata(flags.Metadata, res, plan); err != nil {
			return err
		}
		log.Info().Str("path", flags.Metadata).Msg("metadata written")
	}

	if err := recordSummary(ctx, flags, tbl, plan, res); err != nil {
		return err
	}

	for _, f := range res.Failures {
		log.Warn().Str("label", f.Label).Err(f.Err).Msg("label skipped")
	}
	log.Info().Int("queries", len(res.Queries)).Int("skipped", len(res.Failures)).
		Str("path", flags.Output).Msg("queries saved")

	return nil
}

// recordSummary appends the run to the audit log when -summary or
// -summary-db is set.
func recordSummary(ctx context.Context, flags cliFlags, tbl *table.Table, plan query.Plan, res *query.Result) error {
	if flags.Summary == "" && flags.SummaryDB == "" {
		return nil
	}

	var store audit.Store
	var err error
	switch {
	case flags.SummaryDB != "":
		store, err = audit.OpenSQLiteStore(ctx, flags.SummaryDB)
	default:
		store = audit.NewCSVStore(flags.Summary)
	}
	if err != nil {
		return err
	}
	defer store.Close()

	termsTotal := 0
	for _, col := range tbl.Columns() {
		termsTotal += len(tbl.Values(col))
	}

	return store.Record(ctx, audit.Summary{
		RunID:        audit.NewRunID(),
		Timestamp:    time.Now().UTC(),
		InputFile:    flags.Input,
		MainColumn:   plan.MainColumn,
		GroupCount:   len(plan.Columns),
		TermsTotal:   termsTotal,
		QueryCount:   len(res.Queries),
		FailedLabels: len(res.Failures),
		GroupLogic:   output.FormatGroupLogic(plan),
	})
}
