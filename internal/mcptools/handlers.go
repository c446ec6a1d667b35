package mcptools

import (
	"context"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dusk-indust/sqgen/internal/config"
	"github.com/dusk-indust/sqgen/internal/query"
	"github.com/dusk-indust/sqgen/internal/table"
)

// QueryService handles MCP tool calls. Each call loads the table fresh, so
// the server holds no state between calls.
type QueryService struct{}

// NewQueryService creates a QueryService.
func NewQueryService() *QueryService {
	return &QueryService{}
}

// GenerateQueries loads a CSV, resolves the run configuration, and returns
// the generated queries. Per-label failures come back in Skipped; only
// table, configuration, and combined-mode assembly errors fail the call.
func (s *QueryService) GenerateQueries(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateQueriesInput,
) (*mcp.CallToolResult, GenerateQueriesOutput, error) {
	var out GenerateQueriesOutput

	tbl, err := table.Read(input.InputPath)
	if err != nil {
		return nil, out, err
	}

	var cfg *config.File
	if input.ConfigPath != "" {
		cfg, err = config.LoadPath(input.ConfigPath)
	} else {
		cfg, err = config.Load(filepath.Dir(input.InputPath))
	}
	if err != nil {
		return nil, out, err
	}

	plan, err := cfg.Resolve(tbl.Columns(), config.Overrides{
		MainColumn:    input.MainColumn,
		InterOperator: input.InterOperator,
		Quote:         input.Quote,
		IntraOperator: input.IntraOperator,
	})
	if err != nil {
		return nil, out, err
	}

	gen, err := query.NewGenerator(tbl, plan)
	if err != nil {
		return nil, out, err
	}
	res, err := gen.Run(ctx)
	if err != nil {
		return nil, out, err
	}

	for _, q := range res.Queries {
		out.Queries = append(out.Queries, GeneratedQuery{
			Label:     q.Label,
			Query:     q.Query,
			TermCount: q.TermCount,
		})
	}
	for _, f := range res.Failures {
		out.Skipped = append(out.Skipped, SkippedLabel{
			Label:  f.Label,
			Reason: f.Err.Error(),
		})
	}
	return nil, out, nil
}

// InspectTable reports a CSV's columns and distinct term counts, so a
// caller can pick a main column before generating.
func (s *QueryService) InspectTable(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input InspectTableInput,
) (*mcp.CallToolResult, InspectTableOutput, error) {
	var out InspectTableOutput

	tbl, err := table.Read(input.InputPath)
	if err != nil {
		return nil, out, err
	}

	out.RowCount = tbl.RowCount()
	for _, col := range tbl.Columns() {
		out.Columns = append(out.Columns, ColumnInfo{
			Name:          col,
			DistinctTerms: len(tbl.Values(col)),
		})
	}
	return nil, out, nil
}
