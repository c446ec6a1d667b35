package mcptools

// --- MCP tool types for the query server mode (--serve-mcp) ---
// These tools are exposed when the binary runs as an MCP server, letting
// an agent generate queries from a CSV without shelling out.

// GenerateQueriesInput is the input for the generate_queries MCP tool.
type GenerateQueriesInput struct {
	InputPath     string `json:"inputPath" jsonschema:"path to the terms CSV file"`
	ConfigPath    string `json:"configPath,omitempty" jsonschema:"path to a sqgen.yml run configuration"`
	MainColumn    string `json:"mainColumn,omitempty" jsonschema:"column to generate one query per value for (empty: one combined query)"`
	InterOperator string `json:"interOperator,omitempty" jsonschema:"operator joining groups: AND, OR, or NOT"`
	Quote         string `json:"quote,omitempty" jsonschema:"default term quoting: none or double_quote"`
	IntraOperator string `json:"intraOperator,omitempty" jsonschema:"default operator joining terms inside a group: AND, OR, or NOT"`
}

// GeneratedQuery is one query in a GenerateQueriesOutput.
type GeneratedQuery struct {
	Label     string `json:"label,omitempty"`
	Query     string `json:"query"`
	TermCount int    `json:"termCount"`
}

// SkippedLabel reports a grouped-mode label that produced no query.
type SkippedLabel struct {
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

// GenerateQueriesOutput is the result of the generate_queries MCP tool.
type GenerateQueriesOutput struct {
	Queries []GeneratedQuery `json:"queries"`
	Skipped []SkippedLabel   `json:"skipped,omitempty"`
}

// InspectTableInput is the input for the inspect_table MCP tool.
type InspectTableInput struct {
	InputPath string `json:"inputPath" jsonschema:"path to the terms CSV file"`
}

// ColumnInfo summarizes one column of an inspected table.
type ColumnInfo struct {
	Name          string `json:"name"`
	DistinctTerms int    `json:"distinctTerms"`
}

// InspectTableOutput is the result of the inspect_table MCP tool.
type InspectTableOutput struct {
	Columns  []ColumnInfo `json:"columns"`
	RowCount int          `json:"rowCount"`
}
