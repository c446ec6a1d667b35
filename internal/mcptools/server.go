package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewServer creates an MCP server with the query tools registered:
// generate_queries and inspect_table.
func NewServer() *mcp.Server {
	svc := NewQueryService()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sqgen",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_queries",
		Description: "Generate search-engine query strings from a CSV of term columns. Returns the queries and any skipped labels.",
	}, svc.GenerateQueries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_table",
		Description: "List a term CSV's columns with distinct term counts, for choosing settings and a main column.",
	}, svc.InspectTable)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
