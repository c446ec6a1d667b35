package mcptools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terms.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestGenerateQueries_Combined(t *testing.T) {
	path := writeCSV(t, "Platform,Phrase\nTwitter,climate change\nFacebook,\n")
	svc := NewQueryService()

	_, out, err := svc.GenerateQueries(context.Background(), nil, GenerateQueriesInput{
		InputPath:     path,
		Quote:         "double_quote",
		IntraOperator: "AND",
		InterOperator: "AND",
	})
	require.NoError(t, err)

	require.Len(t, out.Queries, 1)
	assert.Empty(t, out.Queries[0].Label)
	assert.Equal(t, `("Twitter" AND "Facebook") AND "climate change"`, out.Queries[0].Query)
	assert.Equal(t, 3, out.Queries[0].TermCount)
	assert.Empty(t, out.Skipped)
}

func TestGenerateQueries_GroupedReportsSkipped(t *testing.T) {
	path := writeCSV(t, "Platform,Phrase\nTwitter,flood\nOrphan,\n")
	svc := NewQueryService()

	_, out, err := svc.GenerateQueries(context.Background(), nil, GenerateQueriesInput{
		InputPath:  path,
		MainColumn: "Platform",
	})
	require.NoError(t, err)

	require.Len(t, out.Queries, 1)
	assert.Equal(t, "Twitter", out.Queries[0].Label)
	assert.Equal(t, "flood", out.Queries[0].Query)

	require.Len(t, out.Skipped, 1)
	assert.Equal(t, "Orphan", out.Skipped[0].Label)
}

func TestGenerateQueries_MissingInput_Error(t *testing.T) {
	svc := NewQueryService()

	_, _, err := svc.GenerateQueries(context.Background(), nil, GenerateQueriesInput{
		InputPath: filepath.Join(t.TempDir(), "absent.csv"),
	})
	require.Error(t, err)
}

func TestGenerateQueries_UnknownMainColumn_Error(t *testing.T) {
	path := writeCSV(t, "Platform\nTwitter\n")
	svc := NewQueryService()

	_, _, err := svc.GenerateQueries(context.Background(), nil, GenerateQueriesInput{
		InputPath:  path,
		MainColumn: "Nope",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")
}

func TestInspectTable(t *testing.T) {
	path := writeCSV(t, "Platform,Phrase\nTwitter,flood\nTwitter,storm\n")
	svc := NewQueryService()

	_, out, err := svc.InspectTable(context.Background(), nil, InspectTableInput{InputPath: path})
	require.NoError(t, err)

	assert.Equal(t, 2, out.RowCount)
	require.Len(t, out.Columns, 2)
	assert.Equal(t, ColumnInfo{Name: "Platform", DistinctTerms: 1}, out.Columns[0])
	assert.Equal(t, ColumnInfo{Name: "Phrase", DistinctTerms: 2}, out.Columns[1])
}
