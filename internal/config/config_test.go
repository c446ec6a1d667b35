package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/sqgen/internal/query"
)

func TestLoad_NoFile_ZeroValue(t *testing.T) {
	f, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, f.Groups)
	assert.Empty(t, f.MainColumn)
}

func TestLoad_ReadsYml(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
mainColumn: Platform
interOperator: OR
defaults:
  quote: double_quote
  operator: OR
groups:
  Exclude:
    operator: NOT
    quote: none
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqgen.yml"), data, 0o644))

	f, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Platform", f.MainColumn)
	assert.Equal(t, "OR", f.InterOperator)
	assert.Equal(t, "double_quote", f.Defaults.Quote)
	assert.Equal(t, "NOT", f.Groups["Exclude"].Operator)
}

func TestLoadPath_Missing_Error(t *testing.T) {
	_, err := LoadPath(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
}

func TestResolve_BuiltinDefaults(t *testing.T) {
	f := &File{}

	plan, err := f.Resolve([]string{"A", "B"}, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, plan.Columns)
	assert.Equal(t, query.OpAnd, plan.Inter)
	assert.Empty(t, plan.MainColumn, "no main column means combined mode")
	assert.Equal(t, query.Settings{Quote: query.QuoteNone, Intra: query.OpOr}, plan.Config["A"])
}

func TestResolve_GroupEntryBeatsDefaults(t *testing.T) {
	f := &File{
		Defaults: GroupSetting{Quote: "double_quote", Operator: "OR"},
		Groups: map[string]GroupSetting{
			"Exclude": {Operator: "NOT"},
		},
	}

	plan, err := f.Resolve([]string{"Topic", "Exclude"}, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, query.Settings{Quote: query.QuoteDouble, Intra: query.OpOr}, plan.Config["Topic"])
	assert.Equal(t, query.Settings{Quote: query.QuoteDouble, Intra: query.OpNot}, plan.Config["Exclude"],
		"partial group entries inherit the unset fields from defaults")
}

func TestResolve_FlagOverridesBeatFile(t *testing.T) {
	f := &File{
		MainColumn:    "A",
		InterOperator: "AND",
		Defaults:      GroupSetting{Quote: "none"},
	}
	ov := Overrides{MainColumn: "B", InterOperator: "NOT", Quote: "double_quote"}

	plan, err := f.Resolve([]string{"A", "B"}, ov)
	require.NoError(t, err)

	assert.Equal(t, "B", plan.MainColumn)
	assert.Equal(t, query.OpNot, plan.Inter)
	assert.Equal(t, query.QuoteDouble, plan.Config["A"].Quote)
}

func TestResolve_UnknownMainColumn_Error(t *testing.T) {
	f := &File{MainColumn: "Nope"}

	_, err := f.Resolve([]string{"A"}, Overrides{})
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Error(), "Nope")
}

func TestResolve_GroupEntryForUnknownColumn_Error(t *testing.T) {
	f := &File{Groups: map[string]GroupSetting{"Ghost": {Quote: "none"}}}

	_, err := f.Resolve([]string{"A"}, Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestResolve_BadOperator_Error(t *testing.T) {
	f := &File{Groups: map[string]GroupSetting{"A": {Operator: "XOR"}}}

	_, err := f.Resolve([]string{"A"}, Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XOR")
}
