package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroup_SingleTerm_NoParens(t *testing.T) {
	g := Group{Name: "Phrase", Terms: []string{"climate change"}, Quote: QuoteDouble, Intra: OpAnd}

	got, err := BuildGroup(g)
	require.NoError(t, err)
	assert.Equal(t, `"climate change"`, got)
}

func TestBuildGroup_MultiTermAnd_PreservesOrder(t *testing.T) {
	g := Group{Name: "Topic", Terms: []string{"t1", "t2", "t3"}, Intra: OpAnd}

	got, err := BuildGroup(g)
	require.NoError(t, err)
	assert.Equal(t, "(t1 AND t2 AND t3)", got)
}

func TestBuildGroup_MultiTermOr(t *testing.T) {
	g := Group{Name: "Platform", Terms: []string{"Twitter", "Facebook"}, Quote: QuoteDouble, Intra: OpOr}

	got, err := BuildGroup(g)
	require.NoError(t, err)
	assert.Equal(t, `("Twitter" OR "Facebook")`, got)
}

func TestBuildGroup_NotIsLeftFold(t *testing.T) {
	g := Group{Name: "Exclude", Terms: []string{"a", "b", "c"}, Intra: OpNot}

	got, err := BuildGroup(g)
	require.NoError(t, err)
	assert.Equal(t, "(a NOT b NOT c)", got,
		"every term after the first is negated relative to the accumulated expression")
	assert.NotContains(t, got, "(NOT", "NOT is never a unary prefix on the first term")
}

func TestBuildGroup_EmptyGroup_ValidationError(t *testing.T) {
	_, err := BuildGroup(Group{Name: "Empty"})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Empty", ve.Group)
}

func TestBuildGroup_BlankTermNamesGroup(t *testing.T) {
	_, err := BuildGroup(Group{Name: "Bad", Terms: []string{"ok", "  "}})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Bad", ve.Group)
}
