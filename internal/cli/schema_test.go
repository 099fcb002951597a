package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema(RootCmd("test"))

	assert.Equal(t, "shopmate", schema.Name)

	var rootFlags []string
	for _, f := range schema.Flags {
		rootFlags = append(rootFlags, f.Name)
	}
	assert.ElementsMatch(t, []string{"json", "env-file", "log-level"}, rootFlags)

	subs := map[string]CommandSchema{}
	for _, sub := range schema.Subcommands {
		subs[sub.Name] = sub
	}
	require.Len(t, subs, 4)
	assert.Contains(t, subs, "compare")
	assert.Contains(t, subs, "recommend")
	assert.Contains(t, subs, "reviews")

	taste, ok := subs["taste"]
	require.True(t, ok)
	var flags []string
	for _, f := range taste.Flags {
		flags = append(flags, f.Name)
	}
	assert.ElementsMatch(t, []string{"keyword", "query"}, flags)
}

func TestHandleHelpJSON(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		var out bytes.Buffer
		handled, err := HandleHelpJSON(RootCmd("test"), []string{"taste", "--help-json"}, &out)
		require.NoError(t, err)
		assert.True(t, handled)

		var schema CommandSchema
		require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
		assert.Equal(t, "taste", schema.Name)
	})

	t.Run("unknown subcommand falls back to root", func(t *testing.T) {
		var out bytes.Buffer
		handled, err := HandleHelpJSON(RootCmd("test"), []string{"nope", "--help-json"}, &out)
		require.NoError(t, err)
		assert.True(t, handled)

		var schema CommandSchema
		require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
		assert.Equal(t, "shopmate", schema.Name)
	})

	t.Run("absent", func(t *testing.T) {
		var out bytes.Buffer
		handled, err := HandleHelpJSON(RootCmd("test"), []string{"compare", "a", "b"}, &out)
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Empty(t, out.String())
	})
}
