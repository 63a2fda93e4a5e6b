package importer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/importer"
	"bennypowers.dev/dtx/internal/tokens"
)

func TestImportCSV(t *testing.T) {
	t.Run("name value type columns", func(t *testing.T) {
		content := "name,value,type\ncolors/primary,#3B82F6,color\nspacing/sm,8,spacing\n"
		c, warnings, err := importer.Import(content, detect.SourceCSV, importer.Options{FileName: "tokens.csv"})
		require.NoError(t, err)
		assert.Empty(t, warnings)
		require.Len(t, c.Tokens, 2)

		primary := c.Tokens[0]
		assert.Equal(t, "colors/primary", primary.Name)
		assert.Equal(t, "#3B82F6", primary.Value)
		assert.Equal(t, tokens.TypeColor, primary.Type)
		assert.Equal(t, "colors", primary.Category)

		sm := c.Tokens[1]
		assert.Equal(t, 8.0, sm.Value, "numeric-looking values become numbers")
		assert.Equal(t, tokens.TypeSpacing, sm.Type)
	})

	t.Run("header matched case-insensitively with optional columns", func(t *testing.T) {
		content := "Name,Value,Category,Description\nbrand/primary,#0066CC,brand,Main brand color\n"
		c, _, err := importer.Import(content, detect.SourceCSV, importer.Options{})
		require.NoError(t, err)
		tok := c.Tokens[0]
		assert.Equal(t, "brand", tok.Category)
		assert.Equal(t, "Main brand color", tok.Description)
		assert.Equal(t, tokens.TypeColor, tok.Type, "type inferred when column absent")
	})

	t.Run("malformed rows warn and are skipped", func(t *testing.T) {
		content := "name,value\ncolors/primary,#FF0000\n,missing-name\nspacing/sm,8\n"
		c, warnings, err := importer.Import(content, detect.SourceCSV, importer.Options{})
		require.NoError(t, err)
		require.Len(t, c.Tokens, 2)
		require.Len(t, warnings, 1)
		assert.Equal(t, 3, warnings[0].Line)
	})

	t.Run("zero valid rows is a format error", func(t *testing.T) {
		content := "name,value\n,\n"
		_, _, err := importer.Import(content, detect.SourceCSV, importer.Options{FileName: "empty.csv"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, importer.ErrEmptyCSV))
	})

	t.Run("missing name or value column is a format error", func(t *testing.T) {
		content := "token,hex\nprimary,#FF0000\n"
		_, _, err := importer.Import(content, detect.SourceCSV, importer.Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, importer.ErrUnparsableContent))
	})
}
