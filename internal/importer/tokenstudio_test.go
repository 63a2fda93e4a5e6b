package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/importer"
	"bennypowers.dev/dtx/internal/tokens"
)

func TestImportTokenStudio(t *testing.T) {
	t.Run("theme sets prefix token names", func(t *testing.T) {
		content := `{
			"light": {"bg": {"value": "#FFFFFF", "type": "color"}},
			"dark": {"bg": {"value": "#111111", "type": "color"}},
			"$metadata": {"tokenSetOrder": ["light", "dark"]}
		}`
		c, _, err := importer.Import(content, detect.SourceTokenStudio, importer.Options{})
		require.NoError(t, err)
		require.Len(t, c.Tokens, 2)

		// Sets walk in sorted order.
		assert.Equal(t, "dark/bg", c.Tokens[0].Name)
		assert.Equal(t, "light/bg", c.Tokens[1].Name)
	})

	t.Run("single global set elides the prefix", func(t *testing.T) {
		content := `{
			"global": {
				"colors": {"red": {"value": "#FF0000", "type": "color"}},
				"sizing": {"sm": {"value": 8, "type": "sizing"}}
			}
		}`
		c, _, err := importer.Import(content, detect.SourceTokenStudio, importer.Options{})
		require.NoError(t, err)
		require.Len(t, c.Tokens, 2)
		assert.Equal(t, "colors/red", c.Tokens[0].Name)
		assert.Equal(t, "sizing/sm", c.Tokens[1].Name)
		assert.Equal(t, tokens.TypeDimension, c.Tokens[1].Type)
	})

	t.Run("plugin type vocabulary maps in", func(t *testing.T) {
		content := `{
			"global": {
				"type": {
					"body": {"value": 16, "type": "fontSizes"},
					"heading": {"value": "Inter", "type": "fontFamilies"}
				}
			}
		}`
		c, _, err := importer.Import(content, detect.SourceTokenStudio, importer.Options{})
		require.NoError(t, err)
		require.Len(t, c.Tokens, 2)
		assert.Equal(t, tokens.TypeFontSize, c.Tokens[0].Type)
		assert.Equal(t, tokens.TypeFontFamily, c.Tokens[1].Type)
	})

	t.Run("no theme sets is a parse error", func(t *testing.T) {
		_, _, err := importer.Import(`{"$metadata": {}}`, detect.SourceTokenStudio, importer.Options{})
		require.Error(t, err)
	})
}
