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

func importDTCG(t *testing.T, content string) *tokens.Collection {
	t.Helper()
	c, _, err := importer.Import(content, detect.SourceDTCG, importer.Options{FileName: "tokens.json"})
	require.NoError(t, err)
	return c
}

func TestImportDTCG(t *testing.T) {
	t.Run("nested groups flatten to slash paths", func(t *testing.T) {
		c := importDTCG(t, `{
			"colors": {
				"primary": {
					"500": {"$value": "#3B82F6", "$type": "color"}
				}
			}
		}`)
		require.Len(t, c.Tokens, 1)
		tok := c.Tokens[0]
		assert.Equal(t, "colors/primary/500", tok.Name)
		assert.Equal(t, "#3B82F6", tok.Value)
		assert.Equal(t, tokens.TypeColor, tok.Type)
		assert.Equal(t, "colors", tok.Category)
	})

	t.Run("group $type inherits to descendants", func(t *testing.T) {
		c := importDTCG(t, `{
			"spacing": {
				"$type": "spacing",
				"sm": {"$value": 8},
				"lg": {"$value": 32}
			}
		}`)
		require.Len(t, c.Tokens, 2)
		for _, tok := range c.Tokens {
			assert.Equal(t, tokens.TypeSpacing, tok.Type, tok.Name)
		}
	})

	t.Run("leaf $type overrides inherited", func(t *testing.T) {
		c := importDTCG(t, `{
			"misc": {
				"$type": "spacing",
				"fade": {"$value": 200, "$type": "duration"}
			}
		}`)
		require.Len(t, c.Tokens, 1)
		assert.Equal(t, tokens.TypeDuration, c.Tokens[0].Type)
	})

	t.Run("description and extensions round in", func(t *testing.T) {
		c := importDTCG(t, `{
			"colors": {
				"brand": {
					"$value": "#0066CC",
					"$description": "Primary brand color",
					"$extensions": {"com.figma": {"styleId": "S:1"}}
				}
			}
		}`)
		tok := c.Tokens[0]
		assert.Equal(t, "Primary brand color", tok.Description)
		require.Contains(t, tok.Extensions, "com.figma")
	})

	t.Run("brace references are captured", func(t *testing.T) {
		c := importDTCG(t, `{
			"colors": {
				"accent": {"$value": "{colors.brand}", "$type": "color"}
			}
		}`)
		tok := c.Tokens[0]
		assert.Equal(t, "colors/brand", tok.Reference)
		assert.True(t, tok.IsReference())
	})

	t.Run("keys walk in sorted order", func(t *testing.T) {
		c := importDTCG(t, `{
			"b": {"$value": 2, "$type": "spacing"},
			"a": {"$value": 1, "$type": "spacing"},
			"c": {"$value": 3, "$type": "spacing"}
		}`)
		names := []string{c.Tokens[0].Name, c.Tokens[1].Name, c.Tokens[2].Name}
		assert.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run("composite values are rejected", func(t *testing.T) {
		_, _, err := importer.Import(`{
			"shadow": {
				"card": {"$value": {"offsetX": "0", "blur": "4px"}}
			}
		}`, detect.SourceDTCG, importer.Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, importer.ErrInvalidLeaf))
		assert.Contains(t, err.Error(), "shadow/card")
	})

	t.Run("yaml document by extension", func(t *testing.T) {
		content := "colors:\n  primary:\n    $value: \"#FF0000\"\n    $type: color\n"
		c, _, err := importer.Import(content, detect.SourceDTCG, importer.Options{FileName: "tokens.yaml"})
		require.NoError(t, err)
		require.Len(t, c.Tokens, 1)
		assert.Equal(t, "colors/primary", c.Tokens[0].Name)
	})

	t.Run("jsonc comments tolerated", func(t *testing.T) {
		c := importDTCG(t, "{\n  // palette\n  \"colors\": {\"primary\": {\"$value\": \"#FF0000\"}}\n}")
		require.Len(t, c.Tokens, 1)
	})
}
