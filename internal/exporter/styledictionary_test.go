package exporter_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/exporter"
	"bennypowers.dev/dtx/internal/importer"
	"bennypowers.dev/dtx/internal/tokens"
)

func TestExportStyleDictionary(t *testing.T) {
	t.Run("emits token tree and build config", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "colors/primary", Value: "#3B82F6", Type: tokens.TypeColor},
			&tokens.Token{Name: "spacing/sm", Value: 8.0, Type: tokens.TypeSpacing},
		)
		result, err := exporter.Export(c, exporter.Options{
			Formats: []exporter.Format{exporter.FormatStyleDictionary},
		})
		require.NoError(t, err)
		require.Len(t, result.Files, 2)
		assert.Equal(t, "tokens.json", result.Files[0].Path)
		assert.Equal(t, "config.json", result.Files[1].Path)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Files[0].Content), &doc))
		colors := doc["colors"].(map[string]any)
		primary := colors["primary"].(map[string]any)
		assert.Equal(t, "#3B82F6", primary["value"])
		assert.Equal(t, "color", primary["type"])

		spacing := doc["spacing"].(map[string]any)["sm"].(map[string]any)
		assert.Equal(t, 8.0, spacing["value"])
		assert.Equal(t, "size", spacing["type"], "length types collapse into the size umbrella")

		var config map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Files[1].Content), &config))
		assert.Contains(t, config, "platforms")
	})

	t.Run("letter spacing keeps its own type name", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "letter-spacing/wide", Value: 0.5, Type: tokens.TypeLetterSpacing},
		)
		content, err := exporter.Preview(c, exporter.FormatStyleDictionary, exporter.Options{})
		require.NoError(t, err)
		assert.Contains(t, content, `"type": "letterSpacing"`)
	})

	t.Run("references keep their marker", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "colors/link", Value: "#0066CC", Type: tokens.TypeColor, Reference: "colors/base"},
		)
		content, err := exporter.Preview(c, exporter.FormatStyleDictionary, exporter.Options{})
		require.NoError(t, err)
		assert.Contains(t, content, `"{colors.base}"`)
	})

	t.Run("descriptions only with docs enabled", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "colors/primary", Value: "#3B82F6", Type: tokens.TypeColor, Description: "Brand color"},
		)
		plain, err := exporter.Preview(c, exporter.FormatStyleDictionary, exporter.Options{})
		require.NoError(t, err)
		assert.NotContains(t, plain, "Brand color")

		documented, err := exporter.Preview(c, exporter.FormatStyleDictionary, exporter.Options{GenerateDocs: true})
		require.NoError(t, err)
		assert.Contains(t, documented, `"comment":`)
	})
}

func TestStyleDictionaryRoundTrip(t *testing.T) {
	original := collect(
		&tokens.Token{Name: "colors/primary", Value: "#3B82F6", Type: tokens.TypeColor, Category: "colors"},
		&tokens.Token{Name: "spacing/sm", Value: 8.0, Type: tokens.TypeSpacing, Category: "spacing"},
		&tokens.Token{Name: "font/size/base", Value: 16.0, Type: tokens.TypeFontSize, Category: "font"},
		&tokens.Token{Name: "radius/md", Value: 4.0, Type: tokens.TypeBorderRadius, Category: "radius"},
		&tokens.Token{Name: "letter-spacing/wide", Value: 0.5, Type: tokens.TypeLetterSpacing, Category: "letter-spacing"},
	)

	content, err := exporter.Preview(original, exporter.FormatStyleDictionary, exporter.Options{})
	require.NoError(t, err)
	require.Equal(t, detect.SourceStyleDictionary, detect.Detect(content, "tokens.json"))

	reimported, _, err := importer.Import(content, detect.SourceStyleDictionary, importer.Options{})
	require.NoError(t, err)
	require.Len(t, reimported.Tokens, len(original.Tokens))

	for _, want := range original.Tokens {
		got := reimported.Lookup(want.Name)
		require.NotNil(t, got, want.Name)
		assert.Equal(t, want.Value, got.Value, want.Name)
		assert.Equal(t, want.Type, got.Type, want.Name)
	}
}
