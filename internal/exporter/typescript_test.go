package exporter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/dtx/internal/exporter"
	"bennypowers.dev/dtx/internal/tokens"
)

func TestExportTypeScript(t *testing.T) {
	c := collect(
		&tokens.Token{Name: "colors/primary", Value: "#3B82F6", Type: tokens.TypeColor},
		&tokens.Token{Name: "spacing/sm", Value: 8.0, Type: tokens.TypeSpacing},
		&tokens.Token{Name: "spacing/lg", Value: 32.0, Type: tokens.TypeSpacing},
	)

	t.Run("one const per populated bucket plus combined theme", func(t *testing.T) {
		content, err := exporter.Preview(c, exporter.FormatTypeScript, exporter.Options{})
		require.NoError(t, err)

		assert.Contains(t, content, "export const colors = {")
		assert.Contains(t, content, "export const spacing = {")
		assert.NotContains(t, content, "export const shadows")
		assert.Contains(t, content, "export const theme = {\n  colors,\n  spacing,\n} as const;")
		assert.Contains(t, content, `"colors-primary": "#3B82F6"`)
	})

	t.Run("scale buckets nest without the category segment", func(t *testing.T) {
		content, err := exporter.Preview(c, exporter.FormatTypeScript, exporter.Options{})
		require.NoError(t, err)

		assert.Contains(t, content, `"sm": "8px"`)
		assert.NotContains(t, content, `"spacing": {`, "bucket must not nest its own name")
	})

	t.Run("type definitions on request", func(t *testing.T) {
		plain, err := exporter.Preview(c, exporter.FormatTypeScript, exporter.Options{})
		require.NoError(t, err)
		assert.NotContains(t, plain, "export type")

		typed, err := exporter.Preview(c, exporter.FormatTypeScript, exporter.Options{IncludeTypeDefinitions: true})
		require.NoError(t, err)
		assert.Contains(t, typed, "export type ColorsToken = keyof typeof colors;")
		assert.Contains(t, typed, "export type SpacingToken = keyof typeof spacing;")
	})

	t.Run("namespace wrapping", func(t *testing.T) {
		content, err := exporter.Preview(c, exporter.FormatTypeScript, exporter.Options{TSNamespace: "Tokens"})
		require.NoError(t, err)
		assert.Contains(t, content, "export namespace Tokens {")
		for _, line := range strings.Split(content, "\n") {
			if strings.Contains(line, "export const colors") {
				assert.True(t, strings.HasPrefix(line, "  "), "declarations are indented inside the namespace")
			}
		}
	})
}
