package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/dtx/internal/tokens"
	"bennypowers.dev/dtx/internal/validator"
)

func TestCheckContrast(t *testing.T) {
	t.Run("black on white is maximal", func(t *testing.T) {
		result, err := validator.CheckContrast("#000000", "#FFFFFF")
		require.NoError(t, err)
		assert.InDelta(t, 21.0, result.Ratio, 0.01)
		assert.True(t, result.PassesAA)
		assert.True(t, result.PassesAALarge)
		assert.True(t, result.PassesAAA)
		assert.True(t, result.PassesAAALarge)
	})

	t.Run("identical colors are minimal", func(t *testing.T) {
		result, err := validator.CheckContrast("#808080", "#808080")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, result.Ratio, 0.001)
		assert.False(t, result.PassesAALarge)
	})

	t.Run("ratio is symmetric", func(t *testing.T) {
		ab, err := validator.CheckContrast("#336699", "#FFCC00")
		require.NoError(t, err)
		ba, err := validator.CheckContrast("#FFCC00", "#336699")
		require.NoError(t, err)
		assert.Equal(t, ab.Ratio, ba.Ratio)
	})

	t.Run("threshold boundaries", func(t *testing.T) {
		// #767676 on white is the canonical just-passes-AA gray.
		result, err := validator.CheckContrast("#767676", "#FFFFFF")
		require.NoError(t, err)
		assert.True(t, result.PassesAA)
		assert.False(t, result.PassesAAA)
	})

	t.Run("named and functional colors parse", func(t *testing.T) {
		_, err := validator.CheckContrast("white", "rgb(0, 0, 0)")
		require.NoError(t, err)
	})

	t.Run("unparseable color errors", func(t *testing.T) {
		_, err := validator.CheckContrast("#000000", "not-a-color")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not-a-color")
	})
}

func TestContrastPairRule(t *testing.T) {
	t.Run("low contrast text on background warns", func(t *testing.T) {
		result := validator.Validate(collect(
			&tokens.Token{Name: "colors/text", Value: "#AAAAAA", Type: tokens.TypeColor},
			&tokens.Token{Name: "colors/background", Value: "#FFFFFF", Type: tokens.TypeColor},
		))
		require.Contains(t, codes(result.Warnings), validator.CodeLowContrast)
		for _, issue := range result.Warnings {
			if issue.Code == validator.CodeLowContrast {
				assert.ElementsMatch(t, []string{"colors/text", "colors/background"}, issue.TokenNames)
			}
		}
	})

	t.Run("passing pair stays quiet", func(t *testing.T) {
		result := validator.Validate(collect(
			&tokens.Token{Name: "colors/text", Value: "#111111", Type: tokens.TypeColor},
			&tokens.Token{Name: "colors/background", Value: "#FFFFFF", Type: tokens.TypeColor},
		))
		assert.NotContains(t, codes(result.Warnings), validator.CodeLowContrast)
	})

	t.Run("unparseable members are skipped", func(t *testing.T) {
		result := validator.Validate(collect(
			&tokens.Token{Name: "colors/text", Value: "{colors.base}", Type: tokens.TypeColor, Reference: "colors/base"},
			&tokens.Token{Name: "colors/background", Value: "#FFFFFF", Type: tokens.TypeColor},
		))
		assert.NotContains(t, codes(result.Warnings), validator.CodeLowContrast)
	})
}
