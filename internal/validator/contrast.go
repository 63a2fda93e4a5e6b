package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/dtx/internal/tokens"
)

// WCAG 2.x contrast ratio thresholds.
const (
	contrastAA       = 4.5
	contrastAALarge  = 3.0
	contrastAAA      = 7.0
	contrastAAALarge = 4.5
)

// ContrastResult is the outcome of comparing two colors, a pure
// function of the parsed color pair.
type ContrastResult struct {
	Color1         string  `json:"color1"`
	Color2         string  `json:"color2"`
	Ratio          float64 `json:"ratio"`
	PassesAA       bool    `json:"passesAA"`
	PassesAALarge  bool    `json:"passesAALarge"`
	PassesAAA      bool    `json:"passesAAA"`
	PassesAAALarge bool    `json:"passesAAALarge"`
}

// CheckContrast parses two CSS color strings and computes their WCAG
// contrast ratio. The ratio is symmetric in its arguments.
func CheckContrast(color1, color2 string) (*ContrastResult, error) {
	c1, err := csscolorparser.Parse(color1)
	if err != nil {
		return nil, fmt.Errorf("unsupported color format: %s", color1)
	}
	c2, err := csscolorparser.Parse(color2)
	if err != nil {
		return nil, fmt.Errorf("unsupported color format: %s", color2)
	}

	l1 := relativeLuminance(c1)
	l2 := relativeLuminance(c2)
	ratio := (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)

	return &ContrastResult{
		Color1:         color1,
		Color2:         color2,
		Ratio:          ratio,
		PassesAA:       ratio >= contrastAA,
		PassesAALarge:  ratio >= contrastAALarge,
		PassesAAA:      ratio >= contrastAAA,
		PassesAAALarge: ratio >= contrastAAALarge,
	}, nil
}

// relativeLuminance computes L = 0.2126·R + 0.7152·G + 0.0722·B over
// linearized sRGB channels, per the WCAG definition.
func relativeLuminance(c csscolorparser.Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// textLikeName reports whether a token name suggests a foreground
// (text) role.
func textLikeName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "text") ||
		strings.Contains(lower, "foreground") ||
		strings.Contains(lower, "on-")
}

// backgroundLikeName reports whether a token name suggests a
// background (surface) role.
func backgroundLikeName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "background") ||
		strings.Contains(lower, "surface") ||
		strings.Contains(lower, "bg")
}

// checkContrastPairs computes the WCAG contrast ratio for every
// text-like × background-like color token pair and warns on pairs
// below AA (4.5:1). Colors that fail to parse are skipped without
// raising an issue.
func checkContrastPairs(collection *tokens.Collection, result *Result) {
	colors := collection.OfType(tokens.TypeColor)
	if len(colors) < 2 {
		return
	}

	var textTokens, bgTokens []*tokens.Token
	for _, tok := range colors {
		if textLikeName(tok.Name) {
			textTokens = append(textTokens, tok)
		}
		if backgroundLikeName(tok.Name) {
			bgTokens = append(bgTokens, tok)
		}
	}

	for _, text := range textTokens {
		for _, bg := range bgTokens {
			if text.Name == bg.Name {
				continue
			}
			textValue, ok1 := text.Value.(string)
			bgValue, ok2 := bg.Value.(string)
			if !ok1 || !ok2 {
				continue
			}
			contrast, err := CheckContrast(textValue, bgValue)
			if err != nil {
				continue
			}
			if contrast.Ratio < contrastAA {
				result.add(Issue{
					Severity:   SeverityWarning,
					Code:       CodeLowContrast,
					Message:    fmt.Sprintf("contrast between %q and %q is %.2f:1, below the 4.5:1 AA threshold", text.Name, bg.Name, contrast.Ratio),
					TokenNames: []string{text.Name, bg.Name},
					Suggestion: "darken the text color or lighten the background",
				})
			}
		}
	}
}
