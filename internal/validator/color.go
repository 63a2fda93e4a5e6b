package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/dtx/internal/tokens"
)

// Accepted color value shapes, as an explicit rule table. Named CSS
// colors are handled separately through csscolorparser, which knows
// the full keyword list.
var (
	shortHexRegexp  = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
	longHexRegexp   = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbRegexp       = regexp.MustCompile(`^rgb\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\)$`)
	rgbaRegexp      = regexp.MustCompile(`^rgba\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*(0|1|0?\.\d+|1\.0+)\s*\)$`)
	hslRegexp       = regexp.MustCompile(`^hsla?\(\s*\d{1,3}(\.\d+)?\s*,\s*\d{1,3}(\.\d+)?%\s*,\s*\d{1,3}(\.\d+)?%\s*(,\s*(0|1|0?\.\d+|1\.0+)\s*)?\)$`)
	namedColorShape = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// isValidColorValue reports whether a color token's string value is in
// an accepted format.
func isValidColorValue(value string) bool {
	if _, isRef := tokens.ReferenceName(value); isRef {
		return true
	}
	if shortHexRegexp.MatchString(value) || longHexRegexp.MatchString(value) {
		return true
	}
	if rgbRegexp.MatchString(value) || rgbaRegexp.MatchString(value) || hslRegexp.MatchString(value) {
		return true
	}
	if namedColorShape.MatchString(value) {
		_, err := csscolorparser.Parse(value)
		return err == nil
	}
	return false
}

// checkColorFormats validates color-typed token values. An
// unrecognized format is a warning; a 3-digit hex additionally gets a
// SHORT_HEX info suggesting the 6-digit form.
func checkColorFormats(collection *tokens.Collection, result *Result) {
	for _, tok := range collection.Tokens {
		if tok.Type != tokens.TypeColor {
			continue
		}
		value, ok := tok.Value.(string)
		if !ok || !isValidColorValue(strings.TrimSpace(value)) {
			result.add(Issue{
				Severity:   SeverityWarning,
				Code:       CodeInvalidColorFormat,
				Message:    fmt.Sprintf("color token %q has unrecognized value %q", tok.Name, tok.StringValue()),
				TokenNames: []string{tok.Name},
				Suggestion: "use hex, rgb()/rgba(), hsl()/hsla(), a CSS named color, or a {reference}",
			})
			continue
		}
		if shortHexRegexp.MatchString(strings.TrimSpace(value)) {
			result.add(Issue{
				Severity:   SeverityInfo,
				Code:       CodeShortHex,
				Message:    fmt.Sprintf("color token %q uses 3-digit hex %q", tok.Name, value),
				TokenNames: []string{tok.Name},
				Suggestion: "prefer the 6-digit hex form for consistency",
			})
		}
	}
}
