package validator

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/dtx/internal/collections"
	"bennypowers.dev/dtx/internal/tokens"
)

// nonNegativeTypes are numeric token types for which a negative value
// is almost certainly a mistake.
var nonNegativeTypes = collections.NewSet(
	tokens.TypeSpacing, tokens.TypeBorderRadius, tokens.TypeFontSize,
)

// checkNumericRanges warns on negative spacing/radius/font-size values
// and on opacity values outside [0, 1].
func checkNumericRanges(collection *tokens.Collection, result *Result) {
	for _, tok := range collection.Tokens {
		n, ok := tok.NumberValue()
		if !ok {
			continue
		}
		if nonNegativeTypes.Has(tok.Type) && n < 0 {
			result.add(Issue{
				Severity:   SeverityWarning,
				Code:       CodeNegativeValue,
				Message:    fmt.Sprintf("%s token %q has negative value %s", tok.Type, tok.Name, tok.StringValue()),
				TokenNames: []string{tok.Name},
			})
		}
		if tok.Type == tokens.TypeOpacity && (n < 0 || n > 1) {
			result.add(Issue{
				Severity:   SeverityWarning,
				Code:       CodeOpacityOutOfRange,
				Message:    fmt.Sprintf("opacity token %q has value %s outside [0, 1]", tok.Name, tok.StringValue()),
				TokenNames: []string{tok.Name},
			})
		}
	}
}

// Heuristics for spotting a palette that has primitives but no
// semantic layer on top.
var (
	basicColorWords = []string{
		"blue", "red", "green", "yellow", "orange", "purple", "pink",
		"gray", "grey", "black", "white", "cyan", "teal", "indigo",
	}
	semanticColorWords = []string{
		"primary", "secondary", "error", "success", "warning",
	}
	numericSuffixRegexp = regexp.MustCompile(`\d{2,3}$`)
)

// checkSemanticCompleteness emits info-level hints: color palettes
// made only of primitives (basic color words or numeric scale
// suffixes) with no semantic names, and spacing scales too small to
// be a scale.
func checkSemanticCompleteness(collection *tokens.Collection, result *Result) {
	var hasPrimitive, hasSemantic bool
	for _, tok := range collection.OfType(tokens.TypeColor) {
		lower := strings.ToLower(tok.Name)
		if !hasPrimitive {
			if numericSuffixRegexp.MatchString(lower) {
				hasPrimitive = true
			} else {
				for _, word := range basicColorWords {
					if strings.Contains(lower, word) {
						hasPrimitive = true
						break
					}
				}
			}
		}
		for _, word := range semanticColorWords {
			if strings.Contains(lower, word) {
				hasSemantic = true
				break
			}
		}
	}
	if hasPrimitive && !hasSemantic {
		result.add(Issue{
			Severity:   SeverityInfo,
			Code:       CodeMissingSemanticColors,
			Message:    "color tokens look like raw palette values with no semantic layer",
			Suggestion: "add semantic tokens such as colors/primary or colors/error that reference the palette",
		})
	}

	if n := len(collection.OfType(tokens.TypeSpacing)); n >= 1 && n <= 4 {
		result.add(Issue{
			Severity:   SeverityInfo,
			Code:       CodeIncompleteSpacing,
			Message:    fmt.Sprintf("only %d spacing token(s) defined", n),
			Suggestion: "a spacing scale usually has at least 5 steps (xs through xl)",
		})
	}
}
