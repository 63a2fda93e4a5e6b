package importer

import (
	"regexp"
	"strings"

	"bennypowers.dev/dtx/internal/tokens"
)

// colorValuePattern matches string values that look like a color
// literal: hex, rgb()/rgba(), or hsl()/hsla().
var colorValuePattern = regexp.MustCompile(`^(#|rgba?\(|hsla?\()`)

// explicitTypes maps the type vocabularies of every supported input
// format onto the internal token types. Umbrella names that several
// internal types collapse into ("size", "dimension", "number") are
// handled separately; see umbrellaFamilies.
var explicitTypes = map[string]tokens.Type{
	// canonical names
	"color":         tokens.TypeColor,
	"spacing":       tokens.TypeSpacing,
	"fontSize":      tokens.TypeFontSize,
	"fontFamily":    tokens.TypeFontFamily,
	"fontWeight":    tokens.TypeFontWeight,
	"lineHeight":    tokens.TypeLineHeight,
	"letterSpacing": tokens.TypeLetterSpacing,
	"borderRadius":  tokens.TypeBorderRadius,
	"borderWidth":   tokens.TypeBorderWidth,
	"shadow":        tokens.TypeShadow,
	"opacity":       tokens.TypeOpacity,
	"duration":      tokens.TypeDuration,
	"cubicBezier":   tokens.TypeCubicBezier,
	"other":         tokens.TypeOther,

	// Tokens Studio vocabulary
	"fontFamilies": tokens.TypeFontFamily,
	"fontSizes":    tokens.TypeFontSize,
	"fontWeights":  tokens.TypeFontWeight,
	"lineHeights":  tokens.TypeLineHeight,
	"boxShadow":    tokens.TypeShadow,
	"sizing":       tokens.TypeDimension,

	// Style Dictionary vocabulary
	"time": tokens.TypeDuration,
}

// umbrellaFamilies maps ambiguous format type names to the set of
// internal types they may stand for. When an imported token carries an
// umbrella type, the name-path hints narrow it; the first family
// member is the fallback when no hint matches.
var umbrellaFamilies = map[string][]tokens.Type{
	"size": {
		tokens.TypeDimension, tokens.TypeSpacing, tokens.TypeFontSize,
		tokens.TypeBorderRadius, tokens.TypeBorderWidth,
	},
	"dimension": {
		tokens.TypeDimension, tokens.TypeSpacing, tokens.TypeFontSize,
		tokens.TypeLetterSpacing, tokens.TypeBorderRadius, tokens.TypeBorderWidth,
	},
	"number": {
		tokens.TypeLineHeight, tokens.TypeOpacity,
	},
}

// pathHint is one row of the name-based inference table. Hints are
// matched against the token path with separators and case stripped,
// in table order: the more specific entries come first so that
// "font-size" wins over "font".
type pathHint struct {
	match      string
	numberType tokens.Type
	stringType tokens.Type
}

var pathHints = []pathHint{
	{"letterspacing", tokens.TypeLetterSpacing, tokens.TypeLetterSpacing},
	{"lineheight", tokens.TypeLineHeight, tokens.TypeLineHeight},
	{"leading", tokens.TypeLineHeight, tokens.TypeLineHeight},
	{"fontsize", tokens.TypeFontSize, tokens.TypeFontSize},
	{"fontweight", tokens.TypeFontWeight, tokens.TypeFontWeight},
	{"fontfamily", tokens.TypeFontFamily, tokens.TypeFontFamily},
	{"font", tokens.TypeFontSize, tokens.TypeFontFamily},
	{"duration", tokens.TypeDuration, tokens.TypeDuration},
	{"opacity", tokens.TypeOpacity, tokens.TypeOpacity},
	{"shadow", tokens.TypeShadow, tokens.TypeShadow},
	{"radius", tokens.TypeBorderRadius, tokens.TypeBorderRadius},
	{"borderwidth", tokens.TypeBorderWidth, tokens.TypeBorderWidth},
	{"spacing", tokens.TypeSpacing, tokens.TypeSpacing},
	{"space", tokens.TypeSpacing, tokens.TypeSpacing},
	{"gap", tokens.TypeSpacing, tokens.TypeSpacing},
	{"color", tokens.TypeColor, tokens.TypeColor},
}

// normalizePath lowercases a token path and strips separators so hint
// matching treats "font-size", "fontSize" and "font/size" alike.
func normalizePath(path string) string {
	replacer := strings.NewReplacer("-", "", "_", "", "/", "", ".", "", " ", "")
	return replacer.Replace(strings.ToLower(path))
}

// ResolveType determines the internal type for an imported token.
//
// Precedence, pinned as an explicit rule table:
//  1. an exact explicit type from the source format's vocabulary
//  2. an umbrella explicit type ("size", "dimension", "number"),
//     narrowed by path hints within its family
//  3. a color-shaped string value
//  4. a path hint
//  5. bare number ⇒ dimension, anything else ⇒ other
func ResolveType(explicit, path string, value any) tokens.Type {
	if explicit != "" {
		if t, ok := explicitTypes[explicit]; ok {
			return t
		}
		if family, ok := umbrellaFamilies[explicit]; ok {
			return narrowUmbrella(family, path, value)
		}
		// Unrecognized explicit type: fall through to inference.
	}
	return InferType(path, value)
}

// InferType infers a type from the value shape and the token path.
func InferType(path string, value any) tokens.Type {
	if s, ok := value.(string); ok && colorValuePattern.MatchString(strings.TrimSpace(s)) {
		return tokens.TypeColor
	}
	if t, ok := hintType(path, value); ok {
		return t
	}
	if isNumber(value) {
		return tokens.TypeDimension
	}
	return tokens.TypeOther
}

// narrowUmbrella picks the family member suggested by the path hints,
// falling back to the family's first (default) member.
func narrowUmbrella(family []tokens.Type, path string, value any) tokens.Type {
	if t, ok := hintType(path, value); ok {
		for _, member := range family {
			if member == t {
				return t
			}
		}
	}
	return family[0]
}

func hintType(path string, value any) (tokens.Type, bool) {
	normalized := normalizePath(path)
	for _, hint := range pathHints {
		if strings.Contains(normalized, hint.match) {
			if isNumber(value) {
				return hint.numberType, true
			}
			return hint.stringType, true
		}
	}
	return tokens.TypeOther, false
}

func isNumber(value any) bool {
	switch value.(type) {
	case float64, int:
		return true
	}
	return false
}
