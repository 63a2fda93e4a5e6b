// Package mapping decorates raw design-tool values (hex colors,
// pixel sizes, font stacks) with known semantic token names for UI
// display. It is a static lookup layer only — the import/export
// pipeline never consults it.
package mapping

import (
	"strconv"
	"strings"
)

// ColorTokenName returns the token name mapped to a raw color value.
// Input is normalized to 6-digit uppercase #-prefixed hex, so "#fff",
// "#FFF" and "#ffffff" all resolve alike. ok is false on no match.
func ColorTokenName(value string) (string, bool) {
	hex, ok := normalizeHex(value)
	if !ok {
		return "", false
	}
	name, ok := colorTokens[hex]
	return name, ok
}

// SpacingTokenName returns the token name for an exact spacing value
// in pixels.
func SpacingTokenName(px float64) (string, bool) {
	name, ok := spacingTokens[formatNumber(px)]
	return name, ok
}

// RadiusTokenName returns the token name for an exact border radius
// in pixels.
func RadiusTokenName(px float64) (string, bool) {
	name, ok := radiusTokens[formatNumber(px)]
	return name, ok
}

// FontSizeTokenName returns the token name for an exact font size in
// pixels.
func FontSizeTokenName(px float64) (string, bool) {
	name, ok := fontSizeTokens[formatNumber(px)]
	return name, ok
}

// FontFamilyTokenName returns the token name for an exact font family
// string.
func FontFamilyTokenName(family string) (string, bool) {
	name, ok := fontFamilyTokens[strings.TrimSpace(family)]
	return name, ok
}

// normalizeHex expands 3-digit hex and uppercases, returning ok=false
// for anything that is not a hex color literal.
func normalizeHex(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	digits := v[1:]
	for _, r := range digits {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		if !isHex {
			return "", false
		}
	}
	switch len(digits) {
	case 3:
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		return strings.ToUpper(b.String()), true
	case 6:
		return "#" + strings.ToUpper(digits), true
	default:
		return "", false
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
