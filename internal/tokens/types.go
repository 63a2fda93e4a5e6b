// Package tokens defines the canonical in-memory model for design
// tokens. Importers produce these values, the validator and exporters
// consume them; nothing in this package performs I/O.
package tokens

import (
	"strconv"
	"time"
)

// Type classifies a design token value.
type Type string

// The closed set of token types. Importers map format-specific type
// vocabularies onto these; exporters map them back out.
const (
	TypeColor         Type = "color"
	TypeSpacing       Type = "spacing"
	TypeFontSize      Type = "fontSize"
	TypeFontFamily    Type = "fontFamily"
	TypeFontWeight    Type = "fontWeight"
	TypeLineHeight    Type = "lineHeight"
	TypeLetterSpacing Type = "letterSpacing"
	TypeBorderRadius  Type = "borderRadius"
	TypeBorderWidth   Type = "borderWidth"
	TypeShadow        Type = "shadow"
	TypeOpacity       Type = "opacity"
	TypeDuration      Type = "duration"
	TypeCubicBezier   Type = "cubicBezier"
	TypeDimension     Type = "dimension"
	TypeOther         Type = "other"
)

// AllTypes lists every token type in a stable order.
var AllTypes = []Type{
	TypeColor, TypeSpacing, TypeFontSize, TypeFontFamily, TypeFontWeight,
	TypeLineHeight, TypeLetterSpacing, TypeBorderRadius, TypeBorderWidth,
	TypeShadow, TypeOpacity, TypeDuration, TypeCubicBezier, TypeDimension,
	TypeOther,
}

// ParseType returns the Type matching s, or (TypeOther, false) when s
// is not one of the known type names.
func ParseType(s string) (Type, bool) {
	for _, t := range AllTypes {
		if string(t) == s {
			return t, true
		}
	}
	return TypeOther, false
}

// Token is a single named design value.
//
// Name is a hierarchical path using "/" as separator (e.g.
// "colors/primary/500") and is unique within a collection; duplicates
// are a validation error, never silently overwritten.
type Token struct {
	Name string `json:"name"`

	// Value is either a string (colors, font families, shadow CSS
	// strings) or a float64 (spacing, font sizes, radii, line heights,
	// opacity, durations in ms). Importers narrow raw input to these
	// two shapes and reject anything else.
	Value any `json:"value"`

	Type Type `json:"type"`

	// Category is an optional free-text grouping label (e.g.
	// "primary", "semantic").
	Category string `json:"category,omitempty"`

	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty"`

	// Reference names another token this one aliases, e.g.
	// "colors/primary/500". References are never resolved
	// automatically; see internal/resolver for opt-in resolution.
	Reference string `json:"reference,omitempty"`

	// Extensions is an open bag of format-specific metadata. Only the
	// W3C DTCG format round-trips it.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// StringValue returns the token value rendered as a string. Numeric
// values are formatted without unnecessary decimals (8, not 8.000000).
func (t *Token) StringValue() string {
	switch v := t.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// NumberValue returns the token value as a float64 when it is numeric.
func (t *Token) NumberValue() (float64, bool) {
	switch v := t.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// IsNumeric reports whether the token value is a number.
func (t *Token) IsNumeric() bool {
	_, ok := t.NumberValue()
	return ok
}

// Metadata records the provenance of a collection.
type Metadata struct {
	// Source is the detected input format (e.g. "w3c-dtcg", "csv").
	Source string `json:"source"`

	// ImportedAt is the wall-clock time of the most recent import that
	// touched this collection.
	ImportedAt time.Time `json:"importedAt"`

	// FileName is the original upload file name, when known.
	FileName string `json:"fileName,omitempty"`
}

// Collection is a named, versioned set of tokens.
//
// Collections are created by importers and mutated only by the
// pipeline's merge/replace operations. The validator and exporters
// treat them as read-only.
type Collection struct {
	Name     string    `json:"name"`
	Version  string    `json:"version"`
	Tokens   []*Token  `json:"tokens"`
	Metadata *Metadata `json:"metadata,omitempty"`
}
