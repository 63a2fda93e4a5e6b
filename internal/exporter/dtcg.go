package exporter

import (
	"strings"

	"bennypowers.dev/dtx/internal/tokens"
)

// DTCGSchemaURL is emitted as the $schema of every generated DTCG
// document.
const DTCGSchemaURL = "https://design-tokens.github.io/community-group/format/"

// dtcgTypes maps internal types onto the community-group vocabulary,
// which is dimension-oriented: concrete length types collapse into
// "dimension" and unitless ones into "number". Types with no entry
// omit $type.
var dtcgTypes = map[tokens.Type]string{
	tokens.TypeColor:         "color",
	tokens.TypeSpacing:       "dimension",
	tokens.TypeFontSize:      "dimension",
	tokens.TypeLetterSpacing: "dimension",
	tokens.TypeBorderRadius:  "dimension",
	tokens.TypeBorderWidth:   "dimension",
	tokens.TypeDimension:     "dimension",
	tokens.TypeLineHeight:    "number",
	tokens.TypeOpacity:       "number",
	tokens.TypeFontFamily:    "fontFamily",
	tokens.TypeFontWeight:    "fontWeight",
	tokens.TypeShadow:        "shadow",
	tokens.TypeDuration:      "duration",
	tokens.TypeCubicBezier:   "cubicBezier",
}

// exportDTCG emits a W3C Design Tokens Community Group document:
// nested groups with { $value, $type?, $description?, $extensions? }
// leaves and a top-level $schema key.
func exportDTCG(toks []*tokens.Token, opts Options) ([]GeneratedFile, error) {
	tree := newObject()
	tree.Set("$schema", DTCGSchemaURL)

	for _, tok := range toks {
		leaf := newObject()
		leaf.Set("$value", exportValue(tok))
		if dtcgType, ok := dtcgTypes[tok.Type]; ok {
			leaf.Set("$type", dtcgType)
		}
		if tok.Description != "" {
			leaf.Set("$description", tok.Description)
		}
		if tok.Extensions != nil {
			// Passed through verbatim; this is the only format that
			// round-trips extensions.
			leaf.Set("$extensions", tok.Extensions)
		}
		tree.SetPath(strings.Split(tok.Name, "/"), leaf)
	}

	content, err := marshalDocument(tree)
	if err != nil {
		return nil, err
	}
	return []GeneratedFile{
		{Path: "tokens.json", Content: content, Format: FormatDTCG},
	}, nil
}
