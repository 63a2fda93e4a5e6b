package exporter

import (
	"strings"

	"bennypowers.dev/dtx/internal/tokens"
)

// styleDictionaryTypes maps internal types onto the Style Dictionary
// vocabulary. Types with no entry omit the type field.
var styleDictionaryTypes = map[tokens.Type]string{
	tokens.TypeColor:         "color",
	tokens.TypeSpacing:       "size",
	tokens.TypeFontSize:      "size",
	tokens.TypeBorderRadius:  "size",
	tokens.TypeBorderWidth:   "size",
	tokens.TypeDimension:     "size",
	tokens.TypeLetterSpacing: "letterSpacing",
	tokens.TypeFontFamily:    "fontFamily",
	tokens.TypeFontWeight:    "fontWeight",
	tokens.TypeLineHeight:    "lineHeight",
	tokens.TypeShadow:        "shadow",
	tokens.TypeOpacity:       "opacity",
	tokens.TypeDuration:      "time",
	tokens.TypeCubicBezier:   "cubicBezier",
}

// styleDictionaryConfig is the static build configuration emitted
// alongside the token tree. It describes CSS and JS output targets and
// is structural boilerplate, not derived from token content.
const styleDictionaryConfig = `{
  "source": ["tokens.json"],
  "platforms": {
    "css": {
      "transformGroup": "css",
      "buildPath": "build/css/",
      "files": [
        {
          "destination": "variables.css",
          "format": "css/variables"
        }
      ]
    },
    "js": {
      "transformGroup": "js",
      "buildPath": "build/js/",
      "files": [
        {
          "destination": "tokens.js",
          "format": "javascript/es6"
        }
      ]
    }
  }
}
`

// exportStyleDictionary emits a nested { value, type, comment? } token
// tree plus the static build configuration.
func exportStyleDictionary(toks []*tokens.Token, opts Options) ([]GeneratedFile, error) {
	tree := newObject()
	for _, tok := range toks {
		leaf := newObject()
		leaf.Set("value", exportValue(tok))
		if sdType, ok := styleDictionaryTypes[tok.Type]; ok {
			leaf.Set("type", sdType)
		}
		if opts.GenerateDocs && tok.Description != "" {
			leaf.Set("comment", tok.Description)
		}
		tree.SetPath(strings.Split(tok.Name, "/"), leaf)
	}

	content, err := marshalDocument(tree)
	if err != nil {
		return nil, err
	}
	return []GeneratedFile{
		{Path: "tokens.json", Content: content, Format: FormatStyleDictionary},
		{Path: "config.json", Content: styleDictionaryConfig, Format: FormatStyleDictionary},
	}, nil
}

// exportValue renders a token value for reference-capable formats:
// aliases keep their {dot.path} marker, everything else is emitted
// literally.
func exportValue(tok *tokens.Token) any {
	if tok.Reference != "" {
		return tokens.ReferenceMarker(tok.Reference)
	}
	return tok.Value
}
