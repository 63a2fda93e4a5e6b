package exporter

import (
	"fmt"
	"strings"

	"bennypowers.dev/dtx/internal/tokens"
)

// exportTailwind emits a Tailwind theme object as both a CommonJS
// config file and a pure ES-module re-export. Top-level theme keys are
// present only for types that have at least one token.
func exportTailwind(toks []*tokens.Token, opts Options) ([]GeneratedFile, error) {
	theme := buildTailwindTheme(toks, opts)
	themeJSON, err := marshalDocument(theme)
	if err != nil {
		return nil, err
	}
	themeJSON = strings.TrimSuffix(themeJSON, "\n")

	config := fmt.Sprintf(`/** Generated design token theme. */
const theme = %s;

module.exports = {
  theme: {
    extend: theme,
  },
};
`, themeJSON)

	esModule := fmt.Sprintf(`/** Generated design token theme. */
export const theme = %s;

export default theme;
`, themeJSON)

	return []GeneratedFile{
		{Path: "tailwind.config.js", Content: config, Format: FormatTailwind},
		{Path: "theme.js", Content: esModule, Format: FormatTailwind},
	}, nil
}

func buildTailwindTheme(toks []*tokens.Token, opts Options) *object {
	theme := newObject()

	byType := func(t tokens.Type) []*tokens.Token {
		var out []*tokens.Token
		for _, tok := range toks {
			if tok.Type == t {
				out = append(out, tok)
			}
		}
		return out
	}

	if colors := byType(tokens.TypeColor); len(colors) > 0 {
		palette := newObject()
		for _, tok := range colors {
			if opts.GroupByCategory {
				palette.SetPath(strings.Split(tok.Name, "/"), tok.StringValue())
			} else {
				palette.Set(flatKey(tok.Name), tok.StringValue())
			}
		}
		theme.Set("colors", palette)
	}

	for _, bucket := range []struct {
		key string
		typ tokens.Type
	}{
		{"spacing", tokens.TypeSpacing},
		{"fontSize", tokens.TypeFontSize},
		{"borderRadius", tokens.TypeBorderRadius},
	} {
		scale := byType(bucket.typ)
		if len(scale) == 0 {
			continue
		}
		entries := newObject()
		for _, tok := range scale {
			entries.Set(lastSegment(tok.Name), scaleValue(tok))
		}
		theme.Set(bucket.key, entries)
	}

	if families := byType(tokens.TypeFontFamily); len(families) > 0 {
		entries := newObject()
		for _, tok := range families {
			entries.Set(lastSegment(tok.Name), splitFontFamily(tok.StringValue()))
		}
		theme.Set("fontFamily", entries)
	}

	if weights := byType(tokens.TypeFontWeight); len(weights) > 0 {
		entries := newObject()
		for _, tok := range weights {
			entries.Set(lastSegment(tok.Name), tok.Value)
		}
		theme.Set("fontWeight", entries)
	}

	if shadows := byType(tokens.TypeShadow); len(shadows) > 0 {
		entries := newObject()
		for _, tok := range shadows {
			entries.Set(lastSegment(tok.Name), tok.StringValue())
		}
		theme.Set("boxShadow", entries)
	}

	return theme
}

// scaleValue renders spacing-like values: numbers get a px suffix,
// strings pass through raw.
func scaleValue(tok *tokens.Token) string {
	if _, isNumber := tok.NumberValue(); isNumber {
		return tok.StringValue() + "px"
	}
	return tok.StringValue()
}

// splitFontFamily splits a comma-separated font stack into an array.
func splitFontFamily(value string) []string {
	parts := strings.Split(value, ",")
	families := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			families = append(families, trimmed)
		}
	}
	return families
}

func flatKey(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
