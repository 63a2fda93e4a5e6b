package exporter

import (
	"fmt"
	"strings"

	"bennypowers.dev/dtx/internal/collections"
	"bennypowers.dev/dtx/internal/tokens"
)

// Unit suffixes for numeric values, by type. Types not listed are
// emitted as bare numbers.
var (
	pxTypes = map[tokens.Type]bool{
		tokens.TypeSpacing:      true,
		tokens.TypeFontSize:     true,
		tokens.TypeBorderRadius: true,
		tokens.TypeBorderWidth:  true,
		tokens.TypeDimension:    true,
	}
	msTypes = map[tokens.Type]bool{
		tokens.TypeDuration: true,
	}
)

// CSSVariableName derives the custom property name for a token:
// path separators become hyphens, camel humps are split with a hyphen
// and lowercased, and the optional prefix is hyphen-joined in front.
// "colors/Primary" with prefix "ds" yields "--ds-colors-primary".
func CSSVariableName(name, prefix string) string {
	var b strings.Builder
	b.WriteString("--")
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte('-')
	}

	prev := byte('-')
	for _, r := range name {
		switch {
		case r == '/' || r == '.' || r == '_' || r == ' ':
			if prev != '-' {
				b.WriteByte('-')
				prev = '-'
			}
		case r >= 'A' && r <= 'Z':
			if prev != '-' {
				b.WriteByte('-')
			}
			lower := byte(r - 'A' + 'a')
			b.WriteByte(lower)
			prev = lower
		default:
			b.WriteRune(r)
			prev = byte(r)
		}
	}
	return b.String()
}

// cssValue renders a token value with its unit suffix.
func cssValue(tok *tokens.Token) string {
	if _, isNumber := tok.NumberValue(); !isNumber {
		return tok.StringValue()
	}
	switch {
	case pxTypes[tok.Type]:
		return tok.StringValue() + "px"
	case msTypes[tok.Type]:
		return tok.StringValue() + "ms"
	default:
		return tok.StringValue()
	}
}

// exportCSS emits one file containing a single :root block of custom
// properties. With GroupByCategory the tokens are grouped in category
// order; comment headers appear only when GenerateDocs is also set.
func exportCSS(toks []*tokens.Token, opts Options) ([]GeneratedFile, error) {
	var b strings.Builder
	b.WriteString(":root {\n")

	if opts.GroupByCategory {
		writeGroupedCSS(&b, toks, opts)
	} else {
		for _, tok := range toks {
			writeCSSDeclaration(&b, tok, opts.CSSPrefix)
		}
	}

	b.WriteString("}\n")
	return []GeneratedFile{
		{Path: "tokens.css", Content: b.String(), Format: FormatCSS},
	}, nil
}

func writeGroupedCSS(b *strings.Builder, toks []*tokens.Token, opts Options) {
	groups := map[string][]*tokens.Token{}
	categories := collections.NewSet[string]()
	for _, tok := range toks {
		cat := tok.Category
		if cat == "" {
			cat = "uncategorized"
		}
		categories.Add(cat)
		groups[cat] = append(groups[cat], tok)
	}

	for i, cat := range collections.SortedStrings(categories) {
		if opts.GenerateDocs {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(b, "  /* %s */\n", cat)
		}
		for _, tok := range groups[cat] {
			writeCSSDeclaration(b, tok, opts.CSSPrefix)
		}
	}
}

func writeCSSDeclaration(b *strings.Builder, tok *tokens.Token, prefix string) {
	fmt.Fprintf(b, "  %s: %s;\n", CSSVariableName(tok.Name, prefix), cssValue(tok))
}
