package exporter

import (
	"fmt"
	"strings"

	"bennypowers.dev/dtx/internal/tokens"
)

// tsBuckets maps each token type to the constant name it exports
// under, in emission order.
var tsBuckets = []struct {
	typ  tokens.Type
	name string
}{
	{tokens.TypeColor, "colors"},
	{tokens.TypeSpacing, "spacing"},
	{tokens.TypeFontSize, "fontSize"},
	{tokens.TypeFontFamily, "fontFamily"},
	{tokens.TypeFontWeight, "fontWeight"},
	{tokens.TypeLineHeight, "lineHeight"},
	{tokens.TypeLetterSpacing, "letterSpacing"},
	{tokens.TypeBorderRadius, "borderRadius"},
	{tokens.TypeBorderWidth, "borderWidth"},
	{tokens.TypeShadow, "shadows"},
	{tokens.TypeOpacity, "opacity"},
	{tokens.TypeDuration, "durations"},
	{tokens.TypeCubicBezier, "cubicBezier"},
	{tokens.TypeDimension, "dimensions"},
	{tokens.TypeOther, "other"},
}

// nestedTSTypes are buckets emitted as nested objects when their token
// names are multi-segment, using the same path-splitting rule as the
// JSON tree exporters. Their numeric leaves carry a px suffix.
var nestedTSTypes = map[tokens.Type]bool{
	tokens.TypeSpacing:      true,
	tokens.TypeFontSize:     true,
	tokens.TypeBorderRadius: true,
}

// exportTypeScript emits one typed object module: a constant per
// populated type bucket, a combined theme object, and optionally one
// derived key-union type per bucket.
func exportTypeScript(toks []*tokens.Token, opts Options) ([]GeneratedFile, error) {
	var (
		declarations []string
		bucketNames  []string
	)

	for _, bucket := range tsBuckets {
		var members []*tokens.Token
		for _, tok := range toks {
			if tok.Type == bucket.typ {
				members = append(members, tok)
			}
		}
		if len(members) == 0 {
			continue
		}

		literal, err := tsBucketLiteral(members, bucket.typ)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, fmt.Sprintf("export const %s = %s as const;", bucket.name, literal))
		bucketNames = append(bucketNames, bucket.name)
	}

	var b strings.Builder
	b.WriteString("/**\n * Generated design tokens. Do not edit by hand.\n */\n\n")

	var body strings.Builder
	for _, decl := range declarations {
		body.WriteString(decl)
		body.WriteString("\n\n")
	}

	body.WriteString("export const theme = {\n")
	for _, name := range bucketNames {
		fmt.Fprintf(&body, "  %s,\n", name)
	}
	body.WriteString("} as const;\n")

	if opts.IncludeTypeDefinitions {
		body.WriteString("\n")
		for _, name := range bucketNames {
			fmt.Fprintf(&body, "export type %sToken = keyof typeof %s;\n", exportedIdentifier(name), name)
		}
	}

	if opts.TSNamespace != "" {
		fmt.Fprintf(&b, "export namespace %s {\n%s}\n", opts.TSNamespace, indentLines(body.String(), "  "))
	} else {
		b.WriteString(body.String())
	}

	return []GeneratedFile{
		{Path: "tokens.ts", Content: b.String(), Format: FormatTypeScript},
	}, nil
}

// tsBucketLiteral renders one bucket as an object literal. Scale-like
// buckets nest by path segments with px-suffixed numeric leaves;
// everything else is a flat hyphen-joined map of raw values.
func tsBucketLiteral(members []*tokens.Token, typ tokens.Type) (string, error) {
	bucket := newObject()
	if nestedTSTypes[typ] {
		for _, tok := range members {
			// The leading path segment is the category (e.g. the
			// "spacing" in "spacing/sm") and would duplicate the
			// bucket name, so it is dropped from multi-segment names.
			segments := strings.Split(tok.Name, "/")
			if len(segments) > 1 {
				segments = segments[1:]
			}
			bucket.SetPath(segments, scaleValue(tok))
		}
	} else {
		for _, tok := range members {
			bucket.Set(flatKey(tok.Name), tok.Value)
		}
	}
	literal, err := marshalDocument(bucket)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(literal, "\n"), nil
}

// exportedIdentifier uppercases the first letter of a bucket name for
// use in a type name.
func exportedIdentifier(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// indentLines prefixes every non-empty line with the given indent.
func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
