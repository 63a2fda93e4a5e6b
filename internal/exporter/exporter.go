// Package exporter serializes a token collection into the supported
// output formats. Exporters are read-only and deterministic: the same
// tokens and options always produce byte-identical files, with output
// order following the input token order (or category-sorted order when
// grouping), never map iteration order.
package exporter

import (
	"fmt"

	"bennypowers.dev/dtx/internal/tokens"
)

// Format identifies a supported output format.
type Format string

const (
	FormatStyleDictionary Format = "style-dictionary"
	FormatDTCG            Format = "w3c-dtcg"
	FormatCSS             Format = "css"
	FormatTailwind        Format = "tailwind"
	FormatTypeScript      Format = "typescript"
)

// AllFormats lists every output format in a stable order.
var AllFormats = []Format{
	FormatStyleDictionary, FormatDTCG, FormatCSS, FormatTailwind, FormatTypeScript,
}

// ParseFormat returns the Format matching s.
func ParseFormat(s string) (Format, bool) {
	for _, f := range AllFormats {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Options configures an export operation.
type Options struct {
	// Formats to generate, in order.
	Formats []Format

	// IncludeTypes filters tokens before export; empty means all.
	IncludeTypes []tokens.Type

	// GroupByCategory groups CSS output by token category and nests
	// the Tailwind color palette by path segments.
	GroupByCategory bool

	// IncludeTypeDefinitions adds key-union types to the TypeScript
	// module.
	IncludeTypeDefinitions bool

	// GenerateDocs includes token descriptions as comments where the
	// format supports them.
	GenerateDocs bool

	// CSSPrefix is prepended to every CSS custom property name.
	CSSPrefix string

	// TSNamespace wraps the TypeScript declarations in a namespace.
	TSNamespace string
}

// GeneratedFile is the unit of exporter output.
type GeneratedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Format  Format `json:"format"`
}

// Result is the outcome of a (possibly multi-format) export.
type Result struct {
	Files      []GeneratedFile `json:"files"`
	TokenCount int             `json:"tokenCount"`
	Formats    []Format        `json:"formats"`
}

// Export serializes the collection into every requested format. An
// unrecognized format contributes zero files rather than an error, so
// a multi-format export partially succeeds for the formats it
// recognizes. Every recognized format emits at least one file, even
// for an empty token list.
func Export(collection *tokens.Collection, opts Options) (*Result, error) {
	filtered := collection.FilterTypes(opts.IncludeTypes...)

	result := &Result{TokenCount: len(filtered)}
	for _, format := range opts.Formats {
		files, err := exportFormat(filtered, format, opts)
		if err != nil {
			return nil, err
		}
		if files == nil {
			continue
		}
		result.Files = append(result.Files, files...)
		result.Formats = append(result.Formats, format)
	}
	return result, nil
}

// Preview returns the content of the first file the format would
// generate, for UI display.
func Preview(collection *tokens.Collection, format Format, opts Options) (string, error) {
	files, err := exportFormat(collection.FilterTypes(opts.IncludeTypes...), format, opts)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	return files[0].Content, nil
}

// exportFormat dispatches to one format's exporter. Unknown formats
// yield (nil, nil).
func exportFormat(toks []*tokens.Token, format Format, opts Options) ([]GeneratedFile, error) {
	switch format {
	case FormatStyleDictionary:
		return exportStyleDictionary(toks, opts)
	case FormatDTCG:
		return exportDTCG(toks, opts)
	case FormatCSS:
		return exportCSS(toks, opts)
	case FormatTailwind:
		return exportTailwind(toks, opts)
	case FormatTypeScript:
		return exportTypeScript(toks, opts)
	default:
		return nil, nil
	}
}
