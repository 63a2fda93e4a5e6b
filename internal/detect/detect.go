// Package detect classifies raw token file content into one of the
// supported source formats. Detection is shape-based: it never builds
// tokens, it only decides which importer should run.
package detect

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/dtx/internal/collections"
)

// Source identifies a supported input format.
type Source string

const (
	SourceCSV             Source = "csv"
	SourceDTCG            Source = "w3c-dtcg"
	SourceTokenStudio     Source = "token-studio"
	SourceStyleDictionary Source = "style-dictionary"
	SourceManual          Source = "manual"
	SourceUnknown         Source = "unknown"
)

// themeSetKeys are top-level group names typical of a Tokens Studio
// export, where tokens are organized into theme sets.
var themeSetKeys = collections.NewSet(
	"global", "light", "dark", "core", "semantic",
	"$themes", "$metadata",
)

// dtcgSchemaHosts are substrings of $schema URLs that identify the
// community-group format.
var dtcgSchemaHosts = []string{
	"design-tokens.github.io",
	"tr.designtokens.org",
	"designtokens.org",
}

// Detect inspects raw content (and optionally its file name) and
// returns the source format, or SourceUnknown when no rule matches.
// Callers must surface SourceUnknown as a user-facing error before
// attempting an import.
//
// Decision order: CSV by extension or header shape, then JSON shape
// rules (DTCG, Tokens Studio, Style Dictionary, flat manual map),
// then a YAML fallback for DTCG files with a .yaml/.yml extension.
func Detect(content, fileName string) Source {
	if looksLikeCSV(content, fileName) {
		return SourceCSV
	}

	var data map[string]any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(content)), &data); err != nil {
		// DTCG token files may also be authored in YAML.
		if hasYAMLExtension(fileName) {
			var ydata map[string]any
			if yaml.Unmarshal([]byte(content), &ydata) == nil && hasDTCGLeaf(ydata) {
				return SourceDTCG
			}
		}
		return SourceUnknown
	}

	if isDTCG(data) {
		return SourceDTCG
	}
	if hasValueTypeLeaf(data) {
		if hasThemeSetGrouping(data) {
			return SourceTokenStudio
		}
		return SourceStyleDictionary
	}

	// Parseable JSON object with no recognizable token shape: treat it
	// as a flat key → value map.
	return SourceManual
}

// looksLikeCSV reports whether the content should be handed to the
// CSV importer: a .csv extension, or a first non-blank line with at
// least two comma-separated fields and no leading brace.
func looksLikeCSV(content, fileName string) bool {
	if strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		return true
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			return false
		}
		return len(strings.Split(line, ",")) >= 2
	}
	return false
}

func hasYAMLExtension(fileName string) bool {
	lower := strings.ToLower(fileName)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

// isDTCG reports whether the data declares the community-group schema
// or contains any leaf shaped { $value: ..., $type?: ... }.
func isDTCG(data map[string]any) bool {
	if schemaURL, ok := data["$schema"].(string); ok {
		for _, host := range dtcgSchemaHosts {
			if strings.Contains(schemaURL, host) {
				return true
			}
		}
	}
	return hasDTCGLeaf(data)
}

// hasDTCGLeaf recursively checks for a { $value: ... } leaf object.
func hasDTCGLeaf(data map[string]any) bool {
	for _, value := range data {
		obj, ok := value.(map[string]any)
		if !ok {
			continue
		}
		if _, hasValue := obj["$value"]; hasValue {
			return true
		}
		if hasDTCGLeaf(obj) {
			return true
		}
	}
	return false
}

// hasValueTypeLeaf recursively checks for a { value: ..., type: <string> }
// leaf object, the shape shared by Style Dictionary and Tokens Studio
// exports.
func hasValueTypeLeaf(data map[string]any) bool {
	for _, value := range data {
		obj, ok := value.(map[string]any)
		if !ok {
			continue
		}
		if isValueTypeLeaf(obj) {
			return true
		}
		if hasValueTypeLeaf(obj) {
			return true
		}
	}
	return false
}

func isValueTypeLeaf(obj map[string]any) bool {
	if _, hasValue := obj["value"]; !hasValue {
		return false
	}
	_, hasType := obj["type"].(string)
	return hasType
}

// hasThemeSetGrouping reports whether top-level keys look like Tokens
// Studio theme sets (global/light/dark groups, or the $themes and
// $metadata bookkeeping keys).
func hasThemeSetGrouping(data map[string]any) bool {
	for key := range data {
		if themeSetKeys.Has(strings.ToLower(key)) {
			return true
		}
	}
	return false
}
