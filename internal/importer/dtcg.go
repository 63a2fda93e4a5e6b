package importer

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/tokens"
)

// importDTCG parses a W3C Design Tokens Community Group format file.
// Accepts JSON (with comments) and, for .yaml/.yml files, YAML.
// Returns the extracted tokens plus any collection name discovered in
// the file's top-level $name key.
func importDTCG(content, fileName string) ([]*tokens.Token, string, error) {
	data, err := decodeTokenDocument(content, fileName, detect.SourceDTCG)
	if err != nil {
		return nil, "", err
	}

	discovered, _ := data["$name"].(string)

	var toks []*tokens.Token
	if err := extractDTCG(data, "", "", &toks); err != nil {
		return nil, "", err
	}
	return toks, discovered, nil
}

// extractDTCG walks the nested group structure. A node with a $value
// key is a token; everything else is a group. Group-level $type is
// inherited by descendant tokens that don't declare their own.
// Keys are visited in sorted order so imports are deterministic.
func extractDTCG(data map[string]any, path, inheritedType string, out *[]*tokens.Token) error {
	for _, key := range sortedKeys(data) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		node, ok := data[key].(map[string]any)
		if !ok {
			return NewInvalidLeafError(joinPath(path, key), "expected a group or token object")
		}

		name := joinPath(path, key)
		if rawValue, isToken := node["$value"]; isToken {
			tok, err := dtcgToken(name, rawValue, node, inheritedType)
			if err != nil {
				return err
			}
			*out = append(*out, tok)
			continue
		}

		groupType := inheritedType
		if t, ok := node["$type"].(string); ok {
			groupType = t
		}
		if err := extractDTCG(node, name, groupType, out); err != nil {
			return err
		}
	}
	return nil
}

// dtcgToken narrows one { $value, ... } leaf into a Token.
func dtcgToken(name string, rawValue any, node map[string]any, inheritedType string) (*tokens.Token, error) {
	value, err := narrowScalar(name, rawValue)
	if err != nil {
		return nil, err
	}

	explicitType := inheritedType
	if t, ok := node["$type"].(string); ok {
		explicitType = t
	}

	tok := &tokens.Token{
		Name:     name,
		Value:    value,
		Type:     ResolveType(explicitType, name, value),
		Category: category(name),
	}
	if s, ok := value.(string); ok {
		if ref, isRef := tokens.ReferenceName(s); isRef {
			tok.Reference = ref
		}
	}
	if desc, ok := node["$description"].(string); ok {
		tok.Description = desc
	}
	if ext, ok := node["$extensions"].(map[string]any); ok {
		tok.Extensions = ext
	}
	return tok, nil
}

// narrowScalar accepts string and numeric token values and rejects
// everything else. Composite values (shadow objects, gradient arrays)
// are not part of the canonical model; coercing them silently would
// lose data, so the import fails instead.
func narrowScalar(path string, raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return nil, NewInvalidLeafError(path, "value must be a string or a number")
	}
}

// decodeTokenDocument decodes content into a raw map. JSON is cleaned
// of comments first; YAML is attempted for .yaml/.yml file names when
// JSON decoding fails.
func decodeTokenDocument(content, fileName string, source detect.Source) (map[string]any, error) {
	var data map[string]any
	jsonErr := json.Unmarshal(jsonc.ToJSON([]byte(content)), &data)
	if jsonErr == nil {
		return data, nil
	}

	lower := strings.ToLower(fileName)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		var ydata map[string]any
		if yamlErr := yaml.Unmarshal([]byte(content), &ydata); yamlErr == nil {
			return ydata, nil
		}
	}
	return nil, NewParseError(string(source), fileName, jsonErr.Error())
}

func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
