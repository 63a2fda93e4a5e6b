package importer

import (
	"strings"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/tokens"
)

// importStyleDictionary parses a Style Dictionary properties file:
// nested groups with { value, type, comment? } leaves.
func importStyleDictionary(content, fileName string) ([]*tokens.Token, error) {
	data, err := decodeTokenDocument(content, fileName, detect.SourceStyleDictionary)
	if err != nil {
		return nil, err
	}

	var toks []*tokens.Token
	if err := extractValueTypeLeaves(data, "", &toks); err != nil {
		return nil, err
	}
	return toks, nil
}

// extractValueTypeLeaves walks nested groups looking for { value, ... }
// leaves, the shape shared by Style Dictionary and Tokens Studio.
// Keys are visited in sorted order so imports are deterministic.
func extractValueTypeLeaves(data map[string]any, path string, out *[]*tokens.Token) error {
	for _, key := range sortedKeys(data) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		node, ok := data[key].(map[string]any)
		if !ok {
			return NewInvalidLeafError(joinPath(path, key), "expected a group or token object")
		}

		name := joinPath(path, key)
		rawValue, isToken := node["value"]
		if !isToken {
			if err := extractValueTypeLeaves(node, name, out); err != nil {
				return err
			}
			continue
		}

		value, err := narrowScalar(name, rawValue)
		if err != nil {
			return err
		}

		explicitType, _ := node["type"].(string)
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
		// Style Dictionary documents with "comment", Tokens Studio
		// with "description".
		if comment, ok := node["comment"].(string); ok {
			tok.Description = comment
		} else if desc, ok := node["description"].(string); ok {
			tok.Description = desc
		}
		*out = append(*out, tok)
	}
	return nil
}
