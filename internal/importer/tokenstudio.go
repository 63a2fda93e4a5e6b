package importer

import (
	"strings"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/tokens"
)

// importTokenStudio parses a Tokens Studio (Figma plugin) export:
// { value, type } leaves grouped under top-level theme sets such as
// "global", "light" and "dark". The $themes and $metadata bookkeeping
// keys are skipped.
//
// The theme-set name becomes the first path segment of each token
// name, except when the file holds a single set named "global" — that
// prefix carries no information and is elided, which also keeps
// single-set exports round-trippable.
func importTokenStudio(content, fileName string) ([]*tokens.Token, error) {
	data, err := decodeTokenDocument(content, fileName, detect.SourceTokenStudio)
	if err != nil {
		return nil, err
	}

	setNames := make([]string, 0, len(data))
	for _, key := range sortedKeys(data) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if _, ok := data[key].(map[string]any); !ok {
			return nil, NewInvalidLeafError(key, "expected a theme set object")
		}
		setNames = append(setNames, key)
	}
	if len(setNames) == 0 {
		return nil, NewParseError(string(detect.SourceTokenStudio), fileName, "no theme sets found")
	}

	elidePrefix := len(setNames) == 1 && strings.EqualFold(setNames[0], "global")

	var toks []*tokens.Token
	for _, setName := range setNames {
		set := data[setName].(map[string]any)
		prefix := setName
		if elidePrefix {
			prefix = ""
		}
		if err := extractValueTypeLeaves(set, prefix, &toks); err != nil {
			return nil, err
		}
	}
	return toks, nil
}
