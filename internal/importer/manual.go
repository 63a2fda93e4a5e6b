package importer

import (
	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/tokens"
)

// importManual parses a flat key → value JSON map with no recognized
// token structure. Types are inferred from value shape and key hints.
// Nested objects are rejected rather than flattened: a nested document
// that reached this importer did not match any known token shape, and
// guessing at its structure would coerce rather than narrow.
func importManual(content, fileName string) ([]*tokens.Token, error) {
	data, err := decodeTokenDocument(content, fileName, detect.SourceManual)
	if err != nil {
		return nil, err
	}

	toks := make([]*tokens.Token, 0, len(data))
	for _, key := range sortedKeys(data) {
		value, err := narrowScalar(key, data[key])
		if err != nil {
			return nil, err
		}
		tok := &tokens.Token{
			Name:     key,
			Value:    value,
			Type:     InferType(key, value),
			Category: category(key),
		}
		if s, ok := value.(string); ok {
			if ref, isRef := tokens.ReferenceName(s); isRef {
				tok.Reference = ref
			}
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
