package tokens

import (
	"regexp"
	"strings"
)

// ReferencePattern matches curly brace token references: {path.to.token}
// or {path/to/token}. Both dot and slash separators appear in the wild;
// canonical names always use "/".
var ReferencePattern = regexp.MustCompile(`^\{([^}]+)\}$`)

// ReferenceName extracts the canonical token name from a brace-wrapped
// reference value, normalizing dot separators to slashes. ok is false
// when the value is not a whole-value reference.
func ReferenceName(value string) (name string, ok bool) {
	match := ReferencePattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return "", false
	}
	return strings.ReplaceAll(match[1], ".", "/"), true
}

// ReferenceMarker renders a token name as a brace-wrapped reference
// using dot separators, the form shared by DTCG and Tokens Studio.
func ReferenceMarker(name string) string {
	return "{" + strings.ReplaceAll(name, "/", ".") + "}"
}

// IsReference reports whether the token's value is a whole-value
// reference to another token.
func (t *Token) IsReference() bool {
	if t.Reference != "" {
		return true
	}
	s, ok := t.Value.(string)
	if !ok {
		return false
	}
	_, isRef := ReferenceName(s)
	return isRef
}
