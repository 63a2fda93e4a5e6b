package resolver

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/dtx/internal/tokens"
)

// Sentinel errors for error type checking
var (
	// ErrCircularReference indicates a reference cycle was detected
	ErrCircularReference = errors.New("circular reference detected")

	// ErrDanglingReference indicates a reference to a token that does
	// not exist in the collection
	ErrDanglingReference = errors.New("dangling reference")
)

// CircularReferenceError reports a reference cycle.
type CircularReferenceError struct {
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular token reference: %s\nSuggestion: break the reference chain", strings.Join(e.Chain, " -> "))
}

func (e *CircularReferenceError) Unwrap() error {
	return ErrCircularReference
}

// NewCircularReferenceError creates a new circular reference error
func NewCircularReferenceError(chain []string) error {
	return &CircularReferenceError{Chain: chain}
}

// DanglingReferenceError reports a reference to a missing token.
type DanglingReferenceError struct {
	TokenName string
	Reference string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("token %q references %q, which does not exist", e.TokenName, e.Reference)
}

func (e *DanglingReferenceError) Unwrap() error {
	return ErrDanglingReference
}

// Resolve returns a copy of the collection in which every aliased
// token's value is replaced by the literal value of the token it
// references, following chains in dependency order. The input
// collection is not modified. Fails on cycles and on references to
// tokens that do not exist.
func Resolve(collection *tokens.Collection) (*tokens.Collection, error) {
	resolved := collection.Clone()

	graph := BuildGraph(resolved.Tokens)
	order, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*tokens.Token, len(resolved.Tokens))
	for _, tok := range resolved.Tokens {
		byName[tok.Name] = tok
	}

	for _, name := range order {
		tok := byName[name]
		if tok == nil || tok.Reference == "" {
			continue
		}
		target := byName[tok.Reference]
		if target == nil {
			return nil, &DanglingReferenceError{TokenName: tok.Name, Reference: tok.Reference}
		}
		// Targets earlier in the order are already literal.
		tok.Value = target.Value
		tok.Reference = ""
	}
	return resolved, nil
}
