package tokens

import "bennypowers.dev/dtx/internal/collections"

// FilterTypes returns the tokens whose Type is in include, preserving
// collection order. An empty include list returns all tokens.
func (c *Collection) FilterTypes(include ...Type) []*Token {
	if len(include) == 0 {
		return c.Tokens
	}
	want := collections.NewSet(include...)
	filtered := make([]*Token, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		if want.Has(t.Type) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// OfType returns the tokens of exactly one type, preserving order.
func (c *Collection) OfType(t Type) []*Token {
	return c.FilterTypes(t)
}

// Lookup returns the first token with the given name, or nil.
func (c *Collection) Lookup(name string) *Token {
	for _, t := range c.Tokens {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Clone returns a deep copy of the collection. Token Extensions maps
// are copied shallowly one level down, which is enough to keep the
// validator and exporters from observing later mutations.
func (c *Collection) Clone() *Collection {
	clone := &Collection{
		Name:    c.Name,
		Version: c.Version,
		Tokens:  make([]*Token, len(c.Tokens)),
	}
	if c.Metadata != nil {
		meta := *c.Metadata
		clone.Metadata = &meta
	}
	for i, t := range c.Tokens {
		tok := *t
		if t.Extensions != nil {
			tok.Extensions = make(map[string]any, len(t.Extensions))
			for k, v := range t.Extensions {
				tok.Extensions[k] = v
			}
		}
		clone.Tokens[i] = &tok
	}
	return clone
}
