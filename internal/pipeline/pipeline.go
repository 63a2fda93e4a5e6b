// Package pipeline orchestrates the engine: it detects formats, runs
// importers with merge/replace semantics, fans exports out across
// formats, and holds the session's current collection. The swap from
// one collection to the next is a single assignment under a lock, so a
// partial or interleaved collection is never observable.
package pipeline

import (
	"sync"
	"time"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/exporter"
	"bennypowers.dev/dtx/internal/importer"
	"bennypowers.dev/dtx/internal/resolver"
	"bennypowers.dev/dtx/internal/tokens"
	"bennypowers.dev/dtx/internal/validator"
)

// Mode selects how an import combines with the session's existing
// collection.
type Mode string

const (
	// ModeReplace discards any existing collection.
	ModeReplace Mode = "replace"

	// ModeMerge unions existing and incoming tokens; on a name
	// collision the incoming token wins.
	ModeMerge Mode = "merge"
)

// ParseMode returns the Mode matching s.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeReplace:
		return ModeReplace, true
	case ModeMerge:
		return ModeMerge, true
	}
	return "", false
}

// ImportOptions configures one pipeline import.
type ImportOptions struct {
	Mode           Mode
	FileName       string
	CollectionName string
}

// Session holds the current collection and its latest validation
// result across UI interactions.
type Session struct {
	mu         sync.RWMutex
	collection *tokens.Collection
	validation *validator.Result
	warnings   []importer.Warning
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// ImportTokens detects the content's format, imports it, applies the
// merge/replace policy, validates the outcome, and installs it as the
// session's current collection. On any error the session is left
// untouched — no partial state is ever applied.
func (s *Session) ImportTokens(content string, opts ImportOptions) (*tokens.Collection, error) {
	source := detect.Detect(content, opts.FileName)
	if source == detect.SourceUnknown {
		return nil, importer.NewUnknownFormatError(opts.FileName)
	}

	incoming, warnings, err := importer.Import(content, source, importer.Options{
		FileName:       opts.FileName,
		CollectionName: opts.CollectionName,
	})
	if err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeReplace
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := incoming
	if mode == ModeMerge && s.collection != nil {
		next = merge(s.collection, incoming, opts.CollectionName)
	}

	s.collection = next
	s.warnings = warnings
	s.validation = validator.Validate(next)
	return next, nil
}

// merge unions existing and incoming token lists. Existing order is
// preserved, collided names take the incoming token's value in place,
// and new tokens append in incoming order. The pre-existing
// collection's name and version survive unless the caller supplied an
// explicit name override; provenance metadata reflects the most
// recent import.
func merge(existing, incoming *tokens.Collection, nameOverride string) *tokens.Collection {
	merged := &tokens.Collection{
		Name:    existing.Name,
		Version: existing.Version,
	}
	if nameOverride != "" {
		merged.Name = nameOverride
	}
	if incoming.Metadata != nil {
		meta := *incoming.Metadata
		meta.ImportedAt = time.Now()
		merged.Metadata = &meta
	}

	incomingByName := make(map[string]*tokens.Token, len(incoming.Tokens))
	for _, tok := range incoming.Tokens {
		incomingByName[tok.Name] = tok
	}

	replaced := map[string]bool{}
	for _, tok := range existing.Tokens {
		if winner, collided := incomingByName[tok.Name]; collided {
			merged.Tokens = append(merged.Tokens, winner)
			replaced[tok.Name] = true
			continue
		}
		merged.Tokens = append(merged.Tokens, tok)
	}
	for _, tok := range incoming.Tokens {
		if !replaced[tok.Name] {
			merged.Tokens = append(merged.Tokens, tok)
		}
	}
	return merged
}

// ResolveAliases replaces every aliased token's value with the literal
// value it references and installs the resolved collection. Resolution
// never happens implicitly during import or export; callers opt in.
// On a cycle or a dangling reference the session is left untouched.
func (s *Session) ResolveAliases() (*tokens.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collection == nil {
		return nil, ErrNoCollection
	}
	resolved, err := resolver.Resolve(s.collection)
	if err != nil {
		return nil, err
	}
	s.collection = resolved
	s.validation = validator.Validate(resolved)
	return resolved, nil
}

// ExportTokens serializes the current collection.
func (s *Session) ExportTokens(opts exporter.Options) (*exporter.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.collection == nil {
		return nil, ErrNoCollection
	}
	return exporter.Export(s.collection, opts)
}

// GeneratePreview returns the content of the first file the format
// would generate, for UI display.
func (s *Session) GeneratePreview(format exporter.Format, opts exporter.Options) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.collection == nil {
		return "", ErrNoCollection
	}
	return exporter.Preview(s.collection, format, opts)
}

// ValidateTokens re-validates the current collection and returns the
// result, or nil when nothing has been imported yet.
func (s *Session) ValidateTokens() *validator.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collection == nil {
		return nil
	}
	s.validation = validator.Validate(s.collection)
	return s.validation
}

// Collection returns the current collection, or nil.
func (s *Session) Collection() *tokens.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection
}

// Validation returns the validation result attached by the most
// recent import, or nil.
func (s *Session) Validation() *validator.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validation
}

// ImportWarnings returns the row-level warnings from the most recent
// import.
func (s *Session) ImportWarnings() []importer.Warning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warnings
}
