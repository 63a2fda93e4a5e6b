// Package importer parses raw token file content into the canonical
// collection model. One importer per source format; all of them
// flatten nested input into "/"-joined token names and narrow raw
// values to strings and numbers up front.
//
// Importers either succeed completely or fail with an error — a
// partial collection is never returned. The one soft channel is the
// CSV importer's row-level warnings, which are lighter than validator
// issues and never abort an import.
package importer

import (
	"path/filepath"
	"strings"
	"time"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/tokens"
)

// DefaultCollectionName is used when neither the caller, the file
// content, nor the file name provides one.
const DefaultCollectionName = "Imported Tokens"

// DefaultVersion is the semantic version assigned to new collections.
const DefaultVersion = "1.0.0"

// Options configures a single import call.
type Options struct {
	// FileName is the original upload file name, used for provenance
	// metadata and as a collection-name fallback.
	FileName string

	// CollectionName overrides any name discovered in the file.
	CollectionName string
}

// Warning is a non-fatal row-level import problem (CSV only). It is a
// separate, lighter channel than the validator's issues.
type Warning struct {
	Line    int
	Message string
}

// Import parses content in the given source format and returns a new
// collection. The source is usually the result of detect.Detect;
// passing detect.SourceUnknown returns an unknown-format error.
func Import(content string, source detect.Source, opts Options) (*tokens.Collection, []Warning, error) {
	var (
		toks       []*tokens.Token
		discovered string
		warnings   []Warning
		err        error
	)

	switch source {
	case detect.SourceDTCG:
		toks, discovered, err = importDTCG(content, opts.FileName)
	case detect.SourceStyleDictionary:
		toks, err = importStyleDictionary(content, opts.FileName)
	case detect.SourceTokenStudio:
		toks, err = importTokenStudio(content, opts.FileName)
	case detect.SourceManual:
		toks, err = importManual(content, opts.FileName)
	case detect.SourceCSV:
		toks, warnings, err = importCSV(content, opts.FileName)
	default:
		return nil, nil, NewUnknownFormatError(opts.FileName)
	}
	if err != nil {
		return nil, nil, err
	}

	collection := &tokens.Collection{
		Name:    collectionName(opts, discovered),
		Version: DefaultVersion,
		Tokens:  toks,
		Metadata: &tokens.Metadata{
			Source:     string(source),
			ImportedAt: time.Now(),
			FileName:   opts.FileName,
		},
	}
	return collection, warnings, nil
}

// collectionName applies the naming precedence: explicit override >
// name discovered in the file > file name stem > default literal.
func collectionName(opts Options, discovered string) string {
	if opts.CollectionName != "" {
		return opts.CollectionName
	}
	if discovered != "" {
		return discovered
	}
	if stem := fileNameStem(opts.FileName); stem != "" {
		return stem
	}
	return DefaultCollectionName
}

func fileNameStem(fileName string) string {
	if fileName == "" {
		return ""
	}
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// joinPath appends a segment to a "/"-separated token path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}

// category derives the grouping label for a token from its path: the
// first path segment when the name is nested, empty otherwise.
func category(name string) string {
	if i := strings.Index(name, "/"); i > 0 {
		return name[:i]
	}
	return ""
}
