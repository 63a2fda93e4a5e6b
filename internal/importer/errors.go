package importer

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking
var (
	// ErrUnknownFormat indicates the source format could not be detected
	ErrUnknownFormat = errors.New("unknown token format")

	// ErrUnparsableContent indicates content could not be parsed as the
	// detected format
	ErrUnparsableContent = errors.New("unparsable token content")

	// ErrInvalidLeaf indicates a token leaf did not match the expected
	// shape for its format
	ErrInvalidLeaf = errors.New("invalid token leaf")

	// ErrEmptyCSV indicates a CSV input with a header but zero valid
	// data rows
	ErrEmptyCSV = errors.New("csv contains no valid rows")
)

// UnknownFormatError reports content that matched no known format.
type UnknownFormatError struct {
	FileName string
}

func (e *UnknownFormatError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("could not detect token format of %s\nSuggestion: supported formats are W3C DTCG, Style Dictionary, Tokens Studio, CSV, and flat JSON maps", e.FileName)
	}
	return "could not detect token format\nSuggestion: supported formats are W3C DTCG, Style Dictionary, Tokens Studio, CSV, and flat JSON maps"
}

func (e *UnknownFormatError) Unwrap() error {
	return ErrUnknownFormat
}

// NewUnknownFormatError creates a new unknown format error
func NewUnknownFormatError(fileName string) error {
	return &UnknownFormatError{FileName: fileName}
}

// ParseError reports content that failed to parse as its detected
// format. No partial collection is ever produced alongside one.
type ParseError struct {
	Source   string
	FileName string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("failed to parse %s as %s: %s", e.FileName, e.Source, e.Reason)
	}
	return fmt.Sprintf("failed to parse content as %s: %s", e.Source, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrUnparsableContent
}

// NewParseError creates a new parse error
func NewParseError(source, fileName, reason string) error {
	return &ParseError{Source: source, FileName: fileName, Reason: reason}
}

// InvalidLeafError reports a token leaf whose value did not match the
// shape the format requires (e.g. an object where a string or number
// was expected). Values are narrowed, never silently coerced.
type InvalidLeafError struct {
	Path   string
	Reason string
}

func (e *InvalidLeafError) Error() string {
	return fmt.Sprintf("invalid token leaf at %q: %s", e.Path, e.Reason)
}

func (e *InvalidLeafError) Unwrap() error {
	return ErrInvalidLeaf
}

// NewInvalidLeafError creates a new invalid leaf error
func NewInvalidLeafError(path, reason string) error {
	return &InvalidLeafError{Path: path, Reason: reason}
}

// EmptyCSVError reports a CSV input that produced no valid rows.
type EmptyCSVError struct {
	FileName string
}

func (e *EmptyCSVError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("%s contains no valid token rows\nSuggestion: the header must include name and value columns", e.FileName)
	}
	return "csv contains no valid token rows\nSuggestion: the header must include name and value columns"
}

func (e *EmptyCSVError) Unwrap() error {
	return ErrEmptyCSV
}

// NewEmptyCSVError creates a new empty CSV error
func NewEmptyCSVError(fileName string) error {
	return &EmptyCSVError{FileName: fileName}
}
