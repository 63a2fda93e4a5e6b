package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bennypowers.dev/dtx/internal/detect"
	"bennypowers.dev/dtx/internal/tokens"
)

// csvColumns maps recognized header names to their column index.
type csvColumns struct {
	name        int
	value       int
	typ         int
	category    int
	description int
}

// importCSV parses a comma-separated token file. The first row is a
// header; name and value columns are required, type/category/
// description are optional. Malformed rows are skipped and reported as
// row-level warnings; zero valid rows is a format error.
func importCSV(content, fileName string) ([]*tokens.Token, []Warning, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, NewParseError(string(detect.SourceCSV), fileName, "missing header row")
	}

	cols, err := parseHeader(header, fileName)
	if err != nil {
		return nil, nil, err
	}

	var (
		toks     []*tokens.Token
		warnings []Warning
	)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			warnings = append(warnings, Warning{Line: line, Message: err.Error()})
			continue
		}

		tok, warn := csvToken(record, cols, line)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		toks = append(toks, tok)
	}

	if len(toks) == 0 {
		return nil, nil, NewEmptyCSVError(fileName)
	}
	return toks, warnings, nil
}

// parseHeader locates the required and optional columns. Header names
// are matched case-insensitively.
func parseHeader(header []string, fileName string) (csvColumns, error) {
	cols := csvColumns{name: -1, value: -1, typ: -1, category: -1, description: -1}
	for i, field := range header {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "name":
			cols.name = i
		case "value":
			cols.value = i
		case "type":
			cols.typ = i
		case "category":
			cols.category = i
		case "description":
			cols.description = i
		}
	}
	if cols.name < 0 || cols.value < 0 {
		return cols, NewParseError(string(detect.SourceCSV), fileName, "header must include name and value columns")
	}
	return cols, nil
}

// csvToken builds one token from a data row, or a warning when the
// row is unusable.
func csvToken(record []string, cols csvColumns, line int) (*tokens.Token, *Warning) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field(cols.name)
	rawValue := field(cols.value)
	if name == "" || rawValue == "" {
		return nil, &Warning{Line: line, Message: fmt.Sprintf("row %d skipped: name and value are required", line)}
	}

	// Numeric-looking values become numbers; everything else stays a
	// string.
	var value any = rawValue
	if n, err := strconv.ParseFloat(rawValue, 64); err == nil {
		value = n
	}

	tok := &tokens.Token{
		Name:        name,
		Value:       value,
		Type:        ResolveType(field(cols.typ), name, value),
		Category:    field(cols.category),
		Description: field(cols.description),
	}
	if tok.Category == "" {
		tok.Category = category(name)
	}
	if s, ok := value.(string); ok {
		if ref, isRef := tokens.ReferenceName(s); isRef {
			tok.Reference = ref
		}
	}
	return tok, nil
}
