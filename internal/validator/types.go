// Package validator checks a token collection against naming,
// color-format, numeric-range, completeness, and WCAG contrast rules.
// Validation never throws: every finding is returned as structured,
// categorized data, and the collection itself is never mutated.
package validator

// Severity categorizes a validation issue. Only errors affect a
// collection's validity; warnings and info are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Code identifies the rule that produced an issue.
type Code string

const (
	CodeDuplicateName         Code = "DUPLICATE_NAME"
	CodeEmptyName             Code = "EMPTY_NAME"
	CodeSpaceInName           Code = "SPACE_IN_NAME"
	CodeMixedCasing           Code = "MIXED_CASING"
	CodeInconsistentNaming    Code = "INCONSISTENT_NAMING"
	CodeInvalidColorFormat    Code = "INVALID_COLOR_FORMAT"
	CodeShortHex              Code = "SHORT_HEX"
	CodeNegativeValue         Code = "NEGATIVE_VALUE"
	CodeOpacityOutOfRange     Code = "OPACITY_OUT_OF_RANGE"
	CodeMissingSemanticColors Code = "MISSING_SEMANTIC_COLORS"
	CodeIncompleteSpacing     Code = "INCOMPLETE_SPACING_SCALE"
	CodeLowContrast           Code = "LOW_CONTRAST"
)

// Issue is a single validation finding.
type Issue struct {
	Severity   Severity `json:"severity"`
	Code       Code     `json:"code"`
	Message    string   `json:"message"`
	TokenNames []string `json:"tokenNames,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Result is the outcome of validating a collection. All three
// categories are always fully computed; validation never
// short-circuits.
type Result struct {
	Valid      bool    `json:"valid"`
	Errors     []Issue `json:"errors"`
	Warnings   []Issue `json:"warnings"`
	Info       []Issue `json:"info"`
	TokenCount int     `json:"tokenCount"`
}

// add files an issue under its severity category.
func (r *Result) add(issue Issue) {
	switch issue.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, issue)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, issue)
	case SeverityInfo:
		r.Info = append(r.Info, issue)
	}
}

// IssueCount returns the total number of issues across categories.
func (r *Result) IssueCount() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Info)
}
