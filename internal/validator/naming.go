package validator

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/dtx/internal/collections"
	"bennypowers.dev/dtx/internal/tokens"
)

// checkUniqueness flags repeated token names: one DUPLICATE_NAME error
// per occurrence beyond the first.
func checkUniqueness(collection *tokens.Collection, result *Result) {
	seen := collections.NewSet[string]()
	for _, tok := range collection.Tokens {
		if seen.Has(tok.Name) {
			result.add(Issue{
				Severity:   SeverityError,
				Code:       CodeDuplicateName,
				Message:    fmt.Sprintf("duplicate token name %q", tok.Name),
				TokenNames: []string{tok.Name},
				Suggestion: "rename one of the tokens; duplicates are never silently overwritten",
			})
			continue
		}
		seen.Add(tok.Name)
	}
}

// checkNames flags blank names, names with spaces, and names mixing
// uppercase letters with hyphens.
func checkNames(collection *tokens.Collection, result *Result) {
	for _, tok := range collection.Tokens {
		if strings.TrimSpace(tok.Name) == "" {
			result.add(Issue{
				Severity: SeverityError,
				Code:     CodeEmptyName,
				Message:  "token has a blank name",
			})
			continue
		}
		if strings.Contains(tok.Name, " ") {
			result.add(Issue{
				Severity:   SeverityError,
				Code:       CodeSpaceInName,
				Message:    fmt.Sprintf("token name %q contains spaces", tok.Name),
				TokenNames: []string{tok.Name},
				Suggestion: `separate segments with "/" or "-" instead of spaces`,
			})
		}
		if strings.ContainsAny(tok.Name, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") && strings.Contains(tok.Name, "-") {
			result.add(Issue{
				Severity:   SeverityWarning,
				Code:       CodeMixedCasing,
				Message:    fmt.Sprintf("token name %q mixes uppercase letters with hyphens", tok.Name),
				TokenNames: []string{tok.Name},
				Suggestion: "pick either kebab-case or camelCase and stick to it",
			})
		}
	}
}

// namePattern classifies a token name into one naming convention.
type namePattern string

const (
	patternSlash namePattern = "slash-separated"
	patternDot   namePattern = "dot-separated"
	patternKebab namePattern = "kebab-case"
	patternCamel namePattern = "camelCase"
	patternOther namePattern = "other"
)

var (
	kebabNameRegexp = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)+$`)
	camelNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9]*([A-Z][a-zA-Z0-9]*)+$`)
)

func classifyName(name string) namePattern {
	switch {
	case strings.Contains(name, "/"):
		return patternSlash
	case strings.Contains(name, "."):
		return patternDot
	case kebabNameRegexp.MatchString(name):
		return patternKebab
	case camelNameRegexp.MatchString(name):
		return patternCamel
	default:
		return patternOther
	}
}

// checkNamingConsistency finds the plurality naming pattern and
// reports up to five names that follow a different recognized pattern
// as a single INCONSISTENT_NAMING warning.
func checkNamingConsistency(collection *tokens.Collection, result *Result) {
	counts := map[namePattern]int{}
	for _, tok := range collection.Tokens {
		counts[classifyName(tok.Name)]++
	}

	var dominant namePattern
	best := 0
	for _, pattern := range []namePattern{patternSlash, patternDot, patternKebab, patternCamel} {
		if counts[pattern] > best {
			best = counts[pattern]
			dominant = pattern
		}
	}
	if dominant == "" {
		return
	}

	var offenders []string
	for _, tok := range collection.Tokens {
		pattern := classifyName(tok.Name)
		if pattern == dominant || pattern == patternOther {
			continue
		}
		offenders = append(offenders, tok.Name)
		if len(offenders) == 5 {
			break
		}
	}
	if len(offenders) == 0 {
		return
	}

	result.add(Issue{
		Severity:   SeverityWarning,
		Code:       CodeInconsistentNaming,
		Message:    fmt.Sprintf("most token names are %s but these are not: %s", dominant, strings.Join(offenders, ", ")),
		TokenNames: offenders,
		Suggestion: fmt.Sprintf("rename the outliers to the dominant %s pattern", dominant),
	})
}
