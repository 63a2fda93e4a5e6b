package validator

import (
	"bennypowers.dev/dtx/internal/tokens"
)

// rules lists every check in reporting order. Each rule is
// independent and all of them always run.
var rules = []func(*tokens.Collection, *Result){
	checkUniqueness,
	checkNames,
	checkNamingConsistency,
	checkColorFormats,
	checkNumericRanges,
	checkSemanticCompleteness,
	checkContrastPairs,
}

// Validate runs every rule over the collection and returns the
// categorized result. The collection is read-only to this package;
// calling Validate twice yields equal results.
func Validate(collection *tokens.Collection) *Result {
	result := &Result{
		Errors:     []Issue{},
		Warnings:   []Issue{},
		Info:       []Issue{},
		TokenCount: len(collection.Tokens),
	}
	for _, rule := range rules {
		rule(collection, result)
	}
	result.Valid = len(result.Errors) == 0
	return result
}
