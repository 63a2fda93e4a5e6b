package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/dtx/internal/importer"
	"bennypowers.dev/dtx/internal/report"
	"bennypowers.dev/dtx/internal/validator"
)

func TestPrintResult(t *testing.T) {
	t.Run("clean result prints summary only", func(t *testing.T) {
		var buf bytes.Buffer
		r := report.NewReporter(&buf, false)
		r.PrintResult(&validator.Result{
			Valid:      true,
			Errors:     []validator.Issue{},
			Warnings:   []validator.Issue{},
			Info:       []validator.Issue{},
			TokenCount: 12,
		})

		out := buf.String()
		assert.Contains(t, out, "12 token(s), no issues")
		assert.NotContains(t, out, "Errors")
	})

	t.Run("issues grouped by severity with hints", func(t *testing.T) {
		var buf bytes.Buffer
		r := report.NewReporter(&buf, false)
		r.PrintResult(&validator.Result{
			Valid: false,
			Errors: []validator.Issue{{
				Severity:   validator.SeverityError,
				Code:       validator.CodeDuplicateName,
				Message:    `duplicate token name "colors/primary"`,
				Suggestion: "rename one of the tokens",
			}},
			Warnings: []validator.Issue{{
				Severity: validator.SeverityWarning,
				Code:     validator.CodeShortHex,
				Message:  "short hex",
			}},
			Info:       []validator.Issue{},
			TokenCount: 3,
		})

		out := buf.String()
		assert.Contains(t, out, "Errors")
		assert.Contains(t, out, "[DUPLICATE_NAME]")
		assert.Contains(t, out, "hint: rename one of the tokens")
		assert.Contains(t, out, "Warnings")
		assert.Contains(t, out, "3 token(s): 1 error(s), 1 warning(s), 0 info")
	})

	t.Run("colors disabled emits no escape codes", func(t *testing.T) {
		var buf bytes.Buffer
		r := report.NewReporter(&buf, false)
		r.PrintResult(&validator.Result{
			Valid:      true,
			Errors:     []validator.Issue{},
			Warnings:   []validator.Issue{},
			Info:       []validator.Issue{},
			TokenCount: 1,
		})
		assert.NotContains(t, buf.String(), "\x1b[")
	})
}

func TestPrintImportWarnings(t *testing.T) {
	t.Run("empty list prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		report.NewReporter(&buf, false).PrintImportWarnings(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("warnings print with line numbers", func(t *testing.T) {
		var buf bytes.Buffer
		report.NewReporter(&buf, false).PrintImportWarnings([]importer.Warning{
			{Line: 3, Message: "row 3 skipped: name and value are required"},
		})
		out := buf.String()
		assert.Contains(t, out, "Import warnings")
		assert.Contains(t, out, "line 3:")
	})
}
