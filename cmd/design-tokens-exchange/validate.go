package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/dtx/internal/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate token files without exporting",
	Long: `Validate imports the given token files (format auto-detected,
later files merged over earlier ones) and prints every naming, color,
range, and contrast issue found. Exits nonzero when any error-severity
issue is present.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}

	session := pipeline.NewSession()
	reporter := newReporter(cmd)

	for i, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		mode := pipeline.ModeMerge
		if i == 0 {
			mode = pipeline.ModeReplace
		}
		if _, err := session.ImportTokens(string(content), pipeline.ImportOptions{
			Mode:     mode,
			FileName: filepath.Base(path),
		}); err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		reporter.PrintImportWarnings(session.ImportWarnings())
	}

	result := session.Validation()
	if result == nil {
		return pipeline.ErrNoCollection
	}
	reporter.PrintResult(result)

	if !result.Valid {
		return fmt.Errorf("%d validation error(s)", len(result.Errors))
	}
	return nil
}
