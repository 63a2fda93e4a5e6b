package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/dtx/internal/exporter"
	"bennypowers.dev/dtx/internal/pipeline"
)

var previewCmd = &cobra.Command{
	Use:   "preview <format> <file>...",
	Short: "Print one format's output to stdout without writing files",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringSliceP("types", "t", nil, "Only include tokens of these types")
	previewCmd.Flags().Bool("group-by-category", false, "Group CSS output by category; nest the Tailwind palette")
	previewCmd.Flags().Bool("type-definitions", false, "Emit key-union types in the TypeScript module")
	previewCmd.Flags().Bool("docs", false, "Include token descriptions as comments")
	previewCmd.Flags().String("css-prefix", "", "Prefix for CSS custom property names")
	previewCmd.Flags().String("ts-namespace", "", "Wrap TypeScript declarations in a namespace")
	previewCmd.Flags().Bool("resolve", false, "Replace token aliases with their literal values before export")
}

func runPreview(cmd *cobra.Command, args []string) error {
	format, ok := exporter.ParseFormat(args[0])
	if !ok {
		return fmt.Errorf("unknown output format %q", args[0])
	}

	paths, err := expandInputs(args[1:])
	if err != nil {
		return err
	}
	opts, err := exportOptions(cmd)
	if err != nil {
		return err
	}

	session := pipeline.NewSession()
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
	}

	if resolve, _ := cmd.Flags().GetBool("resolve"); resolve {
		if _, err := session.ResolveAliases(); err != nil {
			return fmt.Errorf("resolving aliases: %w", err)
		}
	}

	content, err := session.GeneratePreview(format, opts)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
