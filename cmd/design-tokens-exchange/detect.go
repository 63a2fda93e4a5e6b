package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/dtx/internal/detect"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>...",
	Short: "Report the detected source format of each file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}

	unknown := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		source := detect.Detect(string(content), filepath.Base(path))
		if source == detect.SourceUnknown {
			unknown++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, source)
	}

	if unknown > 0 {
		return fmt.Errorf("%d file(s) with unrecognized format", unknown)
	}
	return nil
}
