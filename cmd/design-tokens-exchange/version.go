package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/dtx/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		full, _ := cmd.Flags().GetBool("full")
		if full {
			fmt.Fprintln(cmd.OutOrStdout(), version.Detailed())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("full", false, "Include commit and build time")
}
