package main

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/dtx/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "dtx",
	Short: "Translate and validate design tokens between formats",
	Long: `dtx normalizes design tokens from W3C DTCG, Style Dictionary,
Tokens Studio, CSV, and flat JSON inputs into one canonical model,
validates them (naming, color formats, WCAG contrast), and re-emits
them as Style Dictionary, DTCG, CSS custom properties, a Tailwind
theme, or a typed TypeScript module.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.LevelDebug)
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			log.SetLevel(log.LevelError)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".dtx.yaml", "Config file path")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(versionCmd)
}
