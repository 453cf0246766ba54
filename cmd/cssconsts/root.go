package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssconsts",
	Short: "Resolve constant custom properties in CSS",
	Long: `Inline constant custom properties at their use sites.
Declarations in :root whose names contain no lowercase letters
(e.g. --BRAND-COLOR) are removed from the output and substituted
wherever var(--BRAND-COLOR) appears.`,
	// Positional args are glob patterns handed to the resolve run.
	Args: cobra.ArbitraryArgs,
	// Default behavior: run resolve when no subcommand is given.
	// loadConfig must run here because PreRunE of resolveCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runResolve(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose per-file output")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssconsts.yaml", "Config file path")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
