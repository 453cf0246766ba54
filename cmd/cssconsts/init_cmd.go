package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssconsts.yaml config file",
	Long:  `Create a .cssconsts.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssconsts.yaml"); err == nil && !force {
			return fmt.Errorf(".cssconsts.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssconsts.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssconsts.yaml")
		return nil
	},
}

const defaultConfig = `# cssconsts configuration
# Docs: https://github.com/wongjn/postcss-consts

# Shared settings
verbose: false

# Resolution settings
resolve:
  paths:
    - "**/*.css"
  # file: consts.css        # shared constants definitions file
  # pattern: "^[^a-z]*$"    # constant-name regex
  write: false              # rewrite files in place
  # out-dir: dist           # write resolved files here
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
