package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .routereport.yaml config file",
	Long:  `Create a .routereport.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# routereport configuration
# Flags and ROUTEREPORT_* environment variables override these values.

# Template values (normally passed as flags by the post-generation hook)
route:
  name: ""
  display-name: ""
  type: list

features:
  filters: "no"
  table: "no"
  modal: "no"

# Presentation
preview:
  base-url: http://localhost:5173
routes-dir: src/routes

output:
  format: text   # text | json | markdown
  color: auto    # auto | always | never

quiet: false
verbose: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
