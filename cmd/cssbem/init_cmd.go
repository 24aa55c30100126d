package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssbem.yaml config file",
	Long:  `Create a .cssbem.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssbem.yaml"); err == nil && !force {
			return fmt.Errorf(".cssbem.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssbem.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssbem.yaml")
		return nil
	},
}

const defaultConfig = `# cssbem configuration
# Docs: https://github.com/yacobolo/cssbem

# Naming (manifests may override these in their settings section)
prefix: ""
element-separator: "__"
modifier-separator: "--"
state-prefix: is
qualify-state: true   # true: .block.is-open | false: .block--is-open

verbose: false

# Generation settings
generate:
  source: web/ui/components
  include:
    - "**/*.bem.yaml"
    - "**/*.bem.yml"
  output: web/ui/static/components.css
  go-output: ""            # e.g. internal/web/ui/classes.gen.go
  package: ui
  style: expanded          # expanded | compressed
  property-limit: 5        # per category in constant comments, 0 = unlimited
  output-format: text      # text | json | none
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
