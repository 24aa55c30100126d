package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssbem/internal/bem"
)

var rootCmd = &cobra.Command{
	Use:   "cssbem",
	Short: "BEM stylesheet generator for component manifests",
	Long: `Compose prefixed custom properties and flat BEM selectors from YAML
component manifests, and emit a stylesheet plus Go class constants.
Every block, element, modifier, state and qualifier becomes a top-level rule.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".cssbem.yaml", "Config file path")

	// Naming
	pf.String("prefix", bem.DefaultSelectorPrefix, "Prefix for class names and custom properties")
	pf.String("element-separator", bem.DefaultElementSeparator, "Separator between block and element")
	pf.String("modifier-separator", bem.DefaultModifierSeparator, "Separator before modifiers and unqualified states")
	pf.String("state-prefix", bem.DefaultStatePrefix, "Prefix for state names")
	pf.Bool("qualify-state", bem.DefaultQualifyState, "Attach states as a class (.b.is-x) instead of a suffix (.b--is-x)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
