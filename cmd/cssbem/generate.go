package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssbem"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a stylesheet and Go constants from manifests",
	Long: `Compose every manifest matched under the source directory into one
stylesheet. Optionally write one Go constant per composed class.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", defaultSource, "Source manifest directory")
	f.StringSlice("include", nil, "Glob patterns for manifests to include")
	f.String("output", defaultOutput, "Output CSS file")
	f.String("go-output", "", "Output Go constants file (empty: skip)")
	f.String("package", defaultPackage, "Go package name for constants")
	f.String("style", "expanded", "CSS output style: expanded|compressed")
	f.Int("property-limit", 5, "Max properties per category in constant comments")
	f.String("output-format", "text", "Report format: text|json|none")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	config.Logger = newLogger(getBool("verbose", false))
	defer func() { _ = config.Logger.Sync() }()

	result, err := cssbem.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	format := cssbem.DetermineOutputFormat(getString("generate.output-format", "text"), getBool("quiet", false))
	cssbem.WriteOutput(cmd.OutOrStdout(), result, format, config, getBool("color", false))

	return nil
}
