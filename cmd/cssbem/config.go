package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssbem"
	"github.com/yacobolo/cssbem/internal/bem"
)

const (
	defaultSource  = "web/ui/components"
	defaultOutput  = "web/ui/static/components.css"
	defaultPackage = "ui"
)

var defaultIncludes = []string{"**/*.bem.yaml", "**/*.bem.yml"}

// generateKeys are flags of the generate command stored under "generate."
var generateKeys = map[string]bool{
	"source":         true,
	"include":        true,
	"output":         true,
	"go-output":      true,
	"package":        true,
	"style":          true,
	"property-limit": true,
	"output-format":  true,
}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssbem.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Defaults of unset flags only fill
	// keys that no other source provided.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// flagKey maps a flag name to its configuration key
func flagKey(name string) string {
	if generateKeys[name] {
		return "generate." + name
	}
	return name
}

// envKey maps an environment variable to its configuration key:
//
//	CSSBEM_GENERATE_GO_OUTPUT -> generate.go-output
//	CSSBEM_ELEMENT_SEPARATOR  -> element-separator
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CSSBEM_"))
	if rest, ok := strings.CutPrefix(key, "generate_"); ok {
		return "generate." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSBEM_* prefix)
	if err := k.Load(env.Provider("CSSBEM_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildNaming constructs the composer configuration from koanf state.
func buildNaming() bem.Config {
	return bem.Config{
		SelectorPrefix:    getNaming("prefix", bem.DefaultSelectorPrefix),
		ElementSeparator:  getNaming("element-separator", bem.DefaultElementSeparator),
		ModifierSeparator: getNaming("modifier-separator", bem.DefaultModifierSeparator),
		StatePrefix:       getNaming("state-prefix", bem.DefaultStatePrefix),
		QualifyState:      getBool("qualify-state", bem.DefaultQualifyState),
	}
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() cssbem.Config {
	config := cssbem.Config{
		SourceDir:     getString("generate.source", defaultSource),
		OutputFile:    getString("generate.output", defaultOutput),
		GoOutputFile:  getString("generate.go-output", ""),
		PackageName:   getString("generate.package", defaultPackage),
		Style:         getString("generate.style", "expanded"),
		PropertyLimit: getInt("generate.property-limit", 5),
		Naming:        buildNaming(),
	}

	if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = defaultIncludes
	}

	return config
}

// getString returns the value of key, or defaultVal when it is unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getNaming returns the value of key, or defaultVal when it is unset.
// Unlike getString an empty value is kept: naming parts may be empty.
func getNaming(key, defaultVal string) string {
	if k.Exists(key) {
		return k.String(key)
	}
	return defaultVal
}

// getBool returns the value of key, or defaultVal when it is unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the value of key, or defaultVal when it is unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
