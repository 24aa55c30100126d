package cssbem

import (
	"go.uber.org/zap"

	"github.com/yacobolo/cssbem/internal/bem"
)

// Config holds generator configuration
type Config struct {
	SourceDir     string     // "web/ui/components"
	Includes      []string   // ["**/*.bem.yaml"]
	OutputFile    string     // "web/ui/static/components.css"
	GoOutputFile  string     // "internal/web/ui/classes.gen.go" (empty: skip)
	PackageName   string     // "ui"
	Style         string     // Output style: "expanded", "compressed" (default: "expanded")
	PropertyLimit int        // Max properties per category in constant comments (0: unlimited)
	Naming        bem.Config // Prefix and separators, overridable per manifest
	Logger        *zap.Logger // nil disables logging
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned     int
	FilesSkipped     int // Gitignored or unreadable manifests
	RulesGenerated   int // Rules with at least one declaration
	ClassesGenerated int
	VarsGenerated    int
	Classes          []string
	Warnings         []string
}

// Re-exported composer API so callers can compose selectors without a manifest.
type (
	Composer     = bem.Composer
	Scope        = bem.Scope
	Stylesheet   = bem.Stylesheet
	NamingConfig = bem.Config
	StateOption  = bem.StateOption
)

// NewComposer creates a composer over naming. See bem.NewComposer.
func NewComposer(naming *NamingConfig, log *zap.Logger) *Composer {
	return bem.NewComposer(naming, log)
}

// DefaultNaming returns the default prefix and separators.
func DefaultNaming() *NamingConfig {
	return bem.DefaultConfig()
}
