package cssbem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/cssbem/internal/bem"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("generate")

	style, err := bem.ParseStyle(config.Style)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{}

	// 1. Find manifests
	files, stats, err := scanManifests(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	log.Debug("Found manifests", zap.Int("files", len(files)), zap.Int("skipped", stats.FilesSkipped))

	// 2. Compose every manifest into one stylesheet
	sheet, warnings := processFiles(files, config, log)
	result.Warnings = append(result.Warnings, warnings...)
	result.Warnings = append(result.Warnings, sheet.Warnings...)

	for _, rule := range sheet.Rules {
		if len(rule.Declarations) == 0 {
			continue
		}
		result.RulesGenerated++
		for _, decl := range rule.Declarations {
			if strings.HasPrefix(decl.Property, "--") {
				result.VarsGenerated++
			}
		}
	}
	result.Classes = sheet.Classes
	result.ClassesGenerated = len(sheet.Classes)

	// 3. Write CSS
	if config.OutputFile != "" {
		if err := writeCSSFile(config.OutputFile, sheet, style); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		log.Debug("Wrote stylesheet", zap.String("path", config.OutputFile), zap.Int("rules", result.RulesGenerated))
	}

	// 4. Write Go constants
	if config.GoOutputFile != "" {
		pkg := config.PackageName
		if pkg == "" {
			pkg = "ui"
		}
		constants := BuildConstants(sheet.Classes)
		describeConstants(constants, classDeclarations(sheet), config.PropertyLimit)
		if err := WriteGoFile(config.GoOutputFile, pkg, config.SourceDir, constants); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		log.Debug("Wrote constants", zap.String("path", config.GoOutputFile), zap.Int("classes", result.ClassesGenerated))
	}

	return result, nil
}

// processFiles composes each manifest in order. Manifests that fail to load
// become warnings and are skipped.
func processFiles(files []string, config Config, log *zap.Logger) (*bem.Stylesheet, []string) {
	sheet := bem.NewStylesheet()
	var warnings []string

	for _, file := range files {
		log.Debug("Composing manifest", zap.String("file", file))

		manifest, err := loadManifest(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to load %s: %v", GetRelativePath(file), err))
			continue
		}

		// Each manifest starts from the configured naming
		naming := config.Naming
		manifest.Settings.Apply(&naming)

		composer := bem.NewComposer(&naming, log)
		composer.ComposeInto(sheet, manifest.Compose)
	}

	return sheet, warnings
}

// loadManifest reads and decodes a single manifest
func loadManifest(path string) (*Manifest, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseManifest(data)
}

func writeCSSFile(path string, sheet *bem.Stylesheet, style bem.Style) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	p := &bem.Printer{Style: style}
	if err := p.Print(f, sheet); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
