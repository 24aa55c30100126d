package cssbem

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints a generation result for humans
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w. forceColor enables colors
// regardless of the environment.
func NewReporter(w io.Writer, forceColor bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(forceColor),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(forceColor bool) bool {
	// Explicit flag wins
	if forceColor {
		return true
	}

	// NO_COLOR opts out (https://no-color.org)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintSummary outputs where files were written and what they contain
func (r *Reporter) PrintSummary(result *GenerateResult, config Config) {
	if config.OutputFile != "" {
		fmt.Fprintf(r.w, "%s %s\n",
			RenderStyle(StyleGreen, "Generated", r.useColors),
			RenderStyle(StyleCyan, config.OutputFile, r.useColors))
	}
	if config.GoOutputFile != "" {
		fmt.Fprintf(r.w, "%s %s\n",
			RenderStyle(StyleGreen, "Generated", r.useColors),
			RenderStyle(StyleCyan, config.GoOutputFile, r.useColors))
	}

	fmt.Fprintf(r.w, "  %s, %s skipped\n",
		pluralizeCount(result.FilesScanned, "manifest", "manifests"),
		RenderStyle(StyleGray, fmt.Sprint(result.FilesSkipped), r.useColors))
	fmt.Fprintf(r.w, "  %s, %s, %s\n",
		pluralizeCount(result.RulesGenerated, "rule", "rules"),
		pluralizeCount(result.ClassesGenerated, "class", "classes"),
		pluralizeCount(result.VarsGenerated, "custom property", "custom properties"))
}

// PrintWarnings outputs composition and manifest warnings
func (r *Reporter) PrintWarnings(result *GenerateResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, pluralizeCount(len(result.Warnings), "warning", "warnings")+":", r.useColors))
	for _, w := range result.Warnings {
		fmt.Fprintf(r.w, "  - %s\n", w)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
