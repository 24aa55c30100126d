package cssbem

import (
	"io"
	"os"
)

// OutputFormat selects how a generation result is reported
type OutputFormat string

// Supported output formats
const (
	OutputText  OutputFormat = "text"  // Summary and warnings
	OutputJSON  OutputFormat = "json"  // Machine-readable result
	OutputQuiet OutputFormat = "quiet" // Nothing
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins
	if quiet {
		return OutputQuiet
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	case "quiet", "none":
		return OutputQuiet
	default:
		// Unknown formats fall back to text
		return OutputText
	}
}

// WriteOutput writes the generation result in the specified format
func WriteOutput(w io.Writer, result *GenerateResult, format OutputFormat, config Config, forceColor bool) {
	switch format {
	case OutputText:
		reporter := NewReporter(w, forceColor)
		reporter.PrintSummary(result, config)
		reporter.PrintWarnings(result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputQuiet:
	}
}
