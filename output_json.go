package cssbem

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Classes   []string    `json:"classes"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains generation counters
type JSONSummary struct {
	FilesScanned     int `json:"files_scanned"`
	FilesSkipped     int `json:"files_skipped"`
	RulesGenerated   int `json:"rules_generated"`
	ClassesGenerated int `json:"classes_generated"`
	VarsGenerated    int `json:"vars_generated"`
}

// WriteJSON writes the generation result as JSON
func WriteJSON(w io.Writer, result *GenerateResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts GenerateResult to JSONOutput
func buildJSONOutput(result *GenerateResult) JSONOutput {
	// Empty arrays rather than null for consumers
	classes := result.Classes
	if classes == nil {
		classes = []string{}
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned:     result.FilesScanned,
			FilesSkipped:     result.FilesSkipped,
			RulesGenerated:   result.RulesGenerated,
			ClassesGenerated: result.ClassesGenerated,
			VarsGenerated:    result.VarsGenerated,
		},
		Classes:  classes,
		Warnings: warnings,
	}
}
