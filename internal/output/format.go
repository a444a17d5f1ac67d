package output

import (
	"fmt"
	"strings"
)

// OutputFormat specifies how converted cues are written.
type OutputFormat string

const (
	// FormatJSON writes the workspace as JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML writes the workspace as YAML.
	FormatYAML OutputFormat = "yaml"

	// FormatCue writes the workspace as a CUE file.
	FormatCue OutputFormat = "cue"

	// FormatTable writes one table row per cue.
	FormatTable OutputFormat = "table"

	// FormatPlan writes the order cues would be created in.
	FormatPlan OutputFormat = "plan"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatCue, FormatTable, FormatPlan:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// An empty string means FormatTable.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cue":
		return FormatCue, nil
	case "plan":
		return FormatPlan, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected one of %s)", s, strings.Join(ValidFormats(), ", "))
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml", "cue", "plan"}
}
