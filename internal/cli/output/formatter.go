// Package output provides unified output formatting for CLI commands.
// It supports multiple output formats (table, JSON, YAML) and structured errors.
package output

import (
	"fmt"
	"os"
	"strings"
)

// Output format names accepted by NewFormatter.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	// EnvOutput selects the default format when no flag is given.
	EnvOutput = "SINGCONFIG_OUTPUT"
)

// OutputFormatter formats structured data for CLI output.
// Implementations are stateless and thread-safe.
type OutputFormatter interface {
	// Format converts data to formatted string output.
	Format(data interface{}) (string, error)

	// FormatError converts a structured error to formatted output.
	FormatError(err StructuredError) (string, error)

	// FormatTable formats tabular data with headers.
	FormatTable(headers []string, rows [][]string) (string, error)
}

// NewFormatter creates a formatter for the specified format (case-insensitive).
func NewFormatter(format string) (OutputFormatter, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return &JSONFormatter{Indent: true}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTable, "":
		return &TableFormatter{
			NoColor: os.Getenv("NO_COLOR") == "1",
			Unicode: true,
		}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (valid: table, json, yaml)", format)
	}
}

// ResolveFormat determines the output format.
// Priority: explicit flag > --json alias > SINGCONFIG_OUTPUT > table
func ResolveFormat(outputFlag string, jsonFlag bool) string {
	if jsonFlag {
		return FormatJSON
	}
	if outputFlag != "" {
		return outputFlag
	}
	if envFormat := os.Getenv(EnvOutput); envFormat != "" {
		return envFormat
	}
	return FormatTable
}
