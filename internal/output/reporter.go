// Package output renders composed rule sets in the formats the CLI offers.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/JNZader/lintcompose/internal/rules"
)

// Format names.
const (
	FormatJSON     = "json"
	FormatESLintRC = "eslintrc"
	FormatYAML     = "yaml"
	FormatTable    = "table"
)

// Reporter defines the interface for rendering a rule set.
type Reporter interface {
	// Generate renders the rule set.
	Generate(rs rules.RuleSet) (string, error)

	// Write renders the rule set to a writer.
	Write(rs rules.RuleSet, w io.Writer) error

	// Format returns the format name.
	Format() string
}

// NewReporter creates a reporter for the given format.
func NewReporter(format string) (Reporter, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return &JSONReporter{}, nil
	case FormatESLintRC, "eslintrc.json":
		return &JSONReporter{Wrap: true}, nil
	case FormatYAML, "yml":
		return &YAMLReporter{}, nil
	case FormatTable:
		return &TableReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (available: %s)", format, strings.Join(AvailableFormats(), ", "))
	}
}

// AvailableFormats returns the list of supported formats.
func AvailableFormats() []string {
	return []string{FormatJSON, FormatESLintRC, FormatYAML, FormatTable}
}

// DetectFormatFromPath infers the output format from file name.
func DetectFormatFromPath(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if strings.HasPrefix(base, ".eslintrc") {
		if strings.HasSuffix(base, ".yaml") || strings.HasSuffix(base, ".yml") {
			return FormatYAML
		}
		return FormatESLintRC
	}
	switch filepath.Ext(base) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatTable
	default:
		return ""
	}
}

func writeString(w io.Writer, r Reporter, rs rules.RuleSet) error {
	out, err := r.Generate(rs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
