package output

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/JNZader/lintcompose/internal/rules"
)

// YAMLReporter renders an .eslintrc.yaml document.
type YAMLReporter struct{}

func (r *YAMLReporter) Format() string { return FormatYAML }

func (r *YAMLReporter) Generate(rs rules.RuleSet) (string, error) {
	doc := struct {
		Rules rules.RuleSet `yaml:"rules"`
	}{Rules: nonNil(rs)}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *YAMLReporter) Write(rs rules.RuleSet, w io.Writer) error {
	return writeString(w, r, rs)
}
