package output

import (
	"encoding/json"
	"io"

	"github.com/JNZader/lintcompose/internal/rules"
)

// JSONReporter renders the rule map as indented JSON. With Wrap set the map
// is nested under "rules", which is the shape of an .eslintrc.json file.
type JSONReporter struct {
	Wrap bool
}

func (r *JSONReporter) Format() string {
	if r.Wrap {
		return FormatESLintRC
	}
	return FormatJSON
}

func (r *JSONReporter) Generate(rs rules.RuleSet) (string, error) {
	var doc interface{} = nonNil(rs)
	if r.Wrap {
		doc = struct {
			Rules rules.RuleSet `json:"rules"`
		}{Rules: nonNil(rs)}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func (r *JSONReporter) Write(rs rules.RuleSet, w io.Writer) error {
	return writeString(w, r, rs)
}

func nonNil(rs rules.RuleSet) rules.RuleSet {
	if rs == nil {
		return rules.RuleSet{}
	}
	return rs
}
