package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/JNZader/lintcompose/internal/rules"
)

// TableReporter renders one row per rule, sorted by identifier.
type TableReporter struct {
	// Styles colours the severity column; nil renders plain text.
	Styles *Styles
}

func (r *TableReporter) Format() string { return FormatTable }

func (r *TableReporter) Generate(rs rules.RuleSet) (string, error) {
	var sb strings.Builder
	if err := r.Write(rs, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *TableReporter) Write(rs rules.RuleSet, w io.Writer) error {
	styles := r.Styles
	if styles == nil {
		styles = PlainStyles()
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Severity", "Options"})

	for _, id := range rs.Keys() {
		e := rs[id]
		t.AppendRow(table.Row{id, styles.Severity(e.Severity), formatOptions(e.Options)})
	}

	counts := rs.CountBySeverity()
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d rules", len(rs)),
		fmt.Sprintf("%d error / %d warn", counts[rules.SeverityError], counts[rules.SeverityWarn]),
		fmt.Sprintf("%d off", counts[rules.SeverityOff]),
	})

	t.Render()
	return nil
}

func formatOptions(opts []rules.Value) string {
	if len(opts) == 0 {
		return ""
	}
	parts := make([]string, len(opts))
	for i, v := range opts {
		parts[i] = v.String()
	}
	return truncate(strings.Join(parts, ", "), 60)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
