package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/JNZader/lintcompose/internal/rules"
)

// Styles holds the terminal styles used by the table and diff renderers.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Off     lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	Changed lipgloss.Style
}

// DefaultStyles returns coloured styles. lipgloss drops the colours when the
// output is not a terminal.
func DefaultStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Off:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Changed: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:   plain,
		Warning: plain,
		Off:     plain,
		Added:   plain,
		Removed: plain,
		Changed: plain,
	}
}

// Severity renders a severity in its style.
func (s *Styles) Severity(sev rules.Severity) string {
	switch sev {
	case rules.SeverityError:
		return s.Error.Render(sev.String())
	case rules.SeverityWarn:
		return s.Warning.Render(sev.String())
	case rules.SeverityOff:
		return s.Off.Render(sev.String())
	default:
		return sev.String()
	}
}
