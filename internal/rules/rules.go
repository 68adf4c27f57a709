// Package rules provides the rule configuration model: severities, opaque
// option values, rule entries, rule sets and the policy tables that turn a
// project Context into a concrete rule set.
package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity is the enforcement level of a rule.
type Severity string

const (
	SeverityOff   Severity = "off"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// ParseSeverity normalises the linter's numeric encoding (0, 1, 2) to the
// symbolic form. Unknown values are kept verbatim; validating them is the
// consuming engine's job.
func ParseSeverity(v interface{}) Severity {
	switch s := v.(type) {
	case Severity:
		return normaliseSeverity(string(s))
	case string:
		return normaliseSeverity(s)
	case int:
		return severityFromNumber(float64(s))
	case int64:
		return severityFromNumber(float64(s))
	case uint64:
		return severityFromNumber(float64(s))
	case float64:
		return severityFromNumber(s)
	default:
		return Severity(fmt.Sprintf("%v", v))
	}
}

func normaliseSeverity(s string) Severity {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return severityFromNumber(n)
	}
	return Severity(strings.ToLower(trimmed))
}

func severityFromNumber(n float64) Severity {
	switch n {
	case 0:
		return SeverityOff
	case 1:
		return SeverityWarn
	case 2:
		return SeverityError
	default:
		return Severity(strconv.FormatFloat(n, 'f', -1, 64))
	}
}

// Enabled reports whether the severity turns the rule on.
func (s Severity) Enabled() bool {
	return s != SeverityOff && s != ""
}

// Known reports whether s is one of the three symbolic severities.
func (s Severity) Known() bool {
	switch s {
	case SeverityOff, SeverityWarn, SeverityError:
		return true
	}
	return false
}

func (s Severity) String() string { return string(s) }
