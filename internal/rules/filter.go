package rules

import (
	"sort"
	"strings"
)

// NamespaceSeparator splits a plugin prefix from a rule short name.
const NamespaceSeparator = "/"

// Namespace returns the plugin prefix of id, or "" for core rules.
// Scoped plugins such as "@typescript-eslint/indent" keep the scope.
func Namespace(id string) string {
	i := strings.LastIndex(id, NamespaceSeparator)
	if i < 0 {
		return ""
	}
	return id[:i]
}

// IsCore reports whether id belongs to the un-prefixed namespace.
func IsCore(id string) bool {
	return !strings.Contains(id, NamespaceSeparator)
}

// CoreOnly keeps the rules without a namespace separator.
func CoreOnly(rs RuleSet) RuleSet {
	return rs.Filter(func(id string, _ Entry) bool {
		return IsCore(id)
	})
}

// Namespaced keeps the rules that carry a plugin prefix.
func Namespaced(rs RuleSet) RuleSet {
	return rs.Filter(func(id string, _ Entry) bool {
		return !IsCore(id)
	})
}

// InNamespace keeps the rules of a single plugin.
func InNamespace(rs RuleSet, namespace string) RuleSet {
	return rs.Filter(func(id string, _ Entry) bool {
		return Namespace(id) == namespace
	})
}

// Namespaces returns the distinct plugin prefixes in rs, sorted. Core rules
// are reported as "".
func Namespaces(rs RuleSet) []string {
	seen := make(map[string]bool)
	for id := range rs {
		seen[Namespace(id)] = true
	}
	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// BySeverity keeps the rules set to one of the given severities.
func BySeverity(rs RuleSet, severities ...Severity) RuleSet {
	want := make(map[Severity]bool, len(severities))
	for _, s := range severities {
		want[s] = true
	}
	return rs.Filter(func(_ string, e Entry) bool {
		return want[e.Severity]
	})
}

// Enabled drops the rules that are turned off.
func Enabled(rs RuleSet) RuleSet {
	return rs.Filter(func(_ string, e Entry) bool {
		return e.Severity.Enabled()
	})
}
