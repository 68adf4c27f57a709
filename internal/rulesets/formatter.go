package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

// FormatterCore keeps the formatter-compatibility entries of core rules.
// Namespaced entries are left to the presets that enable their plugin, see
// FormatterPlugin.
func FormatterCore(formatter rules.RuleSet) rules.RuleSet {
	return rules.CoreOnly(formatter)
}

// FormatterPlugin returns the formatter-compatibility entries of a single
// plugin namespace.
func FormatterPlugin(formatter rules.RuleSet, namespace string) rules.RuleSet {
	return rules.InNamespace(formatter, namespace)
}

// safeFormatterOverrides re-enables checks the formatter set turns off even
// though they are about logic rather than layout.
var safeFormatterOverrides = rules.RuleSet{
	"curly":                 bestPracticesTable.Eval(rules.Context{})["curly"],
	"prefer-arrow-callback": rules.Warn(),
}

// SafeFormatterOverrides returns the formatter-safety layer.
func SafeFormatterOverrides() rules.RuleSet {
	return safeFormatterOverrides.Clone()
}
