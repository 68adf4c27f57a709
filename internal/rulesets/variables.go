package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

// variablesTable builds the variable-usage group around the given list of
// restricted globals. Each global becomes its own option value.
func variablesTable(restrictedGlobals []string) rules.Table {
	restricted := RestrictedGlobalsEntry(restrictedGlobals)

	return rules.NewTable(LayerVariables,
		always("init-declarations", sevOff),
		always("no-delete-var", sevOff),
		always("no-label-var", sevOff),
		always(RestrictedGlobalsRule, restricted.Severity, restricted.Options...),
		always("no-shadow", sevOff),
		always("no-shadow-restricted-names", sevError),
		typedOff("no-undef", sevError),
		always("no-undef-init", sevWarn),
		always("no-undefined", sevOff),
		typedOff("no-unused-vars", sevWarn, obj(
			field("args", str("none")),
			field("ignoreRestSiblings", rules.Bool(true)),
		)),
		typedOff("no-use-before-define", sevWarn, obj(
			field("classes", rules.Bool(false)),
			field("functions", rules.Bool(false)),
			field("variables", rules.Bool(false)),
		)),
	)
}

// RestrictedGlobalsEntry wraps a list of global names into the
// no-restricted-globals entry.
func RestrictedGlobalsEntry(names []string) rules.Entry {
	opts := make([]rules.Value, len(names))
	for i, name := range names {
		opts[i] = str(name)
	}
	return rules.Sev(sevError, opts...)
}
