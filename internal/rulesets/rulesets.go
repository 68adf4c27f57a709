// Package rulesets declares the built-in rule groups and composes them into
// complete lint configurations.
//
// Every group is a rules.Table: a fixed list of rule identifiers, each bound to
// a policy that is evaluated once against the project Context. Most policies
// are constant; the ones built with typedOff hand the check over to the
// TypeScript compiler when the project is type-checked.
package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

const (
	sevOff   = rules.SeverityOff
	sevWarn  = rules.SeverityWarn
	sevError = rules.SeverityError

	// sevOn is not a severity the linting engine understands. Two stylistic
	// rules carry it; the formatter layer always replaces both with off.
	sevOn rules.Severity = "on"
)

// Layer names, in composition order.
const (
	LayerPossibleErrors   = "possible-errors"
	LayerBestPractices    = "best-practices"
	LayerStrictMode       = "strict-mode"
	LayerVariables        = "variables"
	LayerStylistic        = "stylistic"
	LayerES6              = "es6"
	LayerFormatter        = "formatter"
	LayerFormatterSafety  = "formatter-safety"
	LayerRocketseat       = "rocketseat"
	LayerCallerOverrides  = "overrides"
	RestrictedGlobalsRule = "no-restricted-globals"
)

func always(id string, severity rules.Severity, options ...rules.Value) rules.Row {
	return rules.Row{ID: id, Policy: rules.Always(severity, options...)}
}

func typedOff(id string, severity rules.Severity, options ...rules.Value) rules.Row {
	return rules.Row{ID: id, Policy: rules.TypedOff(severity, options...)}
}

func typed(id string, whenTyped, otherwise rules.Entry) rules.Row {
	return rules.Row{ID: id, Policy: rules.Typed(whenTyped, otherwise)}
}

func conditional(id string, fn func(rules.Context) rules.Entry) rules.Row {
	return rules.Row{ID: id, Policy: rules.PolicyFunc(fn)}
}

func str(s string) rules.Value { return rules.String(s) }

func obj(fields ...rules.Field) rules.Value { return rules.Map(fields...) }

func field(key string, v rules.Value) rules.Field { return rules.F(key, v) }
