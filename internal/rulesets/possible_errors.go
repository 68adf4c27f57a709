package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

var possibleErrorsTable = rules.NewTable(LayerPossibleErrors,
	always("for-direction", sevError),
	typedOff("getter-return", sevWarn),
	always("no-async-promise-executor", sevError),
	always("no-await-in-loop", sevError),
	always("no-compare-neg-zero", sevError),
	always("no-cond-assign", sevWarn, str("except-parens")),
	always("no-console", sevWarn),
	always("no-constant-condition", sevError),
	always("no-control-regex", sevWarn),
	always("no-debugger", sevWarn),
	typedOff("no-dupe-args", sevError),
	always("no-dupe-else-if", sevWarn),
	typedOff("no-dupe-keys", sevWarn),
	always("no-duplicate-case", sevWarn),
	always("no-empty", sevWarn),
	always("no-empty-character-class", sevWarn),
	always("no-ex-assign", sevWarn),
	always("no-extra-boolean-cast", sevWarn),
	always("no-extra-parens", sevOff),
	always("no-extra-semi", sevOff),
	typedOff("no-func-assign", sevWarn),
	typedOff("no-import-assign", sevError),
	always("no-inner-declarations", sevWarn),
	always("no-invalid-regexp", sevError),
	always("no-irregular-whitespace", sevWarn),
	typedOff("no-loss-of-precision", sevError),
	always("no-misleading-character-class", sevWarn),
	typedOff("no-obj-calls", sevError),
	always("no-promise-executor-return", sevError),
	always("no-prototype-builtins", sevError),
	always("no-regex-spaces", sevWarn),
	typedOff("no-setter-return", sevError),
	always("no-sparse-arrays", sevWarn),
	always("no-template-curly-in-string", sevWarn),
	always("no-unexpected-multiline", sevWarn),
	typedOff("no-unreachable", sevWarn),
	always("no-unreachable-loop", sevOff),
	always("no-unsafe-finally", sevError),
	typedOff("no-unsafe-negation", sevWarn),
	always("no-useless-backreference", sevWarn),
	always("require-atomic-updates", sevWarn),
	always("semi", sevOff),
	always("space-before-function-paren", sevOff),
	typedOff("valid-typeof", sevWarn),
)

// PossibleErrors returns the error-detection rules.
func PossibleErrors(ctx rules.Context) rules.RuleSet {
	return possibleErrorsTable.Eval(ctx)
}
