package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

var bestPracticesTable = rules.NewTable(LayerBestPractices,
	always("accessor-pairs", sevOff),
	typedOff("array-callback-return", sevError, obj(
		field("checkForEach", rules.Bool(true)),
	)),
	always("block-scoped-var", sevOff),
	always("class-methods-use-this", sevOff),
	always("complexity", sevOff),
	always("consistent-return", sevOff),
	always("curly", sevWarn, str("all")),
	typedOff("default-case", sevError),
	always("default-case-last", sevError),
	typedOff("default-param-last", sevError),
	always("dot-location", sevOff),
	typedOff("dot-notation", sevWarn),
	always("eqeqeq", sevWarn),
	always("grouped-accessor-pairs", sevOff),
	always("guard-for-in", sevWarn),
	always("max-classes-per-file", sevOff),
	always("no-alert", sevWarn),
	always("no-caller", sevError),
	always("no-case-declarations", sevWarn),
	typedOff("no-constructor-return", sevError),
	always("no-div-regex", sevWarn),
	always("no-else-return", sevWarn),
	typedOff("no-empty-function", sevError),
	always("no-empty-pattern", sevWarn),
	always("no-eq-null", sevError),
	always("no-eval", sevError),
	always("no-extend-native", sevError),
	always("no-extra-bind", sevWarn),
	// labels are forbidden outright by no-labels
	always("no-extra-label", sevOff),
	always("no-fallthrough", sevWarn),
	always("no-floating-decimal", sevWarn),
	always("no-global-assign", sevWarn),
	always("no-implicit-coercion", sevWarn, obj(
		field("boolean", rules.Bool(false)),
		field("number", rules.Bool(true)),
		field("string", rules.Bool(true)),
	)),
	always("no-implicit-globals", sevError),
	always("no-implied-eval", sevError),
	typedOff("no-invalid-this", sevError),
	always("no-iterator", sevOff),
	always("no-labels", sevError),
	always("no-lone-blocks", sevOff),
	typedOff("no-loop-func", sevError),
	always("no-magic-numbers", sevOff),
	always("no-multi-spaces", sevOff),
	always("no-multi-str", sevOff),
	always("no-new", sevError),
	always("no-new-func", sevError),
	always("no-new-wrappers", sevError),
	always("no-nonoctal-decimal-escape", sevError),
	always("no-octal", sevWarn),
	always("no-octal-escape", sevError),
	always("no-param-reassign", sevError),
	always("no-proto", sevError),
	typedOff("no-redeclare", sevError),
	always("no-restricted-properties", sevOff),
	always("no-return-assign", sevError),
	typedOff("no-return-await", sevError),
	always("no-script-url", sevError),
	always("no-self-assign", sevError),
	always("no-self-compare", sevError),
	always("no-sequences", sevError),
	typedOff("no-throw-literal", sevError),
	always("no-unmodified-loop-condition", sevError),
	typedOff("no-unsafe-optional-chaining", sevError),
	typedOff("no-unused-expressions", sevError, obj(
		field("allowShortCircuit", rules.Bool(true)),
		field("allowTaggedTemplates", rules.Bool(true)),
		field("allowTernary", rules.Bool(true)),
	)),
	always("no-unused-labels", sevOff),
	typedOff("no-unused-private-class-members", sevWarn),
	always("no-useless-call", sevError),
	always("no-useless-catch", sevOff),
	always("no-useless-concat", sevError),
	always("no-useless-escape", sevWarn),
	always("no-useless-return", sevWarn),
	always("no-void", sevOff),
	always("no-warning-comments", sevOff),
	always("no-with", sevError),
	always("prefer-named-capture-group", sevOff),
	always("prefer-promise-reject-errors", sevError),
	always("prefer-regex-literals", sevError),
	always("radix", sevOff),
	typedOff("require-await", sevError),
	always("require-unicode-regexp", sevError),
	always("vars-on-top", sevOff),
	always("wrap-iife", sevWarn),
	always("yoda", sevWarn),
)

// BestPractices returns the best-practice rules.
func BestPractices(ctx rules.Context) rules.RuleSet {
	return bestPracticesTable.Eval(ctx)
}

var strictModeTable = rules.NewTable(LayerStrictMode,
	// modules are always strict
	always("strict", sevOff),
)

// StrictMode returns the fixed strict-mode rule set.
func StrictMode(ctx rules.Context) rules.RuleSet {
	return strictModeTable.Eval(ctx)
}
