package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

// mixedOperatorGroups are the operator families no-mixed-operators checks.
var mixedOperatorGroups = rules.List(
	rules.Strings("&", "|", "^", "~", "<<", ">>", ">>>"),
	rules.Strings("==", "!=", "===", "!==", ">", ">=", "<", "<="),
	rules.Strings("&&", "||"),
	rules.Strings("in", "instanceof"),
)

var stylisticTable = rules.NewTable(LayerStylistic,
	always("array-bracket-newline", sevOff),
	always("array-bracket-spacing", sevOff),
	always("array-element-newline", sevOff),
	always("block-spacing", sevOff),
	always("brace-style", sevOff),
	always("camelcase", sevOff),
	always("capitalized-comments", sevOff),
	always("comma-dangle", sevOff),
	always("comma-spacing", sevOff),
	always("comma-style", sevOff),
	always("computed-property-spacing", sevOff),
	always("consistent-this", sevOff),
	always("eol-last", sevOff),
	always("func-call-spacing", sevOff),
	always("func-name-matching", sevOff),
	always("func-names", sevWarn, str("as-needed")),
	always("func-style", sevOff),
	always("function-call-argument-newline", sevOff),
	always("function-paren-newline", sevOff),
	always("id-denylist", sevOff),
	always("id-length", sevOff),
	always("id-match", sevOff),
	always("implicit-arrow-linebreak", sevOff),
	always("indent", sevOff),
	always("jsx-quotes", sevOff),
	always("key-spacing", sevOff),
	always("keyword-spacing", sevOff),
	always("line-comment-position", sevOff),
	always("linebreak-style", sevOff),
	always("lines-around-comment", sevOff),
	typedOff("lines-between-class-members", sevWarn),
	always("max-depth", sevOff),
	always("max-len", sevOff),
	always("max-lines", sevOff),
	always("max-lines-per-function", sevOff),
	always("max-nested-callbacks", sevOff),
	always("max-params", sevOff),
	always("max-statements", sevOff),
	always("max-statements-per-line", sevOff),
	always("multiline-comment-style", sevOff),
	always("multiline-ternary", sevOff),
	// decorator factories are conventionally lower-case
	conditional("new-cap", func(ctx rules.Context) rules.Entry {
		if ctx.TypeScript.Config.ExperimentalDecorators() {
			return rules.Off()
		}
		return rules.Warn()
	}),
	always("new-parens", sevOff),
	always("newline-per-chained-call", sevOff),
	typedOff("no-array-constructor", sevError),
	always("no-bitwise", sevWarn),
	always("no-continue", sevOff),
	always("no-inline-comments", sevOff),
	always("no-lonely-if", sevOff),
	always("no-mixed-operators", sevWarn, obj(
		field("allowSamePrecedence", rules.Bool(false)),
		field("groups", mixedOperatorGroups),
	)),
	always("no-mixed-spaces-and-tabs", sevOff),
	always("no-multi-assign", sevError),
	always("no-multiple-empty-lines", sevWarn),
	always("no-new-object", sevError),
	always("no-plusplus", sevOff),
	always("no-restricted-syntax", sevOff),
	always("no-tabs", sevOff),
	always("no-ternary", sevOff),
	always("no-trailing-spaces", sevOff),
	always("no-underscore-dangle", sevOff),
	always("no-unneeded-ternary", sevWarn),
	always("no-whitespace-before-property", sevOff),
	always("nonblock-statement-body-position", sevOff),
	always("object-curly-newline", sevOff),
	always("object-curly-spacing", sevOff),
	always("object-property-newline", sevOff),
	always("one-var", sevWarn, str("never")),
	always("one-var-declaration-per-line", sevOff),
	always("operator-assignment", sevWarn, str("always")),
	always("operator-linebreak", sevOff),
	always("padded-blocks", sevOff),
	always("padding-line-between-statements", sevOff),
	always("prefer-exponentiation-operator", sevWarn),
	always("prefer-object-spread", sevWarn),
	always("quote-props", sevOff),
	always("quotes", sevOff),
	always("semi", sevOff),
	always("semi-spacing", sevOff),
	always("semi-style", sevOff),
	always("sort-keys", sevOff),
	always("sort-vars", sevOff),
	always("space-before-blocks", sevOff),
	always("space-before-function-paren", sevOn),
	always("space-in-parens", sevOn),
	always("space-infix-ops", sevOff),
	always("space-unary-ops", sevOff),
	// triple-slash directives need the "/" marker
	conditional("spaced-comment", func(ctx rules.Context) rules.Entry {
		exceptions := obj()
		if ctx.TypeScript.HasTypeScript && ctx.React.UsesReactFramework() {
			exceptions = obj(field("markers", rules.Strings("/")))
		}
		return rules.Sev(sevWarn, str("always"), exceptions)
	}),
	always("switch-colon-spacing", sevOff),
	always("template-tag-spacing", sevOff),
	always("unicode-bom", sevOff),
	always("use-isnan", sevOff),
	always("wrap-regex", sevOff),
)

// Stylistic returns the stylistic rules. Besides the TypeScript flag it reads
// the tsconfig decorator setting and the React framework flags.
func Stylistic(ctx rules.Context) rules.RuleSet {
	return stylisticTable.Eval(ctx)
}
