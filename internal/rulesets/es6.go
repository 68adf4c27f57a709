package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

var es6Table = rules.NewTable(LayerES6,
	always("arrow-body-style", sevOff),
	always("arrow-parens", sevOff),
	always("arrow-spacing", sevOff),
	typedOff("constructor-super", sevError),
	always("generator-star-spacing", sevOff),
	always("no-class-assign", sevError),
	always("no-confusing-arrow", sevOff),
	typedOff("no-const-assign", sevError),
	typedOff("no-dupe-class-members", sevError),
	always("no-duplicate-imports", sevOff),
	always("no-new-symbol", sevOff),
	always("no-restricted-exports", sevOff),
	always("no-restricted-imports", sevOff),
	typedOff("no-this-before-super", sevError),
	always("no-useless-computed-key", sevWarn),
	typedOff("no-useless-constructor", sevWarn),
	always("no-useless-rename", sevWarn),
	always("no-var", sevError),
	always("object-shorthand", sevWarn),
	typed("prefer-const", rules.Error(), rules.Warn()),
	always("prefer-destructuring", sevWarn),
	always("prefer-numeric-literals", sevWarn),
	always("prefer-rest-params", sevError),
	always("prefer-spread", sevError),
	always("prefer-template", sevWarn),
	always("require-yield", sevError),
	always("rest-spread-spacing", sevOff),
	always("sort-imports", sevOff),
	always("symbol-description", sevError),
	always("template-curly-spacing", sevOff),
	always("yield-star-spacing", sevOff),
)

// ES6 returns the block-scoping and destructuring era rules.
func ES6(ctx rules.Context) rules.RuleSet {
	return es6Table.Eval(ctx)
}
