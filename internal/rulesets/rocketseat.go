package rulesets

import "github.com/JNZader/lintcompose/internal/rules"

// rocketseatTable is the React + TypeScript preset used with the Rocketseat
// styling guide. It is independent of the core groups and of the context:
// every row is constant.
var rocketseatTable = rules.NewTable(LayerRocketseat,
	always("camelcase", sevOff),
	always("import/no-duplicates", sevOff),
	always("react/jsx-props-no-spreading", sevOff),
	always("react/react-in-jsx-scope", sevOff),
	always("react/prop-types", sevOff),
	always("jsx-a11y/anchor-is-valid", sevError, obj(
		field("components", rules.Strings("Link")),
		field("specialLink", rules.Strings("hrefLeft", "hrefRight")),
		field("aspects", rules.Strings("invalidHref", "preferButton")),
	)),
	always("react/jsx-one-expression-per-line", sevOff),
	always("react-hooks/rules-of-hooks", sevError),
	always("react-hooks/exhaustive-deps", sevWarn),
	always("react/require-default-props", sevOff),
	always("react/jsx-filename-extension", sevWarn, obj(
		field("extensions", rules.Strings(".tsx")),
	)),
	always("import/prefer-default-export", sevOff),
	always("@typescript-eslint/explicit-function-return-type", sevWarn, obj(
		field("allowExpressions", rules.Bool(true)),
	)),
	always("@typescript-eslint/camelcase", sevOff),
)

// RocketseatLayers returns the preset table followed by the caller overrides.
func RocketseatLayers(ctx rules.Context) []rules.Layer {
	return []rules.Layer{
		{Name: LayerRocketseat, Rules: rocketseatTable.Eval(ctx)},
		{Name: LayerCallerOverrides, Rules: ctx.Rules},
	}
}

// Rocketseat composes the Rocketseat preset.
func Rocketseat(ctx rules.Context) rules.RuleSet {
	return rules.MergeLayers(RocketseatLayers(ctx))
}
