package rulesets

import (
	"errors"
	"testing"

	"github.com/JNZader/lintcompose/internal/rules"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typescriptCtx() rules.Context {
	return rules.Context{TypeScript: rules.TypeScript{HasTypeScript: true}}
}

// typedOffRow is a rule switched off for type-checked projects, with the
// entry it carries otherwise.
type typedOffRow struct {
	id    string
	entry string
}

func TestTypedOffKeys(t *testing.T) {
	tests := []struct {
		name  string
		table rules.Table
		want  []typedOffRow
	}{
		{
			name:  LayerPossibleErrors,
			table: possibleErrorsTable,
			want: []typedOffRow{
				{"getter-return", `"warn"`},
				{"no-dupe-args", `"error"`},
				{"no-dupe-keys", `"warn"`},
				{"no-func-assign", `"warn"`},
				{"no-import-assign", `"error"`},
				{"no-loss-of-precision", `"error"`},
				{"no-obj-calls", `"error"`},
				{"no-setter-return", `"error"`},
				{"no-unreachable", `"warn"`},
				{"no-unsafe-negation", `"warn"`},
				{"valid-typeof", `"warn"`},
			},
		},
		{
			name:  LayerBestPractices,
			table: bestPracticesTable,
			want: []typedOffRow{
				{"array-callback-return", `["error",{"checkForEach":true}]`},
				{"default-case", `"error"`},
				{"default-param-last", `"error"`},
				{"dot-notation", `"warn"`},
				{"no-constructor-return", `"error"`},
				{"no-empty-function", `"error"`},
				{"no-invalid-this", `"error"`},
				{"no-loop-func", `"error"`},
				{"no-redeclare", `"error"`},
				{"no-return-await", `"error"`},
				{"no-throw-literal", `"error"`},
				{"no-unsafe-optional-chaining", `"error"`},
				{"no-unused-expressions", `["error",{"allowShortCircuit":true,"allowTaggedTemplates":true,"allowTernary":true}]`},
				{"no-unused-private-class-members", `"warn"`},
				{"require-await", `"error"`},
			},
		},
		{
			name:  LayerVariables,
			table: variablesTable(nil),
			want: []typedOffRow{
				{"no-undef", `"error"`},
				{"no-unused-vars", `["warn",{"args":"none","ignoreRestSiblings":true}]`},
				{"no-use-before-define", `["warn",{"classes":false,"functions":false,"variables":false}]`},
			},
		},
		{
			name:  LayerStylistic,
			table: stylisticTable,
			want: []typedOffRow{
				{"lines-between-class-members", `"warn"`},
				{"no-array-constructor", `"error"`},
			},
		},
		{
			name:  LayerES6,
			table: es6Table,
			want: []typedOffRow{
				{"constructor-super", `"error"`},
				{"no-const-assign", `"error"`},
				{"no-dupe-class-members", `"error"`},
				{"no-this-before-super", `"error"`},
				{"no-useless-constructor", `"warn"`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]string, len(tt.want))
			for i, row := range tt.want {
				ids[i] = row.id
			}
			assert.Equal(t, ids, tt.table.TypedOffKeys())

			plain := tt.table.Eval(rules.Context{})
			typed := tt.table.Eval(typescriptCtx())
			for _, row := range tt.want {
				assert.Equal(t, row.entry, plain[row.id].String(), "%s without TypeScript", row.id)
				assert.Equal(t, `"off"`, typed[row.id].String(), "%s with TypeScript", row.id)
			}
		})
	}
}

func TestTypedOffKeysOffInCore(t *testing.T) {
	core := Core(typescriptCtx())
	for _, g := range Default().Groups() {
		for _, id := range g.Table.TypedOffKeys() {
			assert.Equal(t, rules.SeverityOff, core[id].Severity, "%s/%s", g.Name, id)
		}
	}
}

func TestPreferConst(t *testing.T) {
	assert.True(t, rules.Error().Equal(ES6(typescriptCtx())["prefer-const"]))
	assert.True(t, rules.Warn().Equal(ES6(rules.Context{})["prefer-const"]))
}

func TestStrictModeIsOff(t *testing.T) {
	got := StrictMode(rules.Context{})
	require.Len(t, got, 1)
	assert.Equal(t, rules.SeverityOff, got["strict"].Severity)
}

func TestNewCapFollowsDecorators(t *testing.T) {
	decorated := rules.Context{TypeScript: rules.TypeScript{
		HasTypeScript: true,
		Config: &rules.TSConfig{CompilerOptions: map[string]interface{}{
			"experimentalDecorators": true,
		}},
	}}

	assert.Equal(t, rules.SeverityOff, Stylistic(decorated)["new-cap"].Severity)
	assert.Equal(t, rules.SeverityWarn, Stylistic(typescriptCtx())["new-cap"].Severity)
	assert.Equal(t, rules.SeverityWarn, Stylistic(rules.Context{})["new-cap"].Severity)
}

func TestSpacedCommentMarkers(t *testing.T) {
	withMarkers := rules.Sev(rules.SeverityWarn, rules.String("always"),
		rules.Map(rules.F("markers", rules.Strings("/"))))
	plain := rules.Sev(rules.SeverityWarn, rules.String("always"), rules.Map())

	tests := []struct {
		name string
		ctx  rules.Context
		want rules.Entry
	}{
		{"typescript next", rules.Context{
			TypeScript: rules.TypeScript{HasTypeScript: true},
			React:      rules.React{IsNext: true},
		}, withMarkers},
		{"typescript cra", rules.Context{
			TypeScript: rules.TypeScript{HasTypeScript: true},
			React:      rules.React{IsCreateReactApp: true},
		}, withMarkers},
		{"typescript only", typescriptCtx(), plain},
		{"next without typescript", rules.Context{React: rules.React{IsNext: true}}, plain},
		{"empty", rules.Context{}, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stylistic(tt.ctx)["spaced-comment"]
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestRestrictedGlobals(t *testing.T) {
	src := DefaultSources()
	require.Len(t, src.RestrictedGlobals, 58)

	got := Variables(rules.Context{})[RestrictedGlobalsRule]
	assert.Equal(t, rules.SeverityError, got.Severity)
	require.Len(t, got.Options, 58)
	first, _ := got.Options[0].AsString()
	assert.Equal(t, src.RestrictedGlobals[0], first)
}

func TestCoreFormatterLayer(t *testing.T) {
	core := Core(rules.Context{})

	// "on" is not a valid severity and never survives composition.
	assert.Equal(t, sevOn, Stylistic(rules.Context{})["space-before-function-paren"].Severity)
	assert.Equal(t, rules.SeverityOff, core["space-before-function-paren"].Severity)
	assert.Equal(t, rules.SeverityOff, core["space-in-parens"].Severity)

	assert.Equal(t, rules.SeverityOff, core["no-unexpected-multiline"].Severity)
	assert.True(t, rules.Sev(rules.SeverityWarn, rules.String("all")).Equal(core["curly"]))
	assert.True(t, rules.Warn().Equal(core["prefer-arrow-callback"]))

	for id, e := range core {
		assert.True(t, rules.IsCore(id), "namespaced rule %s in core", id)
		assert.True(t, e.Severity.Known(), "%s has severity %q", id, e.Severity)
	}
}

func TestFormatterCoreFilter(t *testing.T) {
	src := &rules.Sources{
		RestrictedGlobals: []string{"event"},
		Formatter: rules.RuleSet{
			"quotes":                    rules.Off(),
			"react/jsx-quotes":          rules.Off(),
			"@typescript-eslint/quotes": rules.Off(),
		},
	}
	c := NewComposer(src)

	formatter := c.Formatter()
	assert.Contains(t, formatter, "quotes")
	assert.NotContains(t, formatter, "react/jsx-quotes")
	assert.NotContains(t, formatter, "@typescript-eslint/quotes")

	core := c.Core(rules.Context{})
	assert.NotContains(t, core, "react/jsx-quotes")
	require.Len(t, core[RestrictedGlobalsRule].Options, 1)

	react := FormatterPlugin(src.Formatter, "react")
	assert.Equal(t, []string{"react/jsx-quotes"}, react.Keys())
}

func TestSafeFormatterOverridesIsACopy(t *testing.T) {
	a := SafeFormatterOverrides()
	a["curly"] = rules.Off()
	assert.Equal(t, rules.SeverityWarn, SafeFormatterOverrides()["curly"].Severity)
}

func TestCoreLayersOrder(t *testing.T) {
	layers := Default().CoreLayers(rules.Context{})
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name
	}
	assert.Equal(t, []string{
		LayerPossibleErrors, LayerBestPractices, LayerStrictMode, LayerVariables,
		LayerStylistic, LayerES6, LayerFormatter, LayerFormatterSafety, LayerCallerOverrides,
	}, names)

	assert.Equal(t,
		[]string{LayerBestPractices, LayerFormatter, LayerFormatterSafety},
		rules.Provenance(layers, "curly"))
}

func TestCallerOverridesWin(t *testing.T) {
	ctx := rules.Context{Rules: rules.RuleSet{
		"curly":       rules.Error(),
		"custom-rule": rules.Warn(),
	}}
	core := Core(ctx)

	assert.True(t, rules.Error().Equal(core["curly"]))
	assert.True(t, rules.Warn().Equal(core["custom-rule"]))
	assert.Len(t, ctx.Rules, 2, "overrides must not be modified")
}

func TestRocketseat(t *testing.T) {
	want := map[string]string{
		"camelcase":                    `"off"`,
		"import/no-duplicates":         `"off"`,
		"react/jsx-props-no-spreading": `"off"`,
		"react/react-in-jsx-scope":     `"off"`,
		"react/prop-types":             `"off"`,
		"jsx-a11y/anchor-is-valid": `["error",{"components":["Link"],"specialLink":["hrefLeft","hrefRight"],` +
			`"aspects":["invalidHref","preferButton"]}]`,
		"react/jsx-one-expression-per-line":                `"off"`,
		"react-hooks/rules-of-hooks":                       `"error"`,
		"react-hooks/exhaustive-deps":                      `"warn"`,
		"react/require-default-props":                      `"off"`,
		"react/jsx-filename-extension":                     `["warn",{"extensions":[".tsx"]}]`,
		"import/prefer-default-export":                     `"off"`,
		"@typescript-eslint/explicit-function-return-type": `["warn",{"allowExpressions":true}]`,
		"@typescript-eslint/camelcase":                     `"off"`,
	}

	contexts := map[string]rules.Context{
		"plain":      {},
		"typescript": typescriptCtx(),
		"next": {
			TypeScript: rules.TypeScript{HasTypeScript: true},
			React:      rules.React{IsNext: true},
		},
		"cra": {React: rules.React{IsCreateReactApp: true}},
	}
	for name, ctx := range contexts {
		t.Run(name, func(t *testing.T) {
			got := Rocketseat(ctx)
			require.Len(t, got, len(want))
			for id, entry := range want {
				assert.Equal(t, entry, got[id].String(), id)
			}
		})
	}

	overridden := Rocketseat(rules.Context{Rules: rules.RuleSet{"camelcase": rules.Error()}})
	assert.Equal(t, rules.SeverityError, overridden["camelcase"].Severity)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{PresetCore, PresetRocketseat}, PresetNames())

	got, err := Default().Compose(PresetCore, rules.Context{})
	require.NoError(t, err)
	assert.True(t, Core(rules.Context{}).Equal(got))

	got, err = Default().Compose(PresetRocketseat, typescriptCtx())
	require.NoError(t, err)
	assert.True(t, Rocketseat(typescriptCtx()).Equal(got))

	_, err = Default().Compose("airbnb", rules.Context{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func genContext() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
	).Map(func(v []interface{}) rules.Context {
		return rules.Context{
			TypeScript: rules.TypeScript{
				HasTypeScript: v[0].(bool),
				Config: &rules.TSConfig{CompilerOptions: map[string]interface{}{
					"experimentalDecorators": v[1].(bool),
				}},
			},
			React: rules.React{IsNext: v[2].(bool), IsCreateReactApp: v[3].(bool)},
		}
	})
}

func TestCoreProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("composition is deterministic", prop.ForAll(
		func(ctx rules.Context) bool {
			return Core(ctx).Equal(Core(ctx))
		},
		genContext(),
	))

	properties.Property("key set does not depend on context", prop.ForAll(
		func(ctx rules.Context) bool {
			base := Core(rules.Context{})
			got := Core(ctx)
			if len(got) != len(base) {
				return false
			}
			for id := range base {
				if _, ok := got[id]; !ok {
					return false
				}
			}
			return true
		},
		genContext(),
	))

	ids := Core(rules.Context{}).Keys()
	properties.Property("an override always wins", prop.ForAll(
		func(ctx rules.Context, idx int, sev rules.Severity) bool {
			id := ids[idx]
			ctx.Rules = rules.RuleSet{id: rules.Sev(sev)}
			return Core(ctx)[id].Equal(rules.Sev(sev))
		},
		genContext(),
		gen.IntRange(0, len(ids)-1),
		gen.OneConstOf(rules.SeverityOff, rules.SeverityWarn, rules.SeverityError),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
