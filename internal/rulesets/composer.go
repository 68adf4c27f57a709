package rulesets

import (
	"fmt"
	"sync"

	"github.com/JNZader/lintcompose/internal/rules"
)

// Group is one rule group of the core preset.
type Group struct {
	Name  string
	Table rules.Table
}

// Composer assembles the core preset from its groups and the external
// sources. It holds no mutable state after construction and is safe for
// concurrent use.
type Composer struct {
	sources   *rules.Sources
	variables rules.Table
	formatter rules.RuleSet
}

// NewComposer creates a composer over the given sources. Nil sources fall
// back to the embedded data.
func NewComposer(sources *rules.Sources) *Composer {
	if sources == nil {
		sources = DefaultSources()
	}
	return &Composer{
		sources:   sources,
		variables: variablesTable(sources.RestrictedGlobals),
		formatter: FormatterCore(sources.Formatter),
	}
}

var (
	defaultOnce     sync.Once
	defaultSources  *rules.Sources
	defaultComposer *Composer
)

func loadDefaults() {
	defaultOnce.Do(func() {
		src, err := rules.EmbeddedSources()
		if err != nil {
			// The embedded files are part of the build.
			panic(fmt.Sprintf("rulesets: embedded sources: %v", err))
		}
		defaultSources = src
		defaultComposer = &Composer{
			sources:   src,
			variables: variablesTable(src.RestrictedGlobals),
			formatter: FormatterCore(src.Formatter),
		}
	})
}

// DefaultSources returns the embedded restricted-globals list and formatter set.
func DefaultSources() *rules.Sources {
	loadDefaults()
	return defaultSources
}

// Default returns the composer over the embedded sources.
func Default() *Composer {
	loadDefaults()
	return defaultComposer
}

// Sources returns the sources the composer was built with.
func (c *Composer) Sources() *rules.Sources {
	return c.sources
}

// Groups returns the table-backed groups of the core preset, in merge order.
func (c *Composer) Groups() []Group {
	return []Group{
		{Name: LayerPossibleErrors, Table: possibleErrorsTable},
		{Name: LayerBestPractices, Table: bestPracticesTable},
		{Name: LayerStrictMode, Table: strictModeTable},
		{Name: LayerVariables, Table: c.variables},
		{Name: LayerStylistic, Table: stylisticTable},
		{Name: LayerES6, Table: es6Table},
	}
}

// Variables returns the variable-usage rules.
func (c *Composer) Variables(ctx rules.Context) rules.RuleSet {
	return c.variables.Eval(ctx)
}

// Formatter returns the core-namespace formatter-compatibility layer.
func (c *Composer) Formatter() rules.RuleSet {
	return c.formatter.Clone()
}

// CoreLayers returns every layer of the core preset, lowest precedence first.
func (c *Composer) CoreLayers(ctx rules.Context) []rules.Layer {
	layers := make([]rules.Layer, 0, 9)
	for _, g := range c.Groups() {
		layers = append(layers, rules.Layer{Name: g.Name, Rules: g.Table.Eval(ctx)})
	}
	return append(layers,
		rules.Layer{Name: LayerFormatter, Rules: c.Formatter()},
		rules.Layer{Name: LayerFormatterSafety, Rules: SafeFormatterOverrides()},
		rules.Layer{Name: LayerCallerOverrides, Rules: ctx.Rules},
	)
}

// Core composes the core preset.
func (c *Composer) Core(ctx rules.Context) rules.RuleSet {
	return rules.MergeLayers(c.CoreLayers(ctx))
}

// Core composes the core preset over the embedded sources.
func Core(ctx rules.Context) rules.RuleSet {
	return Default().Core(ctx)
}

// Variables returns the variable-usage rules over the embedded sources.
func Variables(ctx rules.Context) rules.RuleSet {
	return Default().Variables(ctx)
}
