package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JNZader/lintcompose/internal/cache"
	"github.com/JNZader/lintcompose/internal/config"
	"github.com/JNZader/lintcompose/internal/detect"
	"github.com/JNZader/lintcompose/internal/rules"
	"github.com/JNZader/lintcompose/internal/rulesets"
)

// contextFlags registers the flags that shape the rule-selection context.
// Their values are read back through the config loader.
func contextFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("preset", "p", rulesets.PresetCore, "preset to compose ("+strings.Join(rulesets.PresetNames(), ", ")+")")
	cmd.Flags().Bool("typescript", false, "project is type-checked by the TypeScript compiler")
	cmd.Flags().String("tsconfig", "", "tsconfig.json to read compilerOptions from")
	cmd.Flags().Bool("next", false, "project uses Next.js")
	cmd.Flags().Bool("cra", false, "project uses Create React App")
	cmd.Flags().Bool("detect", false, "detect the flags from the project directory")
	cmd.Flags().String("project-dir", ".", "project directory used by --detect")
	cmd.Flags().String("sources-dir", "", "directory with restricted-globals.yaml and formatter.yaml replacements")
	cmd.Flags().StringSlice("inherit", nil, "override files or HTTPS URLs, lowest precedence first")
	cmd.Flags().StringSlice("disable", nil, "rule IDs forced to off")
	cmd.Flags().StringArray("set", nil, "override a rule, e.g. --set curly=warn or --set 'quotes=[error, single]'")
}

// session carries what a single composition needs.
type session struct {
	cfg      *config.Config
	composer *rulesets.Composer
	inherit  *rules.HierarchicalLoader
	closeFn  func() error
}

// newSession loads rule sources and opens the override cache.
func newSession(c *config.Config) (*session, error) {
	sources, err := rules.NewLoader(c.SourcesDir).Load()
	if err != nil {
		return nil, err
	}

	store, closeFn, err := openCache(c.Cache)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      c,
		composer: rulesets.NewComposer(sources),
		inherit:  rules.NewHierarchicalLoader(store),
		closeFn:  closeFn,
	}, nil
}

func (s *session) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// openCache picks the override cache: none when disabled, badger when a
// directory is configured, otherwise an in-memory LRU.
func openCache(c config.CacheConfig) (cache.Cache[rules.RuleSet], func() error, error) {
	switch {
	case !c.Enabled:
		return &cache.NopCache[rules.RuleSet]{}, nil, nil
	case c.Dir != "":
		store, err := cache.NewBadgerCache[rules.RuleSet](cache.BadgerOptions{Dir: c.Dir, TTL: c.TTL})
		if err != nil {
			return nil, nil, fmt.Errorf("opening cache: %w", err)
		}
		return store, store.Close, nil
	default:
		return cache.NewLRUCache[rules.RuleSet](c.MaxEntries, c.TTL), nil, nil
	}
}

// Context resolves the rule-selection context: configuration flags, then
// project detection, then an explicit tsconfig, then caller overrides.
func (s *session) Context(ctx context.Context, sets []string) (rules.Context, error) {
	rctx := s.cfg.Context()

	if s.cfg.Detect {
		info, err := detect.DetectProject(s.cfg.ProjectDir)
		if err != nil {
			return rules.Context{}, err
		}
		rctx.TypeScript.HasTypeScript = rctx.TypeScript.HasTypeScript || info.HasTypeScript
		rctx.React.IsNext = rctx.React.IsNext || info.IsNext
		rctx.React.IsCreateReactApp = rctx.React.IsCreateReactApp || info.IsCRA
		rctx.TypeScript.Config = info.TSConfig
	}

	if path := s.cfg.TypeScript.TSConfig; path != "" {
		tsconfig, err := detect.LoadTSConfig(path)
		if err != nil {
			return rules.Context{}, err
		}
		rctx.TypeScript.Config = tsconfig
	}

	inline, err := parseSets(sets)
	if err != nil {
		return rules.Context{}, err
	}
	inherit := s.cfg.InheritConfig()
	inherit.Override = rules.Merge(inherit.Override, inline)

	overrides, err := s.inherit.Load(ctx, inherit)
	if err != nil {
		return rules.Context{}, err
	}
	rctx.Rules = overrides

	log.Debug().
		Bool("typescript", rctx.TypeScript.HasTypeScript).
		Bool("decorators", rctx.TypeScript.Config.ExperimentalDecorators()).
		Bool("next", rctx.React.IsNext).
		Bool("cra", rctx.React.IsCreateReactApp).
		Int("overrides", len(rctx.Rules)).
		Msg("resolved context")

	return rctx, nil
}

// Layers composes the configured preset and returns its layers.
func (s *session) Layers(ctx context.Context, sets []string) ([]rules.Layer, error) {
	rctx, err := s.Context(ctx, sets)
	if err != nil {
		return nil, err
	}
	return s.composer.Layers(s.cfg.Preset, rctx)
}

// Compose builds the configured preset.
func (s *session) Compose(ctx context.Context, sets []string) (rules.RuleSet, error) {
	layers, err := s.Layers(ctx, sets)
	if err != nil {
		return nil, err
	}
	return rules.MergeLayers(layers), nil
}

// parseSets turns id=value pairs into a rule set. The value is anything a
// rules file accepts for a single rule: a severity, a number or a list.
func parseSets(sets []string) (rules.RuleSet, error) {
	if len(sets) == 0 {
		return nil, nil
	}

	var doc strings.Builder
	for _, set := range sets {
		id, value, ok := strings.Cut(set, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("invalid --set %q: want rule=value", set)
		}
		fmt.Fprintf(&doc, "%q: %s\n", id, value)
	}

	rs, err := rules.ParseOverrides([]byte(doc.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid --set: %w", err)
	}
	return rs, nil
}
