package rulesets

import (
	"errors"
	"fmt"

	"github.com/JNZader/lintcompose/internal/rules"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names.
const (
	PresetCore       = "core"
	PresetRocketseat = "rocketseat"
)

// Preset is a named, composable configuration.
type Preset struct {
	Name        string
	Description string
	layers      func(c *Composer, ctx rules.Context) []rules.Layer
}

var presets = []Preset{
	{
		Name:        PresetCore,
		Description: "Core language rules with formatter compatibility",
		layers:      (*Composer).CoreLayers,
	},
	{
		Name:        PresetRocketseat,
		Description: "React and TypeScript adjustments for the Rocketseat style",
		layers: func(_ *Composer, ctx rules.Context) []rules.Layer {
			return RocketseatLayers(ctx)
		},
	},
}

// Presets returns the registered presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the registered preset names.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
}

// Layers returns the layers of the named preset, lowest precedence first.
func (c *Composer) Layers(preset string, ctx rules.Context) ([]rules.Layer, error) {
	p, err := LookupPreset(preset)
	if err != nil {
		return nil, err
	}
	return p.layers(c, ctx), nil
}

// Compose builds the named preset.
func (c *Composer) Compose(preset string, ctx rules.Context) (rules.RuleSet, error) {
	layers, err := c.Layers(preset, ctx)
	if err != nil {
		return nil, err
	}
	return rules.MergeLayers(layers), nil
}
