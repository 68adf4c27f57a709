package config

import (
	"time"

	"github.com/JNZader/lintcompose/internal/output"
	"github.com/JNZader/lintcompose/internal/rulesets"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Preset:     rulesets.PresetCore,
		ProjectDir: ".",
		Output: OutputConfig{
			Format: output.FormatJSON,
			Color:  true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 32,
		},
	}
}
