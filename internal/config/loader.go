package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/JNZader/lintcompose/internal/rules"
)

const (
	configName = ".lintcompose"
	envPrefix  = "LINTCOMPOSE"
)

// Loader handles configuration loading from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.AddConfigPath("/etc/lintcompose")

	// LINTCOMPOSE_OUTPUT_FORMAT -> output.format
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	l := &Loader{v: v}
	l.setDefaults(DefaultConfig())
	return l
}

// SetConfigFile sets a specific config file to use.
func (l *Loader) SetConfigFile(path string) {
	l.v.SetConfigFile(path)
}

// BindFlags binds command-line flags to configuration keys. Keys map to flag
// names; flags absent from fs are skipped.
func (l *Loader) BindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load loads the configuration from all sources and validates it.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	cfg := DefaultConfig()

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		ruleSetHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := l.v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	rs, err := l.verbatimRules()
	if err != nil {
		return nil, err
	}
	if rs != nil {
		cfg.Rules = rs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Watch calls onChange with the reloaded configuration whenever the config
// file changes. It requires a config file to have been read by Load.
func (l *Loader) Watch(onChange func(*Config, error)) error {
	if l.v.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Debug().Str("file", e.Name).Str("op", e.Op.String()).Msg("config changed")
		onChange(l.decode())
	})
	l.v.WatchConfig()
	return nil
}

// setDefaults sets all default values in viper.
func (l *Loader) setDefaults(cfg *Config) {
	l.v.SetDefault("preset", cfg.Preset)
	l.v.SetDefault("typescript.has_typescript", cfg.TypeScript.HasTypeScript)
	l.v.SetDefault("typescript.tsconfig", cfg.TypeScript.TSConfig)
	l.v.SetDefault("react.is_next", cfg.React.IsNext)
	l.v.SetDefault("react.is_create_react_app", cfg.React.IsCreateReactApp)
	l.v.SetDefault("detect", cfg.Detect)
	l.v.SetDefault("project_dir", cfg.ProjectDir)
	l.v.SetDefault("sources_dir", cfg.SourcesDir)

	l.v.SetDefault("output.format", cfg.Output.Format)
	l.v.SetDefault("output.file", cfg.Output.File)
	l.v.SetDefault("output.color", cfg.Output.Color)

	l.v.SetDefault("log.level", cfg.Log.Level)
	l.v.SetDefault("log.format", cfg.Log.Format)

	l.v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	l.v.SetDefault("cache.dir", cfg.Cache.Dir)
	l.v.SetDefault("cache.ttl", cfg.Cache.TTL)
	l.v.SetDefault("cache.max_entries", cfg.Cache.MaxEntries)
}

// ruleSetHookFunc decodes loosely typed rule maps into rules.RuleSet,
// normalising numeric severities.
func ruleSetHookFunc() mapstructure.DecodeHookFuncType {
	ruleSetType := reflect.TypeOf(rules.RuleSet{})
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if to != ruleSetType {
			return data, nil
		}
		return rules.RuleSetFromAny(data)
	}
}

// verbatimRules returns the rules section with its option keys untouched.
// viper lowercases every map key it reads, which would corrupt camelCase
// rule options, so the section is read again from LINTCOMPOSE_RULES (a YAML
// or JSON document) or from the config file.
func (l *Loader) verbatimRules() (rules.RuleSet, error) {
	if doc, ok := os.LookupEnv(envPrefix + "_RULES"); ok {
		rs, err := rules.ParseOverrides([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("error parsing %s_RULES: %w", envPrefix, err)
		}
		return rs, nil
	}
	if file := l.v.ConfigFileUsed(); file != "" {
		return readRulesSection(file)
	}
	return nil, nil
}

func readRulesSection(path string) (rules.RuleSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from config
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	var doc struct {
		Rules rules.RuleSet `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error reading rules from %s: %w", path, err)
	}
	return doc.Rules, nil
}

// ConfigFileUsed returns the path of the config file used, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// GetViper returns the underlying viper instance for advanced usage.
func (l *Loader) GetViper() *viper.Viper {
	return l.v
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	loader := NewLoader()
	loader.SetConfigFile(path)
	return loader.Load()
}
