// Package config handles all configuration management for lintcompose.
//
// Configuration is loaded from multiple sources in order of precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (LINTCOMPOSE_*)
// 3. Configuration file (.lintcompose.yaml)
// 4. Default values (lowest priority)
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/JNZader/lintcompose/internal/output"
	"github.com/JNZader/lintcompose/internal/rules"
	"github.com/JNZader/lintcompose/internal/rulesets"
)

// Config is the main configuration structure for lintcompose.
type Config struct {
	// Preset is the named configuration to compose: "core", "rocketseat"
	Preset string `mapstructure:"preset" yaml:"preset" json:"preset" validate:"required,preset"`

	// TypeScript describes the project's type-checking setup
	TypeScript TypeScriptConfig `mapstructure:"typescript" yaml:"typescript" json:"typescript"`

	// React selects framework adjustments
	React ReactConfig `mapstructure:"react" yaml:"react" json:"react"`

	// Detect derives the TypeScript and React flags from ProjectDir
	Detect bool `mapstructure:"detect" yaml:"detect" json:"detect"`

	// ProjectDir is the project inspected when Detect is set
	ProjectDir string `mapstructure:"project_dir" yaml:"project_dir" json:"project_dir" validate:"required_if=Detect true"`

	// SourcesDir may replace the embedded restricted-globals and formatter files
	SourcesDir string `mapstructure:"sources_dir" yaml:"sources_dir" json:"sources_dir"`

	// Rules are inline overrides, applied after every inherited source
	Rules rules.RuleSet `mapstructure:"rules" yaml:"rules" json:"rules"`

	// InheritFrom lists override files or HTTPS URLs, lowest precedence first
	InheritFrom []string `mapstructure:"inherit_from" yaml:"inherit_from" json:"inherit_from" validate:"dive,required"`

	// Disable lists rule IDs forced to off
	Disable []string `mapstructure:"disable" yaml:"disable" json:"disable" validate:"dive,required"`

	// Output configures output formatting
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Log configures logging
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`

	// Cache configures caching of inherited sources
	Cache CacheConfig `mapstructure:"cache" yaml:"cache" json:"cache"`
}

// TypeScriptConfig describes the static type-checking layer.
type TypeScriptConfig struct {
	// HasTypeScript hands type-level checks over to the compiler
	HasTypeScript bool `mapstructure:"has_typescript" yaml:"has_typescript" json:"has_typescript"`

	// TSConfig is the path of a tsconfig.json to read compilerOptions from
	TSConfig string `mapstructure:"tsconfig" yaml:"tsconfig" json:"tsconfig"`
}

// ReactConfig selects framework flavour adjustments.
type ReactConfig struct {
	IsNext           bool `mapstructure:"is_next" yaml:"is_next" json:"is_next"`
	IsCreateReactApp bool `mapstructure:"is_create_react_app" yaml:"is_create_react_app" json:"is_create_react_app"`
}

// OutputConfig configures output formatting.
type OutputConfig struct {
	// Format is the output format: "json", "eslintrc", "yaml", "table"
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"required,format"`

	// File is the output file path (empty = stdout)
	File string `mapstructure:"file" yaml:"file" json:"file"`

	// Color enables colored table and diff output
	Color bool `mapstructure:"color" yaml:"color" json:"color"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"oneof=text json"`
}

// CacheConfig configures caching of inherited sources.
type CacheConfig struct {
	// Enabled enables the cache
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Dir persists the cache on disk; empty keeps it in memory
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`

	// TTL is the cache entry time-to-live
	TTL time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl" validate:"gte=0"`

	// MaxEntries bounds the in-memory cache
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries" json:"max_entries" validate:"min=1"`
}

// MarshalYAML writes TTL as a duration string so the output reads back in.
func (c CacheConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Enabled    bool   `yaml:"enabled"`
		Dir        string `yaml:"dir"`
		TTL        string `yaml:"ttl"`
		MaxEntries int    `yaml:"max_entries"`
	}{c.Enabled, c.Dir, c.TTL.String(), c.MaxEntries}, nil
}

// InheritConfig returns the override sources as a rules.InheritConfig.
func (c *Config) InheritConfig() rules.InheritConfig {
	return rules.InheritConfig{
		InheritFrom: c.InheritFrom,
		Override:    c.Rules,
		Disable:     c.Disable,
	}
}

// Context returns the rule-selection Context described by the configuration
// flags alone. Detection and tsconfig parsing are layered on by the caller.
func (c *Config) Context() rules.Context {
	return rules.Context{
		TypeScript: rules.TypeScript{HasTypeScript: c.TypeScript.HasTypeScript},
		React: rules.React{
			IsNext:           c.React.IsNext,
			IsCreateReactApp: c.React.IsCreateReactApp,
		},
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(mapstructureName)

	if err := validate.RegisterValidation("preset", validatePreset); err != nil {
		return fmt.Errorf("failed to register preset validation: %w", err)
	}
	if err := validate.RegisterValidation("format", validateFormat); err != nil {
		return fmt.Errorf("failed to register format validation: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	if err := rules.ValidateInheritConfig(c.InheritConfig()); err != nil {
		return &ValidationError{Field: "inherit_from", Message: err.Error()}
	}

	return nil
}

func mapstructureName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func validatePreset(fl validator.FieldLevel) bool {
	_, err := rulesets.LookupPreset(fl.Field().String())
	return err == nil
}

func validateFormat(fl validator.FieldLevel) bool {
	_, err := output.NewReporter(fl.Field().String())
	return err == nil
}

// formatValidationError converts the first failing field into a ValidationError.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")

	var msg string
	switch e.Tag() {
	case "required":
		msg = "is required"
	case "required_if":
		msg = "is required when detect is enabled"
	case "oneof":
		msg = "must be one of: " + e.Param()
	case "min", "gte":
		msg = "must be at least " + e.Param()
	case "preset":
		msg = fmt.Sprintf("unknown preset %q, must be one of: %s",
			e.Value(), strings.Join(rulesets.PresetNames(), ", "))
	case "format":
		msg = "must be one of: " + strings.Join(output.AvailableFormats(), ", ")
	default:
		msg = "failed validation: " + e.Tag()
	}

	return &ValidationError{Field: field, Message: msg}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "config validation error: " + e.Field + ": " + e.Message
}
