// Package commands contains all CLI commands for lintcompose.
//
// This package uses the Cobra library for CLI management.
// Each command is defined in its own file and registered in init().
package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JNZader/lintcompose/internal/config"
	"github.com/JNZader/lintcompose/internal/logger"
)

var (
	// cfgFile holds the path to the config file (from --config flag)
	cfgFile string

	// noColor disables styled table and diff output
	noColor bool

	// loader and cfg are populated before any subcommand runs
	loader *config.Loader
	cfg    *config.Config
)

// flagKeys maps configuration keys to the flags that may set them. A command
// binds whichever of these it defines.
var flagKeys = map[string]string{
	"preset":                    "preset",
	"typescript.has_typescript": "typescript",
	"typescript.tsconfig":       "tsconfig",
	"react.is_next":             "next",
	"react.is_create_react_app": "cra",
	"detect":                    "detect",
	"project_dir":               "project-dir",
	"sources_dir":               "sources-dir",
	"inherit_from":              "inherit",
	"disable":                   "disable",
	"output.format":             "format",
	"output.file":               "output",
	"log.level":                 "log-level",
	"log.format":                "log-format",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lintcompose",
	Short: "Compose JavaScript lint rule configurations",
	Long: `lintcompose builds a complete lint rule configuration from grouped rule
tables, adjusted for the target project: TypeScript, decorators, Next.js
and Create React App.

Examples:
  # Print the core configuration as JSON
  lintcompose generate

  # Detect the project and write an .eslintrc.json
  lintcompose generate --detect --output .eslintrc.json

  # Explain why a rule has its value
  lintcompose show no-unused-vars --typescript

  # Compare a plain and a TypeScript project
  lintcompose diff --to-typescript`,

	// SilenceUsage prevents printing usage on errors
	SilenceUsage: true,

	// SilenceErrors lets main report errors
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .lintcompose.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// initializeConfig loads configuration from file, environment and the flags
// of the running command, then configures logging.
func initializeConfig(cmd *cobra.Command) error {
	loader = config.NewLoader()
	if cfgFile != "" {
		loader.SetConfigFile(cfgFile)
	}

	if err := loader.BindFlags(cmd.Flags(), flagKeys); err != nil {
		return err
	}

	loaded, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if noColor {
		loaded.Output.Color = false
	}
	cfg = loaded

	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if file := loader.ConfigFileUsed(); file != "" {
		log.Debug().Str("file", file).Msg("using config file")
	}
	return nil
}
