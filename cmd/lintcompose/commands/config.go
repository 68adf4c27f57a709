package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JNZader/lintcompose/internal/config"
	"github.com/JNZader/lintcompose/internal/detect"
	"github.com/JNZader/lintcompose/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and create lintcompose configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration, including values from
config file, environment variables, and defaults.

Examples:
  # Show config in YAML format
  lintcompose config show

  # Show config as JSON
  lintcompose config show --json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .lintcompose.yaml",
	Long: `Write a configuration file with the default settings. With --detect the
TypeScript and React flags are filled in from the project directory.

Examples:
  lintcompose config init
  lintcompose config init --detect --file configs/lintcompose.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var (
	configShowJSON bool

	configInitFile   string
	configInitDetect bool
	configInitForce  bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON")

	configInitCmd.Flags().StringVar(&configInitFile, "file", ".lintcompose.yaml", "file to write")
	configInitCmd.Flags().BoolVar(&configInitDetect, "detect", false, "fill in project flags from the project directory")
	configInitCmd.Flags().String("project-dir", ".", "project directory used by --detect")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	masked := maskSensitiveConfig(cfg)
	out := cmd.OutOrStdout()

	if configShowJSON {
		data, err := json.MarshalIndent(masked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	if file := loader.ConfigFileUsed(); file != "" {
		fmt.Fprintf(out, "# Config file: %s\n\n", file)
	} else {
		fmt.Fprint(out, "# No config file found, using defaults\n\n")
	}

	data, err := yaml.Marshal(masked)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// maskSensitiveConfig creates a copy with credentials in source URLs masked.
func maskSensitiveConfig(c *config.Config) *config.Config {
	masked := *c

	masked.InheritFrom = make([]string, len(c.InheritFrom))
	for i, source := range c.InheritFrom {
		masked.InheritFrom[i] = logger.MaskSecrets(source)
	}

	return &masked
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if !configInitForce {
		if _, err := os.Stat(configInitFile); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configInitFile)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	starter := config.DefaultConfig()
	if configInitDetect {
		dir, _ := cmd.Flags().GetString("project-dir")
		info, err := detect.DetectProject(dir)
		if err != nil {
			return err
		}
		starter.ProjectDir = dir
		starter.TypeScript.HasTypeScript = info.HasTypeScript
		starter.React.IsNext = info.IsNext
		starter.React.IsCreateReactApp = info.IsCRA
		if info.HasTSConfig {
			starter.TypeScript.TSConfig = info.TSConfigPath()
		}
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configInitFile, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configInitFile, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configInitFile)
	return nil
}
