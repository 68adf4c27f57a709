package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JNZader/lintcompose/internal/config"
	"github.com/JNZader/lintcompose/internal/output"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Compose a rule configuration",
	Long: `Compose the selected preset for the project and print or write it.

The result is a complete mapping from rule identifier to severity and
options. With --output the format is taken from the file name unless
--format is given.

Examples:
  # Core preset for a TypeScript project
  lintcompose generate --typescript

  # Detect the project and write .eslintrc.json
  lintcompose generate --detect --output .eslintrc.json

  # Rocketseat preset as a table, with one rule adjusted
  lintcompose generate --preset rocketseat --format table --set camelcase=warn

  # Regenerate whenever .lintcompose.yaml changes
  lintcompose generate --output .eslintrc.json --watch`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var generateWatch bool

func init() {
	rootCmd.AddCommand(generateCmd)

	contextFlags(generateCmd)
	generateCmd.Flags().StringP("format", "f", output.FormatJSON, "output format: "+fmt.Sprint(output.AvailableFormats()))
	generateCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "regenerate when the config file changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sets, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return err
	}

	if err := generate(cmd, cfg, sets); err != nil {
		return err
	}
	if !generateWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loader.Watch(func(reloaded *config.Config, err error) {
		if err != nil {
			log.Error().Err(err).Msg("config reload failed")
			return
		}
		if noColor {
			reloaded.Output.Color = false
		}
		if err := generate(cmd, reloaded, sets); err != nil {
			log.Error().Err(err).Msg("regeneration failed")
		}
	})
	if err != nil {
		return fmt.Errorf("watching config: %w", err)
	}

	log.Info().Str("file", loader.ConfigFileUsed()).Msg("watching for changes")
	<-ctx.Done()
	return nil
}

// generate composes with c and writes the result.
func generate(cmd *cobra.Command, c *config.Config, sets []string) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	rs, err := s.Compose(commandContext(cmd), sets)
	if err != nil {
		return err
	}

	reporter, err := newReporter(cmd, c)
	if err != nil {
		return err
	}

	content, err := reporter.Generate(rs)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", reporter.Format(), err)
	}

	log.Debug().Str("preset", c.Preset).Int("rules", len(rs)).Str("format", reporter.Format()).Msg("composed")
	return output.WriteOutput(cmd.OutOrStdout(), content, c.Output.File)
}

// newReporter resolves the output format. An explicit --format wins over
// the output file name, which wins over the configured format.
func newReporter(cmd *cobra.Command, c *config.Config) (output.Reporter, error) {
	format := c.Output.Format
	if f := cmd.Flags().Lookup("format"); (f == nil || !f.Changed) && c.Output.File != "" {
		if detected := output.DetectFormatFromPath(c.Output.File); detected != "" {
			format = detected
		}
	}

	reporter, err := output.NewReporter(format)
	if err != nil {
		return nil, err
	}
	if table, ok := reporter.(*output.TableReporter); ok && c.Output.Color {
		table.Styles = output.DefaultStyles()
	}
	return reporter, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
