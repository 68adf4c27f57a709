package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JNZader/lintcompose/internal/output"
	"github.com/JNZader/lintcompose/internal/rules"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two compositions",
	Long: `Compare the configured composition with a variant of it. Each side
starts from the configured preset and context; --from-* and --to-* flags
adjust one side only.

Examples:
  # What changes when the project adopts TypeScript
  lintcompose diff --to-typescript

  # Core against Rocketseat for a Next.js project
  lintcompose diff --next --to-preset rocketseat

  # Fail in CI when the two sides differ
  lintcompose diff --from-preset core --to-preset core --to-next --exit-code`,
	Args: cobra.NoArgs,
	RunE: runDiff,
}

// errDifferences is returned with --exit-code when the sides differ.
var errDifferences = errors.New("compositions differ")

// diffSide holds the adjustments for one side of a diff.
type diffSide struct {
	preset     string
	typescript bool
	next       bool
	cra        bool
}

var (
	diffFrom     diffSide
	diffTo       diffSide
	diffExitCode bool
)

func init() {
	rootCmd.AddCommand(diffCmd)

	contextFlags(diffCmd)
	for _, side := range []struct {
		name string
		s    *diffSide
	}{{"from", &diffFrom}, {"to", &diffTo}} {
		diffCmd.Flags().StringVar(&side.s.preset, side.name+"-preset", "", "preset for the "+side.name+" side")
		diffCmd.Flags().BoolVar(&side.s.typescript, side.name+"-typescript", false, "enable TypeScript on the "+side.name+" side")
		diffCmd.Flags().BoolVar(&side.s.next, side.name+"-next", false, "enable Next.js on the "+side.name+" side")
		diffCmd.Flags().BoolVar(&side.s.cra, side.name+"-cra", false, "enable Create React App on the "+side.name+" side")
	}
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "exit with an error when the sides differ")
}

func runDiff(cmd *cobra.Command, args []string) error {
	sets, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return err
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	base, err := s.Context(commandContext(cmd), sets)
	if err != nil {
		return err
	}

	from, err := s.composeSide(base, diffFrom)
	if err != nil {
		return fmt.Errorf("from side: %w", err)
	}
	to, err := s.composeSide(base, diffTo)
	if err != nil {
		return fmt.Errorf("to side: %w", err)
	}

	styles := output.PlainStyles()
	if cfg.Output.Color {
		styles = output.DefaultStyles()
	}

	changes := output.Diff(from, to)
	if err := output.RenderDiff(cmd.OutOrStdout(), changes, styles); err != nil {
		return err
	}

	if diffExitCode && len(changes) > 0 {
		return errDifferences
	}
	return nil
}

// composeSide applies one side's adjustments to the shared context.
func (s *session) composeSide(base rules.Context, side diffSide) (rules.RuleSet, error) {
	ctx := base
	ctx.TypeScript.HasTypeScript = base.TypeScript.HasTypeScript || side.typescript
	ctx.React.IsNext = base.React.IsNext || side.next
	ctx.React.IsCreateReactApp = base.React.IsCreateReactApp || side.cra

	preset := s.cfg.Preset
	if side.preset != "" {
		preset = side.preset
	}
	return s.composer.Compose(preset, ctx)
}
