package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JNZader/lintcompose/internal/rules"
)

var showCmd = &cobra.Command{
	Use:   "show <rule>",
	Short: "Show a rule's final value and the layers that set it",
	Long: `Show the composed value of one rule and every layer that assigned it,
in merge order. The last layer listed is the one whose value wins.

Examples:
  lintcompose show curly
  lintcompose show no-unused-vars --typescript
  lintcompose show react-hooks/exhaustive-deps --preset rocketseat --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)

	contextFlags(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
}

// RuleInfo describes one composed rule.
type RuleInfo struct {
	Rule   string      `json:"rule"`
	Preset string      `json:"preset"`
	Entry  rules.Entry `json:"entry"`
	SetBy  []string    `json:"setBy"`
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	sets, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return err
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	layers, err := s.Layers(commandContext(cmd), sets)
	if err != nil {
		return err
	}

	entry, ok := rules.MergeLayers(layers)[id]
	if !ok {
		return fmt.Errorf("rule %q is not configured by preset %q", id, cfg.Preset)
	}

	info := RuleInfo{
		Rule:   id,
		Preset: cfg.Preset,
		Entry:  entry,
		SetBy:  rules.Provenance(layers, id),
	}

	out := cmd.OutOrStdout()
	if showJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rule info: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	fmt.Fprintf(out, "%s\n", info.Rule)
	fmt.Fprintf(out, "  Value:  %s\n", info.Entry)
	fmt.Fprintf(out, "  Set by: %s\n", strings.Join(info.SetBy, " > "))
	return nil
}
