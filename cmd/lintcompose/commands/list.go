package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/JNZader/lintcompose/internal/rules"
	"github.com/JNZader/lintcompose/internal/rulesets"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the layers of a preset",
	Long: `List the layers the selected preset is merged from, lowest precedence
first, with the number of rules each sets per severity.

Examples:
  # Layers of the core preset
  lintcompose list

  # Registered presets
  lintcompose list --presets`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listPresets bool

func init() {
	rootCmd.AddCommand(listCmd)

	contextFlags(listCmd)
	listCmd.Flags().BoolVar(&listPresets, "presets", false, "list registered presets instead")
}

func runList(cmd *cobra.Command, args []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	if listPresets {
		t.AppendHeader(table.Row{"Preset", "Description"})
		for _, p := range rulesets.Presets() {
			t.AppendRow(table.Row{p.Name, p.Description})
		}
		t.Render()
		return nil
	}

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

	t.AppendHeader(table.Row{"#", "Layer", "Rules", "Error", "Warn", "Off"})
	for i, layer := range layers {
		counts := layer.Rules.CountBySeverity()
		t.AppendRow(table.Row{
			i + 1,
			layer.Name,
			len(layer.Rules),
			counts[rules.SeverityError],
			counts[rules.SeverityWarn],
			counts[rules.SeverityOff],
		})
	}

	merged := rules.MergeLayers(layers)
	counts := merged.CountBySeverity()
	t.AppendFooter(table.Row{"", cfg.Preset, len(merged),
		counts[rules.SeverityError], counts[rules.SeverityWarn], counts[rules.SeverityOff]})
	t.Render()
	return nil
}
