package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/JNZader/lintcompose/internal/rules"
)

// ChangeKind classifies a difference between two rule sets.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeChanged ChangeKind = "changed"
)

// Change is one rule that differs between two rule sets.
type Change struct {
	ID   string
	Kind ChangeKind
	From rules.Entry
	To   rules.Entry
}

// Diff compares two rule sets. Changes are sorted by rule identifier.
func Diff(from, to rules.RuleSet) []Change {
	var changes []Change

	for id, before := range from {
		after, ok := to[id]
		switch {
		case !ok:
			changes = append(changes, Change{ID: id, Kind: ChangeRemoved, From: before})
		case !before.Equal(after):
			changes = append(changes, Change{ID: id, Kind: ChangeChanged, From: before, To: after})
		}
	}
	for id, after := range to {
		if _, ok := from[id]; !ok {
			changes = append(changes, Change{ID: id, Kind: ChangeAdded, To: after})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].ID < changes[j].ID })
	return changes
}

// RenderDiff writes changes as a table. A nil styles renders plain text.
func RenderDiff(w io.Writer, changes []Change, styles *Styles) error {
	if len(changes) == 0 {
		_, err := fmt.Fprintln(w, "no differences")
		return err
	}
	if styles == nil {
		styles = PlainStyles()
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Rule", "From", "To"})

	for _, c := range changes {
		from, to := "", ""
		if c.Kind != ChangeAdded {
			from = c.From.String()
		}
		if c.Kind != ChangeRemoved {
			to = c.To.String()
		}

		var marker string
		switch c.Kind {
		case ChangeAdded:
			marker = styles.Added.Render("+")
		case ChangeRemoved:
			marker = styles.Removed.Render("-")
		default:
			marker = styles.Changed.Render("~")
		}

		t.AppendRow(table.Row{marker, c.ID, truncate(from, 50), truncate(to, 50)})
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d changes)\n", len(changes))
	return err
}
