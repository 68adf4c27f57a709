package rules

import (
	"fmt"
	"sort"
)

// Policy decides the entry of one rule for a given Context.
type Policy interface {
	Resolve(ctx Context) Entry
}

type alwaysPolicy struct{ entry Entry }

func (p alwaysPolicy) Resolve(Context) Entry { return p.entry }

// Always ignores the Context.
func Always(severity Severity, options ...Value) Policy {
	return alwaysPolicy{entry: Sev(severity, options...)}
}

// typedOffPolicy hands a rule over to the type checker: off when the
// project has TypeScript, entry otherwise.
type typedOffPolicy struct{ entry Entry }

func (p typedOffPolicy) Resolve(ctx Context) Entry {
	if ctx.TypeScript.HasTypeScript {
		return Off()
	}
	return p.entry
}

// TypedOff turns the rule off when TypeScript is present.
func TypedOff(severity Severity, options ...Value) Policy {
	return typedOffPolicy{entry: Sev(severity, options...)}
}

type typedPolicy struct{ typed, untyped Entry }

func (p typedPolicy) Resolve(ctx Context) Entry {
	if ctx.TypeScript.HasTypeScript {
		return p.typed
	}
	return p.untyped
}

// Typed picks between two explicit entries depending on TypeScript.
func Typed(typed, untyped Entry) Policy {
	return typedPolicy{typed: typed, untyped: untyped}
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(ctx Context) Entry

func (f PolicyFunc) Resolve(ctx Context) Entry { return f(ctx) }

// Row binds a rule identifier to its policy.
type Row struct {
	ID     string
	Policy Policy
}

// Table is an ordered, immutable list of rule policies forming one rule group.
type Table struct {
	name string
	rows []Row
}

// NewTable builds a table. It panics on a duplicate identifier, since tables
// are declared in source and a duplicate is a programming error.
func NewTable(name string, rows ...Row) Table {
	seen := make(map[string]bool, len(rows))
	cp := make([]Row, len(rows))
	for i, r := range rows {
		if seen[r.ID] {
			panic(fmt.Sprintf("rules: duplicate rule %q in table %q", r.ID, name))
		}
		seen[r.ID] = true
		cp[i] = r
	}
	return Table{name: name, rows: cp}
}

// Name returns the group name of the table.
func (t Table) Name() string { return t.name }

// Len returns the number of rules in the table.
func (t Table) Len() int { return len(t.rows) }

// IDs returns the rule identifiers in declaration order.
func (t Table) IDs() []string {
	ids := make([]string, len(t.rows))
	for i, r := range t.rows {
		ids[i] = r.ID
	}
	return ids
}

// Eval resolves every row against ctx.
func (t Table) Eval(ctx Context) RuleSet {
	out := make(RuleSet, len(t.rows))
	for _, r := range t.rows {
		out[r.ID] = r.Policy.Resolve(ctx)
	}
	return out
}

// TypedOffKeys returns, sorted, the rules that switch off under TypeScript.
func (t Table) TypedOffKeys() []string {
	var keys []string
	for _, r := range t.rows {
		if _, ok := r.Policy.(typedOffPolicy); ok {
			keys = append(keys, r.ID)
		}
	}
	sort.Strings(keys)
	return keys
}
