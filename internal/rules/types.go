package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Entry is the configuration of a single rule: a severity, optionally
// followed by rule-specific option values.
type Entry struct {
	Severity Severity
	Options  []Value
}

// Sev builds an Entry.
func Sev(severity Severity, options ...Value) Entry {
	var opts []Value
	if len(options) > 0 {
		opts = make([]Value, len(options))
		copy(opts, options)
	}
	return Entry{Severity: severity, Options: opts}
}

// Off, Warn and Error are shorthands for option-less entries.
func Off() Entry   { return Entry{Severity: SeverityOff} }
func Warn() Entry  { return Entry{Severity: SeverityWarn} }
func Error() Entry { return Entry{Severity: SeverityError} }

// HasOptions reports whether the entry carries option values.
func (e Entry) HasOptions() bool { return len(e.Options) > 0 }

// Equal reports whether two entries have the same severity and options.
func (e Entry) Equal(o Entry) bool {
	if e.Severity != o.Severity || len(e.Options) != len(o.Options) {
		return false
	}
	for i := range e.Options {
		if !e.Options[i].Equal(o.Options[i]) {
			return false
		}
	}
	return true
}

// String renders the entry the way it is encoded: a bare severity or a
// [severity, options...] list.
func (e Entry) String() string {
	data, err := e.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid: %v>", err)
	}
	return string(data)
}

func (e Entry) asValue() Value {
	if !e.HasOptions() {
		return String(string(e.Severity))
	}
	items := make([]Value, 0, len(e.Options)+1)
	items = append(items, String(string(e.Severity)))
	items = append(items, e.Options...)
	return Value{kind: KindList, list: items}
}

// MarshalJSON implements json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	return e.asValue().MarshalJSON()
}

// UnmarshalJSON accepts "warn", 1 or ["warn", {...}].
func (e *Entry) UnmarshalJSON(data []byte) error {
	var v Value
	if err := v.UnmarshalJSON(bytes.TrimSpace(data)); err != nil {
		return err
	}
	entry, err := EntryFromValue(v)
	if err != nil {
		return err
	}
	*e = entry
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Entry) MarshalYAML() (interface{}, error) {
	return e.asValue().yamlNode()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLValue(node)
	if err != nil {
		return err
	}
	entry, err := EntryFromValue(v)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*e = entry
	return nil
}

// EntryFromValue interprets a decoded value as a rule entry.
func EntryFromValue(v Value) (Entry, error) {
	switch v.Kind() {
	case KindString:
		return Entry{Severity: ParseSeverity(v.s)}, nil
	case KindNumber:
		return Entry{Severity: ParseSeverity(v.n)}, nil
	case KindList:
		if len(v.list) == 0 {
			return Entry{}, fmt.Errorf("rule entry list is empty")
		}
		head := v.list[0]
		var sev Severity
		switch head.Kind() {
		case KindString:
			sev = ParseSeverity(head.s)
		case KindNumber:
			sev = ParseSeverity(head.n)
		default:
			return Entry{}, fmt.Errorf("rule severity must be a string or number, got %s", head.Kind())
		}
		return Sev(sev, v.list[1:]...), nil
	}
	return Entry{}, fmt.Errorf("rule entry must be a severity or a list, got %s", v.Kind())
}

// EntryFromAny converts a loosely typed decoded value into an Entry.
func EntryFromAny(x interface{}) (Entry, error) {
	if e, ok := x.(Entry); ok {
		return e, nil
	}
	v, err := FromAny(x)
	if err != nil {
		return Entry{}, err
	}
	return EntryFromValue(v)
}

// RuleSet maps rule identifiers to their configuration. Encoders emit keys
// in sorted order.
type RuleSet map[string]Entry

// RuleSetFromAny converts a decoded map into a RuleSet.
func RuleSetFromAny(x interface{}) (RuleSet, error) {
	switch t := x.(type) {
	case nil:
		return RuleSet{}, nil
	case RuleSet:
		return t.Clone(), nil
	case map[string]interface{}:
		rs := make(RuleSet, len(t))
		for id, raw := range t {
			e, err := EntryFromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", id, err)
			}
			rs[id] = e
		}
		return rs, nil
	case map[string]string:
		rs := make(RuleSet, len(t))
		for id, sev := range t {
			rs[id] = Entry{Severity: ParseSeverity(sev)}
		}
		return rs, nil
	case map[interface{}]interface{}:
		conv := make(map[string]interface{}, len(t))
		for k, v := range t {
			conv[fmt.Sprintf("%v", k)] = v
		}
		return RuleSetFromAny(conv)
	}
	return nil, fmt.Errorf("rule set must be a mapping, got %T", x)
}

// Clone returns a shallow copy; entries are values and share no mutable state.
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for id, e := range rs {
		out[id] = e
	}
	return out
}

// Keys returns the rule identifiers in sorted order.
func (rs RuleSet) Keys() []string {
	keys := make([]string, 0, len(rs))
	for id := range rs {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

// With returns a copy of rs with id set to e.
func (rs RuleSet) With(id string, e Entry) RuleSet {
	out := rs.Clone()
	out[id] = e
	return out
}

// Filter returns the entries for which keep returns true.
func (rs RuleSet) Filter(keep func(id string, e Entry) bool) RuleSet {
	out := make(RuleSet)
	for id, e := range rs {
		if keep(id, e) {
			out[id] = e
		}
	}
	return out
}

// Equal reports whether both sets hold the same keys with equal entries.
func (rs RuleSet) Equal(o RuleSet) bool {
	if len(rs) != len(o) {
		return false
	}
	for id, e := range rs {
		other, ok := o[id]
		if !ok || !e.Equal(other) {
			return false
		}
	}
	return true
}

// CountBySeverity tallies entries per severity.
func (rs RuleSet) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, e := range rs {
		counts[e.Severity]++
	}
	return counts
}

// JSON returns the indented JSON encoding with sorted keys.
func (rs RuleSet) JSON() ([]byte, error) {
	return json.MarshalIndent(rs, "", "  ")
}

// Merge combines rule sets in order; a later set wins on key conflicts.
// Inputs are never modified.
func Merge(sets ...RuleSet) RuleSet {
	size := 0
	for _, s := range sets {
		size += len(s)
	}
	out := make(RuleSet, size)
	for _, s := range sets {
		for id, e := range s {
			out[id] = e
		}
	}
	return out
}

// Layer is a named rule set taking part in a composition.
type Layer struct {
	Name  string
	Rules RuleSet
}

// MergeLayers merges the layers in order, later layers winning.
func MergeLayers(layers []Layer) RuleSet {
	sets := make([]RuleSet, len(layers))
	for i, l := range layers {
		sets[i] = l.Rules
	}
	return Merge(sets...)
}

// Provenance lists, in precedence order, the names of the layers that set id.
// The last element is the layer whose value is final.
func Provenance(layers []Layer, id string) []string {
	var names []string
	for _, l := range layers {
		if _, ok := l.Rules[id]; ok {
			names = append(names, l.Name)
		}
	}
	return names
}
