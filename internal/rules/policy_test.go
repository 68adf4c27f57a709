package rules

import (
	"reflect"
	"testing"
)

var typedCtx = Context{TypeScript: TypeScript{HasTypeScript: true}}

func TestPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		plain  Entry
		typed  Entry
	}{
		{"always", Always(SeverityWarn, String("all")), Sev(SeverityWarn, String("all")), Sev(SeverityWarn, String("all"))},
		{"typed off", TypedOff(SeverityError), Error(), Off()},
		{"typed", Typed(Error(), Warn()), Warn(), Error()},
		{"func", PolicyFunc(func(ctx Context) Entry {
			if ctx.React.IsNext {
				return Off()
			}
			return Warn()
		}), Warn(), Warn()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Resolve(Context{}); !got.Equal(tt.plain) {
				t.Errorf("Resolve(plain) = %s, want %s", got, tt.plain)
			}
			if got := tt.policy.Resolve(typedCtx); !got.Equal(tt.typed) {
				t.Errorf("Resolve(typed) = %s, want %s", got, tt.typed)
			}
		})
	}
}

func TestTable(t *testing.T) {
	table := NewTable("sample",
		Row{ID: "b", Policy: TypedOff(SeverityWarn)},
		Row{ID: "a", Policy: Always(SeverityError)},
		Row{ID: "c", Policy: TypedOff(SeverityError)},
	)

	if table.Name() != "sample" || table.Len() != 3 {
		t.Fatalf("Name() = %q, Len() = %d", table.Name(), table.Len())
	}
	if got := table.IDs(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("IDs() = %v", got)
	}
	if got := table.TypedOffKeys(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("TypedOffKeys() = %v", got)
	}

	rs := table.Eval(typedCtx)
	if rs["b"].Severity != SeverityOff || rs["a"].Severity != SeverityError {
		t.Errorf("Eval() = %v", rs)
	}
}

func TestNewTablePanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate rule id")
		}
	}()
	NewTable("dup", Row{ID: "a", Policy: Always(SeverityOff)}, Row{ID: "a", Policy: Always(SeverityWarn)})
}

func TestExperimentalDecorators(t *testing.T) {
	var nilConfig *TSConfig
	if nilConfig.ExperimentalDecorators() {
		t.Error("nil config should report false")
	}

	tests := []struct {
		value interface{}
		want  bool
	}{
		{true, true},
		{false, false},
		{nil, false},
		{"", false},
		{"yes", true},
		{float64(0), false},
		{float64(1), true},
	}
	for _, tt := range tests {
		cfg := &TSConfig{CompilerOptions: map[string]interface{}{"experimentalDecorators": tt.value}}
		if got := cfg.ExperimentalDecorators(); got != tt.want {
			t.Errorf("ExperimentalDecorators(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestMergeLaterWins(t *testing.T) {
	a := RuleSet{"x": Warn(), "y": Off()}
	b := RuleSet{"x": Error()}

	got := Merge(a, b, nil)
	if got["x"].Severity != SeverityError || got["y"].Severity != SeverityOff {
		t.Errorf("Merge() = %v", got)
	}
	if a["x"].Severity != SeverityWarn || len(b) != 1 {
		t.Error("Merge() modified its inputs")
	}

	got["z"] = Warn()
	if _, ok := a["z"]; ok {
		t.Error("result shares storage with an input")
	}
}

func TestProvenance(t *testing.T) {
	layers := []Layer{
		{Name: "base", Rules: RuleSet{"x": Warn()}},
		{Name: "mid", Rules: RuleSet{"y": Warn()}},
		{Name: "top", Rules: RuleSet{"x": Off()}},
	}

	if got := Provenance(layers, "x"); !reflect.DeepEqual(got, []string{"base", "top"}) {
		t.Errorf("Provenance(x) = %v", got)
	}
	if got := Provenance(layers, "missing"); got != nil {
		t.Errorf("Provenance(missing) = %v", got)
	}
	if got := MergeLayers(layers); got["x"].Severity != SeverityOff || len(got) != 2 {
		t.Errorf("MergeLayers() = %v", got)
	}
}

func TestFilters(t *testing.T) {
	rs := RuleSet{
		"quotes":                    Off(),
		"curly":                     Warn(),
		"react/jsx-quotes":          Off(),
		"@typescript-eslint/indent": Error(),
	}

	if got := CoreOnly(rs).Keys(); !reflect.DeepEqual(got, []string{"curly", "quotes"}) {
		t.Errorf("CoreOnly() = %v", got)
	}
	if got := Namespaced(rs).Keys(); !reflect.DeepEqual(got, []string{"@typescript-eslint/indent", "react/jsx-quotes"}) {
		t.Errorf("Namespaced() = %v", got)
	}
	if got := InNamespace(rs, "@typescript-eslint").Keys(); !reflect.DeepEqual(got, []string{"@typescript-eslint/indent"}) {
		t.Errorf("InNamespace() = %v", got)
	}
	if got := Namespaces(rs); !reflect.DeepEqual(got, []string{"", "@typescript-eslint", "react"}) {
		t.Errorf("Namespaces() = %v", got)
	}
	if got := Enabled(rs).Keys(); !reflect.DeepEqual(got, []string{"@typescript-eslint/indent", "curly"}) {
		t.Errorf("Enabled() = %v", got)
	}
	if got := BySeverity(rs, SeverityError).Keys(); !reflect.DeepEqual(got, []string{"@typescript-eslint/indent"}) {
		t.Errorf("BySeverity() = %v", got)
	}

	counts := rs.CountBySeverity()
	if counts[SeverityOff] != 2 || counts[SeverityWarn] != 1 || counts[SeverityError] != 1 {
		t.Errorf("CountBySeverity() = %v", counts)
	}
}
