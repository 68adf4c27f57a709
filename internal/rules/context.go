package rules

import "math"

// Context describes the target project. Providers read only the fields they
// care about; absent values fall back to their zero (falsy) branch.
type Context struct {
	TypeScript TypeScript `yaml:"typescript" json:"typescript"`
	React      React      `yaml:"react" json:"react"`

	// Rules are caller overrides, applied after every computed layer.
	Rules RuleSet `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// TypeScript describes the static type-checking layer.
type TypeScript struct {
	HasTypeScript bool      `yaml:"has_typescript" json:"hasTypeScript"`
	Config        *TSConfig `yaml:"config,omitempty" json:"config,omitempty"`
}

// React selects framework flavour adjustments.
type React struct {
	IsNext           bool `yaml:"is_next" json:"isNext"`
	IsCreateReactApp bool `yaml:"is_create_react_app" json:"isCreateReactApp"`
}

// TSConfig holds the parts of a tsconfig.json that affect rule selection.
type TSConfig struct {
	CompilerOptions map[string]interface{} `yaml:"compilerOptions,omitempty" json:"compilerOptions,omitempty"`
}

// ExperimentalDecorators reports whether compilerOptions.experimentalDecorators
// is set to a truthy value. Safe on a nil receiver.
func (c *TSConfig) ExperimentalDecorators() bool {
	if c == nil || c.CompilerOptions == nil {
		return false
	}
	return truthy(c.CompilerOptions["experimentalDecorators"])
}

// UsesReactFramework reports whether Next.js or Create React App is in use.
func (r React) UsesReactFramework() bool {
	return r.IsNext || r.IsCreateReactApp
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}
