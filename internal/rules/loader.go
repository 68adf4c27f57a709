package rules

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var embeddedSources embed.FS

// Source file names, both embedded and in a user sources directory.
const (
	RestrictedGlobalsFile = "restricted-globals.yaml"
	FormatterFile         = "formatter.yaml"
)

// Sources holds the externally curated data the rule groups are built from.
type Sources struct {
	// RestrictedGlobals is the ordered list of confusing global names.
	RestrictedGlobals []string

	// Formatter is the rule set that conflicts with automatic formatting,
	// keyed by possibly namespaced identifiers.
	Formatter RuleSet
}

// sourceFile is the on-disk shape of a source YAML file.
type sourceFile struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Globals     []string `yaml:"globals"`
	Rules       RuleSet  `yaml:"rules"`
}

// Loader loads Sources from the embedded defaults, optionally replacing
// files with those found in a sources directory.
type Loader struct {
	sourcesDir string
}

// NewLoader creates a new source loader. An empty dir uses the embedded data only.
func NewLoader(sourcesDir string) *Loader {
	return &Loader{sourcesDir: sourcesDir}
}

// Load reads both sources.
func (l *Loader) Load() (*Sources, error) {
	globals, err := l.readFile(RestrictedGlobalsFile)
	if err != nil {
		return nil, fmt.Errorf("loading restricted globals: %w", err)
	}

	formatter, err := l.readFile(FormatterFile)
	if err != nil {
		return nil, fmt.Errorf("loading formatter rules: %w", err)
	}

	rules := formatter.Rules
	if rules == nil {
		rules = RuleSet{}
	}

	return &Sources{
		RestrictedGlobals: globals.Globals,
		Formatter:         rules,
	}, nil
}

func (l *Loader) readFile(name string) (*sourceFile, error) {
	if l.sourcesDir != "" {
		data, err := os.ReadFile(filepath.Join(l.sourcesDir, name))
		switch {
		case err == nil:
			return parseSourceYAML(data, name)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	data, err := embeddedSources.ReadFile("defaults/" + name)
	if err != nil {
		return nil, err
	}
	return parseSourceYAML(data, name)
}

func parseSourceYAML(data []byte, name string) (*sourceFile, error) {
	var sf sourceFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return &sf, nil
}

// EmbeddedSources loads the sources shipped with the binary.
func EmbeddedSources() (*Sources, error) {
	return NewLoader("").Load()
}
