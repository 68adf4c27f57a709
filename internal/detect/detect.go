// Package detect inspects a JavaScript project directory and derives the
// rule-selection Context from its manifest and compiler configuration.
package detect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/JNZader/lintcompose/internal/rules"
)

// File names read from the project root.
const (
	PackageJSON  = "package.json"
	TSConfigJSON = "tsconfig.json"
)

// Package names that switch context flags on.
const (
	depTypeScript   = "typescript"
	depNext         = "next"
	depReactScripts = "react-scripts"
)

// maxExtendsDepth bounds a chain of tsconfig extends.
const maxExtendsDepth = 16

// ProjectInfo contains detected project information.
type ProjectInfo struct {
	Dir            string
	HasPackageJSON bool
	HasTSConfig    bool
	HasTypeScript  bool
	IsNext         bool
	IsCRA          bool
	TSConfig       *rules.TSConfig
	Dependencies   []string
}

type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DetectProject analyzes dir. Missing files leave the corresponding flags
// false; unreadable or malformed files are errors.
func DetectProject(dir string) (*ProjectInfo, error) {
	info := &ProjectInfo{Dir: dir}

	if err := info.detectPackage(dir); err != nil {
		return nil, err
	}
	if err := info.detectTSConfig(dir); err != nil {
		return nil, err
	}

	log.Debug().
		Str("dir", dir).
		Bool("typescript", info.HasTypeScript).
		Bool("next", info.IsNext).
		Bool("cra", info.IsCRA).
		Msg("project detected")

	return info, nil
}

// TSConfigPath returns the path of the project's tsconfig.json.
func (p *ProjectInfo) TSConfigPath() string {
	return filepath.Join(p.Dir, TSConfigJSON)
}

func (p *ProjectInfo) detectPackage(dir string) error {
	data, err := os.ReadFile(filepath.Join(dir, PackageJSON))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", PackageJSON, err)
	}
	p.HasPackageJSON = true

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing %s: %w", PackageJSON, err)
	}

	seen := make(map[string]bool)
	for _, deps := range []map[string]string{manifest.Dependencies, manifest.DevDependencies} {
		for name := range deps {
			if seen[name] {
				continue
			}
			seen[name] = true
			p.Dependencies = append(p.Dependencies, name)
		}
	}

	sort.Strings(p.Dependencies)

	p.HasTypeScript = seen[depTypeScript]
	p.IsNext = seen[depNext]
	p.IsCRA = seen[depReactScripts]
	return nil
}

func (p *ProjectInfo) detectTSConfig(dir string) error {
	cfg, err := LoadTSConfig(filepath.Join(dir, TSConfigJSON))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	p.HasTSConfig = true
	p.HasTypeScript = true
	p.TSConfig = cfg
	return nil
}

// LoadTSConfig reads the compilerOptions of a tsconfig file, following
// relative "extends" entries. Options in the file win over its bases. Bases
// given as package names would need node_modules resolution and are skipped.
func LoadTSConfig(path string) (*rules.TSConfig, error) {
	opts, err := loadCompilerOptions(path, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	return &rules.TSConfig{CompilerOptions: opts}, nil
}

// ParseTSConfig decodes tsconfig JSON. Comments and trailing commas are
// accepted the way the TypeScript compiler accepts them. "extends" is not
// followed; use LoadTSConfig for that.
func ParseTSConfig(data []byte) (*rules.TSConfig, error) {
	raw, err := parseTSConfigFile(data)
	if err != nil {
		return nil, err
	}
	return &rules.TSConfig{CompilerOptions: raw.CompilerOptions}, nil
}

type tsconfigFile struct {
	Extends         json.RawMessage        `json:"extends"`
	CompilerOptions map[string]interface{} `json:"compilerOptions"`
}

func parseTSConfigFile(data []byte) (*tsconfigFile, error) {
	var raw tsconfigFile
	if err := json.Unmarshal(stripJSONC(data), &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// loadCompilerOptions resolves path and its bases. chain holds the files
// currently being loaded and catches cycles.
func loadCompilerOptions(path string, chain map[string]bool) (map[string]interface{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if chain[abs] {
		return nil, fmt.Errorf("%s: circular extends", path)
	}
	if len(chain) >= maxExtendsDepth {
		return nil, fmt.Errorf("%s: extends chain deeper than %d", path, maxExtendsDepth)
	}
	chain[abs] = true
	defer delete(chain, abs)

	data, err := os.ReadFile(abs) //nolint:gosec // Path comes from config
	if err != nil {
		return nil, err
	}
	raw, err := parseTSConfigFile(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	bases, err := extendsList(raw.Extends)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var merged map[string]interface{}
	for _, base := range bases {
		if !isRelativeExtends(base) {
			log.Debug().Str("tsconfig", path).Str("extends", base).Msg("skipping package tsconfig base")
			continue
		}

		opts, err := loadCompilerOptions(resolveExtends(filepath.Dir(abs), base), chain)
		if errors.Is(err, fs.ErrNotExist) {
			// not wrapped: a missing base must not read as a missing tsconfig
			return nil, fmt.Errorf("%s: extended config %q not found", path, base)
		}
		if err != nil {
			return nil, err
		}
		merged = mergeOptions(merged, opts)
	}

	return mergeOptions(merged, raw.CompilerOptions), nil
}

// extendsList accepts a single base or, as newer compilers do, a list.
func extendsList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("extends must be a string or a list of strings")
	}
	return many, nil
}

func isRelativeExtends(base string) bool {
	return strings.HasPrefix(base, "./") || strings.HasPrefix(base, "../") || filepath.IsAbs(base)
}

// resolveExtends maps a base onto a file, adding .json when the name has
// no extension of its own.
func resolveExtends(dir, base string) string {
	path := base
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, base)
	}
	if !strings.HasSuffix(path, ".json") {
		if _, err := os.Stat(path); err != nil {
			path += ".json"
		}
	}
	return path
}

func mergeOptions(base, override map[string]interface{}) map[string]interface{} {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}
	out := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Context builds a rule-selection Context from the detected flags.
func (p *ProjectInfo) Context() rules.Context {
	return rules.Context{
		TypeScript: rules.TypeScript{
			HasTypeScript: p.HasTypeScript,
			Config:        p.TSConfig,
		},
		React: rules.React{
			IsNext:           p.IsNext,
			IsCreateReactApp: p.IsCRA,
		},
	}
}
