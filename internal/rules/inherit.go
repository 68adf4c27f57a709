package rules

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/JNZader/lintcompose/internal/cache"
	"github.com/JNZader/lintcompose/internal/logger"
)

const (
	// maxSourceBytes caps remote and local override files.
	maxSourceBytes = 1 << 20

	maxConcurrentSources = 4
)

// InheritConfig configures where caller overrides come from.
type InheritConfig struct {
	// InheritFrom lists override sources (HTTPS URLs or local paths), lowest precedence first
	InheritFrom []string `yaml:"inherit_from" mapstructure:"inherit_from"`

	// Override contains inline overrides applied after every inherited source
	Override RuleSet `yaml:"override" mapstructure:"override"`

	// Disable lists rule IDs forced to off, applied last
	Disable []string `yaml:"disable" mapstructure:"disable"`
}

// HierarchicalLoader resolves an InheritConfig into a single override rule set.
type HierarchicalLoader struct {
	httpClient *http.Client
	cache      cache.Cache[RuleSet]
}

// NewHierarchicalLoader creates a loader. A nil cache gets a small in-memory LRU.
func NewHierarchicalLoader(c cache.Cache[RuleSet]) *HierarchicalLoader {
	if c == nil {
		c = cache.NewLRUCache[RuleSet](32, 10*time.Minute)
	}
	return &HierarchicalLoader{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: c,
	}
}

// WithHTTPClient replaces the client used for remote sources.
func (hl *HierarchicalLoader) WithHTTPClient(client *http.Client) *HierarchicalLoader {
	hl.httpClient = client
	return hl
}

// Load merges inherited sources in order, then inline overrides, then the
// disable list. Sources are fetched concurrently; a source that fails to
// load is logged and skipped.
func (hl *HierarchicalLoader) Load(ctx context.Context, config InheritConfig) (RuleSet, error) {
	loaded := make([]RuleSet, len(config.InheritFrom))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSources)
	for i, source := range config.InheritFrom {
		g.Go(func() error {
			inherited, err := hl.loadFromSource(gctx, source)
			if err != nil {
				log.Warn().
					Str("error", logger.MaskSecrets(err.Error())).
					Str("source", logger.MaskSecrets(source)).
					Msg("failed to load override rules")
				return nil
			}
			log.Debug().Str("source", logger.MaskSecrets(source)).Int("rules", len(inherited)).Msg("loaded override rules")
			loaded[i] = inherited
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := Merge(append(loaded, config.Override)...)

	for _, id := range config.Disable {
		result[id] = Off()
	}

	return result, nil
}

// loadFromSource loads overrides from a URL or local file. Only remote
// sources go through the cache; local files are read on every load so edits
// show up immediately.
func (hl *HierarchicalLoader) loadFromSource(ctx context.Context, source string) (RuleSet, error) {
	if !isURL(source) {
		data, err := loadFromFile(source)
		if err != nil {
			return nil, err
		}
		rs, err := ParseOverrides(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}
		return rs, nil
	}

	key := cache.ComputeKey(source)
	if cached, ok := hl.cache.Get(key); ok {
		return cached.Clone(), nil
	}

	data, err := hl.fetchFromURL(ctx, source)
	if err != nil {
		return nil, err
	}

	rs, err := ParseOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	hl.cache.Set(key, rs)
	return rs.Clone(), nil
}

// fetchFromURL fetches an override file over HTTP(S).
func (hl *HierarchicalLoader) fetchFromURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "lintcompose/1.0")
	req.Header.Set("Accept", "application/yaml, application/json, text/yaml")

	resp, err := hl.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return readSource(resp.Body, url)
}

// loadFromFile reads a local override file.
func loadFromFile(path string) ([]byte, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(cwd, path)
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from config
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readSource(f, path)
}

// readSource reads at most maxSourceBytes and fails on anything larger
// rather than handing a truncated document to the parser.
func readSource(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSourceBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSourceBytes {
		return nil, fmt.Errorf("%s exceeds %d bytes", name, maxSourceBytes)
	}
	return data, nil
}

// ParseOverrides decodes an override file. Both a top-level rule mapping and
// an eslintrc-style {"rules": {...}} document are accepted; JSON is valid YAML.
func ParseOverrides(data []byte) (RuleSet, error) {
	var wrapped struct {
		Rules RuleSet `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Rules != nil {
		return wrapped.Rules, nil
	}

	var flat RuleSet
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, err
	}
	if flat == nil {
		flat = RuleSet{}
	}
	return flat, nil
}

// isURL checks if a source string is a URL.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ValidateInheritConfig validates an inheritance configuration.
func ValidateInheritConfig(config InheritConfig) error {
	for _, source := range config.InheritFrom {
		if source == "" {
			return fmt.Errorf("empty source in inherit_from")
		}
		if isURL(source) && !strings.HasPrefix(source, "https://") {
			return fmt.Errorf("insecure URL (must use HTTPS): %s", source)
		}
	}
	for _, id := range config.Disable {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("empty rule id in disable")
		}
	}
	return nil
}
