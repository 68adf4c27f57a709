// Package logger configures the process-wide zerolog logger and masks
// credentials that may appear in logged override sources.
package logger

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Formats accepted by Setup.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a configuration level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Setup installs the global logger writing to w. The text format is a
// human-readable console writer; json emits one object per line.
func Setup(level, format string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(lvl)

	switch format {
	case FormatText, "":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}).With().Timestamp().Logger()
	case FormatJSON:
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is attached to a terminal. Buffers, pipes
// and regular files get plain output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Secret patterns masked in logged values.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(ghp_[a-zA-Z0-9]{36})`),                        // GitHub PAT
	regexp.MustCompile(`(?i)(github_pat_[a-zA-Z0-9]{22}_[a-zA-Z0-9]{59})`), // GitHub fine-grained
	regexp.MustCompile(`(?i)(glpat-[a-zA-Z0-9_-]{20,})`),                   // GitLab PAT
	regexp.MustCompile(`(?i)(Bearer\s+[a-zA-Z0-9._-]+)`),                   // Bearer tokens
	regexp.MustCompile(`(?i)((?:token|access_token|api[_-]?key|secret)=[^&\s]{8,})`),
}

var sensitiveQueryKeys = map[string]bool{
	"token":         true,
	"access_token":  true,
	"api_key":       true,
	"apikey":        true,
	"secret":        true,
	"private_token": true,
}

// MaskSecrets masks known credential patterns in s. For URLs the user info
// and sensitive query parameters are redacted instead.
func MaskSecrets(s string) string {
	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		return maskURL(u)
	}
	for _, pattern := range secretPatterns {
		s = pattern.ReplaceAllStringFunc(s, maskString)
	}
	return s
}

func maskURL(u *url.URL) string {
	if u.User != nil {
		u.User = url.User("redacted")
	}
	if u.RawQuery == "" {
		return u.String()
	}

	params := strings.Split(u.RawQuery, "&")
	for i, param := range params {
		key, _, found := strings.Cut(param, "=")
		if found && IsSensitiveKey(key) {
			params[i] = key + "=***"
		}
	}
	u.RawQuery = strings.Join(params, "&")
	return u.String()
}

// maskString masks a string showing only first and last 4 chars
func maskString(s string) string {
	if len(s) <= 8 {
		return "***MASKED***"
	}
	return s[:4] + "***" + s[len(s)-4:]
}

// IsSensitiveKey checks if a query or field name is sensitive.
func IsSensitiveKey(key string) bool {
	return sensitiveQueryKeys[strings.ToLower(key)]
}
