package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// WriteOutput writes content to outputPath, or to stdout when the path is empty.
func WriteOutput(stdout io.Writer, content, outputPath string) error {
	if outputPath == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	log.Info().Str("path", outputPath).Int("bytes", len(content)).Msg("configuration written")
	return nil
}
