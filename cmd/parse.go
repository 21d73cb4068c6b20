package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/chriserin/traitseed/internal/parser"
)

// parseInput parses the questionnaire and logs every line the parser had
// to drop. Dropping is tolerated; the warnings are there so a stray line
// in the source text does not go unnoticed.
func parseInput(log *zap.Logger, path string) (*parser.Result, error) {
	res, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	for _, d := range res.Dropped {
		log.Warn("line dropped: no question to attach to",
			zap.String("input", path),
			zap.Int("line", d.Line),
			zap.Stringer("kind", d.Kind),
			zap.String("text", d.Text))
	}
	log.Debug("questionnaire parsed",
		zap.String("input", path),
		zap.Int("questions", len(res.Questions)),
		zap.Int("dropped", len(res.Dropped)))
	return res, nil
}

// writeFile replaces path with data in one step.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".traitseed-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
