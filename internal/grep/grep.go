// Package grep is the file boundary: it loads the target file and runs the
// search over it.
package grep

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
)

var ErrFileRead = errors.New("could not read file")

type Renderer interface {
	Render(matches []search.Match) error
}

type Grep struct {
	cfg config.Config
}

func New(cfg config.Config) *Grep { return &Grep{cfg: cfg} }

// ReadContent reads path whole. Every failure, including invalid UTF-8,
// is reported as ErrFileRead.
func ReadContent(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		logging.Debug(fmt.Sprintf("read %s: %v", path, err))
		return "", fmt.Errorf("%w %q", ErrFileRead, path)
	}
	if !utf8.Valid(b) {
		logging.Debug(fmt.Sprintf("read %s: not valid UTF-8", path))
		return "", fmt.Errorf("%w %q", ErrFileRead, path)
	}
	return string(b), nil
}

// Run searches the configured file and hands the matches to r.
func (g *Grep) Run(r Renderer) error {
	content, err := ReadContent(g.cfg.FilePath())
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("searching for %q in %s (%d bytes, %s)", g.cfg.Query(), g.cfg.FilePath(), len(content), g.cfg.Mode()))
	matches := search.Lines(g.cfg.Query(), content, g.cfg.Mode())
	logging.Debug(fmt.Sprintf("%d matching lines", len(matches)))
	return r.Render(matches)
}
