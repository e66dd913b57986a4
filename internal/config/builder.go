package config

import (
	"errors"

	"github.com/gopak/minigrep/internal/search"
)

var ErrMissingArguments = errors.New("expected args <query> <file-path>")

// Config is the resolved invocation. It is built once and never changes.
type Config struct {
	query    string
	filePath string
	mode     search.Mode
}

func (c Config) Query() string { return c.query }
func (c Config) FilePath() string { return c.filePath }
func (c Config) Mode() search.Mode { return c.mode }

type Builder struct {
	args            []string
	caseInsensitive bool
}

func NewBuilder() *Builder { return &Builder{} }

// WithArgs sets the raw arguments; args[0] is the program name.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = append([]string(nil), args...)
	return b
}

// WithCaseInsensitive forces case-insensitive matching when v is true.
func (b *Builder) WithCaseInsensitive(v bool) *Builder {
	b.caseInsensitive = v
	return b
}

func (b *Builder) Build() (Config, error) {
	if len(b.args) < 3 {
		return Config{}, ErrMissingArguments
	}
	mode := search.CaseSensitive
	if len(b.args) > 3 {
		switch b.args[3] {
		case "--case-insensitive", "-i":
			mode = search.CaseInsensitive
		}
	}
	if b.caseInsensitive {
		mode = search.CaseInsensitive
	}
	return Config{query: b.args[1], filePath: b.args[2], mode: mode}, nil
}

// Build resolves raw arguments into a Config.
func Build(args []string) (Config, error) { return NewBuilder().WithArgs(args).Build() }
