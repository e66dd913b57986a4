package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
)

var (
	stderr  io.Writer = os.Stderr
	level             = zerolog.WarnLevel
	verbose bool
	logger  = newLogger()
)

func newLogger() zerolog.Logger {
	lvl := level
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Init sets the diagnostic level by name. Unknown names keep warn.
func Init(name string) {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		lvl = zerolog.WarnLevel
	}
	level = lvl
	logger = newLogger()
}

// SetOutput redirects both the error line and the diagnostic log.
func SetOutput(w io.Writer) {
	stderr = w
	logger = newLogger()
}

// SetVerbose toggles debug diagnostics regardless of the configured level.
func SetVerbose(v bool) {
	verbose = v
	logger = newLogger()
}

// Error prints a user-facing message on stderr.
func Error(msg string) {
	_, _ = fmt.Fprintln(stderr, text.FgRed.Sprint(msg))
	logger.Debug().Msg(msg)
}

func Info(msg string) { logger.Info().Msg(msg) }

// Debug prints only when verbose mode is enabled or level is debug.
func Debug(msg string) { logger.Debug().Msg(msg) }
