// Package corelog backs the core.Logger interface with zerolog, the
// structured logger this corpus's engines reach for in place of stdlib log.
package corelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ZerologLogger implements core.Logger by writing every Printf call as a
// zerolog info-level event with the formatted message as a single field.
// The Printf signature is kept unchanged so call sites written against
// core.Logger don't need to know which concrete logger is behind it.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a core.Logger writing structured JSON to w,
// tagged with session for telling concurrent interactive sessions apart
// in aggregated logs.
func NewZerologLogger(w io.Writer, session string) core.Logger {
	l := zerolog.New(w).With().Timestamp().Str("session", session).Logger()
	return &ZerologLogger{logger: l}
}

// NewConsoleLogger creates a core.Logger writing human-readable,
// colorized output to stderr, suitable for interactive `run` sessions.
func NewConsoleLogger(session string) core.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return NewZerologLogger(console, session)
}

func (zl *ZerologLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	zl.logger.Info().Msg(strings.TrimRight(msg, "\n"))
}
