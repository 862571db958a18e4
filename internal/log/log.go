// Package log provides a leveled logger for command line tools.
// Messages are meant to be read by people, one line per message,
// with structured attributes rendered as key=value pairs.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger writes leveled messages. It embeds a *slog.Logger so the
// structured methods (Info, Debug, ...) are available alongside the
// printf-style ones.
type Logger struct {
	*slog.Logger

	h *handler
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return newLogger(&handler{W: w, Level: Info})
}

func newLogger(h *handler) *Logger {
	return &Logger{Logger: slog.New(h), h: h}
}

// Level reports the minimum level of messages written by this logger.
func (l *Logger) Level() Level {
	return l.h.Level
}

// WithLevel builds a copy of this logger that writes messages at or above
// the given level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	h := *l.h
	h.Level = lvl
	return newLogger(&h)
}

// WithName builds a new logger with the provided name. Names nest, separated
// by '.'. The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	h := *l.h
	if len(h.name) > 0 {
		h.name += "." + name
	} else {
		h.name = name
	}
	return newLogger(&h)
}

// Debugf logs a formatted message at Debug level.
func (l *Logger) Debugf(msg string, args ...any) {
	l.logf(Debug, msg, args...)
}

// Errorf logs a formatted message at Error level.
func (l *Logger) Errorf(msg string, args ...any) {
	l.logf(Error, msg, args...)
}

func (l *Logger) logf(lvl Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.Enabled(ctx, lvl) {
		return
	}
	l.Log(ctx, lvl, fmt.Sprintf(msg, args...))
}
