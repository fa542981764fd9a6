// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var (
	l atomic.Pointer[slog.Logger]
)

func init() {
	l.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger replaces the process wide logger. Until it is called all output
// is discarded.
func SetLogger(lg *slog.Logger) {
	if lg == nil {
		return
	}
	l.Store(lg)
}

func Logger() *slog.Logger {
	return l.Load()
}

// New creates a logger writing to w. format is either "json" or "text".
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel converts a level name, unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	l.Load().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	l.Load().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	l.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	l.Load().Error(msg, args...)
}
