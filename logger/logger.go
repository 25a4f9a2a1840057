// Package logger provides leveled logging with support for debug, info, warn, and error levels.
// Messages are printf-style; the output is plain text or JSON depending on the configured format.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Global logger instance. Nothing is logged until Init is called.
var defaultLogger atomic.Pointer[slog.Logger]

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init initializes the default logger with the specified level and format
func Init(level string, format string) {
	InitWithWriter(os.Stderr, level, format)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(w io.Writer, level string, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	defaultLogger.Store(slog.New(handler))
}

func logf(level slog.Level, format string, args ...any) {
	l := defaultLogger.Load()
	if l == nil || !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a message at debug level
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Info logs a message at info level
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warn logs a message at warn level
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Error logs a message at error level
func Error(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

// Fatal logs a message at error level and exits
func Fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l := defaultLogger.Load(); l != nil {
		l.Error(msg)
	} else {
		log.Print(msg)
	}
	os.Exit(1)
}
