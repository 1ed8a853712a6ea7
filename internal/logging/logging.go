// Package logging configures the process-wide slog logger.
//
// Binaries in this repo log either to stderr (the MCP server's stdout is
// reserved for the protocol) or to a size-rotated file.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger builds a slog.Logger writing to w. With jsonFormat set the records
// are emitted as JSON lines, otherwise as logfmt-style text.
func Logger(w io.Writer, jsonFormat bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// RotatingWriter returns a writer that appends to path and rotates the file
// once it reaches maxSizeMB, keeping maxBackups old files for at most
// maxAgeDays days.
func RotatingWriter(path string, maxSizeMB, maxBackups, maxAgeDays int) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}

// ParseLevel converts a level name (debug, info, warn, error; any case) to a
// slog.Level, defaulting to info for unknown names.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
