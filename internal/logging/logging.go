// Package logging configures the process-wide structured logger. The
// terminal UI owns stdout and stderr, so log output goes to a rotated
// file under the data directory.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs a JSON slog handler writing to logPath with rotation.
// The returned closer flushes and closes the underlying file.
func Setup(logPath string, level slog.Level) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return writer.Close, nil
}

// DefaultLogPath places the log next to the database file.
func DefaultLogPath() string {
	if p := os.Getenv("COGNIQUEST_LOG"); p != "" {
		return p
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "cogniquest.log"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "cogniquest", "cogniquest.log")
}

// ParseLevel maps a COGNIQUEST_LOG_LEVEL value to a slog level,
// defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
