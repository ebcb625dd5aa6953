// Package logger wires the process-wide slog logger to a rotating file
// under the XDG data directory, keeping command output clean for pipes.
package logger

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FilePath returns the log file location, creating parent directories as
// needed.
func FilePath() (string, error) {
	path, err := xdg.DataFile(filepath.Join("punchclock", "log", "punchclock.log"))
	if err != nil {
		return "", fmt.Errorf("cannot determine log directory: %w", err)
	}
	return path, nil
}

// Init installs a rotating file handler as the default slog logger.
// Unknown level names fall back to info.
func Init(path, level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
