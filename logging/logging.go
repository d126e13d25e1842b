// Package logging routes slog output to a rotated file so the GUI process
// still leaves a trail when it runs without a console.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var logOutput *lumberjack.Logger

// Init points the default slog logger at a rotated log file under the user
// config directory. When the directory cannot be prepared it falls back to
// stderr and reports the cause; the caller decides whether that is fatal.
func Init(level string) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		setup(os.Stderr, level)
		return fmt.Errorf("failed to get user config directory: %w", err)
	}

	logDir := filepath.Join(configDir, "Overglass")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		setup(os.Stderr, level)
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logOutput = &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "overglass.log"),
		MaxSize:    10, // MBs
		MaxBackups: 3,
		MaxAge:     28,
	}

	setup(logOutput, level)
	slog.Info("logging initialized", "file", logOutput.Filename)
	return nil
}

// Close flushes and releases the log file, if one was opened.
func Close() error {
	if logOutput == nil {
		return nil
	}
	return logOutput.Close()
}

func setup(w io.Writer, level string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
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
