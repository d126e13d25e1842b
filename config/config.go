package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
)

const (
	defaultWindowWidth  = 420
	defaultWindowHeight = 240
)

// AppConfig is the shell-level configuration. Everything the overlay content
// itself needs lives in the frontend; this only covers what the Go side has
// to know before the window exists.
type AppConfig struct {
	WindowWidth   int
	WindowHeight  int
	AlwaysOnTop   bool
	HotkeyEnabled bool
	LogLevel      string
}

func defaults() AppConfig {
	return AppConfig{
		WindowWidth:   defaultWindowWidth,
		WindowHeight:  defaultWindowHeight,
		AlwaysOnTop:   true,
		HotkeyEnabled: true,
		LogLevel:      "info",
	}
}

// EnvPath returns the dotenv file consulted by Load and Watch.
func EnvPath() string {
	if override := os.Getenv("OVERGLASS_ENV_PATH"); override != "" {
		return override
	}
	return ".env"
}

// Load reads the optional dotenv file and then the OVERGLASS_* environment
// variables. Missing or unparseable values fall back to defaults; Load never
// fails, so the app always starts with a usable configuration.
func Load() AppConfig {
	if err := godotenv.Load(EnvPath()); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read env file", "path", EnvPath(), "error", err)
	}

	cfg := defaults()
	cfg.WindowWidth = intEnv("OVERGLASS_WINDOW_WIDTH", cfg.WindowWidth)
	cfg.WindowHeight = intEnv("OVERGLASS_WINDOW_HEIGHT", cfg.WindowHeight)
	cfg.AlwaysOnTop = boolEnv("OVERGLASS_ALWAYS_ON_TOP", cfg.AlwaysOnTop)
	cfg.HotkeyEnabled = boolEnv("OVERGLASS_HOTKEY", cfg.HotkeyEnabled)
	if level := os.Getenv("OVERGLASS_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	return cfg
}

// Watch reloads the dotenv file whenever it changes and hands the fresh
// configuration to onChange. The returned stop function releases the
// watcher. Watch fails only when the filesystem watcher itself cannot be
// created; a missing env file is fine and simply produces no callbacks.
func Watch(onChange func(AppConfig)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	envPath := EnvPath()
	dir := filepath.Dir(envPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(envPath) {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					onChange(Load())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", "error", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		slog.Warn("ignoring invalid config value", "key", key, "value", raw)
		return fallback
	}
	return value
}

func boolEnv(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("ignoring invalid config value", "key", key, "value", raw)
		return fallback
	}
	return value
}
