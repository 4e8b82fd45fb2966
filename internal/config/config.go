// Package config gathers the service tunables from the environment.
//
// Typical usage:
//
//	cfg := config.Load()
//
// Tests stay hermetic with LoadFrom and a map-backed getenv:
//
//	cfg := config.LoadFrom(func(k string) string { return env[k] })
package config

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// DefaultMaxCapacity bounds the capacity accepted by the service.
const DefaultMaxCapacity = 1 << 20

// Config is a plain value; copy it freely after loading.
type Config struct {
	MaxCapacity int64      // largest capacity Service.Solve accepts (KNAPSACK_MAX_CAPACITY)
	Workers     int        // concurrent problems in SolveBatch (KNAPSACK_WORKERS)
	Verify      bool       // validate every selection before returning it (KNAPSACK_VERIFY)
	LogLevel    slog.Level // KNAPSACK_LOG_LEVEL: debug|info|warn|error
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		MaxCapacity: DefaultMaxCapacity,
		Workers:     runtime.GOMAXPROCS(0),
		LogLevel:    slog.LevelInfo,
	}
}

// LoadFrom reads every key through getenv. Unparseable values keep their default.
func LoadFrom(getenv func(string) string) Config {
	cfg := Default()
	if v := getenv("KNAPSACK_MAX_CAPACITY"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			cfg.MaxCapacity = n
		}
	}
	if v := getenv("KNAPSACK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	switch strings.ToLower(getenv("KNAPSACK_VERIFY")) {
	case "1", "true", "yes", "on":
		cfg.Verify = true
	case "0", "false", "no", "off":
		cfg.Verify = false
	}
	cfg.LogLevel = ParseLevel(getenv("KNAPSACK_LOG_LEVEL"))
	return cfg
}

// Load reads the process environment.
func Load() Config { return LoadFrom(os.Getenv) }

// ParseLevel understands debug|info|warn|error; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
