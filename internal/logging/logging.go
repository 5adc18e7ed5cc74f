// Package logging builds the process logger.
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

type Config struct {
	Level      string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format     string `yaml:"format" toml:"format"` // json, text
	Output     string `yaml:"output" toml:"output"` // stderr, file, both
	FilePath   string `yaml:"file" toml:"file"`
	MaxSize    int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAge     int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "text",
		Output:     "stderr",
		FilePath:   "logs/naijavibe.log",
		MaxSize:    20,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
}

// New returns a logger for cfg. stderr is used when no other writer applies.
func New(cfg Config) (*slog.Logger, error) {
	w, err := writer(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	return slog.New(handler(cfg, w)), nil
}

func writer(cfg Config, stderr io.Writer) (io.Writer, error) {
	var writers []io.Writer
	out := strings.ToLower(strings.TrimSpace(cfg.Output))
	if out == "" || out == "stderr" || out == "both" {
		writers = append(writers, stderr)
	}
	if out == "file" || out == "both" {
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("log output %q needs a file path", out)
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	switch len(writers) {
	case 0:
		return nil, fmt.Errorf("unknown log output %q", cfg.Output)
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}

func handler(cfg Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
