// Package config loads the render profile file. YAML and TOML are both
// accepted; values in the file overlay Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/forPelevin/naijavibe/internal/domain/assemble"
	"github.com/forPelevin/naijavibe/internal/logging"
	"github.com/forPelevin/naijavibe/internal/types"
)

var ErrUnknownFormat = errors.New("config: unknown file format")

type Config struct {
	Render types.RenderConfig  `yaml:"render" toml:"render"`
	Visual types.VisualContext `yaml:"visual" toml:"visual"`
	SEO    SEO                 `yaml:"seo" toml:"seo"`
	Oracle Oracle              `yaml:"oracle" toml:"oracle"`
	Output Output              `yaml:"output" toml:"output"`
	Log    logging.Config      `yaml:"log" toml:"log"`
	Voices assemble.Voices     `yaml:"voices" toml:"voices"`
}

type SEO struct {
	// CSV is the path of the SEO title table. Empty means default SEO only.
	CSV   string `yaml:"csv" toml:"csv"`
	RowID int    `yaml:"row_id" toml:"row_id"`
}

type Oracle struct {
	Provider string `yaml:"provider" toml:"provider"` // gemini, openrouter, replay
	Model    string `yaml:"model" toml:"model"`
	// ReplayFile is read by the replay provider.
	ReplayFile        string   `yaml:"replay_file" toml:"replay_file"`
	RequestsPerMinute float64  `yaml:"requests_per_minute" toml:"requests_per_minute"`
	AllowedHosts      []string `yaml:"allowed_hosts" toml:"allowed_hosts"`
	Slang             bool     `yaml:"slang" toml:"slang"`
}

type Output struct {
	Dir          string `yaml:"dir" toml:"dir"`
	DoubleSpaced bool   `yaml:"double_spaced" toml:"double_spaced"`
	// Seed fixes the continuity draws. Zero means a fresh seed per run.
	Seed uint64 `yaml:"seed" toml:"seed"`
}

func Default() Config {
	return Config{
		Render: types.DefaultRenderConfig(),
		Oracle: Oracle{
			Provider:          "gemini",
			RequestsPerMinute: 10,
		},
		Output: Output{Dir: "out"},
		Log:    logging.DefaultConfig(),
		Voices: assemble.DefaultVoices(),
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(b, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays b onto cfg. Keys absent from b keep their current values.
func Decode(b []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(b)) == 0 {
			return nil
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(b), cfg); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return nil
}

// Validate checks the render selections and the oracle provider.
func (c Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	switch c.Oracle.Provider {
	case "gemini", "openrouter", "replay":
	default:
		return fmt.Errorf("oracle: unknown provider %q", c.Oracle.Provider)
	}
	if c.Oracle.RequestsPerMinute < 0 {
		return errors.New("oracle: requests_per_minute must be >= 0")
	}
	return nil
}
