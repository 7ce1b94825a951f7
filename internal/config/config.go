// Package config loads the application configuration from YAML, filling
// in defaults for anything unset. Durations are strings ("2s", "500ms")
// parsed on access.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Listen       string       `yaml:"listen"`
	DatabasePath string       `yaml:"database_path"`
	Canvas       CanvasConfig `yaml:"canvas"`
	Logical      SpaceConfig  `yaml:"logical_space"`
	Sync         SyncConfig   `yaml:"sync"`
	Logger       LoggerConfig `yaml:"logger"`
}

// CanvasConfig describes the device rendering surface.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SafeMargin float64 `yaml:"safe_margin"`
}

// SpaceConfig is the logical coordinate space drawing commands arrive in.
type SpaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SyncConfig holds the sync channel timing knobs.
type SyncConfig struct {
	Quiescence      string `yaml:"quiescence"`       // debounce quiet window
	MaxWait         string `yaml:"max_wait"`         // push ceiling during continuous drawing
	HeartbeatTTL    string `yaml:"heartbeat_ttl"`    // presence expiry
	HandwrittenText bool   `yaml:"handwritten_text"` // render AI text as strokes
}

// LoggerConfig configures the slog handler.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	Output string `yaml:"output"` // stdout, stderr or a file path
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:       ":8888",
		DatabasePath: "sharedslate.sqlite3",
		Canvas:       CanvasConfig{Width: 1024, Height: 768, SafeMargin: 16},
		Logical:      SpaceConfig{Width: 1000, Height: 700},
		Sync: SyncConfig{
			Quiescence:   "2s",
			MaxWait:      "10s",
			HeartbeatTTL: "30s",
		},
		Logger: LoggerConfig{Level: "info", Format: "text", Output: "stderr"},
	}
}

// Load reads the config at path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Duration parses a duration field, falling back when empty or invalid.
func Duration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
