// Package config provides YAML-based configuration for the game window,
// the virtual surface, frame pacing, key repeat and storage locations.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rotj-game/rotj/internal/input"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Config is the full runtime configuration.
type Config struct {
	Window      WindowConfig    `yaml:"window"`
	Virtual     VirtualConfig   `yaml:"virtual"`
	FPS         int             `yaml:"fps"`
	BorderColor uint8           `yaml:"border_color"`
	KeyRepeat   KeyRepeatConfig `yaml:"key_repeat"`
	DataDir     string          `yaml:"data_dir"` // empty = embedded assets
	SaveDB      string          `yaml:"save_db"`
	Log         LogConfig       `yaml:"log"`
}

// WindowConfig is the initial real window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// VirtualConfig is the virtual surface, measured in character cells.
type VirtualConfig struct {
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Size returns the virtual surface size in pixels.
func (v VirtualConfig) Size() (w, h int) {
	return v.Cols * v.CellWidth, v.Rows * v.CellHeight
}

// KeyRepeatConfig holds the two key-repeat presets.
type KeyRepeatConfig struct {
	Menu input.Repeat `yaml:"menu"` // title and menu screens
	Game input.Repeat `yaml:"game"` // everything else
}

// LogConfig selects the log level and an optional JSON log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SlogLevel parses Level, defaulting to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
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

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:      WindowConfig{Width: 960, Height: 864, Title: "ROTJ"},
		Virtual:     VirtualConfig{Cols: 20, Rows: 18, CellWidth: 16, CellHeight: 16},
		FPS:         60,
		BorderColor: 0,
		KeyRepeat: KeyRepeatConfig{
			Menu: input.Repeat{Delay: 300 * time.Millisecond, Interval: 300 * time.Millisecond},
			Game: input.Repeat{Delay: 50 * time.Millisecond, Interval: 50 * time.Millisecond},
		},
		SaveDB: "~/.rotj/saves.db",
		Log:    LogConfig{Level: "info"},
	}
}

// Validate rejects sizes and rates the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Virtual.Cols <= 0 || c.Virtual.Rows <= 0 || c.Virtual.CellWidth <= 0 || c.Virtual.CellHeight <= 0 {
		errs = append(errs, errors.New("virtual surface dimensions must be positive"))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if c.BorderColor > 15 {
		errs = append(errs, fmt.Errorf("border_color %d is not a palette index", c.BorderColor))
	}
	for name, r := range map[string]input.Repeat{"menu": c.KeyRepeat.Menu, "game": c.KeyRepeat.Game} {
		if r.Delay <= 0 || r.Interval <= 0 {
			errs = append(errs, fmt.Errorf("key_repeat.%s must have positive delay and interval", name))
		}
	}
	if c.SaveDB == "" {
		errs = append(errs, errors.New("save_db must be set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads the configuration.
// Search order: customPath -> ~/.rotj/config.yaml -> ./configs/config.yaml -> embedded default.
// Files are layered over the embedded default, so they may set only some keys.
func Load(customPath string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // fall back to hardcoded if the embed is broken
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, p := range []string{userConfigPath(), filepath.Join("configs", "config.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		layered := cfg
		if err := yaml.Unmarshal(data, &layered); err != nil {
			continue
		}
		return layered, layered.Validate()
	}
	return cfg, nil
}

// userConfigPath returns ~/.rotj/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rotj", "config.yaml")
}
