// Package config loads and watches textwin configuration files.
// TOML and YAML are both supported, selected by file extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files with an unrecognized
// extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the full textwin configuration.
type Config struct {
	// Editor holds text display settings.
	Editor EditorConfig `toml:"editor" yaml:"editor"`

	// Log holds logging settings.
	Log LogConfig `toml:"log" yaml:"log"`
}

// EditorConfig controls text display behavior.
type EditorConfig struct {
	// Wrap enables line wrapping.
	Wrap bool `toml:"wrap" yaml:"wrap"`

	// Prompt is the gutter prompt painted left of the text.
	Prompt string `toml:"prompt" yaml:"prompt"`
}

// LogConfig controls logging behavior.
type LogConfig struct {
	// Level is the minimum level to log: debug, info, warn, or error.
	Level string `toml:"level" yaml:"level"`

	// File is the log destination. Empty disables file logging.
	File string `toml:"file" yaml:"file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			Wrap:   true,
			Prompt: "",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a config file, applying its values over the defaults. The
// format is chosen by extension: .toml, .yaml, or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return cfg, nil
}

// LoadOrDefault loads the config at path, falling back to defaults if the
// file does not exist. Parse errors are still reported.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
