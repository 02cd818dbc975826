package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the complete tool configuration.
type Config struct {
	// Layout configuration for the working layout set.
	Layout LayoutConfig `toml:"layout"`

	// Shuffle configuration for layout mutation.
	Shuffle ShuffleConfig `toml:"shuffle"`

	// Log configuration.
	Log LogConfig `toml:"log"`
}

// LayoutConfig selects the default layout and extra layout sources.
type LayoutConfig struct {
	// Preset is the layout commands fall back to when none is named.
	Preset string `toml:"preset"`

	// Paths are extra directories searched for layout files.
	Paths []string `toml:"paths"`
}

// ShuffleConfig controls the shuffle command.
type ShuffleConfig struct {
	// Swaps is the number of random key swaps per shuffle.
	Swaps int `toml:"swaps"`

	// Seed seeds the random source. Zero means seed from the clock.
	Seed int64 `toml:"seed"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Preset: "initial",
		},
		Shuffle: ShuffleConfig{
			Swaps: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. A missing file yields the
// defaults; a present file overrides them field by field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "keygen", "config.toml"), nil
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for values no command can use.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Layout.Preset) == "" {
		errs = append(errs, ValidationError{
			Field:   "layout.preset",
			Message: "must not be empty",
		})
	}
	if c.Shuffle.Swaps < 0 {
		errs = append(errs, ValidationError{
			Field:   "shuffle.swaps",
			Message: fmt.Sprintf("must not be negative, got %d", c.Shuffle.Swaps),
		})
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidationError reports one rejected configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
